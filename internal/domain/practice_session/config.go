package practicesession

import (
	"errors"
	"fmt"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
)

// ErrInvalidConfig wraps every config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Mode decides whether a session runs against the exam clock or counts up.
type Mode string

const (
	ModeTimed   Mode = "timed"
	ModeUntimed Mode = "untimed"
)

// Reveal decides when correctness and explanations are shown to the user.
type Reveal string

const (
	RevealAfterEach Reveal = "after-each"
	RevealEnd       Reveal = "end"
	RevealOff       Reveal = "off"
)

// Config describes how a session selects questions and behaves.
// Immutable once a session has been created from it.
type Config struct {
	TrackID      string               `json:"trackId"`
	Domains      []string             `json:"domains,omitempty"`    // empty = all domains
	Difficulties []catalog.Difficulty `json:"difficulty,omitempty"` // empty = all difficulties
	Count        int                  `json:"count"`
	Mode         Mode                 `json:"mode"`
	Reveal       Reveal               `json:"reveal"`
}

// Validate rejects configs with unknown enum values or a non-positive count.
// Invalid values fail here rather than being mishandled downstream.
func (c Config) Validate() error {
	if c.TrackID == "" {
		return fmt.Errorf("%w: trackId is required", ErrInvalidConfig)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Count)
	}
	switch c.Mode {
	case ModeTimed, ModeUntimed:
	default:
		return fmt.Errorf("%w: mode %q must be timed or untimed", ErrInvalidConfig, c.Mode)
	}
	switch c.Reveal {
	case RevealAfterEach, RevealEnd, RevealOff:
	default:
		return fmt.Errorf("%w: reveal %q must be after-each, end, or off", ErrInvalidConfig, c.Reveal)
	}
	for _, d := range c.Difficulties {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, d)
		}
	}
	return nil
}

// FromExam turns a curated practice-exam preset into a session config.
func FromExam(exam catalog.PracticeExam, reveal Reveal) Config {
	mode := ModeUntimed
	if exam.Timed {
		mode = ModeTimed
	}
	return Config{
		TrackID:      exam.TrackID,
		Domains:      exam.Domains,
		Difficulties: exam.Difficulties,
		Count:        exam.Count,
		Mode:         mode,
		Reveal:       reveal,
	}
}

// FreeQuizConfig is the pre-configured session offered to anonymous users:
// ten untimed Cloud Practitioner questions with immediate feedback.
func FreeQuizConfig() Config {
	return Config{
		TrackID: "aws-cp",
		Count:   10,
		Mode:    ModeUntimed,
		Reveal:  RevealAfterEach,
	}
}
