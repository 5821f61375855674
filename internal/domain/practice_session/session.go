package practicesession

import (
	"errors"
	"time"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	"github.com/Richpong212/Cert-Prep/internal/id"
)

var (
	// ErrEmptySelection means the config matched zero questions; a session
	// must never be created with nothing to answer.
	ErrEmptySelection = errors.New("selection matched no questions")

	// ErrSessionFinished means a mutation was attempted after finalization.
	ErrSessionFinished = errors.New("session already finished")

	// ErrUnknownQuestion means a mutation referenced a question id that was
	// not presented in this session.
	ErrUnknownQuestion = errors.New("question not in session")

	// ErrUnknownChoice means a selected choice id does not belong to the
	// question being answered.
	ErrUnknownChoice = errors.New("choice not offered by question")

	// ErrIndexOutOfRange means a jump targeted a position outside the
	// session's question list.
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// Type distinguishes free-form practice from exam-simulator sessions.
type Type string

const (
	TypePractice Type = "practice"
	TypeExam     Type = "exam"
)

// Answer is the user's current response to one question. One Answer per
// question, keyed by question id; mutable while the session is active.
type Answer struct {
	QuestionID        string     `json:"questionId"`
	SelectedChoiceIDs []string   `json:"selectedChoiceIds"`
	Flagged           bool       `json:"flagged,omitempty"`
	AnsweredAt        *time.Time `json:"answeredAt,omitempty"`
}

// Session is one run through a selected set of questions. The question id
// list is captured at creation and is the sole source of truth for what was
// presented; it is never re-derived from catalog order.
//
// EndedAt absent means the session is still active. Once set it is never
// unset: finished is the terminal state.
type Session struct {
	ID           string            `json:"id"`
	Type         Type              `json:"type"`
	Config       Config            `json:"config"`
	QuestionIDs  []string          `json:"questionIds"`
	StartedAt    time.Time         `json:"startedAt"`
	EndedAt      *time.Time        `json:"endedAt,omitempty"`
	TimeLimitSec *int              `json:"timeLimitSec,omitempty"`
	Answers      map[string]Answer `json:"answers"`
}

// New creates an active session over the given selected questions.
// Returns ErrEmptySelection when the selection is empty.
func New(sessionType Type, cfg Config, selected []catalog.Question, timeLimitSec *int, now time.Time) (*Session, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}
	questionIDs := make([]string, len(selected))
	for i, q := range selected {
		questionIDs[i] = q.ID
	}
	return &Session{
		ID:           id.GenerateID(),
		Type:         sessionType,
		Config:       cfg,
		QuestionIDs:  questionIDs,
		StartedAt:    now.UTC(),
		TimeLimitSec: timeLimitSec,
		Answers:      make(map[string]Answer),
	}, nil
}

// Finished reports whether the session has reached its terminal state.
func (s *Session) Finished() bool {
	return s.EndedAt != nil
}

// HasQuestion reports whether the given question was presented in this session.
func (s *Session) HasQuestion(questionID string) bool {
	for _, qid := range s.QuestionIDs {
		if qid == questionID {
			return true
		}
	}
	return false
}

// ensureAnswers allocates the answers map when it is nil. Sessions decoded
// from external JSON (an imported backup without an answers field) arrive
// with a nil map.
func (s *Session) ensureAnswers() {
	if s.Answers == nil {
		s.Answers = make(map[string]Answer)
	}
}

// RecordAnswer replaces the selection for a question, keeping any existing
// flag and setting AnsweredAt on the first answer only.
func (s *Session) RecordAnswer(questionID string, selectedChoiceIDs []string, now time.Time) error {
	if s.Finished() {
		return ErrSessionFinished
	}
	if !s.HasQuestion(questionID) {
		return ErrUnknownQuestion
	}
	s.ensureAnswers()

	answer := s.Answers[questionID]
	answer.QuestionID = questionID
	answer.SelectedChoiceIDs = selectedChoiceIDs
	if answer.AnsweredAt == nil {
		t := now.UTC()
		answer.AnsweredAt = &t
	}
	s.Answers[questionID] = answer
	return nil
}

// ToggleFlag flips the flagged marker on a question, creating an empty
// answer record if the question has not been answered yet.
func (s *Session) ToggleFlag(questionID string) error {
	if s.Finished() {
		return ErrSessionFinished
	}
	if !s.HasQuestion(questionID) {
		return ErrUnknownQuestion
	}
	s.ensureAnswers()

	answer := s.Answers[questionID]
	answer.QuestionID = questionID
	if answer.SelectedChoiceIDs == nil {
		answer.SelectedChoiceIDs = []string{}
	}
	answer.Flagged = !answer.Flagged
	s.Answers[questionID] = answer
	return nil
}

// Advance moves linearly by delta and clamps to [0, len-1]. No wraparound.
func (s *Session) Advance(currentIndex, delta int) int {
	next := currentIndex + delta
	if next < 0 {
		return 0
	}
	if last := len(s.QuestionIDs) - 1; next > last {
		return last
	}
	return next
}

// JumpTo validates a random-access navigation target. Out-of-bounds indexes
// are rejected rather than clamped so the caller learns about the bad input.
func (s *Session) JumpTo(index int) (int, error) {
	if index < 0 || index >= len(s.QuestionIDs) {
		return 0, ErrIndexOutOfRange
	}
	return index, nil
}

// Finish sets the end timestamp. Idempotent: finishing an already finished
// session keeps the original timestamp, which makes the manual-finish versus
// timer-expiry race harmless in either ordering.
func (s *Session) Finish(now time.Time) {
	if s.Finished() {
		return
	}
	t := now.UTC()
	s.EndedAt = &t
}

// AnsweredCount returns how many questions have a non-empty selection.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if len(a.SelectedChoiceIDs) > 0 {
			n++
		}
	}
	return n
}

// ElapsedSec returns whole seconds since the session started, up to its end
// timestamp for finished sessions or now for active ones. Clock skew that
// would produce a negative value is clamped to zero.
func (s *Session) ElapsedSec(now time.Time) int {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	elapsed := int(end.Sub(s.StartedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// RemainingSec returns the wall-clock seconds left on a timed session,
// clamped at zero. Untimed sessions have no limit and return -1.
func (s *Session) RemainingSec(now time.Time) int {
	if s.TimeLimitSec == nil {
		return -1
	}
	remaining := *s.TimeLimitSec - s.ElapsedSec(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
