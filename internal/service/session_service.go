// internal/service/session_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
	"github.com/Richpong212/Cert-Prep/internal/store"
	"github.com/Richpong212/Cert-Prep/internal/tier"
)

// SessionService owns the session lifecycle: tier gating, question
// selection, write-through persistence, and the per-session timers. It owns
// the timer map so the store stays a pure persistence layer.
type SessionService struct {
	store        store.SessionStore
	catalog      *catalog.Catalog
	logger       *slog.Logger
	tickInterval time.Duration
	shuffle      practicesession.ShuffleFunc
	now          func() time.Time

	mu     sync.Mutex
	timers map[string]*practicesession.Timer // sessionID → timer
}

// Option adjusts a SessionService, mainly so tests can pin down time and
// randomness.
type Option func(*SessionService)

// WithTickInterval overrides the one-second timer tick.
func WithTickInterval(d time.Duration) Option {
	return func(s *SessionService) { s.tickInterval = d }
}

// WithShuffle overrides the question shuffle.
func WithShuffle(fn practicesession.ShuffleFunc) Option {
	return func(s *SessionService) { s.shuffle = fn }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *SessionService) { s.now = now }
}

// NewSessionService creates a SessionService.
func NewSessionService(st store.SessionStore, cat *catalog.Catalog, logger *slog.Logger, opts ...Option) *SessionService {
	s := &SessionService{
		store:        st,
		catalog:      cat,
		logger:       logger,
		tickInterval: time.Second,
		shuffle:      practicesession.RandomShuffle,
		now:          time.Now,
		timers:       make(map[string]*practicesession.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a session from a caller-supplied config. The tier gates run
// before anything else: a denied request never reaches selection or the
// store. Self-configured sessions additionally need a plan with custom
// practice; preset sessions go through CreateFromExam instead.
func (s *SessionService) Create(ctx context.Context, user *tier.User, sessionType practicesession.Type, cfg practicesession.Config) (*practicesession.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := tier.CheckSessionStart(user, cfg.TrackID, cfg.Count, sessionType == practicesession.TypeExam); err != nil {
		return nil, err
	}
	if !tier.CanCustomPractice(user) {
		return nil, tier.ErrCustomPracticeDenied
	}
	return s.create(ctx, sessionType, cfg)
}

// CreateFromExam starts a session from a curated practice-exam preset.
func (s *SessionService) CreateFromExam(ctx context.Context, user *tier.User, examID string, reveal practicesession.Reveal) (*practicesession.Session, error) {
	exam, err := s.catalog.Exam(examID)
	if err != nil {
		return nil, err
	}
	cfg := practicesession.FromExam(exam, reveal)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := tier.CheckSessionStart(user, cfg.TrackID, cfg.Count, true); err != nil {
		return nil, err
	}
	return s.create(ctx, practicesession.TypeExam, cfg)
}

// CreateFreeQuiz starts the pre-configured anonymous quiz. It bypasses the
// quota gate: the free quiz is the product's front door and is open to
// everyone, as in the original client.
func (s *SessionService) CreateFreeQuiz(ctx context.Context) (*practicesession.Session, error) {
	return s.create(ctx, practicesession.TypePractice, practicesession.FreeQuizConfig())
}

func (s *SessionService) create(ctx context.Context, sessionType practicesession.Type, cfg practicesession.Config) (*practicesession.Session, error) {
	track, err := s.catalog.Track(cfg.TrackID)
	if err != nil {
		return nil, err
	}

	selected := practicesession.Select(s.catalog.QuestionsForTrack(cfg.TrackID), cfg, s.shuffle)

	var timeLimitSec *int
	if cfg.Mode == practicesession.ModeTimed {
		limit := track.TimeLimitSec()
		timeLimitSec = &limit
	}

	session, err := practicesession.New(sessionType, cfg, selected, timeLimitSec, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.startTimer(session)

	s.logger.Info("session created",
		"session_id", session.ID,
		"track_id", cfg.TrackID,
		"questions", len(session.QuestionIDs),
		"mode", cfg.Mode,
	)
	return session, nil
}

// Get loads a session from the store. The persisted copy is authoritative.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*practicesession.Session, error) {
	return s.store.GetSession(ctx, sessionID)
}

// RecordAnswer replaces the selection for one question and writes the
// session through before returning.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID, questionID string, selectedChoiceIDs []string) (*practicesession.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Selected ids must belong to the question being answered.
	if question, err := s.catalog.Question(questionID); err == nil {
		for _, choiceID := range selectedChoiceIDs {
			if !question.HasChoice(choiceID) {
				return nil, fmt.Errorf("%w: %q", practicesession.ErrUnknownChoice, choiceID)
			}
		}
	}

	if err := session.RecordAnswer(questionID, selectedChoiceIDs, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// ToggleFlag flips the flag on one question and writes the session through.
func (s *SessionService) ToggleFlag(ctx context.Context, sessionID, questionID string) (*practicesession.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.ToggleFlag(questionID); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// Finish finalizes a session and releases its timer. Idempotent: finishing
// an already finished session returns it unchanged, which makes the race
// between a manual finish and a timer expiry safe in either order.
func (s *SessionService) Finish(ctx context.Context, sessionID string) (*practicesession.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Finished() {
		session.Finish(s.now())
		if err := s.store.SaveSession(ctx, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	s.stopTimer(sessionID)
	return session, nil
}

// Results scores a session against the catalog.
func (s *SessionService) Results(ctx context.Context, sessionID string) (practicesession.ResultSummary, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return practicesession.ResultSummary{}, err
	}
	return practicesession.Score(session, s.catalog, s.now()), nil
}

// ResumeTimers re-arms the countdown of every active timed session found in
// the store, so a process restart behaves like the original page reload.
// Sessions whose limit already passed are finished immediately. Corrupt
// records are skipped with a log line.
func (s *SessionService) ResumeTimers(ctx context.Context) error {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	for _, record := range records {
		var session practicesession.Session
		if err := json.Unmarshal(record.Data, &session); err != nil {
			s.logger.Warn("skipping corrupt session record", "key", record.Key, "error", err)
			continue
		}
		if session.Finished() {
			continue
		}

		if session.TimeLimitSec == nil {
			s.startTimer(&session)
			continue
		}

		remaining := session.RemainingSec(s.now())
		if remaining == 0 {
			if _, err := s.Finish(ctx, session.ID); err != nil {
				s.logger.Error("failed to finish expired session", "session_id", session.ID, "error", err)
			}
			continue
		}

		s.armCountdown(session.ID, remaining)
		s.logger.Info("resumed session timer", "session_id", session.ID, "remaining_sec", remaining)
	}
	return nil
}

// Close stops every running timer. Called on shutdown.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *SessionService) startTimer(session *practicesession.Session) {
	if session.TimeLimitSec != nil {
		s.armCountdown(session.ID, *session.TimeLimitSec)
		return
	}

	timer := practicesession.NewCountup(s.tickInterval)
	s.trackTimer(session.ID, timer)
	timer.Start()
}

func (s *SessionService) armCountdown(sessionID string, seconds int) {
	timer := practicesession.NewCountdown(seconds, s.tickInterval, func() {
		s.expire(sessionID)
	})
	s.trackTimer(sessionID, timer)
	timer.Start()
}

// expire runs on the timer goroutine when a countdown hits zero. It uses a
// background context because the session must be finalized even though no
// request is in flight.
func (s *SessionService) expire(sessionID string) {
	if _, err := s.Finish(context.Background(), sessionID); err != nil {
		s.logger.Error("timer expiry failed to finish session", "session_id", sessionID, "error", err)
		// The timer is dead either way; drop its entry.
		s.stopTimer(sessionID)
		return
	}
	s.logger.Info("session auto-finished on timer expiry", "session_id", sessionID)
}

func (s *SessionService) trackTimer(sessionID string, timer *practicesession.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.timers[sessionID]; ok {
		old.Stop()
	}
	s.timers[sessionID] = timer
}

func (s *SessionService) stopTimer(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[sessionID]; ok {
		timer.Stop()
		delete(s.timers, sessionID)
	}
}
