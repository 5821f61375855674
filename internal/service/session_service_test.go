package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
	"github.com/Richpong212/Cert-Prep/internal/service"
	"github.com/Richpong212/Cert-Prep/internal/store"
	"github.com/Richpong212/Cert-Prep/internal/tier"
)

var sessionStart = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func fixtureCatalog() *catalog.Catalog {
	tracks := []catalog.Track{
		{
			ID:       "aws-saa",
			Name:     "AWS Solutions Architect Associate",
			Domains:  []string{"Networking", "Storage"},
			ExamInfo: catalog.ExamInfo{DurationMin: 1, TotalQuestions: 4, PassingScore: 72},
		},
		{
			ID:       "aws-cp",
			Name:     "AWS Cloud Practitioner",
			Domains:  []string{"Cloud Concepts"},
			ExamInfo: catalog.ExamInfo{DurationMin: 1, TotalQuestions: 2, PassingScore: 70},
		},
	}
	choices := []catalog.Choice{{ID: "a", TextMd: "A"}, {ID: "b", TextMd: "B"}}
	questions := []catalog.Question{
		{ID: "q1", TrackID: "aws-saa", Domain: "Networking", Difficulty: catalog.DifficultyEasy, Choices: choices, CorrectChoiceIDs: []string{"a"}},
		{ID: "q2", TrackID: "aws-saa", Domain: "Networking", Difficulty: catalog.DifficultyMedium, Choices: choices, CorrectChoiceIDs: []string{"b"}},
		{ID: "q3", TrackID: "aws-saa", Domain: "Storage", Difficulty: catalog.DifficultyHard, Choices: choices, CorrectChoiceIDs: []string{"a"}},
		{ID: "q4", TrackID: "aws-saa", Domain: "Storage", Difficulty: catalog.DifficultyEasy, Choices: choices, CorrectChoiceIDs: []string{"b"}},
		{ID: "cp1", TrackID: "aws-cp", Domain: "Cloud Concepts", Difficulty: catalog.DifficultyEasy, Choices: choices, CorrectChoiceIDs: []string{"a"}},
		{ID: "cp2", TrackID: "aws-cp", Domain: "Cloud Concepts", Difficulty: catalog.DifficultyEasy, Choices: choices, CorrectChoiceIDs: []string{"b"}},
	}
	exams := []catalog.PracticeExam{
		{ID: "saa-final", TrackID: "aws-saa", Title: "Final Exam", Count: 4, Timed: true},
	}
	return catalog.New(tracks, questions, exams)
}

func newService(t *testing.T, mem *store.MemoryStore, opts ...service.Option) *service.SessionService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := []service.Option{
		service.WithShuffle(func(_ []catalog.Question) {}),
		service.WithClock(func() time.Time { return sessionStart }),
		service.WithTickInterval(time.Millisecond),
	}
	svc := service.NewSessionService(mem, fixtureCatalog(), logger, append(base, opts...)...)
	t.Cleanup(svc.Close)
	return svc
}

func proUser() *tier.User {
	return &tier.User{ID: "u1", Subscription: tier.Lifetime}
}

func timedConfig(count int) practicesession.Config {
	cfg := untimedConfig(count)
	cfg.Mode = practicesession.ModeTimed
	return cfg
}

func untimedConfig(count int) practicesession.Config {
	return practicesession.Config{
		TrackID: "aws-saa",
		Count:   count,
		Mode:    practicesession.ModeUntimed,
		Reveal:  practicesession.RevealEnd,
	}
}

func TestCreate_PersistsSession(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	ctx := context.Background()

	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, untimedConfig(3))
	if err != nil {
		t.Fatal(err)
	}

	if len(created.QuestionIDs) != 3 {
		t.Errorf("expected 3 questions, got %d", len(created.QuestionIDs))
	}
	if created.TimeLimitSec != nil {
		t.Error("expected no time limit on untimed session")
	}

	loaded, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != created.ID || len(loaded.QuestionIDs) != 3 {
		t.Errorf("persisted session does not match created one: %+v", loaded)
	}
}

func TestCreate_TimedSessionGetsTrackLimit(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)

	cfg := untimedConfig(3)
	cfg.Mode = practicesession.ModeTimed

	created, err := svc.Create(context.Background(), proUser(), practicesession.TypePractice, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if created.TimeLimitSec == nil || *created.TimeLimitSec != 60 {
		t.Errorf("expected 60s limit from track duration, got %v", created.TimeLimitSec)
	}
}

func TestCreate_InvalidConfig(t *testing.T) {
	svc := newService(t, store.NewMemory())

	_, err := svc.Create(context.Background(), proUser(), practicesession.TypePractice, practicesession.Config{})
	if !errors.Is(err, practicesession.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestCreate_TierGateRunsFirst(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	guest := &tier.User{Subscription: tier.Guest}

	_, err := svc.Create(context.Background(), guest, practicesession.TypePractice, untimedConfig(3))
	if !errors.Is(err, tier.ErrTrackNotAllowed) {
		t.Fatalf("expected ErrTrackNotAllowed, got %v", err)
	}

	// A denied request must leave no trace in the store
	records, err := mem.ListRecords(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store after denied create, got %d records", len(records))
	}
}

func TestCreate_EmptySelection(t *testing.T) {
	svc := newService(t, store.NewMemory())

	cfg := untimedConfig(3)
	cfg.Domains = []string{"Quantum Computing"}

	_, err := svc.Create(context.Background(), proUser(), practicesession.TypePractice, cfg)
	if !errors.Is(err, practicesession.ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection, got %v", err)
	}
}

func TestCreateFromExam(t *testing.T) {
	svc := newService(t, store.NewMemory())

	created, err := svc.CreateFromExam(context.Background(), proUser(), "saa-final", practicesession.RevealEnd)
	if err != nil {
		t.Fatal(err)
	}

	if created.Type != practicesession.TypeExam {
		t.Errorf("expected exam session, got %q", created.Type)
	}
	if created.TimeLimitSec == nil {
		t.Error("expected timed exam preset to carry a time limit")
	}
	if len(created.QuestionIDs) != 4 {
		t.Errorf("expected 4 questions, got %d", len(created.QuestionIDs))
	}
}

func TestCreateFromExam_UnknownPreset(t *testing.T) {
	svc := newService(t, store.NewMemory())

	_, err := svc.CreateFromExam(context.Background(), proUser(), "missing", practicesession.RevealEnd)
	if !errors.Is(err, catalog.ErrExamNotFound) {
		t.Errorf("expected ErrExamNotFound, got %v", err)
	}
}

func TestCreateFreeQuiz_NoUserNeeded(t *testing.T) {
	svc := newService(t, store.NewMemory())

	created, err := svc.CreateFreeQuiz(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if created.Config.TrackID != "aws-cp" {
		t.Errorf("expected free quiz on aws-cp, got %q", created.Config.TrackID)
	}
	// Pool holds only two cp questions; never padded
	if len(created.QuestionIDs) != 2 {
		t.Errorf("expected 2 questions from small pool, got %d", len(created.QuestionIDs))
	}
}

func TestRecordAnswer_WriteThrough(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	ctx := context.Background()

	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, untimedConfig(3))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.RecordAnswer(ctx, created.ID, "q1", []string{"a"}); err != nil {
		t.Fatal(err)
	}

	loaded, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	answer, ok := loaded.Answers["q1"]
	if !ok || len(answer.SelectedChoiceIDs) != 1 || answer.SelectedChoiceIDs[0] != "a" {
		t.Errorf("expected persisted answer [a], got %+v", answer)
	}
}

func TestRecordAnswer_UnknownChoice(t *testing.T) {
	svc := newService(t, store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, untimedConfig(3))
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.RecordAnswer(ctx, created.ID, "q1", []string{"z"})
	if !errors.Is(err, practicesession.ErrUnknownChoice) {
		t.Errorf("expected ErrUnknownChoice, got %v", err)
	}
}

func TestRecordAnswer_RestoredSessionWithoutAnswers(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	// Minimal imported record: valid session, no answers field at all
	raw := `{"id":"imported-1","type":"practice","config":{"trackId":"aws-saa","count":2,"mode":"untimed","reveal":"end"},"questionIds":["q1","q2"],"startedAt":"2024-06-01T09:00:00Z"}`
	mem.PutRaw("imported-1", []byte(raw))

	svc := newService(t, mem)

	session, err := svc.RecordAnswer(ctx, "imported-1", "q1", []string{"a"})
	if err != nil {
		t.Fatalf("RecordAnswer on imported session: %v", err)
	}
	if len(session.Answers["q1"].SelectedChoiceIDs) != 1 {
		t.Errorf("expected recorded answer, got %+v", session.Answers["q1"])
	}

	loaded, err := svc.Get(ctx, "imported-1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.AnsweredCount() != 1 {
		t.Errorf("expected persisted answer, got %d answered", loaded.AnsweredCount())
	}
}

func TestCreate_GuestDeniedCustomPractice(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)

	// Guests may reach aws-cp within quota, but not with their own config
	cfg := practicesession.Config{
		TrackID: "aws-cp",
		Count:   2,
		Mode:    practicesession.ModeUntimed,
		Reveal:  practicesession.RevealEnd,
	}

	_, err := svc.Create(context.Background(), nil, practicesession.TypePractice, cfg)
	if !errors.Is(err, tier.ErrCustomPracticeDenied) {
		t.Fatalf("expected ErrCustomPracticeDenied, got %v", err)
	}

	records, err := mem.ListRecords(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store after denied create, got %d records", len(records))
	}
}

func TestRecordAnswer_MissingSession(t *testing.T) {
	svc := newService(t, store.NewMemory())

	_, err := svc.RecordAnswer(context.Background(), "nope", "q1", []string{"a"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleFlag_WriteThrough(t *testing.T) {
	svc := newService(t, store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, untimedConfig(3))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ToggleFlag(ctx, created.ID, "q2"); err != nil {
		t.Fatal(err)
	}

	loaded, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Answers["q2"].Flagged {
		t.Error("expected persisted flag on q2")
	}
}

func TestFinish_Idempotent(t *testing.T) {
	svc := newService(t, store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, untimedConfig(3))
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.Finish(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Finish(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}

	if !first.Finished() || !second.Finished() {
		t.Fatal("expected both finish calls to return a finished session")
	}
	if !first.EndedAt.Equal(*second.EndedAt) {
		t.Errorf("expected stable end timestamp, got %v then %v", first.EndedAt, second.EndedAt)
	}
}

func TestResults_ScoresAgainstCatalog(t *testing.T) {
	svc := newService(t, store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, untimedConfig(4))
	if err != nil {
		t.Fatal(err)
	}

	svc.RecordAnswer(ctx, created.ID, "q1", []string{"a"}) // correct
	svc.RecordAnswer(ctx, created.ID, "q2", []string{"a"}) // wrong
	svc.RecordAnswer(ctx, created.ID, "q3", []string{"a"}) // correct
	if _, err := svc.Finish(ctx, created.ID); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Results(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 4 || summary.Correct != 2 {
		t.Errorf("expected 2/4 correct, got %d/%d", summary.Correct, summary.Total)
	}
	if summary.ScorePct != 50 {
		t.Errorf("expected 50%%, got %d", summary.ScorePct)
	}
}

func TestTimedSession_AutoFinishesOnExpiry(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	ctx := context.Background()

	cfg := untimedConfig(3)
	cfg.Mode = practicesession.ModeTimed

	// 60 second limit ticking at 1ms expires in well under a second
	created, err := svc.Create(ctx, proUser(), practicesession.TypePractice, cfg)
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		loaded, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if loaded.Finished() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed session never auto-finished")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestResumeTimers_FinishesExpiredSessions(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	// Plant a timed session whose limit passed long ago
	limit := 60
	expired := &practicesession.Session{
		ID:           "expired-1",
		Type:         practicesession.TypeExam,
		Config:       timedConfig(2),
		QuestionIDs:  []string{"q1", "q2"},
		StartedAt:    sessionStart.Add(-time.Hour),
		TimeLimitSec: &limit,
		Answers:      map[string]practicesession.Answer{},
	}
	if err := mem.SaveSession(ctx, expired); err != nil {
		t.Fatal(err)
	}

	svc := newService(t, mem)
	if err := svc.ResumeTimers(ctx); err != nil {
		t.Fatal(err)
	}

	loaded, err := svc.Get(ctx, "expired-1")
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Finished() {
		t.Error("expected expired session to be finished on resume")
	}
}

func TestResumeTimers_SkipsCorruptRecords(t *testing.T) {
	mem := store.NewMemory()
	mem.PutRaw("broken", []byte("{not json"))

	svc := newService(t, mem)
	if err := svc.ResumeTimers(context.Background()); err != nil {
		t.Errorf("expected corrupt record to be skipped, got %v", err)
	}
}

func TestResumeTimers_RearmsActiveCountdown(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	// Mid-flight session: 60s limit, 30s already elapsed at the fixed clock
	limit := 60
	active := &practicesession.Session{
		ID:           "active-1",
		Type:         practicesession.TypeExam,
		Config:       timedConfig(2),
		QuestionIDs:  []string{"q1", "q2"},
		StartedAt:    sessionStart.Add(-30 * time.Second),
		TimeLimitSec: &limit,
		Answers:      map[string]practicesession.Answer{},
	}
	data, err := json.Marshal(active)
	if err != nil {
		t.Fatal(err)
	}
	mem.PutRaw(active.ID, data)

	svc := newService(t, mem)
	if err := svc.ResumeTimers(ctx); err != nil {
		t.Fatal(err)
	}

	// At 1ms ticks the remaining 30 seconds of budget expire quickly
	deadline := time.After(5 * time.Second)
	for {
		loaded, err := svc.Get(ctx, active.ID)
		if err != nil {
			t.Fatal(err)
		}
		if loaded.Finished() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("resumed countdown never expired")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
