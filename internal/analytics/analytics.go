package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
	"github.com/Richpong212/Cert-Prep/internal/store"
	"github.com/Richpong212/Cert-Prep/internal/worker"
)

// DefaultPassingScore is used when a session references a track the catalog
// no longer knows, matching the original client's hardcoded AWS threshold.
const DefaultPassingScore = 72

const scoringWorkers = 4

// SessionResult is one finished session's summary plus the context needed
// for trends and pass-rate checks.
type SessionResult struct {
	StartedAt time.Time                     `json:"startedAt"`
	TrackID   string                        `json:"trackId"`
	Mode      practicesession.Mode          `json:"mode"`
	Passed    bool                          `json:"passed"`
	Summary   practicesession.ResultSummary `json:"summary"`
}

// Report aggregates every finished session in the store.
type Report struct {
	TotalSessions int                           `json:"totalSessions"`
	AverageScore  int                           `json:"averageScore"`
	TotalAnswered int                           `json:"totalAnswered"`
	TotalCorrect  int                           `json:"totalCorrect"`
	TotalTimeSec  int                           `json:"totalTimeSec"`
	PassRatePct   int                           `json:"passRatePct"`
	ByDomain      []practicesession.DomainScore `json:"byDomain"`
	Sessions      []SessionResult               `json:"sessions"`
	SkippedCount  int                           `json:"skippedCount"` // corrupt records ignored
}

// Aggregator recomputes scores for all persisted finished sessions. Results
// are always derived fresh from the sessions and the catalog; nothing here
// is cached or stored.
type Aggregator struct {
	store   store.SessionStore
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(st store.SessionStore, cat *catalog.Catalog, logger *slog.Logger) *Aggregator {
	return &Aggregator{store: st, catalog: cat, logger: logger}
}

// Aggregate scans every persisted session record, scores the finished ones,
// and folds them into a Report. A corrupt record is logged and skipped;
// one bad entry never aborts the rest of the computation.
func (a *Aggregator) Aggregate(ctx context.Context) (*Report, error) {
	records, err := a.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	report := &Report{}
	var finished []*practicesession.Session

	for _, record := range records {
		var session practicesession.Session
		if err := json.Unmarshal(record.Data, &session); err != nil {
			report.SkippedCount++
			a.logger.Warn("skipping corrupt session record", "key", record.Key, "error", err)
			continue
		}
		if !session.Finished() {
			continue
		}
		finished = append(finished, &session)
	}

	if len(finished) == 0 {
		return report, nil
	}

	report.Sessions = a.scoreAll(finished)
	report.TotalSessions = len(report.Sessions)

	scoreSum := 0
	passed := 0
	domainTotals := make(map[string]*practicesession.DomainScore)

	for _, result := range report.Sessions {
		scoreSum += result.Summary.ScorePct
		report.TotalAnswered += result.Summary.Total
		report.TotalCorrect += result.Summary.Correct
		report.TotalTimeSec += result.Summary.TimeTakenSec
		if result.Passed {
			passed++
		}
		for _, ds := range result.Summary.ByDomain {
			totals, ok := domainTotals[ds.Domain]
			if !ok {
				totals = &practicesession.DomainScore{Domain: ds.Domain}
				domainTotals[ds.Domain] = totals
			}
			totals.Correct += ds.Correct
			totals.Total += ds.Total
		}
	}

	report.AverageScore = int(math.Round(float64(scoreSum) / float64(report.TotalSessions)))
	report.PassRatePct = int(math.Round(float64(passed) / float64(report.TotalSessions) * 100))

	report.ByDomain = make([]practicesession.DomainScore, 0, len(domainTotals))
	for _, totals := range domainTotals {
		report.ByDomain = append(report.ByDomain, *totals)
	}
	sort.Slice(report.ByDomain, func(i, j int) bool {
		return report.ByDomain[i].Domain < report.ByDomain[j].Domain
	})

	return report, nil
}

// scoreAll fans the scoring work out over a small pool and returns the
// results ordered by session start time.
func (a *Aggregator) scoreAll(sessions []*practicesession.Session) []SessionResult {
	now := time.Now()
	pool := worker.NewPool[SessionResult](scoringWorkers, len(sessions))

	for _, session := range sessions {
		s := session
		pool.Submit(s.ID, func() SessionResult {
			summary := practicesession.Score(s, a.catalog, now)
			return SessionResult{
				StartedAt: s.StartedAt,
				TrackID:   s.Config.TrackID,
				Mode:      s.Config.Mode,
				Passed:    summary.ScorePct >= a.passingScore(s.Config.TrackID),
				Summary:   summary,
			}
		})
	}

	results := make([]SessionResult, 0, len(sessions))
	for range sessions {
		result := <-pool.Results()
		results = append(results, result.Output)
	}
	pool.Close()

	sort.Slice(results, func(i, j int) bool {
		return results[i].StartedAt.Before(results[j].StartedAt)
	})
	return results
}

// passingScore returns the track's own pass threshold. Each session is
// judged against its own track, not a global constant.
func (a *Aggregator) passingScore(trackID string) int {
	track, err := a.catalog.Track(trackID)
	if err != nil {
		return DefaultPassingScore
	}
	return track.ExamInfo.PassingScore
}
