package practicesession

import (
	"math"
	"sort"
	"time"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
)

// DomainScore is the per-domain slice of a result.
type DomainScore struct {
	Domain  string `json:"domain"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// ResultSummary is the derived scoring output for a session. It is never
// persisted: recomputing it from the same session and questions always
// yields the same value.
type ResultSummary struct {
	SessionID    string        `json:"sessionId"`
	ScorePct     int           `json:"scorePct"`
	Total        int           `json:"total"`
	Correct      int           `json:"correct"`
	TimeTakenSec int           `json:"timeTakenSec"`
	ByDomain     []DomainScore `json:"byDomain"`
}

// QuestionLookup resolves a question id to its catalog record.
type QuestionLookup interface {
	Question(id string) (catalog.Question, error)
}

// Score computes the ResultSummary for a session. A question is correct when
// the answer's selected choice ids equal the question's correct choice ids
// as sets: order and duplicates are irrelevant. Unanswered questions count
// as incorrect. Question ids missing from the lookup still count toward the
// total so the score reflects the session as presented.
func Score(s *Session, questions QuestionLookup, now time.Time) ResultSummary {
	correct := 0
	domainStats := make(map[string]*DomainScore)

	for _, qid := range s.QuestionIDs {
		q, err := questions.Question(qid)
		if err != nil {
			continue
		}

		stats, ok := domainStats[q.Domain]
		if !ok {
			stats = &DomainScore{Domain: q.Domain}
			domainStats[q.Domain] = stats
		}
		stats.Total++

		answer, answered := s.Answers[qid]
		if answered && IsCorrect(answer.SelectedChoiceIDs, q.CorrectChoiceIDs) {
			correct++
			stats.Correct++
		}
	}

	byDomain := make([]DomainScore, 0, len(domainStats))
	for _, stats := range domainStats {
		byDomain = append(byDomain, *stats)
	}
	// Alphabetical order keeps the breakdown deterministic.
	sort.Slice(byDomain, func(i, j int) bool { return byDomain[i].Domain < byDomain[j].Domain })

	total := len(s.QuestionIDs)
	scorePct := 0
	if total > 0 {
		scorePct = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return ResultSummary{
		SessionID:    s.ID,
		ScorePct:     scorePct,
		Total:        total,
		Correct:      correct,
		TimeTakenSec: s.ElapsedSec(now),
		ByDomain:     byDomain,
	}
}

// IsCorrect compares selected and correct choice ids as unordered,
// deduplicated sets, so neither ordering nor accidental duplicates in the
// selection change the verdict.
func IsCorrect(selected, correct []string) bool {
	return setsEqual(selected, correct)
}

// setsEqual compares two id lists as unordered, deduplicated sets.
func setsEqual(a, b []string) bool {
	as := toSet(a)
	bs := toSet(b)
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
