package practicesession

import (
	"math/rand"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
)

// ShuffleFunc reorders a slice of questions in place. Production code uses
// RandomShuffle; tests inject a deterministic ordering.
type ShuffleFunc func([]catalog.Question)

// RandomShuffle is the default uniform shuffle.
func RandomShuffle(questions []catalog.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

// Select filters the candidate pool by the config's track, domain, and
// difficulty predicates, shuffles it, and returns the first config.Count
// questions. A pool smaller than the requested count yields the whole pool:
// questions are never repeated to pad the session.
//
// Select is pure apart from the injected shuffle; the caller captures the
// result once at session creation and never re-selects.
func Select(pool []catalog.Question, cfg Config, shuffle ShuffleFunc) []catalog.Question {
	if shuffle == nil {
		shuffle = RandomShuffle
	}

	domains := toSet(cfg.Domains)
	difficulties := make(map[catalog.Difficulty]struct{}, len(cfg.Difficulties))
	for _, d := range cfg.Difficulties {
		difficulties[d] = struct{}{}
	}

	var filtered []catalog.Question
	for _, q := range pool {
		if q.TrackID != cfg.TrackID {
			continue
		}
		if len(domains) > 0 {
			if _, ok := domains[q.Domain]; !ok {
				continue
			}
		}
		if len(difficulties) > 0 {
			if _, ok := difficulties[q.Difficulty]; !ok {
				continue
			}
		}
		filtered = append(filtered, q)
	}

	shuffle(filtered)

	if cfg.Count < len(filtered) {
		filtered = filtered[:cfg.Count]
	}
	return filtered
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
