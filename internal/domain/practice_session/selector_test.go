package practicesession_test

import (
	"testing"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
)

// noShuffle keeps the pool order so selection results are deterministic.
func noShuffle(_ []catalog.Question) {}

func makePool(n int) []catalog.Question {
	difficulties := []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium, catalog.DifficultyHard}
	domains := []string{"Networking", "Storage", "Security"}
	pool := make([]catalog.Question, n)
	for i := range pool {
		pool[i] = catalog.Question{
			ID:         "q-" + string(rune('a'+i)),
			TrackID:    "aws-saa",
			Domain:     domains[i%len(domains)],
			Difficulty: difficulties[i%len(difficulties)],
		}
	}
	return pool
}

func TestSelect_TakesRequestedCount(t *testing.T) {
	pool := makePool(20)
	cfg := practicesession.Config{TrackID: "aws-saa", Count: 5}

	selected := practicesession.Select(pool, cfg, noShuffle)

	if len(selected) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(selected))
	}
}

func TestSelect_PoolSmallerThanCount(t *testing.T) {
	pool := makePool(3)
	cfg := practicesession.Config{TrackID: "aws-saa", Count: 10}

	selected := practicesession.Select(pool, cfg, noShuffle)

	// The whole pool, never padded with repeats
	if len(selected) != 3 {
		t.Fatalf("expected all 3 questions, got %d", len(selected))
	}
	seen := make(map[string]bool)
	for _, q := range selected {
		if seen[q.ID] {
			t.Errorf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelect_FiltersByTrack(t *testing.T) {
	pool := makePool(6)
	pool = append(pool, catalog.Question{ID: "other", TrackID: "k8s-cka", Domain: "Storage"})
	cfg := practicesession.Config{TrackID: "aws-saa", Count: 100}

	selected := practicesession.Select(pool, cfg, noShuffle)

	for _, q := range selected {
		if q.TrackID != "aws-saa" {
			t.Errorf("question %s from track %q leaked into selection", q.ID, q.TrackID)
		}
	}
	if len(selected) != 6 {
		t.Errorf("expected 6 questions, got %d", len(selected))
	}
}

func TestSelect_FiltersByDomain(t *testing.T) {
	pool := makePool(9)
	cfg := practicesession.Config{
		TrackID: "aws-saa",
		Domains: []string{"Storage"},
		Count:   100,
	}

	selected := practicesession.Select(pool, cfg, noShuffle)

	if len(selected) == 0 {
		t.Fatal("expected at least one Storage question")
	}
	for _, q := range selected {
		if q.Domain != "Storage" {
			t.Errorf("question %s from domain %q leaked into selection", q.ID, q.Domain)
		}
	}
}

func TestSelect_FiltersByDifficulty(t *testing.T) {
	pool := makePool(9)
	cfg := practicesession.Config{
		TrackID:      "aws-saa",
		Difficulties: []catalog.Difficulty{catalog.DifficultyHard},
		Count:        100,
	}

	selected := practicesession.Select(pool, cfg, noShuffle)

	if len(selected) == 0 {
		t.Fatal("expected at least one hard question")
	}
	for _, q := range selected {
		if q.Difficulty != catalog.DifficultyHard {
			t.Errorf("question %s with difficulty %q leaked into selection", q.ID, q.Difficulty)
		}
	}
}

func TestSelect_EmptyFiltersMatchEverything(t *testing.T) {
	pool := makePool(9)
	cfg := practicesession.Config{TrackID: "aws-saa", Count: 100}

	selected := practicesession.Select(pool, cfg, noShuffle)

	if len(selected) != 9 {
		t.Errorf("expected all 9 questions with empty filters, got %d", len(selected))
	}
}

func TestSelect_NoMatchesReturnsEmpty(t *testing.T) {
	pool := makePool(9)
	cfg := practicesession.Config{
		TrackID: "aws-saa",
		Domains: []string{"Quantum Computing"},
		Count:   10,
	}

	if selected := practicesession.Select(pool, cfg, noShuffle); len(selected) != 0 {
		t.Errorf("expected empty selection, got %d questions", len(selected))
	}
}

func TestSelect_UsesInjectedShuffle(t *testing.T) {
	pool := makePool(4)
	cfg := practicesession.Config{TrackID: "aws-saa", Count: 4}

	reverse := func(qs []catalog.Question) {
		for i, j := 0, len(qs)-1; i < j; i, j = i+1, j-1 {
			qs[i], qs[j] = qs[j], qs[i]
		}
	}

	selected := practicesession.Select(pool, cfg, reverse)

	if selected[0].ID != pool[3].ID {
		t.Errorf("expected injected shuffle to reorder selection, got first id %s", selected[0].ID)
	}
}

func TestRandomShuffle_ReordersEventually(t *testing.T) {
	// Statistically near-certain with 20 questions over 10 attempts
	original := makePool(20)

	reordered := false
	for attempt := 0; attempt < 10 && !reordered; attempt++ {
		shuffled := make([]catalog.Question, len(original))
		copy(shuffled, original)
		practicesession.RandomShuffle(shuffled)
		for i := range shuffled {
			if shuffled[i].ID != original[i].ID {
				reordered = true
				break
			}
		}
	}

	if !reordered {
		t.Error("expected RandomShuffle to produce a different order")
	}
}
