package catalog

// Difficulty classifies how hard a question is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Choice is one selectable option of a question.
type Choice struct {
	ID     string `json:"id"`
	TextMd string `json:"textMd"`
}

// Reference links a question to external documentation.
type Reference struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Question is an immutable multiple-choice question from the static catalog.
// CorrectChoiceIDs holds one id for single-select questions and several for
// multi-select ones; it is never empty.
type Question struct {
	ID               string      `json:"id"`
	TrackID          string      `json:"trackId"`
	Domain           string      `json:"domain"`
	Difficulty       Difficulty  `json:"difficulty"`
	StemMd           string      `json:"stemMd"`
	Choices          []Choice    `json:"choices"`
	CorrectChoiceIDs []string    `json:"correctChoiceIds"`
	ExplanationMd    string      `json:"explanationMd"`
	References       []Reference `json:"references,omitempty"`
}

// HasChoice reports whether the question offers a choice with the given id.
func (q Question) HasChoice(choiceID string) bool {
	for _, c := range q.Choices {
		if c.ID == choiceID {
			return true
		}
	}
	return false
}

// MultiSelect reports whether more than one choice must be selected.
func (q Question) MultiSelect() bool {
	return len(q.CorrectChoiceIDs) > 1
}
