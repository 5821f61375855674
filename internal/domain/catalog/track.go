package catalog

// ExamInfo holds the real-exam parameters of a certification track.
type ExamInfo struct {
	DurationMin    int `json:"duration"`
	TotalQuestions int `json:"totalQuestions"`
	PassingScore   int `json:"passingScore"`
}

// Track is a certification exam path with its own domains and exam parameters.
type Track struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Domains        []string       `json:"domains"`
	QuestionCounts map[string]int `json:"questionCounts"`
	ExamInfo       ExamInfo       `json:"examInfo"`
}

// TimeLimitSec returns the exam duration in seconds.
func (t Track) TimeLimitSec() int {
	return t.ExamInfo.DurationMin * 60
}

// PracticeExam is a curated, named session preset for a track,
// e.g. a full-length final exam. The selection fields mirror a practice
// configuration; the session layer turns a preset into a real config.
type PracticeExam struct {
	ID           string       `json:"id"`
	TrackID      string       `json:"trackId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Level        string       `json:"level"` // beginner, intermediate, advanced
	Domains      []string     `json:"domains"`
	Difficulties []Difficulty `json:"difficulty"`
	Count        int          `json:"count"`
	Timed        bool         `json:"timed"`
}
