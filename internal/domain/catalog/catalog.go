package catalog

import "errors"

var (
	ErrTrackNotFound    = errors.New("track not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrExamNotFound     = errors.New("practice exam not found")
)

// Catalog is the read-only collection of tracks, questions, and exam presets.
// It is built once at startup from compiled-in data and shared by everything
// that needs to look questions up.
type Catalog struct {
	tracks    []Track
	questions []Question
	exams     []PracticeExam

	trackByID    map[string]Track
	questionByID map[string]Question
	byTrack      map[string][]Question
}

// New builds a Catalog with lookup indexes over the given data.
func New(tracks []Track, questions []Question, exams []PracticeExam) *Catalog {
	c := &Catalog{
		tracks:       tracks,
		questions:    questions,
		exams:        exams,
		trackByID:    make(map[string]Track, len(tracks)),
		questionByID: make(map[string]Question, len(questions)),
		byTrack:      make(map[string][]Question),
	}
	for _, t := range tracks {
		c.trackByID[t.ID] = t
	}
	for _, q := range questions {
		c.questionByID[q.ID] = q
		c.byTrack[q.TrackID] = append(c.byTrack[q.TrackID], q)
	}
	return c
}

// Tracks returns all tracks in catalog order.
func (c *Catalog) Tracks() []Track {
	return c.tracks
}

// Track looks a track up by id.
func (c *Catalog) Track(id string) (Track, error) {
	t, ok := c.trackByID[id]
	if !ok {
		return Track{}, ErrTrackNotFound
	}
	return t, nil
}

// Question looks a question up by id.
func (c *Catalog) Question(id string) (Question, error) {
	q, ok := c.questionByID[id]
	if !ok {
		return Question{}, ErrQuestionNotFound
	}
	return q, nil
}

// QuestionsForTrack returns every question belonging to the given track.
// The returned slice is shared; callers must not mutate it.
func (c *Catalog) QuestionsForTrack(trackID string) []Question {
	return c.byTrack[trackID]
}

// Exams returns all practice-exam presets, optionally filtered by track.
// An empty trackID returns every preset.
func (c *Catalog) Exams(trackID string) []PracticeExam {
	if trackID == "" {
		return c.exams
	}
	var out []PracticeExam
	for _, e := range c.exams {
		if e.TrackID == trackID {
			out = append(out, e)
		}
	}
	return out
}

// Exam looks a practice-exam preset up by id.
func (c *Catalog) Exam(id string) (PracticeExam, error) {
	for _, e := range c.exams {
		if e.ID == id {
			return e, nil
		}
	}
	return PracticeExam{}, ErrExamNotFound
}
