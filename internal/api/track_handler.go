package api

import (
	"net/http"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
)

// TrackResponse is a track with the number of catalog questions it holds.
type TrackResponse struct {
	catalog.Track
	AvailableQuestions int `json:"availableQuestions"`
}

// @Summary      List certification tracks
// @Description  Returns every track with its domains, exam parameters, and available question count.
// @Tags         Tracks
// @Produce      json
// @Success      200  {array}  TrackResponse
// @Router       /tracks [get]
func (h *Handler) listTracks(w http.ResponseWriter, r *http.Request) {
	tracks := h.catalog.Tracks()
	response := make([]TrackResponse, len(tracks))
	for i, t := range tracks {
		response[i] = TrackResponse{
			Track:              t,
			AvailableQuestions: len(h.catalog.QuestionsForTrack(t.ID)),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// @Summary      Get a track
// @Tags         Tracks
// @Produce      json
// @Param        trackID  path      string  true  "Track ID"
// @Success      200      {object}  TrackResponse
// @Failure      404      {object}  map[string]string
// @Router       /tracks/{trackID} [get]
func (h *Handler) getTrack(w http.ResponseWriter, r *http.Request) {
	track, err := h.catalog.Track(r.PathValue("trackID"))
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, TrackResponse{
		Track:              track,
		AvailableQuestions: len(h.catalog.QuestionsForTrack(track.ID)),
	})
}

// @Summary      List practice-exam presets for a track
// @Tags         Tracks
// @Produce      json
// @Param        trackID  path     string  true  "Track ID"
// @Success      200      {array}  catalog.PracticeExam
// @Failure      404      {object} map[string]string
// @Router       /tracks/{trackID}/exams [get]
func (h *Handler) listTrackExams(w http.ResponseWriter, r *http.Request) {
	trackID := r.PathValue("trackID")
	if _, err := h.catalog.Track(trackID); h.handleDomainError(w, err) {
		return
	}
	exams := h.catalog.Exams(trackID)
	if exams == nil {
		exams = []catalog.PracticeExam{}
	}
	respondJSON(w, http.StatusOK, exams)
}

// @Summary      List all practice-exam presets
// @Tags         Tracks
// @Produce      json
// @Success      200  {array}  catalog.PracticeExam
// @Router       /exams [get]
func (h *Handler) listExams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Exams(""))
}
