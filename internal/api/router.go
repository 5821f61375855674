// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Tracks and exam presets
	mux.HandleFunc("GET /tracks", h.listTracks)
	mux.HandleFunc("GET /tracks/{trackID}", h.getTrack)
	mux.HandleFunc("GET /tracks/{trackID}/exams", h.listTrackExams)
	mux.HandleFunc("GET /exams", h.listExams)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("POST /free-quiz", h.createFreeQuiz)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/flags", h.toggleFlag)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)
	mux.HandleFunc("GET /sessions/{sessionID}/results", h.getResults)

	// Analytics
	mux.HandleFunc("GET /analytics", h.getAnalytics)

	// Backup
	mux.HandleFunc("GET /export", h.exportSessions)
	mux.HandleFunc("POST /import", h.importSessions)
}
