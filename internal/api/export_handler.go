package api

import (
	"encoding/json"
	"net/http"
	"time"

	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string                    `json:"version"`
	ExportedAt string                    `json:"exportedAt"`
	Sessions   []*practicesession.Session `json:"sessions"`
}

type ImportResult struct {
	SessionsImported int `json:"sessionsImported"`
	SessionsSkipped  int `json:"sessionsSkipped"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Export all sessions
// @Description  Dumps every persisted session as a versioned JSON document. Records that fail to parse are skipped so one bad entry cannot block a backup.
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Router       /export [get]
func (h *Handler) exportSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := h.store.ListRecords(ctx)
	if h.handleDomainError(w, err) {
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sessions:   make([]*practicesession.Session, 0, len(records)),
	}

	for _, rec := range records {
		var s practicesession.Session
		if err := json.Unmarshal(rec.Data, &s); err != nil {
			h.logger.Warn("skipping unreadable record during export", "key", rec.Key, "error", err)
			continue
		}
		exportData.Sessions = append(exportData.Sessions, &s)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=certprep-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// validImport rejects sessions that would be unusable after restore: no id,
// no question list, a zero start time, or a config that fails validation.
func validImport(s *practicesession.Session) bool {
	if s == nil || s.ID == "" || len(s.QuestionIDs) == 0 || s.StartedAt.IsZero() {
		return false
	}
	return s.Config.Validate() == nil
}

// @Summary      Import sessions
// @Description  Restores sessions from a previously exported document. Entries without an id, questions, a start time, or a valid config are skipped and counted; existing sessions with the same id are overwritten.
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        payload  body      ExportData  true  "Export document"
// @Success      201      {object}  ImportResult
// @Failure      400      {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}

	for _, s := range importData.Sessions {
		if !validImport(s) {
			h.logger.Warn("skipping invalid session in import")
			result.SessionsSkipped++
			continue
		}
		if s.Answers == nil {
			s.Answers = make(map[string]practicesession.Answer)
		}
		if err := h.store.SaveSession(ctx, s); err != nil {
			h.logger.Error("failed to import session", "id", s.ID, "error", err)
			result.SessionsSkipped++
			continue
		}
		result.SessionsImported++
	}

	respondJSON(w, http.StatusCreated, result)
}
