// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Richpong212/Cert-Prep/internal/analytics"
	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
	"github.com/Richpong212/Cert-Prep/internal/service"
	"github.com/Richpong212/Cert-Prep/internal/store"
	"github.com/Richpong212/Cert-Prep/internal/tier"
)

// Handler holds all dependencies needed by HTTP handlers. Instead of
// relying on package-level globals, every handler method receives its
// dependencies through this struct.
type Handler struct {
	catalog   *catalog.Catalog
	sessions  *service.SessionService
	analytics *analytics.Aggregator
	store     store.SessionStore
	logger    *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(cat *catalog.Catalog, sessions *service.SessionService, agg *analytics.Aggregator, st store.SessionStore, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:   cat,
		sessions:  sessions,
		analytics: agg,
		store:     st,
		logger:    logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after writing
// a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// subscriptionUser builds a user from the optional X-Subscription header.
// Nil (a guest) when the header is absent.
func subscriptionUser(r *http.Request) *tier.User {
	sub := r.Header.Get("X-Subscription")
	if sub == "" {
		return nil
	}
	return &tier.User{Subscription: tier.Subscription(sub)}
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the request body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleDomainError maps domain and store errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleDomainError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, catalog.ErrTrackNotFound),
		errors.Is(err, catalog.ErrQuestionNotFound),
		errors.Is(err, catalog.ErrExamNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, practicesession.ErrEmptySelection):
		respondError(w, http.StatusUnprocessableEntity, "no questions match this configuration")
	case errors.Is(err, practicesession.ErrSessionFinished):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, practicesession.ErrUnknownQuestion),
		errors.Is(err, practicesession.ErrUnknownChoice),
		errors.Is(err, practicesession.ErrIndexOutOfRange),
		errors.Is(err, practicesession.ErrInvalidConfig):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, tier.ErrTrackNotAllowed),
		errors.Is(err, tier.ErrQuotaExceeded),
		errors.Is(err, tier.ErrSimulatorDenied),
		errors.Is(err, tier.ErrAnalyticsDenied),
		errors.Is(err, tier.ErrCustomPracticeDenied):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrCorruptRecord):
		h.logger.Error("corrupt session record", "error", err)
		respondError(w, http.StatusInternalServerError, "session record unreadable")
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
