package api

import (
	"net/http"

	"github.com/Richpong212/Cert-Prep/internal/tier"
)

// @Summary      Performance analytics
// @Description  Recomputes the score of every finished session and aggregates averages, per-domain totals, and the pass rate. Each session is judged against its own track's passing score. Requires a plan with analytics access (X-Subscription header; guests are denied).
// @Tags         Analytics
// @Produce      json
// @Param        X-Subscription  header    string  false  "Subscription tier (guest, free, pro, lifetime)"
// @Success      200             {object}  analytics.Report
// @Failure      403             {object}  map[string]string
// @Router       /analytics [get]
func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	if !tier.CanViewAnalytics(subscriptionUser(r)) {
		h.handleDomainError(w, tier.ErrAnalyticsDenied)
		return
	}

	report, err := h.analytics.Aggregate(r.Context())
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, report)
}
