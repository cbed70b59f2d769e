package httpx

import (
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// DashboardHandlers provides HTTP handlers for the dashboard landing view.
type DashboardHandlers struct {
	Svc *service.DashboardService
}

// Counts handles HTTP requests for per-section content counts.
// GET /api/dashboard/counts.
func (h *DashboardHandlers) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Svc.Counts(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "counts_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, counts)
}
