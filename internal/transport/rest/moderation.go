package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memoriaviva-backend/internal/service/moderation"
)

type dashboardService interface {
	Dashboard(ctx context.Context) (*moderation.Dashboard, error)
}

// ModerationHandler serves the moderation panel summary.
type ModerationHandler struct {
	svc dashboardService
	log *slog.Logger
}

func NewModerationHandler(svc dashboardService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

// Dashboard handles GET /moderation/dashboard.
func (h *ModerationHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d))
}
