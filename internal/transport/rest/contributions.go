package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/moderation"
)

type contributionService interface {
	SubmitContribution(ctx context.Context, input moderation.SubmitContributionInput) (*domain.Contribution, error)
	ApproveContribution(ctx context.Context, id string) error
	DeleteContribution(ctx context.Context, id string) error
	Contributions(ctx context.Context) ([]domain.Contribution, error)
	PublishedContributions(ctx context.Context) ([]domain.Contribution, error)
}

// ContributionHandler serves the open contribution form and its moderation.
type ContributionHandler struct {
	svc contributionService
	log *slog.Logger
}

func NewContributionHandler(svc contributionService, logger *slog.Logger) *ContributionHandler {
	return &ContributionHandler{svc: svc, log: logger.With("handler", "contributions")}
}

type submitContributionRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Narrative string `json:"narrative"`
	MediaURL  string `json:"mediaUrl"`
}

// Submit handles POST /contributions. Anonymous callers are accepted.
func (h *ContributionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContributionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.SubmitContribution(r.Context(), moderation.SubmitContributionInput{
		Name:      req.Name,
		Email:     req.Email,
		Narrative: req.Narrative,
		MediaURL:  req.MediaURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContributionResponse(c))
}

// Published handles GET /contributions. Contact emails are withheld.
func (h *ContributionHandler) Published(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.PublishedContributions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toContributionResponses(list)
	for i := range resp {
		resp[i].Email = ""
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /moderation/contributions.
func (h *ContributionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Contributions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContributionResponses(list))
}

// Approve handles POST /moderation/contributions/{id}/approve.
func (h *ContributionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ApproveContribution(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /moderation/contributions/{id}.
func (h *ContributionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteContribution(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
