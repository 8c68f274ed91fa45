package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/identity"
	"github.com/heartmarshall/memoriaviva-backend/pkg/ctxutil"
)

// identityService defines the minimal interface needed by AuthHandler.
type identityService interface {
	Login(ctx context.Context, input identity.ResolveInput) (*identity.LoginResult, error)
	ClearSession(ctx context.Context)
	Current() *domain.Identity
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
}

// AuthHandler serves login, logout and "who am I".
type AuthHandler struct {
	svc identityService
	log *slog.Logger
}

func NewAuthHandler(svc identityService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string           `json:"accessToken"`
	Identity    identityResponse `json:"identity"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Login(r.Context(), identity.ResolveInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		Identity:    toIdentityResponse(result.Identity),
	})
}

// Logout handles POST /auth/logout. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearSession(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me. A bearer token takes precedence over the
// process-wide session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if id, ok := ctxutil.IdentityIDFromCtx(r.Context()); ok {
		ident, err := h.svc.GetByID(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toIdentityResponse(ident))
		return
	}

	current := h.svc.Current()
	if current == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, toIdentityResponse(current))
}
