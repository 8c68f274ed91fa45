package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/transport/dataloader"
	"github.com/heartmarshall/memoriaviva-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, string, error)
}

type metricsRecorder interface {
	ObserveRequest(route, method string, code int, elapsed time.Duration)
	Handler() http.Handler
}

// Handlers groups every route handler.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Stories       *StoryHandler
	Contributions *ContributionHandler
	Moderation    *ModerationHandler
	Catalog       *CatalogHandler
	Assistant     *AssistantHandler
}

// RouterDeps carries the cross-cutting collaborators of the router.
type RouterDeps struct {
	Logger    *slog.Logger
	Tokens    tokenValidator
	Metrics   metricsRecorder
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
	// Stories backs the per-request story loader.
	Stories veteranStories
	// Media serves stored files under /media/. Nil when storage is remote.
	Media http.Handler
}

// NewRouter registers all routes on a ServeMux and wraps it in the global
// middleware chain.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		chain := append([]middleware.Middleware{middleware.Instrument(deps.Metrics, pattern)}, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(fn))
	}

	moderators := middleware.RequireRole(domain.RoleAdmin, domain.RoleCurator)
	assistantLimit := deps.Limiter.Limit(deps.RateLimit.AssistantPerMinute)
	loginLimit := deps.Limiter.Limit(deps.RateLimit.LoginPerMinute)

	// Probes and metrics.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	// Identity.
	handle("POST /auth/login", h.Auth.Login, loginLimit)
	handle("POST /auth/logout", h.Auth.Logout)
	handle("GET /auth/me", h.Auth.Me)

	// Stories.
	handle("GET /stories", h.Stories.Published)
	handle("GET /stories/featured", h.Stories.Featured)
	handle("GET /stories/featured/narration", h.Assistant.FeaturedNarration, assistantLimit)
	handle("GET /stories/previously-featured", h.Stories.PreviouslyFeatured)
	handle("POST /stories", h.Stories.Submit)
	handle("POST /stories/upload", h.Stories.Upload)

	// Contributions.
	handle("GET /contributions", h.Contributions.Published)
	handle("POST /contributions", h.Contributions.Submit)

	// Moderation.
	handle("GET /moderation/dashboard", h.Moderation.Dashboard)
	handle("GET /moderation/stories/pending", h.Stories.Pending, moderators)
	handle("POST /moderation/stories/{id}/approve", h.Stories.Approve)
	handle("DELETE /moderation/stories/{id}", h.Stories.Delete)
	handle("GET /moderation/contributions", h.Contributions.List, moderators)
	handle("POST /moderation/contributions/{id}/approve", h.Contributions.Approve)
	handle("DELETE /moderation/contributions/{id}", h.Contributions.Delete)

	// Catalog.
	handle("GET /veterans", h.Catalog.Veterans)
	handle("GET /veterans/{id}", h.Catalog.Veteran)
	handle("GET /veterans/{id}/stories", h.Catalog.VeteranStories)
	handle("GET /veterans/{id}/narration", h.Assistant.VeteranNarration, assistantLimit)
	handle("GET /map/pins", h.Catalog.MapPins)
	handle("GET /vehicles", h.Catalog.Vehicles)
	handle("GET /vehicles/{id}", h.Catalog.Vehicle)
	handle("GET /vehicles/{id}/narration", h.Assistant.VehicleNarration, assistantLimit)
	handle("GET /weapons", h.Catalog.Weapons)
	handle("GET /weapons/{id}", h.Catalog.Weapon)
	handle("GET /weapons/{id}/narration", h.Assistant.WeaponNarration, assistantLimit)
	handle("GET /timeline", h.Catalog.Timeline)

	// Assistant.
	handle("POST /assistant/chat", h.Assistant.Chat, assistantLimit)
	handle("POST /assistant/speech", h.Assistant.Speech, assistantLimit)
	handle("POST /assistant/analyze", h.Assistant.Analyze, moderators, assistantLimit)

	if deps.Media != nil {
		mux.Handle("GET /media/", http.StripPrefix("/media", deps.Media))
	}

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens),
		dataloader.Middleware(deps.Stories),
	)(mux)
}
