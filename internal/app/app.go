package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/provider/stub"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/storage"
	"github.com/heartmarshall/memoriaviva-backend/internal/auth"
	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/metrics"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/assistant"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/catalog"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/identity"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/moderation"
	"github.com/heartmarshall/memoriaviva-backend/internal/transport/middleware"
	"github.com/heartmarshall/memoriaviva-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// HTTP handler and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.String("storage", cfg.Storage.Type),
	)

	handler, cleanup, err := NewHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return serve(ctx, cfg.Server, handler, logger)
}

// NewHandler wires the record store, services and router. The returned
// cleanup releases the store and background workers.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	repos, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Store.SkipSeed {
		if err := seedStore(ctx, repos.seed, logger); err != nil {
			repos.close()
			return nil, nil, fmt.Errorf("seed store: %w", err)
		}
	}

	media, err := storage.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		repos.close()
		return nil, nil, fmt.Errorf("init storage: %w", err)
	}

	m := metrics.New()

	// Services.
	identitySvc := identity.NewService(logger, repos.identities,
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		auth.NewJWTManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)
	moderationSvc := moderation.NewService(logger, repos.stories, repos.contributions, repos.catalog, m, cfg.Moderation)
	catalogSvc := catalog.NewService(logger, repos.catalog, moderationSvc)
	chat, vision, speech := aiProviders(cfg.AI, logger)
	assistantSvc := assistant.NewService(logger, chat, vision, speech, catalogSvc, moderationSvc, m, cfg.AI)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handlers := rest.Handlers{
		Health:        rest.NewHealthHandler(repos.pinger, cfg.Store.Driver, BuildVersion()),
		Auth:          rest.NewAuthHandler(identitySvc, logger),
		Stories:       rest.NewStoryHandler(moderationSvc, media, cfg.Storage.MaxUploadBytes, logger),
		Contributions: rest.NewContributionHandler(moderationSvc, logger),
		Moderation:    rest.NewModerationHandler(moderationSvc, logger),
		Catalog:       rest.NewCatalogHandler(catalogSvc, moderationSvc, logger),
		Assistant:     rest.NewAssistantHandler(assistantSvc, cfg.Storage.MaxUploadBytes, logger),
	}

	deps := rest.RouterDeps{
		Logger:    logger,
		Tokens:    identitySvc,
		Metrics:   m,
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Stories:   moderationSvc,
	}
	if fs, ok := media.(*storage.FileSystem); ok {
		deps.Media = fs.Handler()
	}

	cleanup := func() {
		limiter.Stop()
		repos.close()
	}
	return rest.NewRouter(handlers, deps), cleanup, nil
}

type chatModel interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

type visionModel interface {
	AnalyzeImage(ctx context.Context, req domain.ImageAnalysisRequest) (string, error)
}

type speechModel interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// aiProviders selects real providers when their API keys are set and the
// no-op stubs otherwise.
func aiProviders(cfg config.AIConfig, logger *slog.Logger) (chatModel, visionModel, speechModel) {
	var (
		chat   chatModel
		vision visionModel
		speech speechModel
	)

	if cfg.ChatEnabled() {
		p := anthropic.NewProvider(anthropic.Config{
			APIKey:      cfg.AnthropicAPIKey,
			BaseURL:     cfg.AnthropicBaseURL,
			ChatModel:   cfg.ChatModel,
			VisionModel: cfg.VisionModel,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.RequestTimeout,
		}, logger)
		chat, vision = p, p
	} else {
		logger.Warn("no chat provider configured, assistant replies use fallbacks")
		s := stub.NewChat()
		chat, vision = s, s
	}

	if cfg.SpeechEnabled() {
		speech = openai.NewSpeech(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.SpeechModel,
			Voice:   cfg.SpeechVoice,
			Timeout: cfg.RequestTimeout,
		}, logger)
	} else {
		logger.Warn("no speech provider configured, narration is disabled")
		speech = stub.NewSpeech()
	}

	return chat, vision, speech
}

// serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
