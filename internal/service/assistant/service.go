package assistant

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// chatModel completes text prompts.
type chatModel interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// visionModel describes images.
type visionModel interface {
	AnalyzeImage(ctx context.Context, req domain.ImageAnalysisRequest) (string, error)
}

// speechModel turns text into raw 16-bit mono 24 kHz PCM. A nil result means
// no audio is available.
type speechModel interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// catalogLookup resolves the subjects of narrations.
type catalogLookup interface {
	GetVeteran(ctx context.Context, id string) (*domain.Veteran, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	GetWeapon(ctx context.Context, id string) (*domain.Weapon, error)
}

// featuredSource returns the story of the month.
type featuredSource interface {
	FeaturedStory(ctx context.Context) (*domain.Story, error)
}

// fallbackRecorder counts degraded replies. Optional.
type fallbackRecorder interface {
	RecordAIFallback(operation string)
}

// Service fronts the generative AI collaborators. Chat and image analysis
// never fail; they degrade to fixed replies.
type Service struct {
	log      *slog.Logger
	chat     chatModel
	vision   visionModel
	speech   speechModel
	catalog  catalogLookup
	featured featuredSource
	recorder fallbackRecorder
	cfg      config.AIConfig
}

// NewService creates a new assistant service instance. recorder may be nil.
func NewService(
	logger *slog.Logger,
	chat chatModel,
	vision visionModel,
	speech speechModel,
	catalog catalogLookup,
	featured featuredSource,
	recorder fallbackRecorder,
	cfg config.AIConfig,
) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		log:      logger.With("service", "assistant"),
		chat:     chat,
		vision:   vision,
		speech:   speech,
		catalog:  catalog,
		featured: featured,
		recorder: recorder,
		cfg:      cfg,
	}
}

type noopRecorder struct{}

func (noopRecorder) RecordAIFallback(string) {}
