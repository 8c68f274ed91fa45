package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// storyRepo defines the story repository interface needed by the service.
// Lists return records in insertion order.
type storyRepo interface {
	Create(ctx context.Context, story *domain.Story) (*domain.Story, error)
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListByApproval(ctx context.Context, approved bool) ([]domain.Story, error)
	ListPublishedByVeteranIDs(ctx context.Context, veteranIDs []string) ([]domain.Story, error)
}

// contributionRepo defines the contribution repository interface needed by the service.
type contributionRepo interface {
	Create(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Contribution, error)
	ListByApproval(ctx context.Context, approved bool) ([]domain.Contribution, error)
}

// veteranLookup resolves veteran links on submitted stories.
type veteranLookup interface {
	GetVeteran(ctx context.Context, id string) (*domain.Veteran, error)
}

// transitionRecorder counts workflow transitions. Optional.
type transitionRecorder interface {
	RecordTransition(entity, action string)
}

// Service owns the story and contribution lifecycles.
type Service struct {
	log           *slog.Logger
	stories       storyRepo
	contributions contributionRepo
	veterans      veteranLookup
	recorder      transitionRecorder
	cfg           config.ModerationConfig

	newID func() string
	now   func() time.Time
}

// NewService creates a new moderation service instance. recorder may be nil.
func NewService(
	logger *slog.Logger,
	stories storyRepo,
	contributions contributionRepo,
	veterans veteranLookup,
	recorder transitionRecorder,
	cfg config.ModerationConfig,
) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		log:           logger.With("service", "moderation"),
		stories:       stories,
		contributions: contributions,
		veterans:      veterans,
		recorder:      recorder,
		cfg:           cfg,
		newID:         uuid.NewString,
		now:           time.Now,
	}
}

type noopRecorder struct{}

func (noopRecorder) RecordTransition(string, string) {}

const (
	entityStory        = "story"
	entityContribution = "contribution"

	actionSubmit  = "submit"
	actionApprove = "approve"
	actionReject  = "reject"
)
