package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// catalogRepo defines the read-only collections needed by the service.
// Lists return records in insertion order.
type catalogRepo interface {
	ListVeterans(ctx context.Context) ([]domain.Veteran, error)
	GetVeteran(ctx context.Context, id string) (*domain.Veteran, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListWeapons(ctx context.Context) ([]domain.Weapon, error)
	GetWeapon(ctx context.Context, id string) (*domain.Weapon, error)
	ListTimeline(ctx context.Context) ([]domain.TimelineEntry, error)
}

// storyIndex groups published stories by veteran.
type storyIndex interface {
	StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error)
}

// Service serves the museum's read-only collections.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	stories storyIndex
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, catalog catalogRepo, stories storyIndex) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		catalog: catalog,
		stories: stories,
	}
}

// collator is not safe for concurrent use, so one is built per call.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}
