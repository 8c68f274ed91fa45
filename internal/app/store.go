package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/memory"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	pgcatalog "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/catalog"
	pgcontribution "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/contribution"
	pgidentity "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/identity"
	pgseed "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/seed"
	pgstory "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/memoriaviva-backend/internal/app/seeder"
	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

type identityRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	SetPasswordHash(ctx context.Context, id string, hash string) error
}

type storyRepo interface {
	Create(ctx context.Context, story *domain.Story) (*domain.Story, error)
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListByApproval(ctx context.Context, approved bool) ([]domain.Story, error)
	ListPublishedByVeteranIDs(ctx context.Context, veteranIDs []string) ([]domain.Story, error)
}

type contributionRepo interface {
	Create(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Contribution, error)
	ListByApproval(ctx context.Context, approved bool) ([]domain.Contribution, error)
}

type catalogRepo interface {
	ListVeterans(ctx context.Context) ([]domain.Veteran, error)
	GetVeteran(ctx context.Context, id string) (*domain.Veteran, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListWeapons(ctx context.Context) ([]domain.Weapon, error)
	GetWeapon(ctx context.Context, id string) (*domain.Weapon, error)
	ListTimeline(ctx context.Context) ([]domain.TimelineEntry, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// repositories is the record store selected by configuration.
type repositories struct {
	identities    identityRepo
	stories       storyRepo
	contributions contributionRepo
	catalog       catalogRepo
	seed          seeder.SeedRepo
	pinger        pinger
	close         func()
}

// openStore builds the configured record store. For postgres, pending
// migrations are applied first unless skip_auto_migrate is set.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if !cfg.Database.SkipAutoMigrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return &repositories{
			identities:    pgidentity.New(pool),
			stories:       pgstory.New(pool),
			contributions: pgcontribution.New(pool),
			catalog:       pgcatalog.New(pool),
			seed:          pgseed.New(pool),
			pinger:        pool,
			close:         pool.Close,
		}, nil
	default:
		store := memory.NewStore()
		return &repositories{
			identities:    store.Identities(),
			stories:       store.Stories(),
			contributions: store.Contributions(),
			catalog:       store.Catalog(),
			seed:          store,
			pinger:        store,
			close:         func() {},
		}, nil
	}
}

// seedStore loads the embedded sample catalog. Existing records are kept.
func seedStore(ctx context.Context, repo seeder.SeedRepo, log *slog.Logger) error {
	cfg, err := seeder.LoadConfig("")
	if err != nil {
		return err
	}
	pipeline := seeder.NewPipeline(log, repo, *cfg)
	if err := pipeline.Run(ctx, nil); err != nil {
		return err
	}
	if pipeline.HasErrors() {
		return fmt.Errorf("seed: one or more phases failed")
	}
	return nil
}
