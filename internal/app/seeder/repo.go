// Package seeder loads the embedded sample catalog into a record store.
package seeder

import (
	"context"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// SeedRepo is the bulk write contract consumed by the pipeline.
// Inserts skip records whose ID already exists and return the number written.
// Implemented by memory.Store and the postgres seed.Repo.
type SeedRepo interface {
	BulkInsertIdentities(ctx context.Context, identities []domain.Identity) (int, error)
	BulkInsertVeterans(ctx context.Context, veterans []domain.Veteran) (int, error)
	BulkInsertVehicles(ctx context.Context, vehicles []domain.Vehicle) (int, error)
	BulkInsertWeapons(ctx context.Context, weapons []domain.Weapon) (int, error)
	BulkInsertStories(ctx context.Context, stories []domain.Story) (int, error)
	BulkInsertTimeline(ctx context.Context, entries []domain.TimelineEntry) (int, error)
	BulkInsertContributions(ctx context.Context, contributions []domain.Contribution) (int, error)
}
