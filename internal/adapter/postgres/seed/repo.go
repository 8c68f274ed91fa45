// Package seed implements the seeder's bulk insert contract using PostgreSQL.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/contribution"
	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Repo writes seed batches in a single transaction each, skipping rows whose
// key already exists.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a seed repository writing through pool.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

var identityColumns = []string{"id", "name", "email", "role", "password_hash", "created_at"}

// BulkInsertIdentities inserts identities, skipping existing IDs and emails.
func (r *Repo) BulkInsertIdentities(ctx context.Context, items []domain.Identity) (int, error) {
	return bulkInsert(ctx, r, "identities", identityColumns, items, func(i *domain.Identity) []any {
		return []any{i.ID, i.Name, i.Email, string(i.Role), i.PasswordHash, i.CreatedAt}
	})
}

// BulkInsertVeterans inserts veterans, skipping existing IDs.
func (r *Repo) BulkInsertVeterans(ctx context.Context, items []domain.Veteran) (int, error) {
	return bulkInsert(ctx, r, "veterans", catalog.VeteranColumns, items, catalog.VeteranValues)
}

// BulkInsertVehicles inserts vehicles, skipping existing IDs.
func (r *Repo) BulkInsertVehicles(ctx context.Context, items []domain.Vehicle) (int, error) {
	return bulkInsert(ctx, r, "vehicles", catalog.VehicleColumns, items, catalog.VehicleValues)
}

// BulkInsertWeapons inserts weapons, skipping existing IDs.
func (r *Repo) BulkInsertWeapons(ctx context.Context, items []domain.Weapon) (int, error) {
	return bulkInsert(ctx, r, "weapons", catalog.WeaponColumns, items, catalog.WeaponValues)
}

// BulkInsertStories inserts stories, skipping existing IDs.
func (r *Repo) BulkInsertStories(ctx context.Context, items []domain.Story) (int, error) {
	return bulkInsert(ctx, r, "stories", story.Columns, items, story.Values)
}

// BulkInsertTimeline inserts timeline entries, skipping existing IDs.
func (r *Repo) BulkInsertTimeline(ctx context.Context, items []domain.TimelineEntry) (int, error) {
	return bulkInsert(ctx, r, "timeline_entries", catalog.TimelineColumns, items, catalog.TimelineValues)
}

// BulkInsertContributions inserts contributions, skipping existing IDs.
func (r *Repo) BulkInsertContributions(ctx context.Context, items []domain.Contribution) (int, error) {
	return bulkInsert(ctx, r, "contributions", contribution.Columns, items, contribution.Values)
}

// bulkInsert queues one INSERT ... ON CONFLICT DO NOTHING per item in a pgx
// batch and returns the number of rows written.
func bulkInsert[T any](ctx context.Context, r *Repo, table string, columns []string, items []T, values func(*T) []any) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var inserted int
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		batch := &pgx.Batch{}
		for i := range items {
			query, args, err := postgres.Builder().
				Insert(table).
				Columns(columns...).
				Values(values(&items[i])...).
				Suffix("ON CONFLICT DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert: %w", err)
			}
			batch.Queue(query, args...)
		}

		results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
		for range items {
			tag, err := results.Exec()
			if err != nil {
				results.Close()
				return postgres.MapError(err, table, "bulk")
			}
			inserted += int(tag.RowsAffected())
		}
		return results.Close()
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
