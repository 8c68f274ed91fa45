// Package catalog implements the read-only collection repository using PostgreSQL.
package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Column lists in scan order. Shared with the seed repo.
var (
	VeteranColumns  = []string{"id", "name", "rank", "origin", "bio", "photo_url", "joined_at"}
	VehicleColumns  = []string{"id", "model", "year", "type", "description", "photo_url", "status"}
	WeaponColumns   = []string{"id", "name", "caliber", "type", "manufacturer", "description", "photo_url", "status"}
	TimelineColumns = []string{"id", "year", "title", "description", "story_id"}
)

// Repo provides catalog reads backed by PostgreSQL. Lists follow insertion order.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Veterans
// ---------------------------------------------------------------------------

// ListVeterans returns all veterans in insertion order.
func (r *Repo) ListVeterans(ctx context.Context) ([]domain.Veteran, error) {
	return listAll(ctx, r, "veterans", VeteranColumns, scanVeteran)
}

// GetVeteran returns a veteran by ID or ErrNotFound.
func (r *Repo) GetVeteran(ctx context.Context, id string) (*domain.Veteran, error) {
	return getOne(ctx, r, "veterans", "veteran", VeteranColumns, id, scanVeteran)
}

func scanVeteran(row pgx.Row) (domain.Veteran, error) {
	var (
		v      domain.Veteran
		origin string
	)
	err := row.Scan(&v.ID, &v.Name, &v.Rank, &origin, &v.Bio, &v.PhotoURL, &v.JoinedAt)
	v.Origin = domain.Origin(origin)
	return v, err
}

// VeteranValues returns v's column values in VeteranColumns order.
func VeteranValues(v *domain.Veteran) []any {
	return []any{v.ID, v.Name, v.Rank, string(v.Origin), v.Bio, v.PhotoURL, v.JoinedAt}
}

// ---------------------------------------------------------------------------
// Vehicles
// ---------------------------------------------------------------------------

// ListVehicles returns all vehicles in insertion order.
func (r *Repo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return listAll(ctx, r, "vehicles", VehicleColumns, scanVehicle)
}

// GetVehicle returns a vehicle by ID or ErrNotFound.
func (r *Repo) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return getOne(ctx, r, "vehicles", "vehicle", VehicleColumns, id, scanVehicle)
}

func scanVehicle(row pgx.Row) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(&v.ID, &v.Model, &v.Year, &v.Type, &v.Description, &v.PhotoURL, &v.Status)
	return v, err
}

// VehicleValues returns v's column values in VehicleColumns order.
func VehicleValues(v *domain.Vehicle) []any {
	return []any{v.ID, v.Model, v.Year, v.Type, v.Description, v.PhotoURL, v.Status}
}

// ---------------------------------------------------------------------------
// Weapons
// ---------------------------------------------------------------------------

// ListWeapons returns all weapons in insertion order.
func (r *Repo) ListWeapons(ctx context.Context) ([]domain.Weapon, error) {
	return listAll(ctx, r, "weapons", WeaponColumns, scanWeapon)
}

// GetWeapon returns a weapon by ID or ErrNotFound.
func (r *Repo) GetWeapon(ctx context.Context, id string) (*domain.Weapon, error) {
	return getOne(ctx, r, "weapons", "weapon", WeaponColumns, id, scanWeapon)
}

func scanWeapon(row pgx.Row) (domain.Weapon, error) {
	var w domain.Weapon
	err := row.Scan(&w.ID, &w.Name, &w.Caliber, &w.Type, &w.Manufacturer, &w.Description, &w.PhotoURL, &w.Status)
	return w, err
}

// WeaponValues returns w's column values in WeaponColumns order.
func WeaponValues(w *domain.Weapon) []any {
	return []any{w.ID, w.Name, w.Caliber, w.Type, w.Manufacturer, w.Description, w.PhotoURL, w.Status}
}

// ---------------------------------------------------------------------------
// Timeline
// ---------------------------------------------------------------------------

// ListTimeline returns the timeline ordered by date.
func (r *Repo) ListTimeline(ctx context.Context) ([]domain.TimelineEntry, error) {
	return listAll(ctx, r, "timeline_entries", TimelineColumns, scanTimeline)
}

func scanTimeline(row pgx.Row) (domain.TimelineEntry, error) {
	var e domain.TimelineEntry
	err := row.Scan(&e.ID, &e.Year, &e.Title, &e.Description, &e.StoryID)
	return e, err
}

// TimelineValues returns e's column values in TimelineColumns order.
func TimelineValues(e *domain.TimelineEntry) []any {
	return []any{e.ID, e.Year, e.Title, e.Description, e.StoryID}
}

// ---------------------------------------------------------------------------
// Generic helpers
// ---------------------------------------------------------------------------

func listAll[T any](ctx context.Context, r *Repo, table string, columns []string, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "list")
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, postgres.MapError(err, table, "list")
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, "list")
	}
	return out, nil
}

func getOne[T any](ctx context.Context, r *Repo, table, entity string, columns []string, id string, scan func(pgx.Row) (T, error)) (*T, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &item, nil
}
