// Package contribution implements the contribution repository using PostgreSQL.
package contribution

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const table = "contributions"

// Columns lists the persisted fields in scan order.
var Columns = []string{"id", "name", "email", "narrative", "media_url", "approved", "submitted_at"}

// Repo provides contribution persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contribution repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a contribution. A duplicate ID yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(Columns...).
		Values(Values(c)...).
		Suffix("RETURNING " + strings.Join(Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanContribution(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contribution", c.ID)
	}
	return created, nil
}

// Approve marks a contribution approved. A missing ID yields ErrNotFound.
func (r *Repo) Approve(ctx context.Context, id string) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("approved", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, id, query, args)
}

// Delete removes a contribution permanently. A missing ID yields ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, id, query, args)
}

// List returns every contribution in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Contribution, error) {
	return r.list(ctx, nil)
}

// ListByApproval returns contributions with the given approval state in insertion order.
func (r *Repo) ListByApproval(ctx context.Context, approved bool) ([]domain.Contribution, error) {
	return r.list(ctx, sq.Eq{"approved": approved})
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Contribution, error) {
	b := postgres.Builder().Select(Columns...).From(table).OrderBy("seq")
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "contribution", "list")
	}
	defer rows.Close()

	out := make([]domain.Contribution, 0)
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, postgres.MapError(err, "contribution", "list")
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "contribution", "list")
	}
	return out, nil
}

func (r *Repo) exec(ctx context.Context, id, query string, args []any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "contribution", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "contribution", id)
	}
	return nil
}

// Values returns the column values of c in Columns order.
func Values(c *domain.Contribution) []any {
	return []any{c.ID, c.Name, c.Email, c.Narrative, c.MediaURL, c.Approved, c.SubmittedAt}
}

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var c domain.Contribution
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Narrative, &c.MediaURL, &c.Approved, &c.SubmittedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
