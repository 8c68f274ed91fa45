// Package story implements the story repository using PostgreSQL.
// Listings are ordered by insertion sequence.
package story

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const table = "stories"

// Columns lists the persisted fields in scan order. Shared with the seed repo.
var Columns = []string{
	"id", "veteran_id", "veteran_name", "title", "description", "kind", "media_url",
	"location", "story_date", "approved", "authorized_to_publish", "submitted_by", "created_at",
}

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new story repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a story. A duplicate ID yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, st *domain.Story) (*domain.Story, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(Columns...).
		Values(Values(st)...).
		Suffix("RETURNING " + strings.Join(Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanStory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "story", st.ID)
	}
	return created, nil
}

// GetByID returns a story by ID or ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	query, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	st, err := scanStory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "story", id)
	}
	return st, nil
}

// Approve sets approved = true. Re-approving matches the row and succeeds.
func (r *Repo) Approve(ctx context.Context, id string) error {
	return r.exec(ctx, id, postgres.Builder().Update(table).Set("approved", true).Where(sq.Eq{"id": id}))
}

// Delete removes a story permanently. A missing ID yields ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, id, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
}

// ListByApproval returns stories with the given approval state in insertion order.
func (r *Repo) ListByApproval(ctx context.Context, approved bool) ([]domain.Story, error) {
	return r.list(ctx, sq.Eq{"approved": approved})
}

// ListPublishedByVeteranIDs returns approved stories linked to any of the veterans, in insertion order.
func (r *Repo) ListPublishedByVeteranIDs(ctx context.Context, veteranIDs []string) ([]domain.Story, error) {
	if len(veteranIDs) == 0 {
		return []domain.Story{}, nil
	}
	return r.list(ctx, sq.And{sq.Eq{"approved": true}, sq.Eq{"veteran_id": veteranIDs}})
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Story, error) {
	query, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(where).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "story", "list")
	}
	defer rows.Close()

	out := make([]domain.Story, 0)
	for rows.Next() {
		st, err := scanStory(rows)
		if err != nil {
			return nil, postgres.MapError(err, "story", "list")
		}
		out = append(out, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "story", "list")
	}
	return out, nil
}

func (r *Repo) exec(ctx context.Context, id string, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return err
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "story", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "story", id)
	}
	return nil
}

// Values returns the column values of st in Columns order.
func Values(st *domain.Story) []any {
	var veteranID *string
	if st.HasVeteran() {
		veteranID = &st.VeteranID
	}
	return []any{
		st.ID, veteranID, st.VeteranName, st.Title, st.Description, string(st.Kind), st.MediaURL,
		st.Location, st.Date, st.Approved, st.AuthorizedToPublish, st.SubmittedBy, st.CreatedAt,
	}
}

func scanStory(row pgx.Row) (*domain.Story, error) {
	var (
		st        domain.Story
		veteranID *string
		kind      string
	)
	err := row.Scan(
		&st.ID, &veteranID, &st.VeteranName, &st.Title, &st.Description, &kind, &st.MediaURL,
		&st.Location, &st.Date, &st.Approved, &st.AuthorizedToPublish, &st.SubmittedBy, &st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if veteranID != nil {
		st.VeteranID = *veteranID
	}
	st.Kind = domain.StoryKind(kind)
	return &st, nil
}
