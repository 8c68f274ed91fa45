// Package identity implements the identity repository using PostgreSQL.
package identity

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const table = "identities"

var columns = []string{"id", "name", "email", "role", "password_hash", "created_at"}

// Repo provides identity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new identity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an identity by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns an identity by its normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, email)
}

// Create inserts a new identity. A duplicate email yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, i *domain.Identity) (*domain.Identity, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(i.ID, i.Name, i.Email, string(i.Role), i.PasswordHash, i.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanIdentity(row)
	if err != nil {
		return nil, postgres.MapError(err, "identity", i.Email)
	}
	return created, nil
}

// SetPasswordHash stores the password hash of an identity.
func (r *Repo) SetPasswordHash(ctx context.Context, id string, hash string) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("password_hash", hash).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "identity", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "identity", id)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key string) (*domain.Identity, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	i, err := scanIdentity(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "identity", key)
	}
	return i, nil
}

func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var (
		i    domain.Identity
		role string
	)
	if err := row.Scan(&i.ID, &i.Name, &i.Email, &role, &i.PasswordHash, &i.CreatedAt); err != nil {
		return nil, err
	}
	i.Role = domain.Role(role)
	return &i, nil
}
