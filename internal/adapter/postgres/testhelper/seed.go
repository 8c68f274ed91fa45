package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedIdentity inserts an identity with the given role.
func SeedIdentity(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Identity {
	t.Helper()

	suffix := uniqueSuffix()
	id := domain.Identity{
		ID:        "id-" + suffix,
		Name:      "Pessoa " + suffix,
		Email:     "pessoa-" + suffix + "@example.com",
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO identities (id, name, email, role, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id.ID, id.Name, id.Email, string(id.Role), id.PasswordHash, id.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdentity: %v", err)
	}
	return id
}

// SeedVeteran inserts a veteran with a unique ID.
func SeedVeteran(t *testing.T, pool *pgxpool.Pool) domain.Veteran {
	t.Helper()

	suffix := uniqueSuffix()
	v := domain.Veteran{
		ID:       "vet-" + suffix,
		Name:     "Veterano " + suffix,
		Rank:     "Sargento",
		Origin:   domain.OriginMilitaryPolice,
		Bio:      "Serviu na capital.",
		JoinedAt: "1990-01-01",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO veterans (id, name, rank, origin, bio, photo_url, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.Name, v.Rank, string(v.Origin), v.Bio, v.PhotoURL, v.JoinedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVeteran: %v", err)
	}
	return v
}

// SeedStory inserts a story linked to veteranID (empty for none).
func SeedStory(t *testing.T, pool *pgxpool.Pool, veteranID string, approved bool) domain.Story {
	t.Helper()

	suffix := uniqueSuffix()
	st := domain.Story{
		ID:                  "story-" + suffix,
		VeteranID:           veteranID,
		VeteranName:         "Veterano " + suffix,
		Title:               "Relato " + suffix,
		Kind:                domain.StoryKindText,
		Date:                "2024-05-01",
		Approved:            approved,
		AuthorizedToPublish: true,
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
	}

	var vetID *string
	if veteranID != "" {
		vetID = &veteranID
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO stories (id, veteran_id, veteran_name, title, kind, story_date, approved, authorized_to_publish, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		st.ID, vetID, st.VeteranName, st.Title, string(st.Kind), st.Date, st.Approved, st.AuthorizedToPublish, st.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStory: %v", err)
	}
	return st
}
