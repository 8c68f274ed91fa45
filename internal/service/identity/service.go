package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// identityRepo defines the identity repository interface needed by the service.
type identityRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	SetPasswordHash(ctx context.Context, id string, hash string) error
}

// passwordHasher hashes and verifies passwords. Only used when verification is enabled.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// tokenManager issues and validates session tokens.
type tokenManager interface {
	GenerateAccessToken(identityID string, role string) (string, error)
	ValidateAccessToken(token string) (string, string, error)
}

// Service resolves identities and tracks the current session.
type Service struct {
	log        *slog.Logger
	identities identityRepo
	hasher     passwordHasher
	tokens     tokenManager
	cfg        config.AuthConfig

	newID func() string
	now   func() time.Time

	mu      sync.RWMutex
	current *domain.Identity
}

// NewService creates a new identity service instance.
func NewService(
	logger *slog.Logger,
	identities identityRepo,
	hasher passwordHasher,
	tokens tokenManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "identity"),
		identities: identities,
		hasher:     hasher,
		tokens:     tokens,
		cfg:        cfg,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}
