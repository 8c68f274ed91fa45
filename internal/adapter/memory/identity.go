package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// IdentityRepo stores identities keyed by ID with a unique email.
type IdentityRepo struct {
	s *Store
}

// GetByID returns the identity with the given ID.
func (r *IdentityRepo) GetByID(_ context.Context, id string) (*domain.Identity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := indexByID(r.s.identities, id, identityKey)
	if i < 0 {
		return nil, fmt.Errorf("identity %s: %w", id, domain.ErrNotFound)
	}
	cp := r.s.identities[i]
	return &cp, nil
}

// GetByEmail returns the identity with the given normalized email.
func (r *IdentityRepo) GetByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.s.identityIndexByEmail(email)
	if i < 0 {
		return nil, fmt.Errorf("identity %s: %w", email, domain.ErrNotFound)
	}
	cp := r.s.identities[i]
	return &cp, nil
}

// Create inserts a new identity. A duplicate ID or email yields ErrAlreadyExists.
func (r *IdentityRepo) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if indexByID(r.s.identities, identity.ID, identityKey) >= 0 || r.s.identityIndexByEmail(identity.Email) >= 0 {
		return nil, fmt.Errorf("identity %s: %w", identity.Email, domain.ErrAlreadyExists)
	}
	r.s.identities = append(r.s.identities, *identity)
	cp := *identity
	return &cp, nil
}

// SetPasswordHash stores the password hash of an identity.
func (r *IdentityRepo) SetPasswordHash(_ context.Context, id string, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := indexByID(r.s.identities, id, identityKey)
	if i < 0 {
		return fmt.Errorf("identity %s: %w", id, domain.ErrNotFound)
	}
	r.s.identities[i].PasswordHash = hash
	return nil
}

// identityIndexByEmail must be called with the lock held.
func (s *Store) identityIndexByEmail(email string) int {
	for i := range s.identities {
		if s.identities[i].Email == email {
			return i
		}
	}
	return -1
}
