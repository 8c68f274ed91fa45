package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Resolve maps login credentials to an Identity, creating one on first sight
// of an email. The resolved identity becomes the current session.
//
// Passwords are only checked when auth.verify_passwords is enabled; otherwise
// any password is accepted for a known email.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.Identity, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(s.cfg.VerifyPasswords); err != nil {
		return nil, err
	}

	identity, err := s.identities.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		identity, err = s.register(ctx, input.Email)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("identity.Resolve get by email: %w", err)
	}

	if s.cfg.VerifyPasswords {
		if err := s.checkPassword(ctx, identity, input.Password); err != nil {
			return nil, err
		}
	}

	s.setCurrent(identity)

	s.log.InfoContext(ctx, "identity resolved",
		slog.String("identity_id", identity.ID),
		slog.String("role", identity.Role.String()))

	return identity, nil
}

// register creates an identity for an unseen email. A concurrent registration
// of the same email is resolved by re-reading the winner.
func (s *Service) register(ctx context.Context, email string) (*domain.Identity, error) {
	local := domain.EmailLocalPart(email)

	created, err := s.identities.Create(ctx, &domain.Identity{
		ID:        s.newID(),
		Name:      strings.ToUpper(local),
		Email:     email,
		Role:      RoleForLocalPart(local),
		CreatedAt: s.now(),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, getErr := s.identities.GetByEmail(ctx, email)
		if getErr != nil {
			return nil, fmt.Errorf("identity.Resolve reread: %w", getErr)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("identity.Resolve create: %w", err)
	}

	s.log.InfoContext(ctx, "identity registered",
		slog.String("identity_id", created.ID),
		slog.String("role", created.Role.String()))

	return created, nil
}

// checkPassword verifies the password, or enrolls it when the identity has none yet.
func (s *Service) checkPassword(ctx context.Context, identity *domain.Identity, password string) error {
	if identity.PasswordHash == "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("identity.Resolve hash: %w", err)
		}
		if err := s.identities.SetPasswordHash(ctx, identity.ID, hash); err != nil {
			return fmt.Errorf("identity.Resolve set password: %w", err)
		}
		identity.PasswordHash = hash
		return nil
	}

	ok, err := s.hasher.Verify(identity.PasswordHash, password)
	if err != nil {
		return fmt.Errorf("identity.Resolve verify: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "password mismatch", slog.String("identity_id", identity.ID))
		return domain.ErrUnauthorized
	}
	return nil
}

// RoleForLocalPart derives the role of a new identity from its email local part.
// Checks run in order; the first match wins.
func RoleForLocalPart(local string) domain.Role {
	switch {
	case strings.Contains(local, "admin"):
		return domain.RoleAdmin
	case strings.Contains(local, "curador"):
		return domain.RoleCurator
	case strings.Contains(local, "colab"):
		return domain.RoleCollaborator
	default:
		return domain.RoleVisitor
	}
}
