package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	Identity    *domain.Identity
}

// Login resolves the identity and issues a session token for it.
func (s *Service) Login(ctx context.Context, input ResolveInput) (*LoginResult, error) {
	identity, err := s.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(identity.ID, identity.Role.String())
	if err != nil {
		return nil, fmt.Errorf("identity.Login issue token: %w", err)
	}

	return &LoginResult{AccessToken: token, Identity: identity}, nil
}

// ValidateToken validates a session token and returns the identity ID and role.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (string, string, error) {
	id, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	return id, role, nil
}

// Current returns the identity of the current session, or nil.
func (s *Service) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// ClearSession ends the current session. Safe to call with no session.
func (s *Service) ClearSession(ctx context.Context) {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		s.log.InfoContext(ctx, "session cleared", slog.String("identity_id", prev.ID))
	}
}

// GetByID returns an identity by ID.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	identity, err := s.identities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("identity.GetByID: %w", err)
	}
	return identity, nil
}

func (s *Service) setCurrent(identity *domain.Identity) {
	cp := *identity
	s.mu.Lock()
	s.current = &cp
	s.mu.Unlock()
}
