package moderation

import (
	"context"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/pkg/ctxutil"
)

type caller struct {
	id   string
	role domain.Role
}

func callerFromCtx(ctx context.Context) (caller, bool) {
	id, role, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return caller{}, false
	}
	return caller{id: id, role: domain.Role(role)}, true
}

// requireSubmitter admits any non-visitor identity.
func requireSubmitter(ctx context.Context) (caller, error) {
	c, ok := callerFromCtx(ctx)
	if !ok || !c.role.CanSubmit() {
		return caller{}, domain.ErrUnauthorized
	}
	return c, nil
}

// requireApprover admits any non-visitor identity; under strict approval only
// admins and curators pass.
func (s *Service) requireApprover(ctx context.Context) (caller, error) {
	c, err := requireSubmitter(ctx)
	if err != nil {
		return caller{}, err
	}
	if s.cfg.StrictApproval && !c.role.CanModerate() {
		return caller{}, domain.ErrPermissionDenied
	}
	return c, nil
}

// requireRemover admits admins only.
func requireRemover(ctx context.Context) (caller, error) {
	c, ok := callerFromCtx(ctx)
	if !ok {
		return caller{}, domain.ErrUnauthorized
	}
	if !c.role.CanDelete() {
		return caller{}, domain.ErrPermissionDenied
	}
	return c, nil
}

// requireModerator admits admins and curators.
func requireModerator(ctx context.Context) (caller, error) {
	c, ok := callerFromCtx(ctx)
	if !ok {
		return caller{}, domain.ErrUnauthorized
	}
	if !c.role.CanModerate() {
		return caller{}, domain.ErrPermissionDenied
	}
	return c, nil
}
