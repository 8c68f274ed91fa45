package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// ContributionRepo stores contributions in submission order.
type ContributionRepo struct {
	s *Store
}

// Create appends a contribution. A duplicate ID yields ErrAlreadyExists.
func (r *ContributionRepo) Create(_ context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if indexByID(r.s.contributions, c.ID, contributionKey) >= 0 {
		return nil, fmt.Errorf("contribution %s: %w", c.ID, domain.ErrAlreadyExists)
	}
	r.s.contributions = append(r.s.contributions, *c)
	cp := *c
	return &cp, nil
}

// Approve marks a contribution approved. A missing ID yields ErrNotFound.
func (r *ContributionRepo) Approve(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := indexByID(r.s.contributions, id, contributionKey)
	if i < 0 {
		return fmt.Errorf("contribution %s: %w", id, domain.ErrNotFound)
	}
	r.s.contributions[i].Approved = true
	return nil
}

// Delete removes a contribution. A missing ID yields ErrNotFound.
func (r *ContributionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := indexByID(r.s.contributions, id, contributionKey)
	if i < 0 {
		return fmt.Errorf("contribution %s: %w", id, domain.ErrNotFound)
	}
	r.s.contributions = slices.Delete(r.s.contributions, i, i+1)
	return nil
}

// List returns all contributions in insertion order.
func (r *ContributionRepo) List(_ context.Context) ([]domain.Contribution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.Contribution, 0, len(r.s.contributions)), r.s.contributions...), nil
}

// ListByApproval returns contributions with the given approval state in insertion order.
func (r *ContributionRepo) ListByApproval(_ context.Context, approved bool) ([]domain.Contribution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Contribution, 0)
	for _, c := range r.s.contributions {
		if c.Approved == approved {
			out = append(out, c)
		}
	}
	return out, nil
}
