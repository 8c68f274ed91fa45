package moderation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Dashboard is the moderation panel snapshot.
type Dashboard struct {
	PendingStories []domain.Story
	Contributions  []domain.Contribution
	PendingCount   int
	// PublishedCount is only reported to admins; nil otherwise.
	PublishedCount *int
}

// Dashboard loads the moderation panel. Admins and curators only.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	c, err := requireModerator(ctx)
	if err != nil {
		return nil, err
	}

	var (
		pending       []domain.Story
		published     []domain.Story
		contributions []domain.Contribution
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = s.PendingStories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		published, err = s.PublishedStories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		contributions, err = s.Contributions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &Dashboard{
		PendingStories: pending,
		Contributions:  contributions,
		PendingCount:   len(pending),
	}
	if c.role == domain.RoleAdmin {
		n := len(published)
		d.PublishedCount = &n
	}
	return d, nil
}
