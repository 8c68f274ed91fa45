package moderation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// PendingStories returns unapproved stories in insertion order.
func (s *Service) PendingStories(ctx context.Context) ([]domain.Story, error) {
	list, err := s.stories.ListByApproval(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("moderation.PendingStories: %w", err)
	}
	return list, nil
}

// PublishedStories returns approved stories in insertion order.
func (s *Service) PublishedStories(ctx context.Context) ([]domain.Story, error) {
	list, err := s.stories.ListByApproval(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("moderation.PublishedStories: %w", err)
	}
	return list, nil
}

// StoriesForVeteran returns the published stories linked to a veteran.
func (s *Service) StoriesForVeteran(ctx context.Context, veteranID string) ([]domain.Story, error) {
	grouped, err := s.StoriesForVeterans(ctx, []string{veteranID})
	if err != nil {
		return nil, err
	}
	return grouped[veteranID], nil
}

// StoriesForVeterans returns published stories grouped by veteran ID.
// Veterans without stories are absent from the map.
func (s *Service) StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error) {
	result := make(map[string][]domain.Story, len(veteranIDs))
	if len(veteranIDs) == 0 {
		return result, nil
	}

	list, err := s.stories.ListPublishedByVeteranIDs(ctx, veteranIDs)
	if err != nil {
		return nil, fmt.Errorf("moderation.StoriesForVeterans: %w", err)
	}
	for _, st := range list {
		if !st.Approved {
			continue
		}
		result[st.VeteranID] = append(result[st.VeteranID], st)
	}
	return result, nil
}

// FeaturedStory returns the configured story of the month if it is published,
// else the first published story, else nil.
func (s *Service) FeaturedStory(ctx context.Context) (*domain.Story, error) {
	published, err := s.PublishedStories(ctx)
	if err != nil {
		return nil, err
	}
	return pickFeatured(published, s.cfg.FeaturedStoryID), nil
}

// PreviouslyFeatured returns published stories other than the featured one,
// capped at the configured limit, in insertion order.
func (s *Service) PreviouslyFeatured(ctx context.Context) ([]domain.Story, error) {
	published, err := s.PublishedStories(ctx)
	if err != nil {
		return nil, err
	}

	featured := pickFeatured(published, s.cfg.FeaturedStoryID)
	limit := s.cfg.PreviouslyFeaturedLimit

	out := make([]domain.Story, 0, limit)
	for _, st := range published {
		if len(out) >= limit {
			break
		}
		if featured != nil && st.ID == featured.ID {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func pickFeatured(published []domain.Story, featuredID string) *domain.Story {
	if len(published) == 0 {
		return nil
	}
	for i := range published {
		if published[i].ID == featuredID {
			return &published[i]
		}
	}
	return &published[0]
}
