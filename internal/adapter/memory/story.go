package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// StoryRepo stores stories in insertion order.
type StoryRepo struct {
	s *Store
}

// Create appends a story. A duplicate ID yields ErrAlreadyExists.
func (r *StoryRepo) Create(_ context.Context, story *domain.Story) (*domain.Story, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if indexByID(r.s.stories, story.ID, storyKey) >= 0 {
		return nil, fmt.Errorf("story %s: %w", story.ID, domain.ErrAlreadyExists)
	}
	r.s.stories = append(r.s.stories, *story)
	cp := *story
	return &cp, nil
}

// GetByID returns a copy of the story or ErrNotFound.
func (r *StoryRepo) GetByID(_ context.Context, id string) (*domain.Story, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := indexByID(r.s.stories, id, storyKey)
	if i < 0 {
		return nil, fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}
	cp := r.s.stories[i]
	return &cp, nil
}

// Approve marks a story approved. Already approved stories are left as is.
func (r *StoryRepo) Approve(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := indexByID(r.s.stories, id, storyKey)
	if i < 0 {
		return fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}
	r.s.stories[i].Approved = true
	return nil
}

// Delete removes a story. A missing ID yields ErrNotFound.
func (r *StoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := indexByID(r.s.stories, id, storyKey)
	if i < 0 {
		return fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}
	r.s.stories = slices.Delete(r.s.stories, i, i+1)
	return nil
}

// ListByApproval returns stories with the given approval state in insertion order.
func (r *StoryRepo) ListByApproval(_ context.Context, approved bool) ([]domain.Story, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Story, 0)
	for _, st := range r.s.stories {
		if st.Approved == approved {
			out = append(out, st)
		}
	}
	return out, nil
}

// ListPublishedByVeteranIDs returns approved stories linked to any of the veterans.
func (r *StoryRepo) ListPublishedByVeteranIDs(_ context.Context, veteranIDs []string) ([]domain.Story, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Story, 0)
	for _, st := range r.s.stories {
		if st.Approved && st.HasVeteran() && slices.Contains(veteranIDs, st.VeteranID) {
			out = append(out, st)
		}
	}
	return out, nil
}
