package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// SubmitStory records a new story in the pending state.
// The caller must be a non-visitor identity.
func (s *Service) SubmitStory(ctx context.Context, input SubmitStoryInput) (*domain.Story, error) {
	c, err := requireSubmitter(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	veteranName := input.VeteranName
	if input.VeteranID != "" {
		v, err := s.veterans.GetVeteran(ctx, input.VeteranID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("veteran_id", "unknown veteran")
			}
			return nil, fmt.Errorf("moderation.SubmitStory get veteran: %w", err)
		}
		veteranName = v.Name
	}

	now := s.now()
	date := input.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	story, err := s.stories.Create(ctx, &domain.Story{
		ID:                  s.newID(),
		VeteranID:           input.VeteranID,
		VeteranName:         veteranName,
		Title:               input.Title,
		Description:         input.Description,
		Kind:                input.Kind,
		MediaURL:            input.MediaURL,
		Location:            input.Location,
		Date:                date,
		Approved:            false,
		AuthorizedToPublish: true,
		SubmittedBy:         c.id,
		CreatedAt:           now,
	})
	if err != nil {
		return nil, fmt.Errorf("moderation.SubmitStory: %w", err)
	}

	s.recorder.RecordTransition(entityStory, actionSubmit)
	s.log.InfoContext(ctx, "story submitted",
		slog.String("story_id", story.ID),
		slog.String("kind", story.Kind.String()),
		slog.String("submitted_by", c.id))

	return story, nil
}

// ApproveStory publishes a story. Approving a published story is a no-op.
func (s *Service) ApproveStory(ctx context.Context, id string) error {
	c, err := s.requireApprover(ctx)
	if err != nil {
		return err
	}

	if err := s.stories.Approve(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("moderation.ApproveStory: %w", err)
	}

	s.recorder.RecordTransition(entityStory, actionApprove)
	s.log.InfoContext(ctx, "story approved",
		slog.String("story_id", id),
		slog.String("approved_by", c.id))

	return nil
}

// RejectStory permanently removes a story, pending or published. Admin only;
// a denied caller causes no mutation.
func (s *Service) RejectStory(ctx context.Context, id string) error {
	c, err := requireRemover(ctx)
	if err != nil {
		return err
	}

	if err := s.stories.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("moderation.RejectStory: %w", err)
	}

	s.recorder.RecordTransition(entityStory, actionReject)
	s.log.InfoContext(ctx, "story removed",
		slog.String("story_id", id),
		slog.String("removed_by", c.id))

	return nil
}
