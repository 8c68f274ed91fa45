package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/pkg/ctxutil"
)

// SubmitContribution records a pending contribution. Anonymous callers are allowed.
func (s *Service) SubmitContribution(ctx context.Context, input SubmitContributionInput) (*domain.Contribution, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.contributions.Create(ctx, &domain.Contribution{
		ID:          s.newID(),
		Name:        input.Name,
		Email:       input.Email,
		Narrative:   input.Narrative,
		MediaURL:    input.MediaURL,
		Approved:    false,
		SubmittedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("moderation.SubmitContribution: %w", err)
	}

	submitter, _ := ctxutil.IdentityIDFromCtx(ctx)
	s.recorder.RecordTransition(entityContribution, actionSubmit)
	s.log.InfoContext(ctx, "contribution submitted",
		slog.String("contribution_id", created.ID),
		slog.String("submitted_by", submitter))

	return created, nil
}

// ApproveContribution publishes a contribution. Idempotent.
func (s *Service) ApproveContribution(ctx context.Context, id string) error {
	c, err := s.requireApprover(ctx)
	if err != nil {
		return err
	}

	if err := s.contributions.Approve(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("moderation.ApproveContribution: %w", err)
	}

	s.recorder.RecordTransition(entityContribution, actionApprove)
	s.log.InfoContext(ctx, "contribution approved",
		slog.String("contribution_id", id),
		slog.String("approved_by", c.id))

	return nil
}

// DeleteContribution permanently removes a contribution. Admin only.
func (s *Service) DeleteContribution(ctx context.Context, id string) error {
	c, err := requireRemover(ctx)
	if err != nil {
		return err
	}

	if err := s.contributions.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("moderation.DeleteContribution: %w", err)
	}

	s.recorder.RecordTransition(entityContribution, actionReject)
	s.log.InfoContext(ctx, "contribution removed",
		slog.String("contribution_id", id),
		slog.String("removed_by", c.id))

	return nil
}

// PendingContributions returns unapproved contributions in submission order.
func (s *Service) PendingContributions(ctx context.Context) ([]domain.Contribution, error) {
	list, err := s.contributions.ListByApproval(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("moderation.PendingContributions: %w", err)
	}
	return list, nil
}

// PublishedContributions returns approved contributions in submission order.
func (s *Service) PublishedContributions(ctx context.Context) ([]domain.Contribution, error) {
	list, err := s.contributions.ListByApproval(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("moderation.PublishedContributions: %w", err)
	}
	return list, nil
}

// Contributions returns every contribution regardless of state.
func (s *Service) Contributions(ctx context.Context) ([]domain.Contribution, error) {
	list, err := s.contributions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("moderation.Contributions: %w", err)
	}
	return list, nil
}
