package moderation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/pkg/ctxutil"
)

//go:generate moq -out story_repo_mock_test.go -pkg moderation . storyRepo
//go:generate moq -out contribution_repo_mock_test.go -pkg moderation . contributionRepo
//go:generate moq -out veteran_lookup_mock_test.go -pkg moderation . veteranLookup
//go:generate moq -out transition_recorder_mock_test.go -pkg moderation . transitionRecorder

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func defaultCfg() config.ModerationConfig {
	return config.ModerationConfig{FeaturedStoryID: "h3", PreviouslyFeaturedLimit: 3}
}

func newTestService(stories storyRepo, contributions contributionRepo, veterans veteranLookup, cfg config.ModerationConfig) (*Service, *transitionRecorderMock) {
	rec := &transitionRecorderMock{RecordTransitionFunc: func(string, string) {}}
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), stories, contributions, veterans, rec, cfg)
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("new-%d", seq)
	}
	svc.now = func() time.Time { return fixedNow }
	return svc, rec
}

func asRole(role domain.Role) context.Context {
	return ctxutil.WithIdentity(context.Background(), string(role)+"-1", string(role))
}

// storyStore is an ordered in-memory storyRepo built on the generated mock.
func storyStore(seed ...domain.Story) *storyRepoMock {
	var mu sync.Mutex
	items := slices.Clone(seed)

	find := func(id string) int {
		return slices.IndexFunc(items, func(s domain.Story) bool { return s.ID == id })
	}

	return &storyRepoMock{
		CreateFunc: func(_ context.Context, st *domain.Story) (*domain.Story, error) {
			mu.Lock()
			defer mu.Unlock()
			items = append(items, *st)
			cp := *st
			return &cp, nil
		},
		GetByIDFunc: func(_ context.Context, id string) (*domain.Story, error) {
			mu.Lock()
			defer mu.Unlock()
			i := find(id)
			if i < 0 {
				return nil, domain.ErrNotFound
			}
			cp := items[i]
			return &cp, nil
		},
		ApproveFunc: func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			i := find(id)
			if i < 0 {
				return domain.ErrNotFound
			}
			items[i].Approved = true
			return nil
		},
		DeleteFunc: func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			i := find(id)
			if i < 0 {
				return domain.ErrNotFound
			}
			items = slices.Delete(items, i, i+1)
			return nil
		},
		ListByApprovalFunc: func(_ context.Context, approved bool) ([]domain.Story, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []domain.Story
			for _, s := range items {
				if s.Approved == approved {
					out = append(out, s)
				}
			}
			return out, nil
		},
		ListPublishedByVeteranIDsFunc: func(_ context.Context, ids []string) ([]domain.Story, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []domain.Story
			for _, s := range items {
				if s.Approved && slices.Contains(ids, s.VeteranID) {
					out = append(out, s)
				}
			}
			return out, nil
		},
	}
}

func contributionStore(seed ...domain.Contribution) *contributionRepoMock {
	var mu sync.Mutex
	items := slices.Clone(seed)

	find := func(id string) int {
		return slices.IndexFunc(items, func(c domain.Contribution) bool { return c.ID == id })
	}

	return &contributionRepoMock{
		CreateFunc: func(_ context.Context, c *domain.Contribution) (*domain.Contribution, error) {
			mu.Lock()
			defer mu.Unlock()
			items = append(items, *c)
			cp := *c
			return &cp, nil
		},
		ApproveFunc: func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			i := find(id)
			if i < 0 {
				return domain.ErrNotFound
			}
			items[i].Approved = true
			return nil
		},
		DeleteFunc: func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			i := find(id)
			if i < 0 {
				return domain.ErrNotFound
			}
			items = slices.Delete(items, i, i+1)
			return nil
		},
		ListFunc: func(context.Context) ([]domain.Contribution, error) {
			mu.Lock()
			defer mu.Unlock()
			return slices.Clone(items), nil
		},
		ListByApprovalFunc: func(_ context.Context, approved bool) ([]domain.Contribution, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []domain.Contribution
			for _, c := range items {
				if c.Approved == approved {
					out = append(out, c)
				}
			}
			return out, nil
		},
	}
}

func veterans(vs ...domain.Veteran) *veteranLookupMock {
	return &veteranLookupMock{
		GetVeteranFunc: func(_ context.Context, id string) (*domain.Veteran, error) {
			for _, v := range vs {
				if v.ID == id {
					cp := v
					return &cp, nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
}

func published(id, veteranID string) domain.Story {
	return domain.Story{ID: id, VeteranID: veteranID, Title: "Story " + id, Kind: domain.StoryKindText, Approved: true, AuthorizedToPublish: true}
}

func pending(id string) domain.Story {
	return domain.Story{ID: id, Title: "Pending " + id, Kind: domain.StoryKindText, AuthorizedToPublish: true}
}

func ids(stories []domain.Story) []string {
	out := make([]string, 0, len(stories))
	for _, s := range stories {
		out = append(out, s.ID)
	}
	return out
}

func validStory() SubmitStoryInput {
	return SubmitStoryInput{Title: "T", Kind: domain.StoryKindText, AuthorizedToPublish: true}
}
