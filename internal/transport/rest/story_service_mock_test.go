package rest

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/moderation"
	"sync"
)

var _ storyService = &storyServiceMock{}

type storyServiceMock struct {
	ApproveStoryFunc       func(ctx context.Context, id string) error
	FeaturedStoryFunc      func(ctx context.Context) (*domain.Story, error)
	PendingStoriesFunc     func(ctx context.Context) ([]domain.Story, error)
	PreviouslyFeaturedFunc func(ctx context.Context) ([]domain.Story, error)
	PublishedStoriesFunc   func(ctx context.Context) ([]domain.Story, error)
	RejectStoryFunc        func(ctx context.Context, id string) error
	SubmitStoryFunc        func(ctx context.Context, input moderation.SubmitStoryInput) (*domain.Story, error)

	calls struct {
		ApproveStory []struct {
			Ctx context.Context
			Id  string
		}
		FeaturedStory []struct {
			Ctx context.Context
		}
		PendingStories []struct {
			Ctx context.Context
		}
		PreviouslyFeatured []struct {
			Ctx context.Context
		}
		PublishedStories []struct {
			Ctx context.Context
		}
		RejectStory []struct {
			Ctx context.Context
			Id  string
		}
		SubmitStory []struct {
			Ctx   context.Context
			Input moderation.SubmitStoryInput
		}
	}
	lockApproveStory       sync.RWMutex
	lockFeaturedStory      sync.RWMutex
	lockPendingStories     sync.RWMutex
	lockPreviouslyFeatured sync.RWMutex
	lockPublishedStories   sync.RWMutex
	lockRejectStory        sync.RWMutex
	lockSubmitStory        sync.RWMutex
}

func (mock *storyServiceMock) ApproveStory(ctx context.Context, id string) error {
	if mock.ApproveStoryFunc == nil {
		panic("storyServiceMock.ApproveStoryFunc: method is nil but storyService.ApproveStory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockApproveStory.Lock()
	mock.calls.ApproveStory = append(mock.calls.ApproveStory, callInfo)
	mock.lockApproveStory.Unlock()
	return mock.ApproveStoryFunc(ctx, id)
}

func (mock *storyServiceMock) ApproveStoryCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockApproveStory.RLock()
	calls := mock.calls.ApproveStory
	mock.lockApproveStory.RUnlock()
	return calls
}

func (mock *storyServiceMock) FeaturedStory(ctx context.Context) (*domain.Story, error) {
	if mock.FeaturedStoryFunc == nil {
		panic("storyServiceMock.FeaturedStoryFunc: method is nil but storyService.FeaturedStory was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockFeaturedStory.Lock()
	mock.calls.FeaturedStory = append(mock.calls.FeaturedStory, callInfo)
	mock.lockFeaturedStory.Unlock()
	return mock.FeaturedStoryFunc(ctx)
}

func (mock *storyServiceMock) FeaturedStoryCalls() []struct{ Ctx context.Context } {
	mock.lockFeaturedStory.RLock()
	calls := mock.calls.FeaturedStory
	mock.lockFeaturedStory.RUnlock()
	return calls
}

func (mock *storyServiceMock) PendingStories(ctx context.Context) ([]domain.Story, error) {
	if mock.PendingStoriesFunc == nil {
		panic("storyServiceMock.PendingStoriesFunc: method is nil but storyService.PendingStories was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockPendingStories.Lock()
	mock.calls.PendingStories = append(mock.calls.PendingStories, callInfo)
	mock.lockPendingStories.Unlock()
	return mock.PendingStoriesFunc(ctx)
}

func (mock *storyServiceMock) PendingStoriesCalls() []struct{ Ctx context.Context } {
	mock.lockPendingStories.RLock()
	calls := mock.calls.PendingStories
	mock.lockPendingStories.RUnlock()
	return calls
}

func (mock *storyServiceMock) PreviouslyFeatured(ctx context.Context) ([]domain.Story, error) {
	if mock.PreviouslyFeaturedFunc == nil {
		panic("storyServiceMock.PreviouslyFeaturedFunc: method is nil but storyService.PreviouslyFeatured was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockPreviouslyFeatured.Lock()
	mock.calls.PreviouslyFeatured = append(mock.calls.PreviouslyFeatured, callInfo)
	mock.lockPreviouslyFeatured.Unlock()
	return mock.PreviouslyFeaturedFunc(ctx)
}

func (mock *storyServiceMock) PreviouslyFeaturedCalls() []struct{ Ctx context.Context } {
	mock.lockPreviouslyFeatured.RLock()
	calls := mock.calls.PreviouslyFeatured
	mock.lockPreviouslyFeatured.RUnlock()
	return calls
}

func (mock *storyServiceMock) PublishedStories(ctx context.Context) ([]domain.Story, error) {
	if mock.PublishedStoriesFunc == nil {
		panic("storyServiceMock.PublishedStoriesFunc: method is nil but storyService.PublishedStories was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockPublishedStories.Lock()
	mock.calls.PublishedStories = append(mock.calls.PublishedStories, callInfo)
	mock.lockPublishedStories.Unlock()
	return mock.PublishedStoriesFunc(ctx)
}

func (mock *storyServiceMock) PublishedStoriesCalls() []struct{ Ctx context.Context } {
	mock.lockPublishedStories.RLock()
	calls := mock.calls.PublishedStories
	mock.lockPublishedStories.RUnlock()
	return calls
}

func (mock *storyServiceMock) RejectStory(ctx context.Context, id string) error {
	if mock.RejectStoryFunc == nil {
		panic("storyServiceMock.RejectStoryFunc: method is nil but storyService.RejectStory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockRejectStory.Lock()
	mock.calls.RejectStory = append(mock.calls.RejectStory, callInfo)
	mock.lockRejectStory.Unlock()
	return mock.RejectStoryFunc(ctx, id)
}

func (mock *storyServiceMock) RejectStoryCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockRejectStory.RLock()
	calls := mock.calls.RejectStory
	mock.lockRejectStory.RUnlock()
	return calls
}

func (mock *storyServiceMock) SubmitStory(ctx context.Context, input moderation.SubmitStoryInput) (*domain.Story, error) {
	if mock.SubmitStoryFunc == nil {
		panic("storyServiceMock.SubmitStoryFunc: method is nil but storyService.SubmitStory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.SubmitStoryInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitStory.Lock()
	mock.calls.SubmitStory = append(mock.calls.SubmitStory, callInfo)
	mock.lockSubmitStory.Unlock()
	return mock.SubmitStoryFunc(ctx, input)
}

func (mock *storyServiceMock) SubmitStoryCalls() []struct {
	Ctx   context.Context
	Input moderation.SubmitStoryInput
} {
	mock.lockSubmitStory.RLock()
	calls := mock.calls.SubmitStory
	mock.lockSubmitStory.RUnlock()
	return calls
}
