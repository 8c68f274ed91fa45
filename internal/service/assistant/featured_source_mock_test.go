package assistant

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ featuredSource = &featuredSourceMock{}

type featuredSourceMock struct {
	FeaturedStoryFunc func(ctx context.Context) (*domain.Story, error)

	calls struct {
		FeaturedStory []struct {
			Ctx context.Context
		}
	}
	lockFeaturedStory sync.RWMutex
}

func (mock *featuredSourceMock) FeaturedStory(ctx context.Context) (*domain.Story, error) {
	if mock.FeaturedStoryFunc == nil {
		panic("featuredSourceMock.FeaturedStoryFunc: method is nil but featuredSource.FeaturedStory was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockFeaturedStory.Lock()
	mock.calls.FeaturedStory = append(mock.calls.FeaturedStory, callInfo)
	mock.lockFeaturedStory.Unlock()
	return mock.FeaturedStoryFunc(ctx)
}

func (mock *featuredSourceMock) FeaturedStoryCalls() []struct{ Ctx context.Context } {
	mock.lockFeaturedStory.RLock()
	calls := mock.calls.FeaturedStory
	mock.lockFeaturedStory.RUnlock()
	return calls
}
