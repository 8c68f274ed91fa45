package catalog

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ storyIndex = &storyIndexMock{}

type storyIndexMock struct {
	StoriesForVeteransFunc func(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error)

	calls struct {
		StoriesForVeterans []struct {
			Ctx        context.Context
			VeteranIDs []string
		}
	}
	lockStoriesForVeterans sync.RWMutex
}

func (mock *storyIndexMock) StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error) {
	if mock.StoriesForVeteransFunc == nil {
		panic("storyIndexMock.StoriesForVeteransFunc: method is nil but storyIndex.StoriesForVeterans was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VeteranIDs []string
	}{Ctx: ctx, VeteranIDs: veteranIDs}
	mock.lockStoriesForVeterans.Lock()
	mock.calls.StoriesForVeterans = append(mock.calls.StoriesForVeterans, callInfo)
	mock.lockStoriesForVeterans.Unlock()
	return mock.StoriesForVeteransFunc(ctx, veteranIDs)
}

func (mock *storyIndexMock) StoriesForVeteransCalls() []struct {
	Ctx        context.Context
	VeteranIDs []string
} {
	mock.lockStoriesForVeterans.RLock()
	calls := mock.calls.StoriesForVeterans
	mock.lockStoriesForVeterans.RUnlock()
	return calls
}
