package rest

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ veteranStories = &veteranStoriesMock{}

type veteranStoriesMock struct {
	StoriesForVeteransFunc func(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error)

	calls struct {
		StoriesForVeterans []struct {
			Ctx        context.Context
			VeteranIDs []string
		}
	}
	lockStoriesForVeterans sync.RWMutex
}

func (mock *veteranStoriesMock) StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error) {
	if mock.StoriesForVeteransFunc == nil {
		panic("veteranStoriesMock.StoriesForVeteransFunc: method is nil but veteranStories.StoriesForVeterans was just called")
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

func (mock *veteranStoriesMock) StoriesForVeteransCalls() []struct {
	Ctx        context.Context
	VeteranIDs []string
} {
	mock.lockStoriesForVeterans.RLock()
	calls := mock.calls.StoriesForVeterans
	mock.lockStoriesForVeterans.RUnlock()
	return calls
}
