package moderation

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ veteranLookup = &veteranLookupMock{}

type veteranLookupMock struct {
	GetVeteranFunc func(ctx context.Context, id string) (*domain.Veteran, error)

	calls struct {
		GetVeteran []struct {
			Ctx context.Context
			Id  string
		}
	}
	lockGetVeteran sync.RWMutex
}

func (mock *veteranLookupMock) GetVeteran(ctx context.Context, id string) (*domain.Veteran, error) {
	if mock.GetVeteranFunc == nil {
		panic("veteranLookupMock.GetVeteranFunc: method is nil but veteranLookup.GetVeteran was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetVeteran.Lock()
	mock.calls.GetVeteran = append(mock.calls.GetVeteran, callInfo)
	mock.lockGetVeteran.Unlock()
	return mock.GetVeteranFunc(ctx, id)
}

func (mock *veteranLookupMock) GetVeteranCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetVeteran.RLock()
	calls := mock.calls.GetVeteran
	mock.lockGetVeteran.RUnlock()
	return calls
}
