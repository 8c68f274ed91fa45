package rest

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/identity"
	"sync"
)

var _ identityService = &identityServiceMock{}

type identityServiceMock struct {
	ClearSessionFunc func(ctx context.Context)
	CurrentFunc      func() *domain.Identity
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Identity, error)
	LoginFunc        func(ctx context.Context, input identity.ResolveInput) (*identity.LoginResult, error)

	calls struct {
		ClearSession []struct {
			Ctx context.Context
		}
		Current []struct{}
		GetByID []struct {
			Ctx context.Context
			Id  string
		}
		Login []struct {
			Ctx   context.Context
			Input identity.ResolveInput
		}
	}
	lockClearSession sync.RWMutex
	lockCurrent      sync.RWMutex
	lockGetByID      sync.RWMutex
	lockLogin        sync.RWMutex
}

func (mock *identityServiceMock) ClearSession(ctx context.Context) {
	if mock.ClearSessionFunc == nil {
		panic("identityServiceMock.ClearSessionFunc: method is nil but identityService.ClearSession was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockClearSession.Lock()
	mock.calls.ClearSession = append(mock.calls.ClearSession, callInfo)
	mock.lockClearSession.Unlock()
	mock.ClearSessionFunc(ctx)
}

func (mock *identityServiceMock) ClearSessionCalls() []struct{ Ctx context.Context } {
	mock.lockClearSession.RLock()
	calls := mock.calls.ClearSession
	mock.lockClearSession.RUnlock()
	return calls
}

func (mock *identityServiceMock) Current() *domain.Identity {
	if mock.CurrentFunc == nil {
		panic("identityServiceMock.CurrentFunc: method is nil but identityService.Current was just called")
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, struct{}{})
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc()
}

func (mock *identityServiceMock) CurrentCalls() []struct{} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *identityServiceMock) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	if mock.GetByIDFunc == nil {
		panic("identityServiceMock.GetByIDFunc: method is nil but identityService.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *identityServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *identityServiceMock) Login(ctx context.Context, input identity.ResolveInput) (*identity.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("identityServiceMock.LoginFunc: method is nil but identityService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input identity.ResolveInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *identityServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input identity.ResolveInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}
