package identity

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ identityRepo = &identityRepoMock{}

type identityRepoMock struct {
	CreateFunc          func(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.Identity, error)
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Identity, error)
	SetPasswordHashFunc func(ctx context.Context, id string, hash string) error

	calls struct {
		Create []struct {
			Ctx      context.Context
			Identity *domain.Identity
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			Id  string
		}
		SetPasswordHash []struct {
			Ctx  context.Context
			Id   string
			Hash string
		}
	}
	lockCreate          sync.RWMutex
	lockGetByEmail      sync.RWMutex
	lockGetByID         sync.RWMutex
	lockSetPasswordHash sync.RWMutex
}

func (mock *identityRepoMock) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if mock.CreateFunc == nil {
		panic("identityRepoMock.CreateFunc: method is nil but identityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity *domain.Identity
	}{Ctx: ctx, Identity: identity}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, identity)
}

func (mock *identityRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Identity *domain.Identity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if mock.GetByEmailFunc == nil {
		panic("identityRepoMock.GetByEmailFunc: method is nil but identityRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *identityRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	if mock.GetByIDFunc == nil {
		panic("identityRepoMock.GetByIDFunc: method is nil but identityRepo.GetByID was just called")
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

func (mock *identityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *identityRepoMock) SetPasswordHash(ctx context.Context, id string, hash string) error {
	if mock.SetPasswordHashFunc == nil {
		panic("identityRepoMock.SetPasswordHashFunc: method is nil but identityRepo.SetPasswordHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   string
		Hash string
	}{Ctx: ctx, Id: id, Hash: hash}
	mock.lockSetPasswordHash.Lock()
	mock.calls.SetPasswordHash = append(mock.calls.SetPasswordHash, callInfo)
	mock.lockSetPasswordHash.Unlock()
	return mock.SetPasswordHashFunc(ctx, id, hash)
}

func (mock *identityRepoMock) SetPasswordHashCalls() []struct {
	Ctx  context.Context
	Id   string
	Hash string
} {
	mock.lockSetPasswordHash.RLock()
	calls := mock.calls.SetPasswordHash
	mock.lockSetPasswordHash.RUnlock()
	return calls
}
