package moderation

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ contributionRepo = &contributionRepoMock{}

type contributionRepoMock struct {
	ApproveFunc        func(ctx context.Context, id string) error
	CreateFunc         func(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
	DeleteFunc         func(ctx context.Context, id string) error
	ListFunc           func(ctx context.Context) ([]domain.Contribution, error)
	ListByApprovalFunc func(ctx context.Context, approved bool) ([]domain.Contribution, error)

	calls struct {
		Approve []struct {
			Ctx context.Context
			Id  string
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Contribution
		}
		Delete []struct {
			Ctx context.Context
			Id  string
		}
		List []struct {
			Ctx context.Context
		}
		ListByApproval []struct {
			Ctx      context.Context
			Approved bool
		}
	}
	lockApprove        sync.RWMutex
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockList           sync.RWMutex
	lockListByApproval sync.RWMutex
}

func (mock *contributionRepoMock) Approve(ctx context.Context, id string) error {
	if mock.ApproveFunc == nil {
		panic("contributionRepoMock.ApproveFunc: method is nil but contributionRepo.Approve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, id)
}

func (mock *contributionRepoMock) ApproveCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *contributionRepoMock) Create(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	if mock.CreateFunc == nil {
		panic("contributionRepoMock.CreateFunc: method is nil but contributionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Contribution
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contributionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Contribution
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contributionRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("contributionRepoMock.DeleteFunc: method is nil but contributionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *contributionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *contributionRepoMock) List(ctx context.Context) ([]domain.Contribution, error) {
	if mock.ListFunc == nil {
		panic("contributionRepoMock.ListFunc: method is nil but contributionRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *contributionRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *contributionRepoMock) ListByApproval(ctx context.Context, approved bool) ([]domain.Contribution, error) {
	if mock.ListByApprovalFunc == nil {
		panic("contributionRepoMock.ListByApprovalFunc: method is nil but contributionRepo.ListByApproval was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Approved bool
	}{Ctx: ctx, Approved: approved}
	mock.lockListByApproval.Lock()
	mock.calls.ListByApproval = append(mock.calls.ListByApproval, callInfo)
	mock.lockListByApproval.Unlock()
	return mock.ListByApprovalFunc(ctx, approved)
}

func (mock *contributionRepoMock) ListByApprovalCalls() []struct {
	Ctx      context.Context
	Approved bool
} {
	mock.lockListByApproval.RLock()
	calls := mock.calls.ListByApproval
	mock.lockListByApproval.RUnlock()
	return calls
}
