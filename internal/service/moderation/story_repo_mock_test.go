package moderation

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ storyRepo = &storyRepoMock{}

type storyRepoMock struct {
	ApproveFunc                   func(ctx context.Context, id string) error
	CreateFunc                    func(ctx context.Context, story *domain.Story) (*domain.Story, error)
	DeleteFunc                    func(ctx context.Context, id string) error
	GetByIDFunc                   func(ctx context.Context, id string) (*domain.Story, error)
	ListByApprovalFunc            func(ctx context.Context, approved bool) ([]domain.Story, error)
	ListPublishedByVeteranIDsFunc func(ctx context.Context, veteranIDs []string) ([]domain.Story, error)

	calls struct {
		Approve []struct {
			Ctx context.Context
			Id  string
		}
		Create []struct {
			Ctx   context.Context
			Story *domain.Story
		}
		Delete []struct {
			Ctx context.Context
			Id  string
		}
		GetByID []struct {
			Ctx context.Context
			Id  string
		}
		ListByApproval []struct {
			Ctx      context.Context
			Approved bool
		}
		ListPublishedByVeteranIDs []struct {
			Ctx        context.Context
			VeteranIDs []string
		}
	}
	lockApprove                   sync.RWMutex
	lockCreate                    sync.RWMutex
	lockDelete                    sync.RWMutex
	lockGetByID                   sync.RWMutex
	lockListByApproval            sync.RWMutex
	lockListPublishedByVeteranIDs sync.RWMutex
}

func (mock *storyRepoMock) Approve(ctx context.Context, id string) error {
	if mock.ApproveFunc == nil {
		panic("storyRepoMock.ApproveFunc: method is nil but storyRepo.Approve was just called")
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

func (mock *storyRepoMock) ApproveCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *storyRepoMock) Create(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	if mock.CreateFunc == nil {
		panic("storyRepoMock.CreateFunc: method is nil but storyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Story *domain.Story
	}{Ctx: ctx, Story: story}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, story)
}

func (mock *storyRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Story *domain.Story
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *storyRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("storyRepoMock.DeleteFunc: method is nil but storyRepo.Delete was just called")
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

func (mock *storyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *storyRepoMock) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	if mock.GetByIDFunc == nil {
		panic("storyRepoMock.GetByIDFunc: method is nil but storyRepo.GetByID was just called")
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

func (mock *storyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *storyRepoMock) ListByApproval(ctx context.Context, approved bool) ([]domain.Story, error) {
	if mock.ListByApprovalFunc == nil {
		panic("storyRepoMock.ListByApprovalFunc: method is nil but storyRepo.ListByApproval was just called")
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

func (mock *storyRepoMock) ListByApprovalCalls() []struct {
	Ctx      context.Context
	Approved bool
} {
	mock.lockListByApproval.RLock()
	calls := mock.calls.ListByApproval
	mock.lockListByApproval.RUnlock()
	return calls
}

func (mock *storyRepoMock) ListPublishedByVeteranIDs(ctx context.Context, veteranIDs []string) ([]domain.Story, error) {
	if mock.ListPublishedByVeteranIDsFunc == nil {
		panic("storyRepoMock.ListPublishedByVeteranIDsFunc: method is nil but storyRepo.ListPublishedByVeteranIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VeteranIDs []string
	}{Ctx: ctx, VeteranIDs: veteranIDs}
	mock.lockListPublishedByVeteranIDs.Lock()
	mock.calls.ListPublishedByVeteranIDs = append(mock.calls.ListPublishedByVeteranIDs, callInfo)
	mock.lockListPublishedByVeteranIDs.Unlock()
	return mock.ListPublishedByVeteranIDsFunc(ctx, veteranIDs)
}

func (mock *storyRepoMock) ListPublishedByVeteranIDsCalls() []struct {
	Ctx        context.Context
	VeteranIDs []string
} {
	mock.lockListPublishedByVeteranIDs.RLock()
	calls := mock.calls.ListPublishedByVeteranIDs
	mock.lockListPublishedByVeteranIDs.RUnlock()
	return calls
}
