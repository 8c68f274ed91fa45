package assistant

import (
	"context"
	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"sync"
)

var _ catalogLookup = &catalogLookupMock{}

type catalogLookupMock struct {
	GetVehicleFunc func(ctx context.Context, id string) (*domain.Vehicle, error)
	GetVeteranFunc func(ctx context.Context, id string) (*domain.Veteran, error)
	GetWeaponFunc  func(ctx context.Context, id string) (*domain.Weapon, error)

	calls struct {
		GetVehicle []struct {
			Ctx context.Context
			Id  string
		}
		GetVeteran []struct {
			Ctx context.Context
			Id  string
		}
		GetWeapon []struct {
			Ctx context.Context
			Id  string
		}
	}
	lockGetVehicle sync.RWMutex
	lockGetVeteran sync.RWMutex
	lockGetWeapon  sync.RWMutex
}

func (mock *catalogLookupMock) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	if mock.GetVehicleFunc == nil {
		panic("catalogLookupMock.GetVehicleFunc: method is nil but catalogLookup.GetVehicle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetVehicle.Lock()
	mock.calls.GetVehicle = append(mock.calls.GetVehicle, callInfo)
	mock.lockGetVehicle.Unlock()
	return mock.GetVehicleFunc(ctx, id)
}

func (mock *catalogLookupMock) GetVehicleCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetVehicle.RLock()
	calls := mock.calls.GetVehicle
	mock.lockGetVehicle.RUnlock()
	return calls
}

func (mock *catalogLookupMock) GetVeteran(ctx context.Context, id string) (*domain.Veteran, error) {
	if mock.GetVeteranFunc == nil {
		panic("catalogLookupMock.GetVeteranFunc: method is nil but catalogLookup.GetVeteran was just called")
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

func (mock *catalogLookupMock) GetVeteranCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetVeteran.RLock()
	calls := mock.calls.GetVeteran
	mock.lockGetVeteran.RUnlock()
	return calls
}

func (mock *catalogLookupMock) GetWeapon(ctx context.Context, id string) (*domain.Weapon, error) {
	if mock.GetWeaponFunc == nil {
		panic("catalogLookupMock.GetWeaponFunc: method is nil but catalogLookup.GetWeapon was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetWeapon.Lock()
	mock.calls.GetWeapon = append(mock.calls.GetWeapon, callInfo)
	mock.lockGetWeapon.Unlock()
	return mock.GetWeaponFunc(ctx, id)
}

func (mock *catalogLookupMock) GetWeaponCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetWeapon.RLock()
	calls := mock.calls.GetWeapon
	mock.lockGetWeapon.RUnlock()
	return calls
}
