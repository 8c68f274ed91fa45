package moderation

import (
	"sync"
)

var _ transitionRecorder = &transitionRecorderMock{}

type transitionRecorderMock struct {
	RecordTransitionFunc func(entity string, action string)

	calls struct {
		RecordTransition []struct {
			Entity string
			Action string
		}
	}
	lockRecordTransition sync.RWMutex
}

func (mock *transitionRecorderMock) RecordTransition(entity string, action string) {
	if mock.RecordTransitionFunc == nil {
		panic("transitionRecorderMock.RecordTransitionFunc: method is nil but transitionRecorder.RecordTransition was just called")
	}
	callInfo := struct {
		Entity string
		Action string
	}{Entity: entity, Action: action}
	mock.lockRecordTransition.Lock()
	mock.calls.RecordTransition = append(mock.calls.RecordTransition, callInfo)
	mock.lockRecordTransition.Unlock()
	mock.RecordTransitionFunc(entity, action)
}

func (mock *transitionRecorderMock) RecordTransitionCalls() []struct {
	Entity string
	Action string
} {
	mock.lockRecordTransition.RLock()
	calls := mock.calls.RecordTransition
	mock.lockRecordTransition.RUnlock()
	return calls
}
