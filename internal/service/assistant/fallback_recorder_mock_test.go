package assistant

import (
	"sync"
)

var _ fallbackRecorder = &fallbackRecorderMock{}

type fallbackRecorderMock struct {
	RecordAIFallbackFunc func(operation string)

	calls struct {
		RecordAIFallback []struct {
			Operation string
		}
	}
	lockRecordAIFallback sync.RWMutex
}

func (mock *fallbackRecorderMock) RecordAIFallback(operation string) {
	if mock.RecordAIFallbackFunc == nil {
		panic("fallbackRecorderMock.RecordAIFallbackFunc: method is nil but fallbackRecorder.RecordAIFallback was just called")
	}
	callInfo := struct{ Operation string }{Operation: operation}
	mock.lockRecordAIFallback.Lock()
	mock.calls.RecordAIFallback = append(mock.calls.RecordAIFallback, callInfo)
	mock.lockRecordAIFallback.Unlock()
	mock.RecordAIFallbackFunc(operation)
}

func (mock *fallbackRecorderMock) RecordAIFallbackCalls() []struct{ Operation string } {
	mock.lockRecordAIFallback.RLock()
	calls := mock.calls.RecordAIFallback
	mock.lockRecordAIFallback.RUnlock()
	return calls
}
