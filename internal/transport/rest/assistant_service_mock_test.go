package rest

import (
	"context"
	"sync"
)

var _ assistantService = &assistantServiceMock{}

type assistantServiceMock struct {
	AnalyzeImageFunc      func(ctx context.Context, image []byte, mimeType string) string
	ChatFunc              func(ctx context.Context, history []string, message string) string
	FeaturedNarrationFunc func(ctx context.Context) ([]byte, error)
	SynthesizeSpeechFunc  func(ctx context.Context, text string) []byte
	VehicleNarrationFunc  func(ctx context.Context, id string) ([]byte, error)
	VeteranNarrationFunc  func(ctx context.Context, id string) ([]byte, error)
	WeaponNarrationFunc   func(ctx context.Context, id string) ([]byte, error)

	calls struct {
		AnalyzeImage []struct {
			Ctx      context.Context
			Image    []byte
			MimeType string
		}
		Chat []struct {
			Ctx     context.Context
			History []string
			Message string
		}
		FeaturedNarration []struct {
			Ctx context.Context
		}
		SynthesizeSpeech []struct {
			Ctx  context.Context
			Text string
		}
		VehicleNarration []struct {
			Ctx context.Context
			Id  string
		}
		VeteranNarration []struct {
			Ctx context.Context
			Id  string
		}
		WeaponNarration []struct {
			Ctx context.Context
			Id  string
		}
	}
	lockAnalyzeImage      sync.RWMutex
	lockChat              sync.RWMutex
	lockFeaturedNarration sync.RWMutex
	lockSynthesizeSpeech  sync.RWMutex
	lockVehicleNarration  sync.RWMutex
	lockVeteranNarration  sync.RWMutex
	lockWeaponNarration   sync.RWMutex
}

func (mock *assistantServiceMock) AnalyzeImage(ctx context.Context, image []byte, mimeType string) string {
	if mock.AnalyzeImageFunc == nil {
		panic("assistantServiceMock.AnalyzeImageFunc: method is nil but assistantService.AnalyzeImage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Image    []byte
		MimeType string
	}{Ctx: ctx, Image: image, MimeType: mimeType}
	mock.lockAnalyzeImage.Lock()
	mock.calls.AnalyzeImage = append(mock.calls.AnalyzeImage, callInfo)
	mock.lockAnalyzeImage.Unlock()
	return mock.AnalyzeImageFunc(ctx, image, mimeType)
}

func (mock *assistantServiceMock) AnalyzeImageCalls() []struct {
	Ctx      context.Context
	Image    []byte
	MimeType string
} {
	mock.lockAnalyzeImage.RLock()
	calls := mock.calls.AnalyzeImage
	mock.lockAnalyzeImage.RUnlock()
	return calls
}

func (mock *assistantServiceMock) Chat(ctx context.Context, history []string, message string) string {
	if mock.ChatFunc == nil {
		panic("assistantServiceMock.ChatFunc: method is nil but assistantService.Chat was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		History []string
		Message string
	}{Ctx: ctx, History: history, Message: message}
	mock.lockChat.Lock()
	mock.calls.Chat = append(mock.calls.Chat, callInfo)
	mock.lockChat.Unlock()
	return mock.ChatFunc(ctx, history, message)
}

func (mock *assistantServiceMock) ChatCalls() []struct {
	Ctx     context.Context
	History []string
	Message string
} {
	mock.lockChat.RLock()
	calls := mock.calls.Chat
	mock.lockChat.RUnlock()
	return calls
}

func (mock *assistantServiceMock) FeaturedNarration(ctx context.Context) ([]byte, error) {
	if mock.FeaturedNarrationFunc == nil {
		panic("assistantServiceMock.FeaturedNarrationFunc: method is nil but assistantService.FeaturedNarration was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockFeaturedNarration.Lock()
	mock.calls.FeaturedNarration = append(mock.calls.FeaturedNarration, callInfo)
	mock.lockFeaturedNarration.Unlock()
	return mock.FeaturedNarrationFunc(ctx)
}

func (mock *assistantServiceMock) FeaturedNarrationCalls() []struct{ Ctx context.Context } {
	mock.lockFeaturedNarration.RLock()
	calls := mock.calls.FeaturedNarration
	mock.lockFeaturedNarration.RUnlock()
	return calls
}

func (mock *assistantServiceMock) SynthesizeSpeech(ctx context.Context, text string) []byte {
	if mock.SynthesizeSpeechFunc == nil {
		panic("assistantServiceMock.SynthesizeSpeechFunc: method is nil but assistantService.SynthesizeSpeech was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockSynthesizeSpeech.Lock()
	mock.calls.SynthesizeSpeech = append(mock.calls.SynthesizeSpeech, callInfo)
	mock.lockSynthesizeSpeech.Unlock()
	return mock.SynthesizeSpeechFunc(ctx, text)
}

func (mock *assistantServiceMock) SynthesizeSpeechCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockSynthesizeSpeech.RLock()
	calls := mock.calls.SynthesizeSpeech
	mock.lockSynthesizeSpeech.RUnlock()
	return calls
}

func (mock *assistantServiceMock) VehicleNarration(ctx context.Context, id string) ([]byte, error) {
	if mock.VehicleNarrationFunc == nil {
		panic("assistantServiceMock.VehicleNarrationFunc: method is nil but assistantService.VehicleNarration was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockVehicleNarration.Lock()
	mock.calls.VehicleNarration = append(mock.calls.VehicleNarration, callInfo)
	mock.lockVehicleNarration.Unlock()
	return mock.VehicleNarrationFunc(ctx, id)
}

func (mock *assistantServiceMock) VehicleNarrationCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockVehicleNarration.RLock()
	calls := mock.calls.VehicleNarration
	mock.lockVehicleNarration.RUnlock()
	return calls
}

func (mock *assistantServiceMock) VeteranNarration(ctx context.Context, id string) ([]byte, error) {
	if mock.VeteranNarrationFunc == nil {
		panic("assistantServiceMock.VeteranNarrationFunc: method is nil but assistantService.VeteranNarration was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockVeteranNarration.Lock()
	mock.calls.VeteranNarration = append(mock.calls.VeteranNarration, callInfo)
	mock.lockVeteranNarration.Unlock()
	return mock.VeteranNarrationFunc(ctx, id)
}

func (mock *assistantServiceMock) VeteranNarrationCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockVeteranNarration.RLock()
	calls := mock.calls.VeteranNarration
	mock.lockVeteranNarration.RUnlock()
	return calls
}

func (mock *assistantServiceMock) WeaponNarration(ctx context.Context, id string) ([]byte, error) {
	if mock.WeaponNarrationFunc == nil {
		panic("assistantServiceMock.WeaponNarrationFunc: method is nil but assistantService.WeaponNarration was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockWeaponNarration.Lock()
	mock.calls.WeaponNarration = append(mock.calls.WeaponNarration, callInfo)
	mock.lockWeaponNarration.Unlock()
	return mock.WeaponNarrationFunc(ctx, id)
}

func (mock *assistantServiceMock) WeaponNarrationCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockWeaponNarration.RLock()
	calls := mock.calls.WeaponNarration
	mock.lockWeaponNarration.RUnlock()
	return calls
}
