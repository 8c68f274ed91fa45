// Package stub provides no-op AI collaborators used when no provider is configured.
package stub

import (
	"context"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Chat returns empty replies, which the assistant turns into its fixed fallback.
type Chat struct{}

func NewChat() *Chat { return &Chat{} }

func (Chat) Complete(context.Context, domain.CompletionRequest) (string, error) { return "", nil }

func (Chat) AnalyzeImage(context.Context, domain.ImageAnalysisRequest) (string, error) {
	return "", nil
}

// Speech never produces audio.
type Speech struct{}

func NewSpeech() *Speech { return &Speech{} }

func (Speech) Synthesize(context.Context, string) ([]byte, error) { return nil, nil }
