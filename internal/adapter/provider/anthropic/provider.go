// Package anthropic implements the chat and vision collaborators on the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Config selects models and limits.
type Config struct {
	APIKey      string
	BaseURL     string
	ChatModel   string
	VisionModel string
	MaxTokens   int64
	Timeout     time.Duration
}

// Provider answers chat prompts and describes images.
type Provider struct {
	client      anthropicsdk.Client
	chatModel   string
	visionModel string
	maxTokens   int64
	log         *slog.Logger
}

// NewProvider creates a Provider. Retries are disabled; callers degrade on failure.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Provider{
		client:      anthropicsdk.NewClient(opts...),
		chatModel:   cfg.ChatModel,
		visionModel: cfg.VisionModel,
		maxTokens:   cfg.MaxTokens,
		log:         logger.With("adapter", "anthropic"),
	}
}

// Complete sends a single user turn and returns the concatenated text reply.
func (p *Provider) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	p.log.DebugContext(ctx, "anthropic chat request", slog.String("model", p.chatModel))

	msg, err := p.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(p.chatModel),
		MaxTokens:   p.maxTokens,
		System:      []anthropicsdk.TextBlockParam{{Text: req.System}},
		Temperature: anthropicsdk.Float(req.Temperature),
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: chat: %w", err)
	}
	return textOf(msg), nil
}

// AnalyzeImage sends the image inline with the instruction prompt.
func (p *Provider) AnalyzeImage(ctx context.Context, req domain.ImageAnalysisRequest) (string, error) {
	p.log.DebugContext(ctx, "anthropic vision request",
		slog.String("model", p.visionModel),
		slog.String("mime_type", req.MIMEType),
		slog.Int("bytes", len(req.Image)))

	msg, err := p.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(p.visionModel),
		MaxTokens:   p.maxTokens,
		System:      []anthropicsdk.TextBlockParam{{Text: req.System}},
		Temperature: anthropicsdk.Float(req.Temperature),
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(
				anthropicsdk.NewImageBlockBase64(req.MIMEType, base64.StdEncoding.EncodeToString(req.Image)),
				anthropicsdk.NewTextBlock(req.Prompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: vision: %w", err)
	}
	return textOf(msg), nil
}

func textOf(msg *anthropicsdk.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
