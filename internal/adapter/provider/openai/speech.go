// Package openai implements the speech collaborator on the OpenAI audio API.
package openai

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	openaisdk "github.com/sashabaranov/go-openai"
)

// Config selects the speech model and voice.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Voice   string
	Timeout time.Duration
}

// Speech synthesizes raw PCM (16-bit signed little-endian, mono, 24 kHz).
type Speech struct {
	client *openaisdk.Client
	model  string
	voice  string
	log    *slog.Logger
}

// NewSpeech creates a Speech client.
func NewSpeech(cfg Config, logger *slog.Logger) *Speech {
	clientCfg := openaisdk.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Speech{
		client: openaisdk.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		voice:  cfg.Voice,
		log:    logger.With("adapter", "openai_speech"),
	}
}

// Synthesize returns the PCM audio for text.
func (s *Speech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.log.DebugContext(ctx, "speech request", slog.String("model", s.model), slog.Int("chars", len(text)))

	resp, err := s.client.CreateSpeech(ctx, openaisdk.CreateSpeechRequest{
		Model:          openaisdk.SpeechModel(s.model),
		Input:          text,
		Voice:          openaisdk.SpeechVoice(s.voice),
		ResponseFormat: openaisdk.SpeechResponseFormatPcm,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create speech: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai: read speech: %w", err)
	}
	return audio, nil
}
