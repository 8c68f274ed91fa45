package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const (
	opChat   = "chat"
	opVision = "vision"
	opSpeech = "speech"
)

// Chat answers a visitor message given the prior conversation lines.
func (s *Service) Chat(ctx context.Context, history []string, message string) string {
	reply, err := s.chat.Complete(ctx, domain.CompletionRequest{
		System:      chatSystemPrompt,
		Prompt:      chatPrompt(history, message),
		Temperature: s.cfg.ChatTemperature,
	})
	if err != nil {
		s.recorder.RecordAIFallback(opChat)
		s.log.ErrorContext(ctx, "chat completion failed", slog.String("error", err.Error()))
		return ChatErrorReply
	}
	if strings.TrimSpace(reply) == "" {
		s.recorder.RecordAIFallback(opChat)
		return ChatEmptyReply
	}
	return reply
}

// SynthesizeSpeech returns PCM audio for text, or nil when none could be produced.
func (s *Service) SynthesizeSpeech(ctx context.Context, text string) []byte {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	audio, err := s.speech.Synthesize(ctx, text)
	if err != nil {
		s.recorder.RecordAIFallback(opSpeech)
		s.log.ErrorContext(ctx, "speech synthesis failed", slog.String("error", err.Error()))
		return nil
	}
	if len(audio) == 0 {
		return nil
	}
	return audio
}

// AnalyzeImage returns a historical appraisal of the image.
func (s *Service) AnalyzeImage(ctx context.Context, image []byte, mimeType string) string {
	reply, err := s.vision.AnalyzeImage(ctx, domain.ImageAnalysisRequest{
		System:      visionSystemPrompt,
		Prompt:      visionPrompt,
		Image:       image,
		MIMEType:    mimeType,
		Temperature: s.cfg.VisionTemperature,
	})
	if err != nil {
		s.recorder.RecordAIFallback(opVision)
		s.log.ErrorContext(ctx, "image analysis failed",
			slog.String("mime_type", mimeType),
			slog.String("error", err.Error()))
		return VisionErrorReply
	}
	if strings.TrimSpace(reply) == "" {
		s.recorder.RecordAIFallback(opVision)
		return VisionEmptyReply
	}
	return reply
}
