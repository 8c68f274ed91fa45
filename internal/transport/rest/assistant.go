package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

type assistantService interface {
	Chat(ctx context.Context, history []string, message string) string
	SynthesizeSpeech(ctx context.Context, text string) []byte
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) string
	VeteranNarration(ctx context.Context, id string) ([]byte, error)
	VehicleNarration(ctx context.Context, id string) ([]byte, error)
	WeaponNarration(ctx context.Context, id string) ([]byte, error)
	FeaturedNarration(ctx context.Context) ([]byte, error)
}

// AssistantHandler serves chat, speech, image analysis and narration.
// Provider failures surface as fallback text or 204, never as 5xx.
type AssistantHandler struct {
	svc           assistantService
	maxImageBytes int64
	log           *slog.Logger
}

func NewAssistantHandler(svc assistantService, maxImageBytes int64, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, maxImageBytes: maxImageBytes, log: logger.With("handler", "assistant")}
}

type chatRequest struct {
	History []string `json:"history"`
	Message string   `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type speechRequest struct {
	Text string `json:"text"`
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

// Chat handles POST /assistant/chat.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: h.svc.Chat(r.Context(), req.History, req.Message)})
}

// Speech handles POST /assistant/speech.
func (h *AssistantHandler) Speech(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeAudio(w, h.svc.SynthesizeSpeech(r.Context(), req.Text))
}

// Analyze handles POST /assistant/analyze with a multipart "image" part.
func (h *AssistantHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form or image too large")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable image")
		return
	}

	mt := mimeType(header.Header.Get("Content-Type"))
	if mt == "" || mt == "application/octet-stream" {
		mt = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mt, "image/") {
		writeError(w, http.StatusBadRequest, "file is not an image")
		return
	}

	writeJSON(w, http.StatusOK, analysisResponse{Analysis: h.svc.AnalyzeImage(r.Context(), data, mt)})
}

// VeteranNarration handles GET /veterans/{id}/narration.
func (h *AssistantHandler) VeteranNarration(w http.ResponseWriter, r *http.Request) {
	h.narrate(w, r, func(ctx context.Context) ([]byte, error) {
		return h.svc.VeteranNarration(ctx, r.PathValue("id"))
	})
}

// VehicleNarration handles GET /vehicles/{id}/narration.
func (h *AssistantHandler) VehicleNarration(w http.ResponseWriter, r *http.Request) {
	h.narrate(w, r, func(ctx context.Context) ([]byte, error) {
		return h.svc.VehicleNarration(ctx, r.PathValue("id"))
	})
}

// WeaponNarration handles GET /weapons/{id}/narration.
func (h *AssistantHandler) WeaponNarration(w http.ResponseWriter, r *http.Request) {
	h.narrate(w, r, func(ctx context.Context) ([]byte, error) {
		return h.svc.WeaponNarration(ctx, r.PathValue("id"))
	})
}

// FeaturedNarration handles GET /stories/featured/narration.
func (h *AssistantHandler) FeaturedNarration(w http.ResponseWriter, r *http.Request) {
	h.narrate(w, r, h.svc.FeaturedNarration)
}

func (h *AssistantHandler) narrate(w http.ResponseWriter, r *http.Request, fn func(context.Context) ([]byte, error)) {
	audio, err := fn(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeAudio(w, audio)
}
