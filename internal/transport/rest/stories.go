package rest

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/moderation"
	"github.com/heartmarshall/memoriaviva-backend/pkg/ctxutil"
)

// storyService is the moderation surface used for stories.
type storyService interface {
	SubmitStory(ctx context.Context, input moderation.SubmitStoryInput) (*domain.Story, error)
	ApproveStory(ctx context.Context, id string) error
	RejectStory(ctx context.Context, id string) error
	PendingStories(ctx context.Context) ([]domain.Story, error)
	PublishedStories(ctx context.Context) ([]domain.Story, error)
	FeaturedStory(ctx context.Context) (*domain.Story, error)
	PreviouslyFeatured(ctx context.Context) ([]domain.Story, error)
}

// mediaStore persists uploaded files and returns their public URL.
type mediaStore interface {
	Store(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, url string) error
}

// StoryHandler serves story submission, projections and moderation.
type StoryHandler struct {
	svc            storyService
	media          mediaStore
	maxUploadBytes int64
	log            *slog.Logger
}

func NewStoryHandler(svc storyService, media mediaStore, maxUploadBytes int64, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		svc:            svc,
		media:          media,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "stories"),
	}
}

type submitStoryRequest struct {
	Title               string `json:"title"`
	Kind                string `json:"kind"`
	Description         string `json:"description"`
	VeteranID           string `json:"veteranId"`
	VeteranName         string `json:"veteranName"`
	MediaURL            string `json:"mediaUrl"`
	Location            string `json:"location"`
	Date                string `json:"date"`
	AuthorizedToPublish bool   `json:"authorizedToPublish"`
}

func (req submitStoryRequest) input() moderation.SubmitStoryInput {
	return moderation.SubmitStoryInput{
		Title:               req.Title,
		Kind:                domain.StoryKind(req.Kind),
		Description:         req.Description,
		VeteranID:           req.VeteranID,
		VeteranName:         req.VeteranName,
		MediaURL:            req.MediaURL,
		Location:            req.Location,
		Date:                req.Date,
		AuthorizedToPublish: req.AuthorizedToPublish,
	}
}

// Published handles GET /stories.
func (h *StoryHandler) Published(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.PublishedStories)
}

// Pending handles GET /moderation/stories/pending.
func (h *StoryHandler) Pending(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.PendingStories)
}

// PreviouslyFeatured handles GET /stories/previously-featured.
func (h *StoryHandler) PreviouslyFeatured(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.PreviouslyFeatured)
}

// Featured handles GET /stories/featured. 404 when nothing is published.
func (h *StoryHandler) Featured(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.FeaturedStory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if st == nil {
		writeError(w, http.StatusNotFound, "no featured story")
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponse(st))
}

// Submit handles POST /stories with a JSON body.
func (h *StoryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitStoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.submit(w, r, req.input())
}

// Upload handles POST /stories/upload: a multipart form whose "file" part is
// stored and linked as the story media. The form fields are validated before
// anything is stored, and the file is removed again if the submission fails.
func (h *StoryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Callers that may not submit never reach storage.
	if !domain.Role(ctxutil.RoleFromCtx(r.Context())).CanSubmit() {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	authorized, _ := strconv.ParseBool(r.FormValue("authorizedToPublish"))
	input := moderation.SubmitStoryInput{
		Title:               r.FormValue("title"),
		Kind:                domain.StoryKind(r.FormValue("kind")),
		Description:         r.FormValue("description"),
		VeteranID:           r.FormValue("veteranId"),
		VeteranName:         r.FormValue("veteranName"),
		Location:            r.FormValue("location"),
		Date:                r.FormValue("date"),
		AuthorizedToPublish: authorized,
	}
	if err := input.Check(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	body := bufio.NewReader(file)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		sniff, _ := body.Peek(512)
		contentType = http.DetectContentType(sniff)
	}
	if !input.Kind.AcceptsMIME(mimeType(contentType)) {
		handleError(h.log, w, r, domain.NewValidationError("file", "file type does not match story kind"))
		return
	}

	url, err := h.media.Store(r.Context(), header.Filename, contentType, body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.MediaURL = url

	st, err := h.svc.SubmitStory(r.Context(), input)
	if err != nil {
		if rmErr := h.media.Remove(context.WithoutCancel(r.Context()), url); rmErr != nil {
			h.log.WarnContext(r.Context(), "remove orphaned upload", slog.String("url", url), slog.Any("error", rmErr))
		}
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toStoryResponse(st))
}

// Approve handles POST /moderation/stories/{id}/approve.
func (h *StoryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ApproveStory(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /moderation/stories/{id}.
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RejectStory(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StoryHandler) submit(w http.ResponseWriter, r *http.Request, input moderation.SubmitStoryInput) {
	st, err := h.svc.SubmitStory(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toStoryResponse(st))
}

func (h *StoryHandler) writeList(w http.ResponseWriter, r *http.Request, load func(context.Context) ([]domain.Story, error)) {
	list, err := load(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponses(list))
}
