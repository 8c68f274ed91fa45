package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/transport/dataloader"
)

type catalogService interface {
	ListVeterans(ctx context.Context, q domain.VeteranQuery) ([]domain.Veteran, error)
	SearchMapPins(ctx context.Context, search string) ([]domain.Veteran, error)
	GetVeteran(ctx context.Context, id string) (*domain.Veteran, error)
	ListVehicles(ctx context.Context, q domain.VehicleQuery) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListWeapons(ctx context.Context, q domain.WeaponQuery) ([]domain.Weapon, error)
	GetWeapon(ctx context.Context, id string) (*domain.Weapon, error)
	Timeline(ctx context.Context) ([]domain.TimelineEntry, error)
}

// veteranStories resolves published stories per veteran. The request-scoped
// dataloader is preferred when present.
type veteranStories interface {
	StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error)
}

// CatalogHandler serves the read-only collection.
type CatalogHandler struct {
	svc     catalogService
	stories veteranStories
	log     *slog.Logger
}

func NewCatalogHandler(svc catalogService, stories veteranStories, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, stories: stories, log: logger.With("handler", "catalog")}
}

// Veterans handles GET /veterans?origin=&media=&q=&sort=&include=stories.
func (h *CatalogHandler) Veterans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListVeterans(r.Context(), domain.VeteranQuery{
		Origin:    domain.Origin(q.Get("origin")),
		MediaKind: domain.StoryKind(q.Get("media")),
		Search:    q.Get("q"),
		Sort:      domain.VeteranSort(q.Get("sort")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeVeterans(w, r, list)
}

// MapPins handles GET /map/pins?q=.
func (h *CatalogHandler) MapPins(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.SearchMapPins(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeVeterans(w, r, list)
}

// Veteran handles GET /veterans/{id}. Stories are always included.
func (h *CatalogHandler) Veteran(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVeteran(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toVeteranResponse(v)
	grouped, err := h.storySource(r).StoriesForVeterans(r.Context(), []string{v.ID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	stories := toStoryResponses(grouped[v.ID])
	resp.Stories = &stories
	writeJSON(w, http.StatusOK, resp)
}

// VeteranStories handles GET /veterans/{id}/stories.
func (h *CatalogHandler) VeteranStories(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVeteran(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	grouped, err := h.storySource(r).StoriesForVeterans(r.Context(), []string{v.ID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponses(grouped[v.ID]))
}

// Vehicles handles GET /vehicles?type=&q=.
func (h *CatalogHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListVehicles(r.Context(), domain.VehicleQuery{Type: q.Get("type"), Search: q.Get("q")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toVehicleResponse))
}

// Vehicle handles GET /vehicles/{id}.
func (h *CatalogHandler) Vehicle(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVehicleResponse(v))
}

// Weapons handles GET /weapons?type=&q=.
func (h *CatalogHandler) Weapons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListWeapons(r.Context(), domain.WeaponQuery{Type: q.Get("type"), Search: q.Get("q")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toWeaponResponse))
}

// Weapon handles GET /weapons/{id}.
func (h *CatalogHandler) Weapon(w http.ResponseWriter, r *http.Request) {
	wp, err := h.svc.GetWeapon(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeaponResponse(wp))
}

// Timeline handles GET /timeline.
func (h *CatalogHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Timeline(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toTimelineResponse))
}

func (h *CatalogHandler) writeVeterans(w http.ResponseWriter, r *http.Request, list []domain.Veteran) {
	resp := mapSlice(list, toVeteranResponse)
	if r.URL.Query().Get("include") == "stories" && len(list) > 0 {
		ids := make([]string, len(list))
		for i := range list {
			ids[i] = list[i].ID
		}
		grouped, err := h.storySource(r).StoriesForVeterans(r.Context(), ids)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		for i := range resp {
			stories := toStoryResponses(grouped[resp[i].ID])
			resp[i].Stories = &stories
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) storySource(r *http.Request) veteranStories {
	if l := dataloader.FromContext(r.Context()); l != nil {
		return l
	}
	return h.stories
}
