package rest

import (
	"time"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
	"github.com/heartmarshall/memoriaviva-backend/internal/service/moderation"
)

type identityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toIdentityResponse(i *domain.Identity) identityResponse {
	return identityResponse{ID: i.ID, Name: i.Name, Email: i.Email, Role: i.Role.String()}
}

type storyResponse struct {
	ID                  string    `json:"id"`
	VeteranID           string    `json:"veteranId,omitempty"`
	VeteranName         string    `json:"veteranName"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Kind                string    `json:"kind"`
	MediaURL            string    `json:"mediaUrl,omitempty"`
	Location            string    `json:"location,omitempty"`
	Date                string    `json:"date"`
	Approved            bool      `json:"approved"`
	AuthorizedToPublish bool      `json:"authorizedToPublish"`
	SubmittedBy         string    `json:"submittedBy,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toStoryResponse(s *domain.Story) storyResponse {
	return storyResponse{
		ID:                  s.ID,
		VeteranID:           s.VeteranID,
		VeteranName:         s.VeteranName,
		Title:               s.Title,
		Description:         s.Description,
		Kind:                s.Kind.String(),
		MediaURL:            s.MediaURL,
		Location:            s.Location,
		Date:                s.Date,
		Approved:            s.Approved,
		AuthorizedToPublish: s.AuthorizedToPublish,
		SubmittedBy:         s.SubmittedBy,
		CreatedAt:           s.CreatedAt,
	}
}

func toStoryResponses(list []domain.Story) []storyResponse {
	return mapSlice(list, toStoryResponse)
}

type contributionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Narrative   string    `json:"narrative"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	Approved    bool      `json:"approved"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func toContributionResponse(c *domain.Contribution) contributionResponse {
	return contributionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Narrative:   c.Narrative,
		MediaURL:    c.MediaURL,
		Approved:    c.Approved,
		SubmittedAt: c.SubmittedAt,
	}
}

func toContributionResponses(list []domain.Contribution) []contributionResponse {
	return mapSlice(list, toContributionResponse)
}

type dashboardResponse struct {
	PendingStories []storyResponse        `json:"pendingStories"`
	Contributions  []contributionResponse `json:"contributions"`
	PendingCount   int                    `json:"pendingCount"`
	PublishedCount *int                   `json:"publishedCount,omitempty"`
}

func toDashboardResponse(d *moderation.Dashboard) dashboardResponse {
	return dashboardResponse{
		PendingStories: toStoryResponses(d.PendingStories),
		Contributions:  toContributionResponses(d.Contributions),
		PendingCount:   d.PendingCount,
		PublishedCount: d.PublishedCount,
	}
}

type veteranResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Rank     string           `json:"rank"`
	Origin   string           `json:"origin"`
	Bio      string           `json:"bio"`
	PhotoURL string           `json:"photoUrl,omitempty"`
	JoinedAt string           `json:"joinedAt,omitempty"`
	Stories  *[]storyResponse `json:"stories,omitempty"`
}

func toVeteranResponse(v *domain.Veteran) veteranResponse {
	return veteranResponse{
		ID:       v.ID,
		Name:     v.Name,
		Rank:     v.Rank,
		Origin:   v.Origin.String(),
		Bio:      v.Bio,
		PhotoURL: v.PhotoURL,
		JoinedAt: v.JoinedAt,
	}
}

type vehicleResponse struct {
	ID          string `json:"id"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Type        string `json:"type"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Status      string `json:"status"`
}

func toVehicleResponse(v *domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:          v.ID,
		Model:       v.Model,
		Year:        v.Year,
		Type:        v.Type,
		Description: v.Description,
		PhotoURL:    v.PhotoURL,
		Status:      v.Status,
	}
}

type weaponResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Caliber      string `json:"caliber"`
	Type         string `json:"type"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	Status       string `json:"status"`
}

func toWeaponResponse(w *domain.Weapon) weaponResponse {
	return weaponResponse{
		ID:           w.ID,
		Name:         w.Name,
		Caliber:      w.Caliber,
		Type:         w.Type,
		Manufacturer: w.Manufacturer,
		Description:  w.Description,
		PhotoURL:     w.PhotoURL,
		Status:       w.Status,
	}
}

type timelineResponse struct {
	ID          string `json:"id"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StoryID     string `json:"storyId,omitempty"`
}

func toTimelineResponse(e *domain.TimelineEntry) timelineResponse {
	return timelineResponse{ID: e.ID, Year: e.Year, Title: e.Title, Description: e.Description, StoryID: e.StoryID}
}

func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}
