package seeder

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// Dataset is the sample catalog shipped with the binary.
type Dataset struct {
	Identities    []identityRecord     `yaml:"identities"`
	Veterans      []veteranRecord      `yaml:"veterans"`
	Vehicles      []vehicleRecord      `yaml:"vehicles"`
	Weapons       []weaponRecord       `yaml:"weapons"`
	Stories       []storyRecord        `yaml:"stories"`
	Timeline      []timelineRecord     `yaml:"timeline"`
	Contributions []contributionRecord `yaml:"contributions"`
}

type identityRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type veteranRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Rank     string `yaml:"rank"`
	Origin   string `yaml:"origin"`
	Bio      string `yaml:"bio"`
	PhotoURL string `yaml:"photo_url"`
	JoinedAt string `yaml:"joined_at"`
}

type vehicleRecord struct {
	ID          string `yaml:"id"`
	Model       string `yaml:"model"`
	Year        int    `yaml:"year"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	PhotoURL    string `yaml:"photo_url"`
	Status      string `yaml:"status"`
}

type weaponRecord struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Caliber      string `yaml:"caliber"`
	Type         string `yaml:"type"`
	Manufacturer string `yaml:"manufacturer"`
	Description  string `yaml:"description"`
	PhotoURL     string `yaml:"photo_url"`
	Status       string `yaml:"status"`
}

// storyRecord entries are published unless Pending is set.
type storyRecord struct {
	ID          string `yaml:"id"`
	VeteranID   string `yaml:"veteran_id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	MediaURL    string `yaml:"media_url"`
	Location    string `yaml:"location"`
	Date        string `yaml:"date"`
	Pending     bool   `yaml:"pending"`
}

type timelineRecord struct {
	ID          string `yaml:"id"`
	Year        int    `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	StoryID     string `yaml:"story_id"`
}

type contributionRecord struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Email       string    `yaml:"email"`
	Narrative   string    `yaml:"narrative"`
	MediaURL    string    `yaml:"media_url"`
	Approved    bool      `yaml:"approved"`
	SubmittedAt time.Time `yaml:"submitted_at"`
}

// LoadDataset parses the embedded sample catalog.
func LoadDataset() (*Dataset, error) {
	return ParseDataset(embeddedDataset)
}

// ParseDataset parses and validates a catalog document.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	veterans := make(map[string]string, len(ds.Veterans))
	for _, v := range ds.Veterans {
		if v.ID == "" || v.Name == "" {
			return fmt.Errorf("veteran %q: id and name are required", v.ID)
		}
		if !domain.Origin(v.Origin).IsValid() {
			return fmt.Errorf("veteran %s: unknown origin %q", v.ID, v.Origin)
		}
		veterans[v.ID] = v.Name
	}
	for _, i := range ds.Identities {
		if !domain.Role(i.Role).IsValid() {
			return fmt.Errorf("identity %s: unknown role %q", i.ID, i.Role)
		}
	}
	for _, s := range ds.Stories {
		if !domain.StoryKind(s.Kind).IsValid() {
			return fmt.Errorf("story %s: unknown kind %q", s.ID, s.Kind)
		}
		if _, ok := veterans[s.VeteranID]; s.VeteranID != "" && !ok {
			return fmt.Errorf("story %s: unknown veteran %q", s.ID, s.VeteranID)
		}
	}
	return nil
}

// IdentitiesAt converts the identity records, stamping them with now.
func (ds *Dataset) IdentitiesAt(now time.Time) []domain.Identity {
	out := make([]domain.Identity, 0, len(ds.Identities))
	for _, r := range ds.Identities {
		out = append(out, domain.Identity{
			ID:        r.ID,
			Name:      r.Name,
			Email:     domain.NormalizeEmail(r.Email),
			Role:      domain.Role(r.Role),
			CreatedAt: now,
		})
	}
	return out
}

func (ds *Dataset) DomainVeterans() []domain.Veteran {
	out := make([]domain.Veteran, 0, len(ds.Veterans))
	for _, r := range ds.Veterans {
		out = append(out, domain.Veteran{
			ID:       r.ID,
			Name:     r.Name,
			Rank:     r.Rank,
			Origin:   domain.Origin(r.Origin),
			Bio:      r.Bio,
			PhotoURL: r.PhotoURL,
			JoinedAt: r.JoinedAt,
		})
	}
	return out
}

func (ds *Dataset) DomainVehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(ds.Vehicles))
	for _, r := range ds.Vehicles {
		out = append(out, domain.Vehicle(r))
	}
	return out
}

func (ds *Dataset) DomainWeapons() []domain.Weapon {
	out := make([]domain.Weapon, 0, len(ds.Weapons))
	for _, r := range ds.Weapons {
		out = append(out, domain.Weapon(r))
	}
	return out
}

// StoriesAt converts the story records. VeteranName is denormalized from the
// veteran list, as submitted stories carry it too.
func (ds *Dataset) StoriesAt(now time.Time) []domain.Story {
	names := make(map[string]string, len(ds.Veterans))
	for _, v := range ds.Veterans {
		names[v.ID] = v.Name
	}

	out := make([]domain.Story, 0, len(ds.Stories))
	for _, r := range ds.Stories {
		out = append(out, domain.Story{
			ID:                  r.ID,
			VeteranID:           r.VeteranID,
			VeteranName:         names[r.VeteranID],
			Title:               r.Title,
			Description:         r.Description,
			Kind:                domain.StoryKind(r.Kind),
			MediaURL:            r.MediaURL,
			Location:            r.Location,
			Date:                r.Date,
			Approved:            !r.Pending,
			AuthorizedToPublish: true,
			CreatedAt:           now,
		})
	}
	return out
}

func (ds *Dataset) DomainTimeline() []domain.TimelineEntry {
	out := make([]domain.TimelineEntry, 0, len(ds.Timeline))
	for _, r := range ds.Timeline {
		out = append(out, domain.TimelineEntry(r))
	}
	return out
}

func (ds *Dataset) DomainContributions() []domain.Contribution {
	out := make([]domain.Contribution, 0, len(ds.Contributions))
	for _, r := range ds.Contributions {
		out = append(out, domain.Contribution(r))
	}
	return out
}
