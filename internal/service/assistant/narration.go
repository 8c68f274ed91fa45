package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// VeteranNarration reads a veteran's name and biography aloud.
// The audio is nil when speech is unavailable.
func (s *Service) VeteranNarration(ctx context.Context, id string) ([]byte, error) {
	v, err := s.catalog.GetVeteran(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assistant.VeteranNarration: %w", err)
	}
	return s.SynthesizeSpeech(ctx, veteranText(v)), nil
}

func (s *Service) VehicleNarration(ctx context.Context, id string) ([]byte, error) {
	v, err := s.catalog.GetVehicle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assistant.VehicleNarration: %w", err)
	}
	return s.SynthesizeSpeech(ctx, vehicleText(v)), nil
}

func (s *Service) WeaponNarration(ctx context.Context, id string) ([]byte, error) {
	w, err := s.catalog.GetWeapon(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assistant.WeaponNarration: %w", err)
	}
	return s.SynthesizeSpeech(ctx, weaponText(w)), nil
}

// FeaturedNarration reads the story of the month. NotFound when nothing is published.
func (s *Service) FeaturedNarration(ctx context.Context) ([]byte, error) {
	st, err := s.featured.FeaturedStory(ctx)
	if err != nil {
		return nil, fmt.Errorf("assistant.FeaturedNarration: %w", err)
	}
	if st == nil {
		return nil, fmt.Errorf("assistant.FeaturedNarration: %w", domain.ErrNotFound)
	}
	return s.SynthesizeSpeech(ctx, st.Description), nil
}

func veteranText(v *domain.Veteran) string {
	return joinSentences(v.Name, v.Bio)
}

func vehicleText(v *domain.Vehicle) string {
	return joinSentences(v.Model, labeled("Viatura do tipo", v.Type), v.Description)
}

func weaponText(w *domain.Weapon) string {
	return joinSentences(w.Name, labeled("Calibre", w.Caliber), labeled("Fabricado por", w.Manufacturer), w.Description)
}

// joinSentences joins the non-empty parts with ". ".
func joinSentences(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ". ")
}

func labeled(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return label + " " + value
}
