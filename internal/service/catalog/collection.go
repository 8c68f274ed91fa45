package catalog

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// ListVehicles filters vehicles by exact type and a search over model, description and year.
func (s *Service) ListVehicles(ctx context.Context, q domain.VehicleQuery) ([]domain.Vehicle, error) {
	all, err := s.catalog.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListVehicles: %w", err)
	}

	out := make([]domain.Vehicle, 0, len(all))
	for _, v := range all {
		if q.Type != "" && v.Type != q.Type {
			continue
		}
		if !domain.ContainsFold(q.Search, v.Model, v.Description, strconv.Itoa(v.Year)) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := s.catalog.GetVehicle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetVehicle: %w", err)
	}
	return v, nil
}

// ListWeapons filters weapons by exact type and a search over name, caliber,
// manufacturer and description.
func (s *Service) ListWeapons(ctx context.Context, q domain.WeaponQuery) ([]domain.Weapon, error) {
	all, err := s.catalog.ListWeapons(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListWeapons: %w", err)
	}

	out := make([]domain.Weapon, 0, len(all))
	for _, w := range all {
		if q.Type != "" && w.Type != q.Type {
			continue
		}
		if !domain.ContainsFold(q.Search, w.Name, w.Caliber, w.Manufacturer, w.Description) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (s *Service) GetWeapon(ctx context.Context, id string) (*domain.Weapon, error) {
	w, err := s.catalog.GetWeapon(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetWeapon: %w", err)
	}
	return w, nil
}

// Timeline returns the history entries by ascending year. Entries of the same
// year keep their stored order.
func (s *Service) Timeline(ctx context.Context) ([]domain.TimelineEntry, error) {
	entries, err := s.catalog.ListTimeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Timeline: %w", err)
	}
	slices.SortStableFunc(entries, func(a, b domain.TimelineEntry) int {
		return a.Year - b.Year
	})
	return entries, nil
}
