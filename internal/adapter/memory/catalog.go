package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// CatalogRepo exposes the read-only collections.
type CatalogRepo struct {
	s *Store
}

// ListVeterans returns copies of all veterans.
func (r *CatalogRepo) ListVeterans(context.Context) ([]domain.Veteran, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.Veteran, 0, len(r.s.veterans)), r.s.veterans...), nil
}

// GetVeteran returns a veteran by ID or ErrNotFound.
func (r *CatalogRepo) GetVeteran(_ context.Context, id string) (*domain.Veteran, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := indexByID(r.s.veterans, id, veteranKey)
	if i < 0 {
		return nil, fmt.Errorf("veteran %s: %w", id, domain.ErrNotFound)
	}
	cp := r.s.veterans[i]
	return &cp, nil
}

// ListVehicles returns copies of all vehicles.
func (r *CatalogRepo) ListVehicles(context.Context) ([]domain.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.Vehicle, 0, len(r.s.vehicles)), r.s.vehicles...), nil
}

// GetVehicle returns a vehicle by ID or ErrNotFound.
func (r *CatalogRepo) GetVehicle(_ context.Context, id string) (*domain.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := indexByID(r.s.vehicles, id, vehicleKey)
	if i < 0 {
		return nil, fmt.Errorf("vehicle %s: %w", id, domain.ErrNotFound)
	}
	cp := r.s.vehicles[i]
	return &cp, nil
}

// ListWeapons returns copies of all weapons.
func (r *CatalogRepo) ListWeapons(context.Context) ([]domain.Weapon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.Weapon, 0, len(r.s.weapons)), r.s.weapons...), nil
}

// GetWeapon returns a weapon by ID or ErrNotFound.
func (r *CatalogRepo) GetWeapon(_ context.Context, id string) (*domain.Weapon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := indexByID(r.s.weapons, id, weaponKey)
	if i < 0 {
		return nil, fmt.Errorf("weapon %s: %w", id, domain.ErrNotFound)
	}
	cp := r.s.weapons[i]
	return &cp, nil
}

// ListTimeline returns copies of all timeline entries.
func (r *CatalogRepo) ListTimeline(context.Context) ([]domain.TimelineEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.TimelineEntry, 0, len(r.s.timeline)), r.s.timeline...), nil
}
