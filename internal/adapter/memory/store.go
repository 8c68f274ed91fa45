// Package memory implements every repository contract on a process-local,
// mutex-guarded record store. Lists preserve insertion order.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// Store holds all collections. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	identities    []domain.Identity
	stories       []domain.Story
	contributions []domain.Contribution
	veterans      []domain.Veteran
	vehicles      []domain.Vehicle
	weapons       []domain.Weapon
	timeline      []domain.TimelineEntry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Ping always succeeds; it satisfies the readiness checker.
func (s *Store) Ping(context.Context) error { return nil }

// Identities returns the identity repository view.
func (s *Store) Identities() *IdentityRepo { return &IdentityRepo{s: s} }

// Stories returns the story repository view.
func (s *Store) Stories() *StoryRepo { return &StoryRepo{s: s} }

// Contributions returns the contribution repository view.
func (s *Store) Contributions() *ContributionRepo { return &ContributionRepo{s: s} }

// Catalog returns the read-only catalog view.
func (s *Store) Catalog() *CatalogRepo { return &CatalogRepo{s: s} }

func indexByID[T any](items []T, id string, key func(*T) string) int {
	return slices.IndexFunc(items, func(it T) bool { return key(&it) == id })
}

// insertMissing appends the items whose ID is not already present and
// returns the number appended.
func insertMissing[T any](dst *[]T, items []T, key func(*T) string) int {
	seen := make(map[string]struct{}, len(*dst))
	for i := range *dst {
		seen[key(&(*dst)[i])] = struct{}{}
	}
	n := 0
	for _, it := range items {
		id := key(&it)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		*dst = append(*dst, it)
		n++
	}
	return n
}

func identityKey(i *domain.Identity) string         { return i.ID }
func storyKey(st *domain.Story) string              { return st.ID }
func contributionKey(c *domain.Contribution) string { return c.ID }
func veteranKey(v *domain.Veteran) string           { return v.ID }
func vehicleKey(v *domain.Vehicle) string           { return v.ID }
func weaponKey(w *domain.Weapon) string             { return w.ID }
func timelineKey(e *domain.TimelineEntry) string    { return e.ID }
