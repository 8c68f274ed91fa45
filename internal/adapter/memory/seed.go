package memory

import (
	"context"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

// BulkInsertIdentities inserts identities, skipping existing IDs and emails.
// Within a batch the first identity for an email wins.
func (s *Store) BulkInsertIdentities(_ context.Context, identities []domain.Identity) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]domain.Identity, 0, len(identities))
	seen := make(map[string]struct{}, len(identities))
	for _, ident := range identities {
		email := domain.NormalizeEmail(ident.Email)
		if _, dup := seen[email]; dup || s.identityIndexByEmail(ident.Email) >= 0 {
			continue
		}
		seen[email] = struct{}{}
		fresh = append(fresh, ident)
	}
	return insertMissing(&s.identities, fresh, identityKey), nil
}

// BulkInsertVeterans inserts veterans, skipping existing IDs.
func (s *Store) BulkInsertVeterans(_ context.Context, veterans []domain.Veteran) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertMissing(&s.veterans, veterans, veteranKey), nil
}

// BulkInsertVehicles inserts vehicles, skipping existing IDs.
func (s *Store) BulkInsertVehicles(_ context.Context, vehicles []domain.Vehicle) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertMissing(&s.vehicles, vehicles, vehicleKey), nil
}

// BulkInsertWeapons inserts weapons, skipping existing IDs.
func (s *Store) BulkInsertWeapons(_ context.Context, weapons []domain.Weapon) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertMissing(&s.weapons, weapons, weaponKey), nil
}

// BulkInsertStories inserts stories, skipping existing IDs.
func (s *Store) BulkInsertStories(_ context.Context, stories []domain.Story) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertMissing(&s.stories, stories, storyKey), nil
}

// BulkInsertTimeline inserts timeline entries, skipping existing IDs.
func (s *Store) BulkInsertTimeline(_ context.Context, entries []domain.TimelineEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertMissing(&s.timeline, entries, timelineKey), nil
}

// BulkInsertContributions inserts contributions, skipping existing IDs.
func (s *Store) BulkInsertContributions(_ context.Context, contributions []domain.Contribution) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertMissing(&s.contributions, contributions, contributionKey), nil
}
