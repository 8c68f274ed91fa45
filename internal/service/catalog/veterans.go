package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const joinedAtLayout = "2006-01-02"

// ListVeterans filters and orders veterans.
func (s *Service) ListVeterans(ctx context.Context, q domain.VeteranQuery) ([]domain.Veteran, error) {
	if err := validateVeteranQuery(q); err != nil {
		return nil, err
	}

	all, err := s.catalog.ListVeterans(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListVeterans: %w", err)
	}

	out := make([]domain.Veteran, 0, len(all))
	for _, v := range all {
		if q.Origin != "" && v.Origin != q.Origin {
			continue
		}
		if !domain.ContainsFold(q.Search, v.Name, v.Rank) {
			continue
		}
		out = append(out, v)
	}

	if q.MediaKind != "" {
		out, err = s.withStoryKind(ctx, out, q.MediaKind)
		if err != nil {
			return nil, err
		}
	}

	sortVeterans(out, q.Sort)

	s.log.DebugContext(ctx, "veterans listed",
		slog.Int("count", len(out)),
		slog.String("sort", string(q.Sort)))

	return out, nil
}

// withStoryKind keeps the veterans with at least one published story of the given kind.
func (s *Service) withStoryKind(ctx context.Context, vets []domain.Veteran, kind domain.StoryKind) ([]domain.Veteran, error) {
	if len(vets) == 0 {
		return vets, nil
	}

	ids := make([]string, 0, len(vets))
	for _, v := range vets {
		ids = append(ids, v.ID)
	}
	grouped, err := s.stories.StoriesForVeterans(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListVeterans stories: %w", err)
	}

	return slices.DeleteFunc(vets, func(v domain.Veteran) bool {
		return !slices.ContainsFunc(grouped[v.ID], func(st domain.Story) bool { return st.Kind == kind })
	}), nil
}

// SearchMapPins returns veterans matching search on name, rank, bio or origin.
func (s *Service) SearchMapPins(ctx context.Context, search string) ([]domain.Veteran, error) {
	all, err := s.catalog.ListVeterans(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.SearchMapPins: %w", err)
	}

	out := make([]domain.Veteran, 0, len(all))
	for _, v := range all {
		if domain.ContainsFold(search, v.Name, v.Rank, v.Bio, v.Origin.String()) {
			out = append(out, v)
		}
	}
	return out, nil
}

// GetVeteran returns a veteran by ID.
func (s *Service) GetVeteran(ctx context.Context, id string) (*domain.Veteran, error) {
	v, err := s.catalog.GetVeteran(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetVeteran: %w", err)
	}
	return v, nil
}

func validateVeteranQuery(q domain.VeteranQuery) error {
	var errs []domain.FieldError
	if q.Origin != "" && !q.Origin.IsValid() {
		errs = append(errs, domain.FieldError{Field: "origin", Message: "unknown origin"})
	}
	if q.MediaKind != "" && !q.MediaKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "media", Message: "unknown story kind"})
	}
	if q.Sort != "" && !q.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// sortVeterans orders in place. Missing or malformed join dates sort as the zero time.
func sortVeterans(vets []domain.Veteran, order domain.VeteranSort) {
	switch order {
	case domain.VeteranSortDateAsc, domain.VeteranSortDateDesc:
		desc := order == domain.VeteranSortDateDesc
		slices.SortStableFunc(vets, func(a, b domain.Veteran) int {
			c := joinedAt(a).Compare(joinedAt(b))
			if desc {
				return -c
			}
			return c
		})
	default:
		col := newCollator()
		desc := order == domain.VeteranSortNameDesc
		slices.SortStableFunc(vets, func(a, b domain.Veteran) int {
			c := col.CompareString(a.Name, b.Name)
			if desc {
				return -c
			}
			return c
		})
	}
}

func joinedAt(v domain.Veteran) time.Time {
	t, err := time.Parse(joinedAtLayout, v.JoinedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
