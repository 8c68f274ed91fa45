// Package dataloader provides per-request loaders that batch story lookups
// for veteran listings into a single store call.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// storySource returns published stories grouped by veteran ID.
type storySource interface {
	StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error)
}

// Loaders holds the DataLoaders of one request.
type Loaders struct {
	StoriesByVeteranID *dataloader.Loader[string, []domain.Story]
}

// NewLoaders must be called per request; loaders cache results for their lifetime.
func NewLoaders(stories storySource) *Loaders {
	return &Loaders{
		StoriesByVeteranID: dataloader.NewBatchedLoader(
			newStoriesBatchFn(stories),
			dataloader.WithWait[string, []domain.Story](wait),
			dataloader.WithBatchCapacity[string, []domain.Story](maxBatch),
		),
	}
}

func newStoriesBatchFn(src storySource) dataloader.BatchFunc[string, []domain.Story] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]domain.Story] {
		grouped, err := src.StoriesForVeterans(ctx, keys)

		results := make([]*dataloader.Result[[]domain.Story], len(keys))
		for i, key := range keys {
			switch {
			case err != nil:
				results[i] = &dataloader.Result[[]domain.Story]{Error: err}
			case grouped[key] != nil:
				results[i] = &dataloader.Result[[]domain.Story]{Data: grouped[key]}
			default:
				results[i] = &dataloader.Result[[]domain.Story]{Data: []domain.Story{}}
			}
		}
		return results
	}
}

// StoriesForVeterans loads the stories of every veteran in one batch and
// returns them grouped by ID.
func (l *Loaders) StoriesForVeterans(ctx context.Context, veteranIDs []string) (map[string][]domain.Story, error) {
	lists, errs := l.StoriesByVeteranID.LoadMany(ctx, veteranIDs)()
	out := make(map[string][]domain.Story, len(veteranIDs))
	for i, id := range veteranIDs {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = lists[i]
	}
	return out, nil
}

type contextKey struct{}

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's Loaders, or nil when the middleware is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}

// Middleware installs fresh Loaders on every request.
func Middleware(stories storySource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(stories))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
