// Package revalidate invalidates cached rendered views after catalog
// mutations, so the next read never observes stale data.
package revalidate

import (
	"context"

	"github.com/rs/zerolog/log"

	"boighor-backend/pkg/cache"
)

const pageKeyPrefix = "page:"

// PageKey maps a public path to its cache key.
func PageKey(path string) string {
	return pageKeyPrefix + path
}

// ShopPath is the public path of a shop page.
func ShopPath(slug string) string {
	return "/shop/" + slug
}

// HomePath renders the official catalog and the navigation state.
const HomePath = "/"

// Revalidator marks previously cached paths stale.
type Revalidator interface {
	// Invalidate drops the cached views for the given paths.
	// Best-effort: failures are logged and never fail the mutation,
	// but the call is synchronous so the caller's next read is fresh.
	Invalidate(ctx context.Context, paths ...string)
}

type cacheRevalidator struct {
	cache cache.Cache
}

func New(c cache.Cache) Revalidator {
	return &cacheRevalidator{cache: c}
}

func (r *cacheRevalidator) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}

	keys := make([]string, len(paths))
	for i, path := range paths {
		keys[i] = PageKey(path)
	}

	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Error().Err(err).Strs("paths", paths).Msg("cache invalidation failed")
	}
}
