package revalidate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	deleted [][]string
	fail    bool
}

func (f *fakeCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	if f.fail {
		return errors.New("redis down")
	}
	f.deleted = append(f.deleted, keys)
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func TestInvalidate_MapsPathsToPageKeys(t *testing.T) {
	cache := &fakeCache{}
	revalidator := New(cache)

	revalidator.Invalidate(context.Background(), HomePath, ShopPath("my-books"))

	assert.Equal(t, [][]string{{"page:/", "page:/shop/my-books"}}, cache.deleted)
}

func TestInvalidate_NoPathsIsNoop(t *testing.T) {
	cache := &fakeCache{}
	revalidator := New(cache)

	revalidator.Invalidate(context.Background())

	assert.Empty(t, cache.deleted)
}

func TestInvalidate_BestEffort(t *testing.T) {
	revalidator := New(&fakeCache{fail: true})

	// Must not panic or propagate; invalidation is best-effort.
	revalidator.Invalidate(context.Background(), ShopPath("my-books"))
}

func TestPageKey(t *testing.T) {
	assert.Equal(t, "page:/shop/official", PageKey(ShopPath("official")))
}
