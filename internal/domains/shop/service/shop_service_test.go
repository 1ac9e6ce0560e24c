package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "boighor-backend/internal/domains/book/model"
	categorymodel "boighor-backend/internal/domains/category/model"
	"boighor-backend/internal/domains/shop/model"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/revalidate"
)

// ---- fakes ----

// memCache stores JSON like the real redis-backed cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memCache) Ping(_ context.Context) error { return nil }

// fakeShopRepo mimics the store constraints: unique slug, one
// non-official shop per owner, a single official shop.
type fakeShopRepo struct {
	mu    sync.Mutex
	shops map[uuid.UUID]*model.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[uuid.UUID]*model.Shop)}
}

func (f *fakeShopRepo) Insert(_ context.Context, shop *model.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.shops {
		if existing.Slug == shop.Slug {
			return model.ErrSlugTaken
		}
		if !shop.IsOfficial && !existing.IsOfficial && existing.OwnerID == shop.OwnerID {
			return model.ErrShopAlreadyExists
		}
		if shop.IsOfficial && existing.IsOfficial {
			return model.ErrOfficialShopExists
		}
	}
	shop.CreatedAt = time.Now()
	stored := *shop
	f.shops[shop.ID] = &stored
	return nil
}

func (f *fakeShopRepo) GetBySlug(_ context.Context, slug string) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, shop := range f.shops {
		if shop.Slug == slug {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, model.ErrShopNotFound
}

func (f *fakeShopRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, shop := range f.shops {
		if shop.OwnerID == ownerID && !shop.IsOfficial {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, model.ErrShopNotFound
}

func (f *fakeShopRepo) GetOfficial(_ context.Context) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, shop := range f.shops {
		if shop.IsOfficial {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, model.ErrShopNotFound
}

func (f *fakeShopRepo) List(_ context.Context) ([]model.ShopSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shops := make([]model.ShopSummary, 0, len(f.shops))
	for _, shop := range f.shops {
		shops = append(shops, shop.Summary())
	}
	return shops, nil
}

type fakeBookRepo struct {
	books map[uuid.UUID][]bookmodel.Book // shopID -> books in display order
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID][]bookmodel.Book)}
}

func (f *fakeBookRepo) Insert(_ context.Context, book *bookmodel.Book) error {
	book.CreatedAt = time.Now()
	f.books[book.ShopID] = append(f.books[book.ShopID], *book)
	return nil
}

func (f *fakeBookRepo) Update(_ context.Context, book *bookmodel.Book) error {
	for shopID, books := range f.books {
		for i := range books {
			if books[i].ID == book.ID {
				book.CreatedAt = books[i].CreatedAt
				f.books[shopID][i] = *book
				return nil
			}
		}
	}
	return bookmodel.ErrBookNotFound
}

func (f *fakeBookRepo) Delete(_ context.Context, bookID uuid.UUID) error {
	for shopID, books := range f.books {
		for i := range books {
			if books[i].ID == bookID {
				f.books[shopID] = append(books[:i], books[i+1:]...)
				return nil
			}
		}
	}
	return bookmodel.ErrBookNotFound
}

func (f *fakeBookRepo) GetByID(_ context.Context, bookID uuid.UUID) (*bookmodel.Book, error) {
	for _, books := range f.books {
		for i := range books {
			if books[i].ID == bookID {
				copied := books[i]
				return &copied, nil
			}
		}
	}
	return nil, bookmodel.ErrBookNotFound
}

func (f *fakeBookRepo) ListByShop(_ context.Context, shopID uuid.UUID) ([]bookmodel.Book, error) {
	return append([]bookmodel.Book(nil), f.books[shopID]...), nil
}

type fakeCategoryRepo struct {
	categories []categorymodel.Category
}

func (f *fakeCategoryRepo) Insert(_ context.Context, category *categorymodel.Category) error {
	category.CreatedAt = time.Now()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*categorymodel.Category, error) {
	for _, category := range f.categories {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, categorymodel.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]categorymodel.Category, error) {
	return append([]categorymodel.Category(nil), f.categories...), nil
}

// ---- fixture ----

type shopFixture struct {
	service    Service
	repo       *fakeShopRepo
	bookRepo   *fakeBookRepo
	categories *fakeCategoryRepo
	cache      *memCache
}

func newShopFixture() *shopFixture {
	repo := newFakeShopRepo()
	bookRepo := newFakeBookRepo()
	categories := &fakeCategoryRepo{}
	pageCache := newMemCache()

	return &shopFixture{
		service:    NewService(repo, bookRepo, categories, pageCache, revalidate.New(pageCache)),
		repo:       repo,
		bookRepo:   bookRepo,
		categories: categories,
		cache:      pageCache,
	}
}

func (f *shopFixture) addCategory(t *testing.T, name string) uuid.UUID {
	t.Helper()
	category := &categorymodel.Category{ID: uuid.New(), Name: name}
	require.NoError(t, f.categories.Insert(context.Background(), category))
	return category.ID
}

func (f *shopFixture) addBook(t *testing.T, shopID uuid.UUID, title string, categoryID *uuid.UUID) {
	t.Helper()
	book := &bookmodel.Book{
		ID:           uuid.New(),
		ShopID:       shopID,
		CategoryID:   categoryID,
		Title:        title,
		AffiliateURL: "https://example.com/" + title,
	}
	require.NoError(t, f.bookRepo.Insert(context.Background(), book))
}

// ---- tests ----

func TestCreateShop(t *testing.T) {
	f := newShopFixture()
	userA := uuid.New()
	userB := uuid.New()

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := f.service.CreateShop(context.Background(), uuid.Nil, model.CreateShopRequest{Name: "My Books"})
		assert.ErrorIs(t, err, authz.ErrUnauthenticated)
	})

	t.Run("name shorter than three characters", func(t *testing.T) {
		_, err := f.service.CreateShop(context.Background(), userA, model.CreateShopRequest{Name: "ab"})
		var vErr validation.Errors
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("whitespace-padded short name still fails", func(t *testing.T) {
		_, err := f.service.CreateShop(context.Background(), userA, model.CreateShopRequest{Name: "  a  "})
		assert.Error(t, err)
	})

	t.Run("all-punctuation name yields no slug", func(t *testing.T) {
		_, err := f.service.CreateShop(context.Background(), userA, model.CreateShopRequest{Name: "!!! ???"})
		assert.ErrorIs(t, err, model.ErrInvalidShopName)
	})

	t.Run("first shop succeeds", func(t *testing.T) {
		slug, err := f.service.CreateShop(context.Background(), userA, model.CreateShopRequest{Name: "My Books"})
		require.NoError(t, err)
		assert.Equal(t, "my-books", slug)
	})

	t.Run("second shop for the same user conflicts", func(t *testing.T) {
		_, err := f.service.CreateShop(context.Background(), userA, model.CreateShopRequest{Name: "Other Shop"})
		assert.ErrorIs(t, err, model.ErrShopAlreadyExists)
	})

	t.Run("slug collision conflicts instead of suffixing", func(t *testing.T) {
		_, err := f.service.CreateShop(context.Background(), userB, model.CreateShopRequest{Name: "My Books"})
		assert.ErrorIs(t, err, model.ErrSlugTaken)

		// No second shop slipped in under a mutated slug.
		shops, listErr := f.service.GetAllShops(context.Background())
		require.NoError(t, listErr)
		assert.Len(t, shops, 1)
	})
}

func TestCreateShop_ConstraintIsTheArbiter(t *testing.T) {
	// Seed a shop for the user directly, bypassing the service's
	// existence pre-check, the way a concurrent winner would.
	f := newShopFixture()
	user := uuid.New()
	require.NoError(t, f.repo.Insert(context.Background(), &model.Shop{
		ID: uuid.New(), OwnerID: user, Name: "Winner", Slug: "winner",
	}))

	_, err := f.service.CreateShop(context.Background(), user, model.CreateShopRequest{Name: "Loser Shop"})
	assert.ErrorIs(t, err, model.ErrShopAlreadyExists)
}

func TestCreateOfficialShop(t *testing.T) {
	f := newShopFixture()
	admin := uuid.New()

	slug, err := f.service.CreateOfficialShop(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, model.OfficialSlug, slug)

	_, err = f.service.CreateOfficialShop(context.Background(), admin)
	assert.ErrorIs(t, err, model.ErrOfficialShopExists)
}

func TestGetShopBySlug(t *testing.T) {
	f := newShopFixture()
	owner := uuid.New()
	visitor := uuid.New()

	slug, err := f.service.CreateShop(context.Background(), owner, model.CreateShopRequest{Name: "My Books"})
	require.NoError(t, err)

	t.Run("unknown slug is a soft not-found", func(t *testing.T) {
		_, err := f.service.GetShopBySlug(context.Background(), "no-such-shop", uuid.Nil)
		assert.ErrorIs(t, err, model.ErrShopNotFound)
	})

	t.Run("empty shop has zero category groups", func(t *testing.T) {
		page, err := f.service.GetShopBySlug(context.Background(), slug, uuid.Nil)
		require.NoError(t, err)
		assert.Empty(t, page.BooksByCategory)
	})

	t.Run("owner flag reflects the viewer", func(t *testing.T) {
		page, err := f.service.GetShopBySlug(context.Background(), slug, owner)
		require.NoError(t, err)
		assert.True(t, page.IsOwner)

		page, err = f.service.GetShopBySlug(context.Background(), slug, visitor)
		require.NoError(t, err)
		assert.False(t, page.IsOwner)

		page, err = f.service.GetShopBySlug(context.Background(), slug, uuid.Nil)
		require.NoError(t, err)
		assert.False(t, page.IsOwner, "anonymous visitors are never owners")
	})
}

func TestGetShopBySlug_Grouping(t *testing.T) {
	f := newShopFixture()
	owner := uuid.New()

	slug, err := f.service.CreateShop(context.Background(), owner, model.CreateShopRequest{Name: "My Books"})
	require.NoError(t, err)
	shop, err := f.repo.GetBySlug(context.Background(), slug)
	require.NoError(t, err)

	novels := f.addCategory(t, "Novels")
	poetry := f.addCategory(t, "Poetry")
	dangling := uuid.New() // category that no longer exists

	f.addBook(t, shop.ID, "novel-1", &novels)
	f.addBook(t, shop.ID, "poem-1", &poetry)
	f.addBook(t, shop.ID, "novel-2", &novels)
	f.addBook(t, shop.ID, "orphan", &dangling)
	f.addBook(t, shop.ID, "loose", nil)

	page, err := f.service.GetShopBySlug(context.Background(), slug, uuid.Nil)
	require.NoError(t, err)

	names := make([]string, 0, len(page.BooksByCategory))
	for _, group := range page.BooksByCategory {
		names = append(names, group.Category)
	}
	assert.Equal(t, []string{"Novels", "Poetry", model.UncategorizedBucket}, names,
		"groups are alphabetical with Uncategorized from dangling and missing ids")

	byName := make(map[string][]string)
	for _, group := range page.BooksByCategory {
		for _, book := range group.Books {
			byName[group.Category] = append(byName[group.Category], book.Title)
		}
	}
	assert.Equal(t, []string{"novel-1", "novel-2"}, byName["Novels"])
	assert.Equal(t, []string{"poem-1"}, byName["Poetry"])
	assert.ElementsMatch(t, []string{"orphan", "loose"}, byName[model.UncategorizedBucket])
}

func TestGetOfficialCatalog(t *testing.T) {
	f := newShopFixture()

	t.Run("empty before an official shop exists", func(t *testing.T) {
		catalog, err := f.service.GetOfficialCatalog(context.Background())
		require.NoError(t, err)
		assert.Nil(t, catalog.Shop)
		assert.Empty(t, catalog.BooksByCategory)
	})

	t.Run("reflects the official shop once created", func(t *testing.T) {
		admin := uuid.New()
		_, err := f.service.CreateOfficialShop(context.Background(), admin)
		require.NoError(t, err)

		official, err := f.repo.GetOfficial(context.Background())
		require.NoError(t, err)
		f.addBook(t, official.ID, "picked-title", nil)
		// The mutation path invalidates for us in production; the book
		// service does it, so mimic it here.
		revalidate.New(f.cache).Invalidate(context.Background(), revalidate.HomePath)

		catalog, err := f.service.GetOfficialCatalog(context.Background())
		require.NoError(t, err)
		require.NotNil(t, catalog.Shop)
		assert.Equal(t, model.OfficialSlug, catalog.Shop.Slug)
		require.Len(t, catalog.BooksByCategory, 1)
		assert.Equal(t, model.UncategorizedBucket, catalog.BooksByCategory[0].Category)
	})
}

func TestGetUserShop(t *testing.T) {
	f := newShopFixture()
	owner := uuid.New()

	t.Run("anonymous gets nil", func(t *testing.T) {
		shop, err := f.service.GetUserShop(context.Background(), uuid.Nil)
		require.NoError(t, err)
		assert.Nil(t, shop)
	})

	t.Run("user without a shop gets nil", func(t *testing.T) {
		shop, err := f.service.GetUserShop(context.Background(), owner)
		require.NoError(t, err)
		assert.Nil(t, shop)
	})

	t.Run("owner gets the summary", func(t *testing.T) {
		slug, err := f.service.CreateShop(context.Background(), owner, model.CreateShopRequest{Name: "My Books"})
		require.NoError(t, err)

		shop, err := f.service.GetUserShop(context.Background(), owner)
		require.NoError(t, err)
		require.NotNil(t, shop)
		assert.Equal(t, slug, shop.Slug)
	})
}

// A mutation followed by a read of the same slug must observe the new
// state: the invalidation happens before the mutation returns.
func TestShopPage_FreshAfterInvalidation(t *testing.T) {
	f := newShopFixture()
	owner := uuid.New()

	slug, err := f.service.CreateShop(context.Background(), owner, model.CreateShopRequest{Name: "My Books"})
	require.NoError(t, err)
	shop, err := f.repo.GetBySlug(context.Background(), slug)
	require.NoError(t, err)

	// Prime the cache with the empty page.
	page, err := f.service.GetShopBySlug(context.Background(), slug, uuid.Nil)
	require.NoError(t, err)
	require.Empty(t, page.BooksByCategory)

	// Mutate and invalidate the way the book mutation service does.
	f.addBook(t, shop.ID, "fresh-title", nil)
	revalidate.New(f.cache).Invalidate(context.Background(), revalidate.ShopPath(slug))

	page, err = f.service.GetShopBySlug(context.Background(), slug, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, page.BooksByCategory, 1)
	assert.Equal(t, "fresh-title", page.BooksByCategory[0].Books[0].Title)
}
