package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookmodel "boighor-backend/internal/domains/book/model"
	bookrepo "boighor-backend/internal/domains/book/repository"
	categorymodel "boighor-backend/internal/domains/category/model"
	categoryrepo "boighor-backend/internal/domains/category/repository"
	"boighor-backend/internal/domains/shop/model"
	"boighor-backend/internal/domains/shop/repository"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/revalidate"
	"boighor-backend/internal/shared/utils"
	"boighor-backend/pkg/cache"
)

// Rendered shop views live until a mutation invalidates them.
const pageTTL = 24 * time.Hour

type shopService struct {
	repo         repository.Repository
	bookRepo     bookrepo.Repository
	categoryRepo categoryrepo.Repository
	cache        cache.Cache
	revalidator  revalidate.Revalidator
}

func NewService(
	repo repository.Repository,
	bookRepo bookrepo.Repository,
	categoryRepo categoryrepo.Repository,
	pageCache cache.Cache,
	revalidator revalidate.Revalidator,
) Service {
	return &shopService{
		repo:         repo,
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		cache:        pageCache,
		revalidator:  revalidator,
	}
}

func (s *shopService) CreateShop(ctx context.Context, userID uuid.UUID, req model.CreateShopRequest) (string, error) {
	if userID == uuid.Nil {
		return "", authz.ErrUnauthenticated
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return "", err
	}

	slug := utils.GenerateSlug(req.Name)
	if slug == "" {
		return "", model.ErrInvalidShopName
	}

	// Existence check first for a friendly error; the partial unique
	// index on owner_id closes the remaining race window.
	_, err := s.repo.GetByOwner(ctx, userID)
	if err == nil {
		return "", model.ErrShopAlreadyExists
	}
	if !errors.Is(err, model.ErrShopNotFound) {
		return "", err
	}

	shop := &model.Shop{
		ID:      uuid.New(),
		OwnerID: userID,
		Name:    req.Name,
		Slug:    slug,
	}
	if err := s.repo.Insert(ctx, shop); err != nil {
		return "", err
	}

	// Home shows the "create your shop" call-to-action until the owner
	// has one; flip it along with the new shop's page.
	s.revalidator.Invalidate(ctx, revalidate.HomePath, revalidate.ShopPath(slug))
	return slug, nil
}

func (s *shopService) CreateOfficialShop(ctx context.Context, adminID uuid.UUID) (string, error) {
	if adminID == uuid.Nil {
		return "", authz.ErrUnauthenticated
	}

	_, err := s.repo.GetOfficial(ctx)
	if err == nil {
		return "", model.ErrOfficialShopExists
	}
	if !errors.Is(err, model.ErrShopNotFound) {
		return "", err
	}

	shop := &model.Shop{
		ID:         uuid.New(),
		OwnerID:    adminID,
		Name:       "Boighor Official",
		Slug:       model.OfficialSlug,
		IsOfficial: true,
	}
	if err := s.repo.Insert(ctx, shop); err != nil {
		// A racing creation surfaces through the slug constraint.
		if errors.Is(err, model.ErrSlugTaken) {
			return "", model.ErrOfficialShopExists
		}
		return "", err
	}

	s.revalidator.Invalidate(ctx, revalidate.HomePath, revalidate.ShopPath(model.OfficialSlug))
	return model.OfficialSlug, nil
}

// shopPageView is the viewer-independent cacheable part of a shop page.
// IsOwner depends on the viewer and is computed per request.
type shopPageView struct {
	Shop            model.Shop               `json:"shop"`
	BooksByCategory []model.CategoryGroup    `json:"books_by_category"`
	AllCategories   []categorymodel.Category `json:"all_categories"`
}

func (s *shopService) GetShopBySlug(ctx context.Context, slug string, currentUserID uuid.UUID) (*model.ShopPage, error) {
	cacheKey := revalidate.PageKey(revalidate.ShopPath(slug))

	var view shopPageView
	found, err := s.cache.Get(ctx, cacheKey, &view)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("shop page cache read failed")
		found = false
	}

	if !found {
		shop, err := s.repo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}

		books, err := s.bookRepo.ListByShop(ctx, shop.ID)
		if err != nil {
			return nil, err
		}

		categories, err := s.categoryRepo.List(ctx)
		if err != nil {
			return nil, err
		}

		view = shopPageView{
			Shop:            *shop,
			BooksByCategory: groupByCategory(books, categories),
			AllCategories:   categories,
		}

		if err := s.cache.Set(ctx, cacheKey, view, pageTTL); err != nil {
			log.Error().Err(err).Str("slug", slug).Msg("shop page cache write failed")
		}
	}

	return &model.ShopPage{
		ID:              view.Shop.ID,
		Name:            view.Shop.Name,
		Slug:            view.Shop.Slug,
		BooksByCategory: view.BooksByCategory,
		IsOwner:         currentUserID != uuid.Nil && currentUserID == view.Shop.OwnerID,
		AllCategories:   view.AllCategories,
	}, nil
}

// officialView is the cacheable home page catalog.
type officialView struct {
	Shop            *model.ShopSummary    `json:"shop"`
	BooksByCategory []model.CategoryGroup `json:"books_by_category"`
}

func (s *shopService) GetOfficialCatalog(ctx context.Context) (*model.OfficialCatalog, error) {
	cacheKey := revalidate.PageKey(revalidate.HomePath)

	var view officialView
	found, err := s.cache.Get(ctx, cacheKey, &view)
	if err != nil {
		log.Error().Err(err).Msg("home page cache read failed")
		found = false
	}

	if !found {
		view, err = s.buildOfficialView(ctx)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, cacheKey, view, pageTTL); err != nil {
			log.Error().Err(err).Msg("home page cache write failed")
		}
	}

	return &model.OfficialCatalog{
		Shop:            view.Shop,
		BooksByCategory: view.BooksByCategory,
	}, nil
}

func (s *shopService) buildOfficialView(ctx context.Context) (officialView, error) {
	empty := officialView{BooksByCategory: []model.CategoryGroup{}}

	shop, err := s.repo.GetOfficial(ctx)
	if errors.Is(err, model.ErrShopNotFound) {
		// No official shop yet: the home page renders an admin-only
		// setup prompt instead.
		return empty, nil
	}
	if err != nil {
		return empty, err
	}

	books, err := s.bookRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return empty, err
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return empty, err
	}

	summary := shop.Summary()
	return officialView{
		Shop:            &summary,
		BooksByCategory: groupByCategory(books, categories),
	}, nil
}

func (s *shopService) GetAllShops(ctx context.Context) ([]model.ShopSummary, error) {
	return s.repo.List(ctx)
}

func (s *shopService) GetUserShop(ctx context.Context, userID uuid.UUID) (*model.ShopSummary, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	shop, err := s.repo.GetByOwner(ctx, userID)
	if errors.Is(err, model.ErrShopNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	summary := shop.Summary()
	return &summary, nil
}

// groupByCategory buckets books by resolved category name, falling
// back to the Uncategorized bucket when the category id is absent or
// unknown. Groups come out alphabetical; book order within a group is
// the repository's.
func groupByCategory(books []bookmodel.Book, categories []categorymodel.Category) []model.CategoryGroup {
	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	buckets := make(map[string][]bookmodel.Book)
	for _, book := range books {
		bucket := model.UncategorizedBucket
		if book.CategoryID != nil {
			if name, ok := names[*book.CategoryID]; ok {
				bucket = name
			}
		}
		buckets[bucket] = append(buckets[bucket], book)
	}

	groups := make([]model.CategoryGroup, 0, len(buckets))
	for name, bucketBooks := range buckets {
		groups = append(groups, model.CategoryGroup{Category: name, Books: bucketBooks})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}
