package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/book/model"
	"boighor-backend/internal/domains/book/repository"
	categorymodel "boighor-backend/internal/domains/category/model"
	categoryrepo "boighor-backend/internal/domains/category/repository"
	shopmodel "boighor-backend/internal/domains/shop/model"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/revalidate"
)

type bookService struct {
	repo         repository.Repository
	categoryRepo categoryrepo.Repository
	authorizer   *authz.Authorizer
	revalidator  revalidate.Revalidator
}

func NewService(
	repo repository.Repository,
	categoryRepo categoryrepo.Repository,
	authorizer *authz.Authorizer,
	revalidator revalidate.Revalidator,
) Service {
	return &bookService{
		repo:         repo,
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
		revalidator:  revalidator,
	}
}

func (s *bookService) AddBook(ctx context.Context, userID uuid.UUID, req model.AddBookRequest) (string, error) {
	if userID == uuid.Nil {
		return "", authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return "", model.ErrBookNotFound
	}

	// The client's shopId only addresses the row; permission comes from
	// the store-resolved owner.
	if err := s.authorizer.AuthorizeShopMutation(ctx, userID, shopID); err != nil {
		return "", err
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID, req.NewCategoryName)
	if err != nil {
		return "", err
	}

	price, err := model.ParsePrice(req.Price)
	if err != nil {
		return "", err
	}

	book := &model.Book{
		ID:               uuid.New(),
		ShopID:           shopID,
		CategoryID:       categoryID,
		Title:            strings.TrimSpace(req.Title),
		AffiliateURL:     req.AffiliateURL,
		ImageURL:         model.OptionalString(req.ImageURL),
		ShortDescription: model.OptionalString(req.ShortDescription),
		Price:            price,
	}
	if err := s.repo.Insert(ctx, book); err != nil {
		return "", err
	}

	s.invalidateShop(ctx, req.ShopSlug)
	return req.ShopSlug, nil
}

func (s *bookService) UpdateBook(ctx context.Context, userID, bookID uuid.UUID, req model.UpdateBookRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	shopID, err := s.authorizeBook(ctx, userID, bookID)
	if err != nil {
		return "", err
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID, "")
	if err != nil {
		return "", err
	}

	price, err := model.ParsePrice(req.Price)
	if err != nil {
		return "", err
	}

	book := &model.Book{
		ID:               bookID,
		ShopID:           shopID,
		CategoryID:       categoryID,
		Title:            strings.TrimSpace(req.Title),
		AffiliateURL:     req.AffiliateURL,
		ImageURL:         model.OptionalString(req.ImageURL),
		ShortDescription: model.OptionalString(req.ShortDescription),
		Price:            price,
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return "", err
	}

	s.invalidateShop(ctx, req.ShopSlug)
	return req.ShopSlug, nil
}

func (s *bookService) DeleteBook(ctx context.Context, userID, bookID uuid.UUID, shopSlug string) (string, error) {
	if _, err := s.authorizeBook(ctx, userID, bookID); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, bookID); err != nil {
		return "", err
	}

	s.invalidateShop(ctx, shopSlug)
	return shopSlug, nil
}

func (s *bookService) GetBookForEdit(ctx context.Context, userID, bookID uuid.UUID) (*model.Book, error) {
	if _, err := s.authorizeBook(ctx, userID, bookID); err != nil {
		// Foreign books are indistinguishable from absent ones for the
		// edit form.
		if errors.Is(err, authz.ErrForbidden) {
			return nil, model.ErrBookNotFound
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, bookID)
}

func (s *bookService) authorizeBook(ctx context.Context, userID, bookID uuid.UUID) (uuid.UUID, error) {
	shopID, err := s.authorizer.AuthorizeBookMutation(ctx, userID, bookID)
	if errors.Is(err, authz.ErrResourceNotFound) {
		return uuid.Nil, model.ErrBookNotFound
	}
	return shopID, err
}

// resolveCategory picks the category for a book mutation: an existing
// id, an inline-created category, or none at all.
func (s *bookService) resolveCategory(ctx context.Context, categoryID, newCategoryName string) (*uuid.UUID, error) {
	newCategoryName = strings.TrimSpace(newCategoryName)
	if newCategoryName != "" {
		category := &categorymodel.Category{
			ID:   uuid.New(),
			Name: newCategoryName,
		}
		if err := s.categoryRepo.Insert(ctx, category); err != nil {
			return nil, err
		}
		return &category.ID, nil
	}

	return model.ParseOptionalUUID(categoryID)
}

func (s *bookService) invalidateShop(ctx context.Context, shopSlug string) {
	paths := []string{revalidate.ShopPath(shopSlug)}
	// The official shop also renders on the home page.
	if shopSlug == shopmodel.OfficialSlug {
		paths = append(paths, revalidate.HomePath)
	}
	s.revalidator.Invalidate(ctx, paths...)
}
