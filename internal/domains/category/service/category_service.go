package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/category/model"
	"boighor-backend/internal/domains/category/repository"
	"boighor-backend/internal/shared/authz"
)

type categoryService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, req model.CreateCategoryRequest) (*model.Category, error) {
	if userID == uuid.Nil {
		return nil, authz.ErrUnauthenticated
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := &model.Category{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.repo.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}
