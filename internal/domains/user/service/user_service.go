package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	shopmodel "boighor-backend/internal/domains/shop/model"
	shoprepo "boighor-backend/internal/domains/shop/repository"
	"boighor-backend/internal/domains/user/model"
	"boighor-backend/internal/domains/user/repository"
)

type userService struct {
	repo     repository.Repository
	shopRepo shoprepo.Repository
}

func NewService(repo repository.Repository, shopRepo shoprepo.Repository) Service {
	return &userService{repo: repo, shopRepo: shopRepo}
}

func (s *userService) GetCurrentUserData(ctx context.Context, userID uuid.UUID) (*model.CurrentUserData, error) {
	data := &model.CurrentUserData{}
	if userID == uuid.Nil {
		return data, nil
	}
	data.UserID = &userID

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}
	data.Profile = profile

	shop, err := s.shopRepo.GetByOwner(ctx, userID)
	if err != nil && !errors.Is(err, shopmodel.ErrShopNotFound) {
		return nil, err
	}
	if shop != nil {
		summary := shop.Summary()
		data.Shop = &summary
	}

	// Admins manage the official shop from the same navigation.
	if profile.IsAdmin() {
		official, err := s.shopRepo.GetOfficial(ctx)
		if err != nil && !errors.Is(err, shopmodel.ErrShopNotFound) {
			return nil, err
		}
		if official != nil {
			summary := official.Summary()
			data.AdminShop = &summary
		}
	}

	return data, nil
}
