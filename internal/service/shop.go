package service

import (
	"context"
	"errors"

	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/repository"
)

// ShopService handles shop lookups.
type ShopService struct {
	shops repository.ShopRepository
}

// NewShopService creates a new shop service.
func NewShopService(shops repository.ShopRepository) *ShopService {
	return &ShopService{shops: shops}
}

// GetShop returns one shop by id.
func (s *ShopService) GetShop(ctx context.Context, shopID int64) (*model.Shop, error) {
	shop, err := s.shops.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return shop, nil
}

// ListShopsByUser returns every shop owned by the user, in insertion order.
// An unknown user yields an empty result, not an error.
func (s *ShopService) ListShopsByUser(ctx context.Context, userID int64) ([]*model.Shop, int, error) {
	shops, err := s.shops.ListShops(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := []*model.Shop{}
	for _, shop := range shops {
		if shop.UserID == userID {
			matched = append(matched, shop)
		}
	}
	return matched, len(matched), nil
}
