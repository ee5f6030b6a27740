package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

type CartService interface {
	// AddToCart puts one unit of the item into the caller's cart. Repeated
	// adds for the same item increment the single existing row.
	AddToCart(ctx context.Context, userID, itemID string) (*model.CartItem, error)
	// RemoveFromCart deletes the whole row; there is no decrement path.
	RemoveFromCart(ctx context.Context, userID, cartItemID string) error
	GetCart(ctx context.Context, userID string) ([]*model.CartItem, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

func (s *cartServiceImpl) AddToCart(ctx context.Context, userID, itemID string) (*model.CartItem, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}

	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.AddOne(ctx, userID, itemID); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	return s.cartRepo.FindByUserAndItem(ctx, userID, itemID)
}

func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, userID, cartItemID string) error {
	if userID == "" {
		return apperr.ErrUnauthenticated
	}

	cartItem, err := s.cartRepo.FindByID(ctx, cartItemID)
	if err != nil {
		return err
	}
	if cartItem.UserID != userID {
		return fmt.Errorf("%w: this cart item isn't yours", apperr.ErrForbidden)
	}

	return s.cartRepo.Delete(ctx, cartItemID)
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) ([]*model.CartItem, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	return s.cartRepo.ListByUser(ctx, userID)
}
