package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-backend/internal/model"
)

type CartRepository interface {
	// AddOne inserts a (user, item) row with quantity 1, or atomically bumps
	// the existing row's quantity by exactly 1. The increment happens in the
	// database, so concurrent adds for the same pair cannot lose updates.
	AddOne(ctx context.Context, userID, itemID string) error
	FindByID(ctx context.Context, cartItemID string) (*model.CartItem, error)
	FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]*model.CartItem, error)
	Delete(ctx context.Context, cartItemID string) error
	// DeleteByIDs removes exactly the given rows, not "the current cart".
	DeleteByIDs(ctx context.Context, cartItemIDs []string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) AddOne(ctx context.Context, userID, itemID string) error {
	cartItem := &model.CartItem{
		ID:       uuid.NewString(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(cartItem).Error
}

func (r *cartRepoImpl) FindByID(ctx context.Context, cartItemID string) (*model.CartItem, error) {
	var cartItem model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("id = ?", cartItemID).
		First(&cartItem).Error

	if err != nil {
		return nil, translateNotFound(err)
	}

	return &cartItem, nil
}

func (r *cartRepoImpl) FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.CartItem, error) {
	var cartItem model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&cartItem).Error

	if err != nil {
		return nil, translateNotFound(err)
	}

	return &cartItem, nil
}

func (r *cartRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.CartItem, error) {
	var cartItems []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&cartItems).Error

	if err != nil {
		return nil, err
	}

	return cartItems, nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, cartItemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", cartItemID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) DeleteByIDs(ctx context.Context, cartItemIDs []string) error {
	if len(cartItemIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ?", cartItemIDs).
		Delete(&model.CartItem{}).Error
}
