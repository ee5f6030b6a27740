package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, itemID string) (*model.Item, error)
	Update(ctx context.Context, itemID string, updates map[string]interface{}) (*model.Item, error)
	Delete(ctx context.Context, itemID string) error
	List(ctx context.Context, offset, limit int) ([]*model.Item, error)
	Count(ctx context.Context) (int64, error)
}

type itemRepoImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepoImpl{
		db: db,
	}
}

func (r *itemRepoImpl) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepoImpl) FindByID(ctx context.Context, itemID string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error

	if err != nil {
		return nil, translateNotFound(err)
	}

	return &item, nil
}

func (r *itemRepoImpl) Update(ctx context.Context, itemID string, updates map[string]interface{}) (*model.Item, error) {
	result := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", itemID).
		Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}

	return r.FindByID(ctx, itemID)
}

func (r *itemRepoImpl) Delete(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.Item{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *itemRepoImpl) List(ctx context.Context, offset, limit int) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&count).Error
	return count, err
}
