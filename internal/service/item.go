package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/auth"
	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

type ItemList struct {
	Items []*model.Item `json:"items"`
	Total int64         `json:"total"`
}

type ItemService interface {
	Create(ctx context.Context, caller *model.User, req *dto.CreateItemRequest) (*model.Item, error)
	Get(ctx context.Context, itemID string) (*model.Item, error)
	List(ctx context.Context, offset, limit int) (*ItemList, error)
	Update(ctx context.Context, caller *model.User, itemID string, req *dto.UpdateItemRequest) (*model.Item, error)
	Delete(ctx context.Context, caller *model.User, itemID string) error
}

type itemServiceImpl struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemServiceImpl{
		itemRepo: itemRepo,
	}
}

func (s *itemServiceImpl) Create(ctx context.Context, caller *model.User, req *dto.CreateItemRequest) (*model.Item, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if req.Title == "" || req.Price < 0 {
		return nil, fmt.Errorf("%w: item needs a title and a non-negative price", apperr.ErrValidation)
	}

	ownerID := caller.ID
	item := &model.Item{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		LargeImage:  req.LargeImage,
		Price:       req.Price,
		UserID:      &ownerID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func (s *itemServiceImpl) Get(ctx context.Context, itemID string) (*model.Item, error) {
	return s.itemRepo.FindByID(ctx, itemID)
}

func (s *itemServiceImpl) List(ctx context.Context, offset, limit int) (*ItemList, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.itemRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ItemList{Items: items, Total: total}, nil
}

func (s *itemServiceImpl) Update(ctx context.Context, caller *model.User, itemID string, req *dto.UpdateItemRequest) (*model.Item, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnershipOr(caller, item, model.PermissionItemUpdate); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.LargeImage != nil {
		updates["large_image"] = *req.LargeImage
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", apperr.ErrValidation)
		}
		updates["price"] = *req.Price
	}
	if len(updates) == 0 {
		return item, nil
	}

	return s.itemRepo.Update(ctx, itemID, updates)
}

func (s *itemServiceImpl) Delete(ctx context.Context, caller *model.User, itemID string) error {
	if caller == nil {
		return apperr.ErrUnauthenticated
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.requireOwnershipOr(caller, item, model.PermissionItemDelete); err != nil {
		return err
	}

	return s.itemRepo.Delete(ctx, itemID)
}

// requireOwnershipOr passes when the caller owns the item or holds one of the
// required roles (ADMIN always passes). Ownership is re-derived from the
// stored row, never from caller-supplied fields.
func (s *itemServiceImpl) requireOwnershipOr(caller *model.User, item *model.Item, required ...model.Permission) error {
	if item.UserID != nil && *item.UserID == caller.ID {
		return nil
	}
	return auth.Require(caller, required...)
}
