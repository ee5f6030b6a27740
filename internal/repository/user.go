package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindByResetToken matches an exact token whose expiry is at or after
	// notBefore (the recency window for "not yet expired").
	FindByResetToken(ctx context.Context, token string, notBefore time.Time) (*model.User, error)
	SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error
	// ResetPassword stores the new hash and clears both reset fields in a
	// single update, so the token cannot survive a successful reset.
	ResetPassword(ctx context.Context, userID, passwordHash string) error
	ReplacePermissions(ctx context.Context, userID string, permissions model.PermissionSet) error
	List(ctx context.Context) ([]*model.User, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepoImpl) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		return nil, translateNotFound(err)
	}

	return &user, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		return nil, translateNotFound(err)
	}

	return &user, nil
}

func (r *userRepoImpl) FindByResetToken(ctx context.Context, token string, notBefore time.Time) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry >= ?", token, notBefore).
		First(&user).Error

	if err != nil {
		return nil, translateNotFound(err)
	}

	return &user, nil
}

func (r *userRepoImpl) SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error {
	return r.updateUser(ctx, userID, map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	})
}

func (r *userRepoImpl) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	return r.updateUser(ctx, userID, map[string]interface{}{
		"password_hash":      passwordHash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	})
}

func (r *userRepoImpl) ReplacePermissions(ctx context.Context, userID string, permissions model.PermissionSet) error {
	value, err := permissions.Value()
	if err != nil {
		return err
	}
	return r.updateUser(ctx, userID, map[string]interface{}{
		"permissions": value,
	})
}

func (r *userRepoImpl) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepoImpl) updateUser(ctx context.Context, userID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// translateNotFound keeps gorm sentinels out of the service layer.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
