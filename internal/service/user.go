package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/auth"
	"storefront-backend/internal/client"
	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

const (
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

type UserService interface {
	// Signup creates the user and returns it with a fresh session token.
	Signup(ctx context.Context, req *dto.SignupRequest) (*model.User, string, error)
	Signin(ctx context.Context, req *dto.SigninRequest) (*model.User, string, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context, caller *model.User) ([]*model.User, error)
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*model.User, string, error)
	// UpdatePermissions replaces the target's permission set with exactly the
	// supplied set, not a merge.
	UpdatePermissions(ctx context.Context, caller *model.User, req *dto.UpdatePermissionsRequest) (*model.User, error)
}

type userServiceImpl struct {
	userRepo    repository.UserRepository
	hasher      *auth.Hasher
	sessions    *auth.Sessions
	mailer      client.Mailer
	frontendURL string
}

func NewUserService(
	userRepo repository.UserRepository,
	hasher *auth.Hasher,
	sessions *auth.Sessions,
	mailer client.Mailer,
	frontendURL string,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		hasher:      hasher,
		sessions:    sessions,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

func (s *userServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("%w: email %s is already taken", apperr.ErrValidation, email)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Permissions:  model.PermissionSet{model.PermissionUser},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userServiceImpl) Signin(ctx context.Context, req *dto.SigninRequest) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: no such user found for email %s", apperr.ErrNotFound, email)
		}
		return nil, "", err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid password", apperr.ErrUnauthenticated)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userServiceImpl) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	return s.userRepo.FindByID(ctx, userID)
}

func (s *userServiceImpl) ListUsers(ctx context.Context, caller *model.User) ([]*model.User, error) {
	if err := auth.Require(caller, model.PermissionAdmin, model.PermissionPermissionUpdate); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) RequestReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("%w: no such user found for email %s", apperr.ErrNotFound, email)
		}
		return err
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	resetToken := hex.EncodeToString(raw)
	expiry := time.Now().Add(resetTokenTTL)

	if err := s.userRepo.SetResetToken(ctx, user.ID, resetToken, expiry); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	body := client.WrapEmail(fmt.Sprintf(
		`Your password reset token is here!
		<br/>
		<a href="%s/reset?resetToken=%s">Click here to reset your password</a>`,
		s.frontendURL, resetToken,
	))
	if err := s.mailer.Send(user.Email, "Your Password Reset Token", body); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	return nil
}

func (s *userServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*model.User, string, error) {
	if req.Password != req.ConfirmPassword {
		return nil, "", fmt.Errorf("%w: passwords don't match", apperr.ErrValidation)
	}

	// recency window: the stored expiry must be no older than one hour ago
	user, err := s.userRepo.FindByResetToken(ctx, req.ResetToken, time.Now().Add(-resetTokenTTL))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrInvalidOrExpiredToken
		}
		return nil, "", err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}

	// new hash in, both token fields out, one update
	if err := s.userRepo.ResetPassword(ctx, user.ID, hash); err != nil {
		return nil, "", fmt.Errorf("store new password: %w", err)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	updated, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return updated, token, nil
}

func (s *userServiceImpl) UpdatePermissions(ctx context.Context, caller *model.User, req *dto.UpdatePermissionsRequest) (*model.User, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if err := auth.Require(caller, model.PermissionAdmin, model.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	if len(req.Permissions) == 0 {
		return nil, fmt.Errorf("%w: permission set must not be empty", apperr.ErrValidation)
	}
	permissions := make(model.PermissionSet, 0, len(req.Permissions))
	for _, raw := range req.Permissions {
		p, err := model.ParsePermission(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, err)
		}
		permissions = append(permissions, p)
	}

	target, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.ReplacePermissions(ctx, target.ID, permissions); err != nil {
		return nil, fmt.Errorf("replace permissions: %w", err)
	}

	return s.userRepo.FindByID(ctx, target.ID)
}
