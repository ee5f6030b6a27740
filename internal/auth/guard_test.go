package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		required []model.Permission
		wantErr  error
	}{
		{
			name:    "nil user is unauthenticated",
			user:    nil,
			wantErr: apperr.ErrUnauthenticated,
		},
		{
			name:     "intersecting set passes",
			user:     &model.User{Permissions: model.PermissionSet{model.PermissionUser, model.PermissionItemDelete}},
			required: []model.Permission{model.PermissionItemDelete},
		},
		{
			name:     "admin overrides any gate",
			user:     &model.User{Permissions: model.PermissionSet{model.PermissionAdmin}},
			required: []model.Permission{model.PermissionPermissionUpdate},
		},
		{
			name:     "disjoint set is forbidden",
			user:     &model.User{Permissions: model.PermissionSet{model.PermissionUser}},
			required: []model.Permission{model.PermissionItemDelete},
			wantErr:  apperr.ErrForbidden,
		},
		{
			name:    "empty requirement without admin is forbidden",
			user:    &model.User{Permissions: model.PermissionSet{model.PermissionUser}},
			wantErr: apperr.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.user, tt.required...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
