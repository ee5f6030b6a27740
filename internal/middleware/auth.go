package middleware

import (
	"github.com/labstack/echo/v4"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "token"

const (
	userIDKey = "user_id"
	userKey   = "current_user"
)

// Auth populates the request with the session's user when a valid cookie is
// present. It never rejects: operations that need authentication check for
// themselves, the rest stay anonymous-friendly.
func Auth(sessions *auth.Sessions, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			userID, err := sessions.Verify(cookie.Value)
			if err != nil {
				return next(c)
			}
			c.Set(userIDKey, userID)

			if user, err := userRepo.FindByID(c.Request().Context(), userID); err == nil {
				c.Set(userKey, user)
			}

			return next(c)
		}
	}
}

// UserID returns the authenticated user's id, or "" for anonymous requests.
func UserID(c echo.Context) string {
	if id, ok := c.Get(userIDKey).(string); ok {
		return id
	}
	return ""
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *model.User {
	if user, ok := c.Get(userKey).(*model.User); ok {
		return user
	}
	return nil
}
