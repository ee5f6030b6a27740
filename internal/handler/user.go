package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"
)

type UserHandler struct {
	userService      service.UserService
	cookieMaxAgeDays int
}

func NewUserHandler(userService service.UserService, cookieMaxAgeDays int) *UserHandler {
	return &UserHandler{
		userService:      userService,
		cookieMaxAgeDays: cookieMaxAgeDays,
	}
}

// setSessionCookie hands the signed token to the browser. Long-lived and
// httpOnly; the token itself carries no expiry.
func (h *UserHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   h.cookieMaxAgeDays * 24 * 60 * 60,
	})
}

func (h *UserHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.SignupRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.userService.Signup(ctx, req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Signin(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.SigninRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.userService.Signin(ctx, req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Signout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Goodbye!"})
}

func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.CurrentUser(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListUsers(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) RequestReset(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.RequestResetRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.userService.RequestReset(ctx, req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Thanks!"})
}

func (h *UserHandler) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.ResetPasswordRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.userService.ResetPassword(ctx, req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdatePermissions(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.UpdatePermissionsRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.UserID = c.Param("userID")

	user, err := h.userService.UpdatePermissions(ctx, middleware.CurrentUser(c), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
