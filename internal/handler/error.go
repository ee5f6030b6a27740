package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewHTTPErrorHandler maps the error taxonomy onto HTTP statuses so callers
// can always tell failure classes apart. ReconciliationRequired gets its own
// code because it means external money state diverges from local state.
func NewHTTPErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code := classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		}

		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		if status == http.StatusInternalServerError && code == "INTERNAL" {
			// don't leak internals on plain server errors
			message = "internal server error"
		}

		if writeErr := c.JSON(status, errorResponse{Error: message, Code: code}); writeErr != nil {
			log.Error("write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var recErr *apperr.ReconciliationError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &recErr):
		return http.StatusInternalServerError, "RECONCILIATION_REQUIRED"
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity, "VALIDATION_FAILED"
	case errors.Is(err, apperr.ErrPaymentFailed):
		return http.StatusPaymentRequired, "PAYMENT_FAILED"
	case errors.Is(err, apperr.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	case errors.Is(err, apperr.ErrInvalidOrExpiredToken):
		return http.StatusGone, "INVALID_OR_EXPIRED_TOKEN"
	case errors.As(err, &httpErr):
		return httpErr.Code, http.StatusText(httpErr.Code)
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
