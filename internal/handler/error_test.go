package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/logger"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(logger.New("error", "text"))(err, c)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHTTPErrorHandler_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", apperr.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden wrapped", fmt.Errorf("%w: not yours", apperr.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"not found", apperr.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"validation", fmt.Errorf("%w: passwords don't match", apperr.ErrValidation), http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
		{"payment failed", fmt.Errorf("%w: declined", apperr.ErrPaymentFailed), http.StatusPaymentRequired, "PAYMENT_FAILED"},
		{"empty cart", apperr.ErrEmptyCart, http.StatusConflict, "EMPTY_CART"},
		{"reset token", apperr.ErrInvalidOrExpiredToken, http.StatusGone, "INVALID_OR_EXPIRED_TOKEN"},
		{"echo http error", echo.NewHTTPError(http.StatusBadRequest, "bad body"), http.StatusBadRequest, "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := respondWith(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestHTTPErrorHandler_ReconciliationIsDistinct(t *testing.T) {
	recErr := &apperr.ReconciliationError{
		UserID:   "user-1",
		ChargeID: "tx-9",
		Amount:   5500,
		Err:      errors.New("order write failed"),
	}

	rec, body := respondWith(t, recErr)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "RECONCILIATION_REQUIRED", body.Code)
	// the charge reference survives for the operator trail
	assert.Contains(t, body.Error, "tx-9")
}

func TestHTTPErrorHandler_HidesInternals(t *testing.T) {
	rec, body := respondWith(t, errors.New("pq: secret table missing"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "internal server error", body.Error)
}
