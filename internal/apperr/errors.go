// Package apperr defines the error taxonomy shared by services and handlers.
// Every operation returns one of these (possibly wrapped), so callers can
// always distinguish failure classes with errors.Is / errors.As.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no valid session where one is required.
	ErrUnauthenticated = errors.New("you must be logged in to do that")

	// ErrForbidden means the caller is authenticated but lacks ownership or
	// the required permission.
	ErrForbidden = errors.New("you don't have permission to do that")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the input was malformed (e.g. mismatched reset
	// passwords).
	ErrValidation = errors.New("validation failed")

	// ErrPaymentFailed means the gateway declined or errored; no persistence
	// writes were committed.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrEmptyCart means an order was attempted with nothing to charge.
	ErrEmptyCart = errors.New("cart is empty, nothing to charge")

	// ErrInvalidOrExpiredToken means the reset token is unknown, already
	// consumed, or past its expiry window.
	ErrInvalidOrExpiredToken = errors.New("this token is either invalid or expired")
)

// ReconciliationError signals a confirmed external charge with no matching
// committed local state: the order write or cart teardown failed after the
// gateway accepted the charge. It needs operator attention and must never be
// collapsed into a generic failure.
type ReconciliationError struct {
	UserID   string
	ChargeID string
	// the gateway-confirmed amount, minor units
	Amount int64
	Err    error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation required: charge %s (user %s, amount %d) has no committed order: %v",
		e.ChargeID, e.UserID, e.Amount, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
