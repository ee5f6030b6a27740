package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"storefront-backend/internal/apperr"
)

// SessionClaims carries the authenticated user id. The token itself has no
// in-band expiry; the session cookie's max-age is the only lifetime bound.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Sessions issues and verifies HS256-signed session tokens.
type Sessions struct {
	secret []byte
}

func NewSessions(appSecret string) *Sessions {
	return &Sessions{secret: []byte(appSecret)}
}

// Issue signs a fresh session token for userID.
func (s *Sessions) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning the embedded user
// id. Any parse or signature failure maps to ErrUnauthenticated.
func (s *Sessions) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", apperr.ErrUnauthenticated
	}
	return claims.UserID, nil
}
