package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

// ErrInvalidToken is returned when a session token cannot be verified, is
// expired, or carries malformed claims.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT identifying a logged-in user.
// The claims are the standard sub (user id), exp and iat, plus the user's
// role. The token replaces any notion of a process-wide "current user": the
// caller holds it and presents it with every request.
func NewSessionToken(secret, userID string, role model.Role, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken verifies a session token and returns the user id it was
// issued for. Expiry is enforced by the parser.
func ParseSessionToken(secret, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
