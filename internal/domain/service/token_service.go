package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for access-token handling.
// Only HMAC access tokens exist here; session issuance lives outside
// this system.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the subject.
	GenerateAccessToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateAccessToken checks the validity of an access token string.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)
}
