package jwt

import (
	"time"
)

// Maker describes the interface for generating and parsing tokens.
type Maker interface {
	// GenerateToken signs a token carrying user id, email and role.
	GenerateToken(userID, email, role string) (string, error)
	// ParseToken returns the *CustomClaims embedded in a valid token.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with a secret key and a token lifetime.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker creates a MakerImpl from the secret key and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
