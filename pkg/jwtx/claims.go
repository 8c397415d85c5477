package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for issued tokens. Tokens are
// bearer credentials with no revocation path, so they stay short-lived.
const DefaultAccessTokenTTL = time.Hour

// UserClaim is the only identity material a token carries. Name and email are
// deliberately excluded to keep the token surface minimal.
type UserClaim struct {
	ID string `json:"id"`
}

// Claims are the token claims issued by the service: a user id wrapped in a
// "user" object plus the registered iat/exp pair.
type Claims struct {
	jwt.RegisteredClaims

	User UserClaim `json:"user"`
}

// NewAccessClaims builds minimally-correct claims for a user id with an
// absolute expiry of now + ttl.
func NewAccessClaims(userID string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		User: UserClaim{ID: userID},
	}
}
