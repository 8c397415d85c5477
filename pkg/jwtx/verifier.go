package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// Verifier validates a token and gives you back the claims if it's legit.
// No endpoint in the service verifies tokens today; the verifier exists for
// tests and for downstream consumers holding the shared secret.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256Verifier validates tokens signed with HMAC-SHA256.
type HS256Verifier struct {
	secret []byte

	// Clock overrides the time source used for exp validation. Nil means
	// time.Now. Exists so tests can walk the clock past the expiry.
	Clock func() time.Time
}

// NewVerifierHS256 creates a verifier over the shared signing secret.
func NewVerifierHS256(secret []byte) *HS256Verifier {
	return &HS256Verifier{secret: secret}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	clock := v.Clock
	if clock == nil {
		clock = time.Now
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(clock),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		}
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("jwtx: invalid token claims")
	}

	return *claims, nil
}
