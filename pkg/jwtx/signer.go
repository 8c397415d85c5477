package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret reports an unconfigured signing secret.
var ErrNoSecret = errors.New("jwtx: signing secret is empty")

// Signer is our interface for anything that can sign token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer signs tokens with HMAC-SHA256 over a server-held shared secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. The secret must be non-empty;
// issuing unsigned or trivially-forgeable tokens is never acceptable.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &HS256Signer{secret: secret}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check that we actually have a secret.
func (s *HS256Signer) Validate() error {
	if len(s.secret) == 0 {
		return ErrNoSecret
	}
	return nil
}
