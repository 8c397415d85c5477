package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/quietgrove/gatehouse/internal/domain"
	"github.com/quietgrove/gatehouse/pkg/jwtx"
)

// ErrSigningUnavailable reports that no signer is configured or the signing
// primitive failed. Fatal for the request; never retried here.
var ErrSigningUnavailable = errors.New("token signing unavailable")

// TokenService mints signed, expiring tokens bound to a user identity after a
// successful registration or login. Stateless; nothing it produces is stored.
type TokenService struct {
	Signer    jwtx.Signer
	AccessTTL time.Duration
}

// Issue signs a token whose payload carries only the user's id, with an
// absolute expiry of now + AccessTTL.
func (s *TokenService) Issue(user domain.User) (string, error) {
	if s.Signer == nil {
		return "", ErrSigningUnavailable
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	token, err := s.Signer.Sign(jwtx.NewAccessClaims(user.ID, ttl, time.Now().UTC()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigningUnavailable, err)
	}
	return token, nil
}
