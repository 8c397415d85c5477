package service

import (
	"errors"
	"testing"
	"time"

	"github.com/quietgrove/gatehouse/internal/domain"
	"github.com/quietgrove/gatehouse/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Issue(t *testing.T) {
	secret := []byte("test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	svc := &TokenService{Signer: signer, AccessTTL: time.Hour}
	user := domain.User{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Name: "Ann", Email: "ann@x.com"}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtx.NewVerifierHS256(secret).Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.User.ID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	// Name and email stay out of the token on purpose; the id is the only
	// identity field the claims can carry.
	require.Empty(t, claims.Subject)
	require.Empty(t, claims.Issuer)
}

func TestTokenService_IssueWithoutSigner(t *testing.T) {
	svc := &TokenService{}

	_, err := svc.Issue(domain.User{ID: "some-id"})
	require.ErrorIs(t, err, ErrSigningUnavailable)
}

func TestTokenService_IssueDefaultsTTL(t *testing.T) {
	secret := []byte("test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	svc := &TokenService{Signer: signer} // no TTL set

	token, err := svc.Issue(domain.User{ID: "some-id"})
	require.NoError(t, err)

	claims, err := jwtx.NewVerifierHS256(secret).Verify(token)
	require.NoError(t, err)
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultAccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

type failingSigner struct{}

func (failingSigner) Alg() string                      { return "HS256" }
func (failingSigner) Sign(jwtx.Claims) (string, error) { return "", errors.New("hmac broke") }
func (failingSigner) Validate() error                  { return nil }

func TestTokenService_IssueSignerFailure(t *testing.T) {
	svc := &TokenService{Signer: failingSigner{}}

	_, err := svc.Issue(domain.User{ID: "some-id"})
	require.ErrorIs(t, err, ErrSigningUnavailable)
}
