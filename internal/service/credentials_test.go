package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quietgrove/gatehouse/internal/store"
	"github.com/quietgrove/gatehouse/internal/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestRegister_ThenAuthenticate(t *testing.T) {
	svc := &CredentialService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ann", "Ann@X.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Ann", created.Name)
	require.Equal(t, "ann@x.com", created.Email, "email is stored lowercased")
	require.False(t, created.CreatedAt.IsZero())

	// Authenticating with the original casing finds the same record.
	authed, err := svc.Authenticate(ctx, "ANN@x.COM", "secret1")
	require.NoError(t, err)
	require.Equal(t, created.ID, authed.ID)
}

func TestRegister_DuplicateEmailCollidesAcrossCasing(t *testing.T) {
	svc := &CredentialService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "A@B.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "a@b.com", "whatever1")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_StoreRejectsDuplicateBehindPrecheck(t *testing.T) {
	// Even if a row slips in after the pre-check, the unique index rejects
	// the insert and the conflict still reports as ErrEmailTaken.
	st := newTestStore(t)
	svc := &CredentialService{Store: st}
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	err = st.Users().CreateUser(ctx, created)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	st := newTestStore(t)
	svc := &CredentialService{Store: st}
	ctx := context.Background()

	const password = "hunter2hunter2"
	created, err := svc.Register(ctx, "Ann", "ann@x.com", password)
	require.NoError(t, err)

	stored, err := st.Users().GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotEqual(t, password, stored.PasswordHash)
	require.NotContains(t, stored.PasswordHash, password)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2a$"), "bcrypt encoded")
	require.Equal(t, created.PasswordHash, stored.PasswordHash)
}

func TestRegister_SaltsAreUnique(t *testing.T) {
	st := newTestStore(t)
	svc := &CredentialService{Store: st}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "samepassword")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Bob", "bob@x.com", "samepassword")
	require.NoError(t, err)

	a, err := st.Users().GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	b, err := st.Users().GetUserByEmail(ctx, "bob@x.com")
	require.NoError(t, err)

	require.NotEqual(t, a.PasswordHash, b.PasswordHash,
		"same password must hash differently per record")
}

func TestAuthenticate_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc := &CredentialService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "ann@x.com", "not-the-password")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@x.com", "secret1")

	// Both halves fail with the very same sentinel; callers cannot tell
	// which one was wrong.
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
