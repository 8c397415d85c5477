package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"short password", "secret"},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// bcrypt modular crypt format with our cost baked in
			require.True(t, strings.HasPrefix(hash, "$2a$10$"),
				"hash should be bcrypt-encoded with cost 10")

			// the encoding must never contain the plaintext
			require.NotContains(t, hash, tt.password)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, HashCost, cost)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, err := HashPassword(password)
	require.NoError(t, err)

	// Each hash embeds a fresh random salt
	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")

	// Both still verify against the original password
	require.NoError(t, VerifyPassword(password, hash1))
	require.NoError(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := VerifyPassword("wrong password", hash)
		require.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("empty password", func(t *testing.T) {
		err := VerifyPassword("", hash)
		require.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("garbage hash", func(t *testing.T) {
		err := VerifyPassword("whatever", "not-a-bcrypt-hash")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrMismatch)
	})
}
