// Package cryptox holds the password hashing primitives for the service.
// Hashing is deliberately slow so that stored credentials resist offline
// brute force even if the database leaks.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost factor. It is a tunable constant, never derived
// from input. Cost 10 puts a single hash in the tens-of-milliseconds range.
const HashCost = 10

// ErrMismatch reports that a plaintext password does not match a stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword returns the bcrypt encoding of password, which embeds a fresh
// random per-record salt alongside the cost parameters. Hashing the same
// password twice yields two different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt-encoded hash.
// The comparison recomputes the hash with the stored salt and cost; it never
// decrypts anything. Returns ErrMismatch on any mismatch.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
