package domain

import (
	"strings"
	"time"
)

// User is the durable identity record for a registered account. The email is
// stored lowercased; it is the uniqueness key for the whole table. The
// password hash is internal state and must never be written to a response or
// a log line.
type User struct {
	ID           string
	Name         string
	Email        string // normalized (lowercase)
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email address. Every lookup and
// every write goes through this so that "A@B.com" and "a@b.com" collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
