package entity

import (
	"strings"
	"time"
)

// Account is a registered identity. It is created once and never mutated here.
type Account struct {
	ID           int64     // Surrogate key assigned by the store.
	FullName     string    // Trimmed display name, at most 200 characters.
	Email        string    // Normalized (trimmed, lower-cased) login identifier.
	PasswordHash string    // Output of the password hasher, never the raw password.
	Role         Role      // Student, Company or Admin.
	CreatedAt    time.Time // Set once at creation.
}

// NormalizeEmail trims and lower-cases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
