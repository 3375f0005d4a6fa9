package repository

import (
	"context"
	"errors"

	"internova/internal/domain/entity"
)

// ErrStudentProfileNotFound is returned when an account has no profile yet.
var ErrStudentProfileNotFound = errors.New("student profile not found")

// StudentProfileRepository persists at most one profile per account.
type StudentProfileRepository interface {
	// FindByAccountID returns the profile owned by accountID.
	FindByAccountID(ctx context.Context, accountID int64) (*entity.StudentProfile, error)

	// Upsert inserts the profile or replaces every mutable field of the
	// existing one in a single atomic statement. The stored record is
	// returned; on update it keeps the original ID and CreatedAt.
	Upsert(ctx context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error)
}
