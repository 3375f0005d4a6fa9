// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"internova/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists accounts. Email uniqueness is enforced by the store.
type AccountRepository interface {
	// FindByEmail looks up an account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts the account and fills in its generated ID.
	// A duplicate email surfaces as domainerrors.ErrEmailAlreadyRegistered.
	Create(ctx context.Context, account *entity.Account) error
}
