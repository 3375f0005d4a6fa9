// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"internova/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's ID.
type RegisterOutput struct {
	AccountID int64
}

// LoginOutput returns the issued access token and the caller's identity.
type LoginOutput struct {
	Token     string
	AccountID int64
	Email     string
	Role      entity.Role
}

// AuthUsecase defines registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
