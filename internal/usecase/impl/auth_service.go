// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	deliverycontext "internova/internal/delivery/context"
	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/repository"
	"internova/internal/domain/service"
	"internova/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxFullNameLength = 200
	maxEmailLength    = 320
	minPasswordLength = 6
	// bcrypt refuses longer inputs.
	maxPasswordBytes = 72

	// decoyPassword is hashed once to give unknown-email logins a hash to compare against.
	decoyPassword = "internova-login-decoy"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the request, rejects known emails and creates the account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	fullName := strings.TrimSpace(input.FullName)
	email := entity.NormalizeEmail(input.Email)

	role, err := srv.validateRegistration(fullName, email, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("role", role.Role().String()))

	existing, err := srv.accountRepo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, domainerrors.ErrEmailAlreadyRegistered
	case err != nil && !errors.Is(err, repository.ErrAccountNotFound):
		srv.log(ctx).Error("Failed to look up account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role.Role(),
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index decides races the pre-check above cannot see.
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Info("Duplicate registration rejected by store", slog.String("email", email))

			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		srv.log(ctx).Error("Failed to create account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", account.ID))

	return &usecase.RegisterOutput{AccountID: account.ID}, nil
}

func (srv *authService) validateRegistration(fullName, email, password, role string) (entity.SelfServiceRole, error) {
	if fullName == "" || utf8.RuneCountInString(fullName) > maxFullNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("fullName is required and must be at most 200 characters")
	}

	if len(email) > maxEmailLength || srv.validate.Var(email, "required,email") != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("email must be a valid address")
	}

	if utf8.RuneCountInString(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return "", domainerrors.ErrValidationFailed.WithDetails("password must be between 6 and 72 characters")
	}

	selfServiceRole, ok := entity.ParseSelfServiceRole(role)
	if !ok {
		return "", domainerrors.ErrRoleNotSelfService
	}

	return selfServiceRole, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.compareDecoy(ctx, input.Password)
			srv.log(ctx).Info("Login failed", slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("reason", "password mismatch"), slog.Int64("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:     token,
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
	}, nil
}

// compareDecoy spends one hash comparison on an unknown email so its latency
// matches a wrong password for an existing account.
func (srv *authService) compareDecoy(ctx context.Context, password string) {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to prepare decoy hash", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})

	if srv.decoyHash != "" {
		_ = srv.hasher.Check(password, srv.decoyHash)
	}
}
