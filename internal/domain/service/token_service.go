package service

import (
	"strconv"
	"time"

	"internova/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the fixed lifetime of an issued access token.
const AccessTokenTTL = 8 * time.Hour

// Claims defines the custom claims carried by access tokens.
// The account ID travels in the registered "sub" claim.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the subject back into the account's surrogate key.
func (c *Claims) AccountID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a new access token for the account.
	Issue(accountID int64, email string, role entity.Role) (string, error)

	// Validate checks signature, issuer, audience and expiry.
	// Every failure is reported as domainerrors.ErrInvalidToken.
	Validate(tokenString string) (*Claims, error)
}
