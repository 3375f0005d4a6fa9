// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"internova/config"
	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/service"
	"internova/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte           // Symmetric key for HS256.
	issuer   string           // "iss" claim stamped and required.
	audience string           // "aud" claim stamped and required.
	ttl      time.Duration    // Lifetime of an access token.
	now      func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It refuses to build without a signing key so the process fails at start-up.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.Wrap(domainerrors.ErrFatalConfig, "jwt signing key must be provided")
	}

	issuer, audience := "", ""
	if cfg.JWT != nil {
		issuer, audience = cfg.JWT.Issuer, cfg.JWT.Audience
	}

	return &jwtService{
		secret:   []byte(cfg.SecretKey.Access),
		issuer:   issuer,
		audience: audience,
		ttl:      service.AccessTokenTTL,
		now:      time.Now,
	}, nil
}

// Issue creates a signed access token for the account.
func (s *jwtService) Issue(accountID int64, email string, role entity.Role) (string, error) {
	now := s.now()

	claims := service.Claims{
		Email: email,
		Role:  role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if s.issuer != "" {
		claims.Issuer = s.issuer
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate parses the token and checks signature, issuer, audience and expiry.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	if _, err := claims.AccountID(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "subject is not an account id")
	}
	if _, ok := entity.ParseRole(claims.Role); !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "unknown role claim")
	}

	return claims, nil
}
