// Package middleware holds the echo middleware specific to the HTTP delivery.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "internova/internal/delivery/context"
	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its claims.
// Missing, malformed, foreign and expired tokens all yield ErrInvalidToken.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Validate(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetClaims(c, claims)

		// Later log lines from this request carry the caller's account.
		req := c.Request()
		ctx := req.Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).With(slog.String("account_id", claims.Subject))
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireRole rejects authenticated callers whose token role differs from role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrInvalidToken
			}

			if tokenRole, ok := entity.ParseRole(claims.Role); !ok || tokenRole != role {
				return domainerrors.ErrForbidden.WithDetails("requires the " + role.String() + " role")
			}

			return next(c)
		}
	}
}
