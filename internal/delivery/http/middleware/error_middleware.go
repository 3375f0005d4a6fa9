package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "internova/internal/delivery/context"
	"internova/internal/delivery/http/response"
	domainerrors "internova/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders err as the response envelope. It is installed as
// echo's HTTPErrorHandler. Internal failures are logged in full and reach the
// client with a generic message only.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPCode()
		details := appErr.Details()

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("kind", appErr.Kind().String()),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.Any("error", err),
			)

			details = ""
		}

		m.write(c, response.Error(c, status, appErr.ErrorCode(), appErr.Message(), details))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("HTTP error", slog.Int("status", httpErr.Code), slog.Any("error", err))
		}

		m.write(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	m.write(c, response.Error(c,
		http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(),
		"",
	))
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
