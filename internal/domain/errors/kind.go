package errors

import (
	"net/http"

	"internova/internal/errors"
)

// Kind classifies a failure so callers can branch without reading messages.
type Kind int

const (
	// KindUnknown is any error that carries no AppError in its chain.
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindForbidden
	KindNotFound
	KindTransient
	KindFatalConfig
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindTransient:
		return "transient"
	case KindFatalConfig:
		return "fatal_config"
	default:
		return "unknown"
	}
}

// HTTPCode maps the kind onto a response status.
func (k Kind) HTTPCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first AppError in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnknown
}
