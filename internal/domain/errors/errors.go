package errors

import (
	"fmt"
	"net/http"

	"internova/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category callers branch on
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error. The HTTP status follows from the kind.
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors sharing the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		KindNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found.",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		KindConflict,
		"EMAIL_ALREADY_REGISTERED",
		"An account with this email address already exists.",
		"",
	)

	ErrRoleNotSelfService = NewBaseError(
		KindValidation,
		"INVALID_ROLE",
		"Role must be 'Student' or 'Company'. Admin accounts cannot be self-registered.",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		KindTransient,
		"ACCOUNT_CREATION_FAILED",
		"Failed to create account. Please try again later.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindAuthentication,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		KindAuthentication,
		"INVALID_TOKEN",
		"Invalid or expired token.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindTransient,
		"PASSWORD_HASH_FAILED",
		"Failed to process password.",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		KindTransient,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue access token.",
		"",
	)

	// Student profile errors
	ErrUniversityIDRequired = NewBaseError(
		KindValidation,
		"UNIVERSITY_ID_REQUIRED",
		"University ID is required.",
		"",
	)

	ErrGPAOutOfRange = NewBaseError(
		KindValidation,
		"GPA_OUT_OF_RANGE",
		"GPA must be between 0.00 and 4.00.",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		KindNotFound,
		"PROFILE_NOT_FOUND",
		"Student profile not found.",
		"",
	)

	ErrProfileSaveFailed = NewBaseError(
		KindTransient,
		"PROFILE_SAVE_FAILED",
		"Failed to save profile. Please try again later.",
		"",
	)

	// Resume upload errors
	ErrResumeRequired = NewBaseError(
		KindValidation,
		"RESUME_REQUIRED",
		"Resume file is required.",
		"",
	)

	ErrResumeUnsupportedType = NewBaseError(
		KindValidation,
		"RESUME_UNSUPPORTED_TYPE",
		"Only PDF files are allowed.",
		"",
	)

	ErrResumeTooLarge = NewBaseError(
		KindValidation,
		"RESUME_TOO_LARGE",
		"Resume file is too large.",
		"",
	)

	ErrResumeUploadFailed = NewBaseError(
		KindTransient,
		"RESUME_UPLOAD_FAILED",
		"Failed to upload resume. Please try again later.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindTransient,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)

	ErrFatalConfig = NewBaseError(
		KindFatalConfig,
		"FATAL_CONFIG",
		"Service is misconfigured.",
		"",
	)
)

// NewResumeTooLargeError reports the measured upload size against the limit.
func NewResumeTooLargeError(limitText, receivedText string) *BaseError {
	return NewBaseError(
		KindValidation,
		ErrResumeTooLarge.ErrorCode(),
		fmt.Sprintf("Resume file must not exceed %s. Received %s.", limitText, receivedText),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindTransient
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed. Please try again later."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
