package validator

import (
	"testing"

	domainerrors "internova/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&loginBody{Email: "jane@uni.edu", Password: "Secret123"}))

	err := v.Validate(&loginBody{Email: "jane@uni.edu"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "password failed 'required'", appErr.Details())
}

func TestCustomValidator_ReportsEveryField(t *testing.T) {
	err := New().Validate(&loginBody{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "email failed 'required'")
	assert.Contains(t, appErr.Details(), "password failed 'required'")
}
