package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/shared/errors"
)

type signupInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		err := ValidateStruct(signupInput{Email: "sarah.j@acmecorp.com", Password: "secret1", ConfirmPassword: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := ValidateStruct(signupInput{Email: "not-an-email", Password: "abc"})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Details, "email must be a valid email address")
		assert.Contains(t, appErr.Details, "password must be at least 6 characters long")
		assert.Contains(t, appErr.Details, "confirm_password is required")
	})
}
