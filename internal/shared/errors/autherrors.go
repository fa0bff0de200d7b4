package errors

import "net/http"

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeEmailNotConfirmed  ErrorType = "email_not_confirmed"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError is an authentication failure. ShouldLog is false for failures
// that are expected during normal use, such as a mistyped password.
type AuthError struct {
	*AppError
	ShouldLog bool
}

func (e *AuthError) Error() string { return e.AppError.Error() }

func (e *AuthError) Unwrap() error { return e.AppError }

// NewNotAuthenticatedError is returned by operations that need a session.
func NewNotAuthenticatedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		},
	}
}

func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
	}
}

func NewEmailNotConfirmedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeEmailNotConfirmed,
			Message: "Email Not Confirmed",
			Code:    http.StatusForbidden,
			Details: "Please check your email and click the confirmation link before logging in.",
		},
	}
}

func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionExpired,
			Message: "Session has expired",
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
	}
}

func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid " + tokenType,
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: true,
	}
}
