package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
)

var johnSession = &authorization.Session{UserID: 3, AuthUserID: "auth-3"}

func TestGetPersonalInfoUseCase_Execute(t *testing.T) {
	queries := querytest.NewRecorder()
	uc := NewGetPersonalInfoUseCase(newMemoryUserRepository(testUser(true)), queries, logger.NewNop())

	got, err := uc.Execute(context.Background(), johnSession)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "JD", got.Initials)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "Personal Account", got.AccountTypeLabel)
	assert.Equal(t, []query.Key{query.UserProfileKey("auth-3")}, queries.Fetched())
}

func TestGetPersonalInfoUseCase_Execute_UnknownUser(t *testing.T) {
	uc := NewGetPersonalInfoUseCase(newMemoryUserRepository(), querytest.NewRecorder(), logger.NewNop())

	_, err := uc.Execute(context.Background(), johnSession)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetCurrentUserUseCase_Execute(t *testing.T) {
	queries := querytest.NewRecorder()
	uc := NewGetCurrentUserUseCase(newMemoryUserRepository(testUser(true)), queries, logger.NewNop())

	got, err := uc.Execute(context.Background(), johnSession)
	require.NoError(t, err)
	assert.Equal(t, "auth-3", got.AuthUserID)
	assert.Equal(t, []query.Key{query.CurrentUserKey("auth-3")}, queries.Fetched())

	_, err = uc.Execute(context.Background(), nil)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestUpdatePersonalInfoUseCase_Execute(t *testing.T) {
	users := newMemoryUserRepository(testUser(true))
	queries := querytest.NewRecorder()
	uc := NewUpdatePersonalInfoUseCase(users, queries, logger.NewNop())

	result, err := uc.Execute(context.Background(), UpdatePersonalInfoCommand{
		Session: johnSession,
		Name:    "  Johnny Appleseed ",
		Phone:   "555-0199",
	})
	require.NoError(t, err)

	assert.Equal(t, "Profile updated", result.Title)
	assert.Equal(t, "Your changes have been saved.", result.Message)
	assert.Equal(t, "Johnny Appleseed", result.Profile.Name)
	assert.Equal(t, "JA", result.Profile.Initials)
	assert.Equal(t, 1, users.updates)
	assert.Contains(t, queries.InvalidatedKeys(), query.UserProfileKey("auth-3"))
}

func TestUpdatePersonalInfoUseCase_Execute_BlankName(t *testing.T) {
	users := newMemoryUserRepository(testUser(true))
	queries := querytest.NewRecorder()
	uc := NewUpdatePersonalInfoUseCase(users, queries, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdatePersonalInfoCommand{Session: johnSession, Name: "   "})
	assert.True(t, apperrors.IsValidationError(err))
	assert.Zero(t, users.updates)
	assert.Empty(t, queries.Invalidations())
}

func TestUpdatePersonalInfoUseCase_Execute_WriteFailure(t *testing.T) {
	users := newMemoryUserRepository(testUser(true))
	users.UpdateErr = assert.AnError
	queries := querytest.NewRecorder()
	uc := NewUpdatePersonalInfoUseCase(users, queries, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdatePersonalInfoCommand{Session: johnSession, Name: "John"})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetAppError(err).Message, "Update failed")
	assert.Empty(t, queries.Invalidations())
}
