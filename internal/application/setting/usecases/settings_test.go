package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
)

var session = &authorization.Session{UserID: 3, AuthUserID: "auth-3"}

func newUserRepo() *mockUserRepository {
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(), nil
		},
	}
}

func TestGetSettingsUseCase_Execute_Defaults(t *testing.T) {
	queries := querytest.NewRecorder()
	uc := NewGetSettingsUseCase(newUserRepo(), &mockSettingRepository{}, queries, logger.NewNop())

	got, err := uc.Execute(context.Background(), session)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", got.Profile.Name)
	assert.Equal(t, "john@example.com", got.Profile.Email)
	assert.Equal(t, "Acme Corp", got.Profile.Company)
	assert.True(t, got.Notifications.EmailNotifications)
	assert.True(t, got.Notifications.DealAlerts)
	assert.True(t, got.UI.SidebarOpen)
	assert.Equal(t, "system", got.UI.Theme)
	assert.Equal(t, []query.Key{query.SettingsKey("auth-3")}, queries.Fetched())
}

func TestGetSettingsUseCase_Execute_RequiresSession(t *testing.T) {
	uc := NewGetSettingsUseCase(newUserRepo(), &mockSettingRepository{}, querytest.NewRecorder(), logger.NewNop())

	_, err := uc.Execute(context.Background(), nil)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestUpdateSettingsUseCase_Execute_Toggles(t *testing.T) {
	var saved *setting.UserSettings
	settings := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, s *setting.UserSettings) error {
			saved = s
			return nil
		},
	}
	userUpdated := false
	users := newUserRepo()
	users.UpdateFunc = func(ctx context.Context, u *user.User) error {
		userUpdated = true
		return nil
	}
	tx := &mockTransactor{}
	queries := querytest.NewRecorder()

	uc := NewUpdateSettingsUseCase(users, settings, tx, queries, logger.NewNop())
	result, err := uc.Execute(context.Background(), UpdateSettingsCommand{
		Session:     session,
		DealAlerts:  boolPtr(false),
		SidebarOpen: boolPtr(false),
		Theme:       strPtr("dark"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Settings saved", result.Message)
	require.NotNil(t, saved)
	assert.False(t, saved.DealAlerts())
	assert.True(t, saved.EmailNotifications())
	assert.False(t, saved.SidebarOpen())
	assert.Equal(t, setting.ThemeDark, saved.Theme())
	assert.False(t, userUpdated)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, [][]query.Key{{query.SettingsKey("auth-3")}}, queries.Invalidations())
}

func TestUpdateSettingsUseCase_Execute_Profile(t *testing.T) {
	var updated *user.User
	users := newUserRepo()
	users.UpdateFunc = func(ctx context.Context, u *user.User) error {
		updated = u
		return nil
	}
	queries := querytest.NewRecorder()

	uc := NewUpdateSettingsUseCase(users, &mockSettingRepository{}, &mockTransactor{}, queries, logger.NewNop())
	result, err := uc.Execute(context.Background(), UpdateSettingsCommand{
		Session: session,
		Name:    strPtr("Jane Doe"),
		Email:   strPtr("jane@example.com"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "Jane Doe", updated.Name())
	assert.Equal(t, "jane@example.com", updated.Email().String())
	assert.Equal(t, "Acme Corp", updated.Company())
	assert.Equal(t, "Jane Doe", result.Settings.Profile.Name)
	assert.Equal(t, []query.Key{query.SettingsKey("auth-3"), query.UserProfileKey("auth-3")}, queries.InvalidatedKeys())
}

func TestUpdateSettingsUseCase_Execute_Rejected(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateSettingsCommand
	}{
		{name: "bad theme", cmd: UpdateSettingsCommand{Session: session, Theme: strPtr("neon")}},
		{name: "bad email", cmd: UpdateSettingsCommand{Session: session, Email: strPtr("not-an-email")}},
		{name: "blank name", cmd: UpdateSettingsCommand{Session: session, Name: strPtr("  ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &mockTransactor{}
			queries := querytest.NewRecorder()
			uc := NewUpdateSettingsUseCase(newUserRepo(), &mockSettingRepository{}, tx, queries, logger.NewNop())

			_, err := uc.Execute(context.Background(), tt.cmd)

			assert.True(t, apperrors.IsValidationError(err), "got %v", err)
			assert.Zero(t, tx.calls)
			assert.Empty(t, queries.Invalidations())
		})
	}
}

func TestUpdateSettingsUseCase_Execute_StoreFailure(t *testing.T) {
	settings := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, s *setting.UserSettings) error {
			return errors.New("disk full")
		},
	}
	queries := querytest.NewRecorder()
	uc := NewUpdateSettingsUseCase(newUserRepo(), settings, &mockTransactor{}, queries, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateSettingsCommand{Session: session, DealAlerts: boolPtr(true)})

	require.Error(t, err)
	assert.Equal(t, "Failed to save settings: disk full", apperrors.GetAppError(err).Message)
	assert.Empty(t, queries.Invalidations())
}
