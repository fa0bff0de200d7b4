package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
)

func TestListDevicesUseCase_Execute_ScopedToOrganisation(t *testing.T) {
	var gotOrg *string
	repo := &mockDeviceRepository{
		ListFunc: func(ctx context.Context, organisationID *string) ([]*device.Device, error) {
			gotOrg = organisationID
			return []*device.Device{testDevice("org-1")}, nil
		},
	}
	queries := querytest.NewRecorder()
	uc := NewListDevicesUseCase(repo, queries, logger.NewNop())

	got, err := uc.Execute(context.Background(), orgSession)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Front Desk PC", got[0].Name)
	assert.Equal(t, "org-1", *gotOrg)
	assert.Equal(t, []query.Key{query.OrganisationDevicesKey("org-1")}, queries.Fetched())
}

func TestListDevicesUseCase_Execute_WithoutOrganisation(t *testing.T) {
	called := false
	repo := &mockDeviceRepository{
		ListFunc: func(ctx context.Context, organisationID *string) ([]*device.Device, error) {
			called = true
			assert.Nil(t, organisationID)
			return nil, nil
		},
	}
	queries := querytest.NewRecorder()
	uc := NewListDevicesUseCase(repo, queries, logger.NewNop())

	session := &authorization.Session{UserID: 4, AuthUserID: "auth-4"}
	got, err := uc.Execute(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, called)
	assert.Equal(t, []query.Key{query.DevicesKey()}, queries.Fetched())
}

func TestListActionsUseCase_Execute(t *testing.T) {
	d := testDevice("org-1")
	actions := &mockActionRepository{
		ListByDeviceFunc: func(ctx context.Context, deviceID string) ([]*device.Action, error) {
			return []*device.Action{
				device.ReconstructAction(2, deviceID, strPtr("org-1"), device.ActionRunCommand,
					map[string]any{"command": "hostname"}, "auth-3", device.ActionStatusPending, baseTime),
				device.ReconstructAction(1, deviceID, strPtr("org-1"), device.ActionLock,
					nil, "auth-3", device.ActionStatusCompleted, baseTime),
			}, nil
		},
	}
	queries := querytest.NewRecorder()
	uc := NewListActionsUseCase(deviceRepoWith(d), actions, queries, logger.NewNop())

	got, err := uc.Execute(context.Background(), ListActionsQuery{DeviceID: "dev_1", Session: orgSession})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Run Command", got[0].ActionLabel)
	assert.Equal(t, "hostname", got[0].Payload["command"])
	assert.Equal(t, map[string]any{}, got[1].Payload)
	assert.Equal(t, []query.Key{query.DeviceActionsForKey("dev_1")}, queries.Fetched())

	_, err = uc.Execute(context.Background(), ListActionsQuery{DeviceID: "dev_1"})
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestGetCatalogUseCase_Execute_MenuOrder(t *testing.T) {
	catalog := NewGetCatalogUseCase().Execute(context.Background())

	var order [][]string
	for _, group := range catalog.Groups {
		var types []string
		for _, item := range group {
			types = append(types, item.Type)
		}
		order = append(order, types)
	}
	assert.Equal(t, [][]string{
		{"scan_updates", "install_updates"},
		{"run_command", "push_wallpaper"},
		{"lock", "reboot", "shutdown"},
	}, order)
	assert.True(t, catalog.Groups[2][1].RequiresConfirmation)
	assert.False(t, catalog.Groups[0][0].RequiresConfirmation)
}
