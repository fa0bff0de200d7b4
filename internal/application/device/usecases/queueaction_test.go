package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/domain/device"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
)

func newQueueAction(actions *mockActionRepository, queries *querytest.Recorder) *QueueActionUseCase {
	return NewQueueActionUseCase(deviceRepoWith(testDevice("org-1")), actions, queries, logger.NewNop())
}

func TestQueueActionUseCase_Execute_QueuesImmediateAction(t *testing.T) {
	actions := &mockActionRepository{}
	queries := querytest.NewRecorder()
	uc := newQueueAction(actions, queries)

	result, err := uc.Execute(context.Background(), QueueActionCommand{
		DeviceID:   "dev_1",
		ActionType: "scan_updates",
		Session:    orgSession,
	})
	require.NoError(t, err)

	assert.False(t, result.NeedsConfirmation())
	assert.Equal(t, "Action queued for Front Desk PC", result.Message)
	require.Len(t, actions.created, 1)
	a := actions.created[0]
	assert.Equal(t, device.ActionStatusPending, a.Status())
	assert.Equal(t, "auth-3", a.InitiatedBy())
	assert.Equal(t, map[string]any{}, a.Payload())
	assert.Equal(t, "org-1", *a.OrganisationID())
	assert.Equal(t, [][]query.Key{{query.DeviceActionsKey()}}, queries.Invalidations())
}

func TestQueueActionUseCase_Execute_ConfirmationGate(t *testing.T) {
	for _, actionType := range []string{"reboot", "shutdown", "run_command", "push_wallpaper"} {
		t.Run(actionType, func(t *testing.T) {
			actions := &mockActionRepository{}
			queries := querytest.NewRecorder()
			uc := newQueueAction(actions, queries)

			result, err := uc.Execute(context.Background(), QueueActionCommand{
				DeviceID:   "dev_1",
				ActionType: actionType,
				Input:      "anything",
				Session:    orgSession,
			})
			require.NoError(t, err)
			require.True(t, result.NeedsConfirmation())
			assert.Contains(t, result.Dialog.Title, "Front Desk PC")
			assert.Empty(t, actions.created)
			assert.Empty(t, queries.Invalidations())
		})
	}
}

func TestQueueActionUseCase_Execute_RunCommandPayloadUntrimmed(t *testing.T) {
	actions := &mockActionRepository{}
	uc := newQueueAction(actions, querytest.NewRecorder())

	_, err := uc.Execute(context.Background(), QueueActionCommand{
		DeviceID:   "dev_1",
		ActionType: "run_command",
		Input:      "  Get-Process ",
		Confirmed:  true,
		Session:    orgSession,
	})
	require.NoError(t, err)
	require.Len(t, actions.created, 1)
	assert.Equal(t, map[string]any{"command": "  Get-Process "}, actions.created[0].Payload())
}

func TestQueueActionUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		cmd   QueueActionCommand
		check func(t *testing.T, err error)
	}{
		{
			name: "blank command",
			cmd:  QueueActionCommand{DeviceID: "dev_1", ActionType: "run_command", Input: "   ", Confirmed: true, Session: orgSession},
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsValidationError(err))
				assert.Equal(t, "Please enter a command", apperrors.GetAppError(err).Message)
			},
		},
		{
			name: "blank wallpaper",
			cmd:  QueueActionCommand{DeviceID: "dev_1", ActionType: "push_wallpaper", Confirmed: true, Session: orgSession},
			check: func(t *testing.T, err error) {
				assert.Equal(t, "Please enter a wallpaper URL", apperrors.GetAppError(err).Message)
			},
		},
		{
			name: "unknown type",
			cmd:  QueueActionCommand{DeviceID: "dev_1", ActionType: "format_disk", Confirmed: true, Session: orgSession},
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsValidationError(err))
			},
		},
		{
			name: "no session",
			cmd:  QueueActionCommand{DeviceID: "dev_1", ActionType: "lock"},
			check: func(t *testing.T, err error) {
				assert.Equal(t, "Not authenticated", apperrors.GetAppError(err).Message)
			},
		},
		{
			name: "unknown device",
			cmd:  QueueActionCommand{DeviceID: "dev_9", ActionType: "lock", Session: orgSession},
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsNotFoundError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := &mockActionRepository{}
			queries := querytest.NewRecorder()
			uc := newQueueAction(actions, queries)

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			tt.check(t, err)
			assert.Empty(t, actions.created)
			assert.Empty(t, queries.Invalidations())
		})
	}
}

func TestQueueActionUseCase_Execute_OtherOrganisationDevice(t *testing.T) {
	actions := &mockActionRepository{}
	uc := NewQueueActionUseCase(deviceRepoWith(testDevice("org-2")), actions, querytest.NewRecorder(), logger.NewNop())

	_, err := uc.Execute(context.Background(), QueueActionCommand{DeviceID: "dev_1", ActionType: "lock", Session: orgSession})
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Empty(t, actions.created)
}

func TestQueueActionUseCase_Execute_InsertFailure(t *testing.T) {
	actions := &mockActionRepository{
		CreateFunc: func(ctx context.Context, a *device.Action) error { return assert.AnError },
	}
	queries := querytest.NewRecorder()
	uc := newQueueAction(actions, queries)

	_, err := uc.Execute(context.Background(), QueueActionCommand{DeviceID: "dev_1", ActionType: "lock", Session: orgSession})
	require.Error(t, err)
	assert.Equal(t, "Failed to queue action: "+assert.AnError.Error(), apperrors.GetAppError(err).Message)
	assert.Empty(t, queries.Invalidations())
}

func TestQueueActionUseCase_Execute_InvalidationFailureStillSucceeds(t *testing.T) {
	actions := &mockActionRepository{}
	queries := querytest.NewRecorder()
	queries.InvalidateErr = assert.AnError
	uc := newQueueAction(actions, queries)

	result, err := uc.Execute(context.Background(), QueueActionCommand{DeviceID: "dev_1", ActionType: "lock", Session: orgSession})
	require.NoError(t, err)
	assert.NotNil(t, result.Action)
	assert.Len(t, actions.created, 1)
}
