package device

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/application/device/dto"
	"github.com/appmaster-hq/appmaster/internal/application/device/usecases"
	domain "github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/testutil"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

type mockListDevices struct {
	result []dto.DeviceDTO
	err    error
}

func (m *mockListDevices) Execute(context.Context, *authorization.Session) ([]dto.DeviceDTO, error) {
	return m.result, m.err
}

type mockListActions struct {
	result []dto.ActionDTO
	err    error
	got    usecases.ListActionsQuery
}

func (m *mockListActions) Execute(_ context.Context, q usecases.ListActionsQuery) ([]dto.ActionDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockCatalog struct{}

func (mockCatalog) Execute(context.Context) dto.CatalogDTO { return dto.CatalogDTO{} }

type mockQueueAction struct {
	result *usecases.QueueActionResult
	err    error
	got    usecases.QueueActionCommand
	calls  int
}

func (m *mockQueueAction) Execute(_ context.Context, cmd usecases.QueueActionCommand) (*usecases.QueueActionResult, error) {
	m.calls++
	m.got = cmd
	return m.result, m.err
}

func newTestHandler(listActions *mockListActions, queue *mockQueueAction) *Handler {
	return NewHandler(&mockListDevices{}, listActions, mockCatalog{}, queue, logger.NewNop())
}

func TestQueueAction_Queued(t *testing.T) {
	queue := &mockQueueAction{result: &usecases.QueueActionResult{
		Action:  &dto.ActionDTO{ID: 1, Status: "pending"},
		Message: "Action queued for Lobby Kiosk",
	}}
	h := newTestHandler(&mockListActions{}, queue)

	c, w := testutil.NewTestContext(http.MethodPost, "/devices/dev_abc123/actions",
		QueueActionRequest{ActionType: "lock", Confirmed: true})
	testutil.SetURLParam(c, "id", "dev_abc123")
	testutil.SetSession(c, testutil.TestSession())

	h.QueueAction(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "dev_abc123", queue.got.DeviceID)
	assert.Equal(t, "lock", queue.got.ActionType)
	assert.True(t, queue.got.Confirmed)

	var action dto.ActionDTO
	resp, err := testutil.DecodeData(w, &action)
	require.NoError(t, err)
	assert.Equal(t, "Action queued for Lobby Kiosk", resp.Message)
	assert.Equal(t, "pending", action.Status)
}

func TestQueueAction_NeedsConfirmation(t *testing.T) {
	queue := &mockQueueAction{result: &usecases.QueueActionResult{
		Dialog: &domain.Dialog{Title: "Wipe device?", ConfirmLabel: "Wipe", Destructive: true},
	}}
	h := newTestHandler(&mockListActions{}, queue)

	c, w := testutil.NewTestContext(http.MethodPost, "/devices/dev_abc123/actions",
		QueueActionRequest{ActionType: "wipe"})
	testutil.SetURLParam(c, "id", "dev_abc123")

	h.QueueAction(c)

	require.Equal(t, http.StatusOK, w.Code)
	var confirm struct {
		RequiresConfirmation bool          `json:"requires_confirmation"`
		Dialog               domain.Dialog `json:"dialog"`
	}
	_, err := testutil.DecodeData(w, &confirm)
	require.NoError(t, err)
	assert.True(t, confirm.RequiresConfirmation)
	assert.True(t, confirm.Dialog.Destructive)
}

func TestQueueAction_BadDeviceID(t *testing.T) {
	queue := &mockQueueAction{}
	h := newTestHandler(&mockListActions{}, queue)

	c, w := testutil.NewTestContext(http.MethodPost, "/devices/123/actions",
		QueueActionRequest{ActionType: "lock"})
	testutil.SetURLParam(c, "id", "123")

	h.QueueAction(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, queue.calls)
}

func TestQueueAction_MissingActionType(t *testing.T) {
	queue := &mockQueueAction{}
	h := newTestHandler(&mockListActions{}, queue)

	c, w := testutil.NewTestContext(http.MethodPost, "/devices/dev_abc123/actions", QueueActionRequest{})
	testutil.SetURLParam(c, "id", "dev_abc123")

	h.QueueAction(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, queue.calls)
}

func TestListActions_NotFound(t *testing.T) {
	list := &mockListActions{err: errors.NewNotFoundError("Device not found")}
	h := newTestHandler(list, &mockQueueAction{})

	c, w := testutil.NewTestContext(http.MethodGet, "/devices/dev_zzz/actions", nil)
	testutil.SetURLParam(c, "id", "dev_zzz")

	h.ListActions(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "dev_zzz", list.got.DeviceID)
}
