package helpdesk

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/usecases"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/testutil"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

type mockListTickets struct {
	result *dto.TicketListDTO
	err    error
	got    usecases.ListTicketsQuery
}

func (m *mockListTickets) Execute(_ context.Context, q usecases.ListTicketsQuery) (*dto.TicketListDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockGetTicket struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockGetTicket) Execute(_ context.Context, _ uint) (*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockListComments struct {
	result []dto.CommentDTO
	err    error
}

func (m *mockListComments) Execute(_ context.Context, _ uint) ([]dto.CommentDTO, error) {
	return m.result, m.err
}

type mockAddComment struct {
	result *usecases.AddCommentResult
	err    error
	got    usecases.AddCommentCommand
}

func (m *mockAddComment) Execute(_ context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockChangeStatus struct {
	result *usecases.ChangeStatusResult
	err    error
	got    usecases.ChangeStatusCommand
}

func (m *mockChangeStatus) Execute(_ context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	m.got = cmd
	return m.result, m.err
}

func newTestHandler(ucs UseCases) *Handler {
	return NewHandler(ucs, logger.NewNop())
}

func TestListTickets_ParsesFilters(t *testing.T) {
	uc := &mockListTickets{result: &dto.TicketListDTO{Tickets: []dto.TicketDTO{{ID: 1}}, Count: 1}}
	h := newTestHandler(UseCases{ListTickets: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/helpdesk/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":    "open",
		"priority":  "high",
		"assignee":  "unassigned",
		"search":    "printer",
		"date_from": "2024-03-01",
		"date_to":   "2024-03-31",
	})

	h.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	f := uc.got.Filter
	assert.Equal(t, "open", f.Status)
	assert.Equal(t, "high", f.Priority)
	assert.Equal(t, "unassigned", f.Assignee)
	assert.Equal(t, "printer", f.Search)
	require.NotNil(t, f.DateFrom)
	require.NotNil(t, f.DateTo)
	assert.True(t, f.DateTo.After(*f.DateFrom))
	assert.True(t, f.DateTo.Sub(*f.DateFrom) > 30*24*time.Hour)

	var list struct {
		Items []dto.TicketDTO `json:"items"`
		Total int             `json:"total"`
	}
	resp, err := testutil.DecodeData(w, &list)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, list.Total)
}

func TestListTickets_InvalidDate(t *testing.T) {
	uc := &mockListTickets{}
	h := newTestHandler(UseCases{ListTickets: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/helpdesk/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"date_from": "03/01/2024"})

	h.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicket_InvalidID(t *testing.T) {
	h := newTestHandler(UseCases{GetTicket: &mockGetTicket{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/helpdesk/tickets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	h.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicket_NotFound(t *testing.T) {
	h := newTestHandler(UseCases{GetTicket: &mockGetTicket{err: errors.NewNotFoundError("Ticket not found")}})

	c, w := testutil.NewTestContext(http.MethodGet, "/helpdesk/tickets/9", nil)
	testutil.SetURLParam(c, "id", "9")

	h.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Ticket not found", resp.Error.Message)
}

func TestListComments_ReturnsList(t *testing.T) {
	uc := &mockListComments{result: []dto.CommentDTO{{ID: 1}, {ID: 2}}}
	h := newTestHandler(UseCases{ListComments: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/helpdesk/tickets/1/comments", nil)
	testutil.SetURLParam(c, "id", "1")

	h.ListComments(c)

	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
	}
	_, err := testutil.DecodeData(w, &list)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestAddComment(t *testing.T) {
	t.Run("created with session", func(t *testing.T) {
		uc := &mockAddComment{result: &usecases.AddCommentResult{
			Comment: dto.CommentDTO{ID: 5},
			Message: "Comment added",
		}}
		h := newTestHandler(UseCases{AddComment: uc})

		c, w := testutil.NewTestContext(http.MethodPost, "/helpdesk/tickets/1/comments",
			AddCommentRequest{Comment: "Looking into it"})
		testutil.SetURLParam(c, "id", "1")
		testutil.SetSession(c, testutil.TestSession())

		h.AddComment(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(1), uc.got.TicketID)
		assert.Equal(t, "Looking into it", uc.got.Comment)
		require.NotNil(t, uc.got.Session)
		assert.Equal(t, "auth-3", uc.got.Session.AuthUserID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Comment added", resp.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		uc := &mockAddComment{}
		h := newTestHandler(UseCases{AddComment: uc})

		c, w := testutil.NewTestContext(http.MethodPost, "/helpdesk/tickets/1/comments", AddCommentRequest{})
		testutil.SetURLParam(c, "id", "1")

		h.AddComment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, uc.got.Comment)
	})

	t.Run("mutation failure", func(t *testing.T) {
		uc := &mockAddComment{err: errors.NewMutationError("Failed to add comment", errors.NewInternalError("db down"))}
		h := newTestHandler(UseCases{AddComment: uc})

		c, w := testutil.NewTestContext(http.MethodPost, "/helpdesk/tickets/1/comments",
			AddCommentRequest{Comment: "hi"})
		testutil.SetURLParam(c, "id", "1")
		testutil.SetSession(c, testutil.TestSession())

		h.AddComment(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestChangeStatus(t *testing.T) {
	uc := &mockChangeStatus{result: &usecases.ChangeStatusResult{
		Ticket:  dto.ChangeStatusResultDTO{TicketID: 1, OldStatus: "open", NewStatus: "resolved"},
		Message: "Status updated",
	}}
	h := newTestHandler(UseCases{ChangeStatus: uc})

	c, w := testutil.NewTestContext(http.MethodPatch, "/helpdesk/tickets/1/status",
		ChangeStatusRequest{Status: "resolved"})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetSession(c, testutil.TestSession())

	h.ChangeStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "resolved", uc.got.NewStatus)

	var result dto.ChangeStatusResultDTO
	resp, err := testutil.DecodeData(w, &result)
	require.NoError(t, err)
	assert.Equal(t, "Status updated", resp.Message)
	assert.Equal(t, "open", result.OldStatus)
}
