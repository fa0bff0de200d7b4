package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
)

var agent = &authorization.Session{UserID: 7, AuthUserID: "auth-7", Name: "Dana Agent"}

func TestChangeStatusUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name         string
		from         vo.TicketStatus
		to           vo.TicketStatus
		wantResolved bool
		wantClosed   bool
	}{
		{name: "open to in_progress", from: vo.StatusOpen, to: vo.StatusInProgress},
		{name: "in_progress to resolved", from: vo.StatusInProgress, to: vo.StatusResolved, wantResolved: true},
		{name: "open to closed", from: vo.StatusOpen, to: vo.StatusClosed, wantClosed: true},
		{name: "closed back to open", from: vo.StatusClosed, to: vo.StatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := newTestTicket(1, tt.from, vo.PriorityHigh)
			var saved *ticket.Ticket
			var history *ticket.HistoryEntry
			repo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
				UpdateStatusFunc: func(ctx context.Context, tk *ticket.Ticket, change *ticket.HistoryEntry) error {
					saved, history = tk, change
					return nil
				},
			}
			queries := querytest.NewRecorder()

			uc := NewChangeStatusUseCase(repo, queries, logger.NewNop())
			result, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: tt.to.String(),
				Session:   agent,
			})

			require.NoError(t, err)
			assert.Equal(t, "Status updated", result.Message)
			assert.Equal(t, tt.from.String(), result.Ticket.OldStatus)
			assert.Equal(t, tt.to.String(), result.Ticket.NewStatus)

			require.NotNil(t, saved)
			assert.Equal(t, tt.to, saved.Status())
			assert.Equal(t, tt.wantResolved, saved.ResolvedAt() != nil)
			assert.Equal(t, tt.wantClosed, saved.ClosedAt() != nil)

			require.NotNil(t, history)
			assert.Equal(t, "status", history.FieldName())
			assert.Equal(t, tt.from.String(), *history.OldValue())
			assert.Equal(t, tt.to.String(), *history.NewValue())
			assert.Equal(t, uint(7), *history.UserID())

			require.Len(t, queries.Invalidations(), 1)
			assert.Equal(t, []query.Key{
				query.TicketKey(1),
				query.TicketsKey(),
				query.HelpdeskStatsKey(),
				query.TicketHistoryKey(1),
			}, queries.InvalidatedKeys())
		})
	}
}

func TestChangeStatusUseCase_Execute_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		cmd       ChangeStatusCommand
		wantCheck func(error) bool
		wantMsg   string
	}{
		{
			name:      "same status",
			cmd:       ChangeStatusCommand{TicketID: 1, NewStatus: "open", Session: agent},
			wantCheck: apperrors.IsValidationError,
			wantMsg:   "Status unchanged",
		},
		{
			name:      "unknown status",
			cmd:       ChangeStatusCommand{TicketID: 1, NewStatus: "archived", Session: agent},
			wantCheck: apperrors.IsValidationError,
			wantMsg:   "Invalid status",
		},
		{
			name:      "missing ticket",
			cmd:       ChangeStatusCommand{TicketID: 99, NewStatus: "closed", Session: agent},
			wantCheck: apperrors.IsNotFoundError,
			wantMsg:   "Ticket not found",
		},
		{
			name:      "no session",
			cmd:       ChangeStatusCommand{TicketID: 1, NewStatus: "closed"},
			wantCheck: apperrors.IsUnauthorizedError,
			wantMsg:   "Not authenticated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			repo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					if id != 1 {
						return nil, nil
					}
					return newTestTicket(1, vo.StatusOpen, vo.PriorityLow), nil
				},
				UpdateStatusFunc: func(ctx context.Context, tk *ticket.Ticket, change *ticket.HistoryEntry) error {
					updated = true
					return nil
				},
			}
			queries := querytest.NewRecorder()

			_, err := NewChangeStatusUseCase(repo, queries, logger.NewNop()).Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.wantCheck(err), "unexpected error type: %v", err)
			assert.Equal(t, tt.wantMsg, apperrors.GetAppError(err).Message)
			assert.False(t, updated)
			assert.Empty(t, queries.Invalidations())
		})
	}
}

func TestChangeStatusUseCase_Execute_StoreFailure(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return newTestTicket(1, vo.StatusOpen, vo.PriorityLow), nil
		},
		UpdateStatusFunc: func(ctx context.Context, tk *ticket.Ticket, change *ticket.HistoryEntry) error {
			return errors.New("connection refused")
		},
	}
	queries := querytest.NewRecorder()

	_, err := NewChangeStatusUseCase(repo, queries, logger.NewNop()).Execute(context.Background(),
		ChangeStatusCommand{TicketID: 1, NewStatus: "resolved", Session: agent})

	require.Error(t, err)
	assert.Equal(t, "Failed to update status: connection refused", apperrors.GetAppError(err).Message)
	assert.Empty(t, queries.Invalidations())
}

func TestChangeStatusUseCase_Execute_InvalidationFailureStillSucceeds(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return newTestTicket(1, vo.StatusOpen, vo.PriorityLow), nil
		},
	}
	queries := querytest.NewRecorder()
	queries.InvalidateErr = errors.New("redis down")

	result, err := NewChangeStatusUseCase(repo, queries, logger.NewNop()).Execute(context.Background(),
		ChangeStatusCommand{TicketID: 1, NewStatus: "on_hold", Session: agent})

	require.NoError(t, err)
	assert.Equal(t, "Status updated", result.Message)
}
