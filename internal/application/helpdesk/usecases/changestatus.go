package usecases

import (
	"context"
	stderrors "errors"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

const (
	statusUpdatedMessage = "Status updated"
	changeStatusFailure  = "Failed to update status"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	Session   *authorization.Session
}

type ChangeStatusResult struct {
	Ticket  dto.ChangeStatusResultDTO
	Message string
}

// ChangeStatusUseCase moves a ticket to another status and records the
// change in its history.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	queries    query.Client
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	queries query.Client,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		queries:    queries,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.Session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("Invalid status", cmd.NewStatus)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewMutationError(changeStatusFailure, err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticketNotFoundMessage)
	}

	now := biztime.NowUTC()
	oldStatus, err := t.ChangeStatus(newStatus, now)
	if err != nil {
		if stderrors.Is(err, ticket.ErrStatusUnchanged) {
			return nil, errors.NewValidationError("Status unchanged")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	userID := cmd.Session.UserID
	change := ticket.NewFieldChange(t.ID(), &userID, "status", oldStatus.String(), newStatus.String(), now)
	if err := uc.ticketRepo.UpdateStatus(ctx, t, change); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewMutationError(changeStatusFailure, err)
	}

	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger,
		query.TicketKey(t.ID()),
		query.TicketsKey(),
		query.HelpdeskStatsKey(),
		query.TicketHistoryKey(t.ID()),
	)

	uc.logger.Infow("ticket status changed successfully", "ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", newStatus)
	return &ChangeStatusResult{
		Ticket: dto.ChangeStatusResultDTO{
			TicketID:  t.ID(),
			OldStatus: oldStatus.String(),
			NewStatus: newStatus.String(),
		},
		Message: statusUpdatedMessage,
	}, nil
}
