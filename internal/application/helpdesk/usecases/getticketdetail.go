package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// GetTicketDetailUseCase loads the five ticket page panels concurrently.
// A failed panel is reported in its own state and does not fail the page,
// except a missing ticket, which is a not-found error.
type GetTicketDetailUseCase struct {
	ticket      GetTicketExecutor
	comments    ListCommentsExecutor
	history     ListHistoryExecutor
	attachments ListAttachmentsExecutor
	problems    ListLinkedProblemsExecutor
	logger      logger.Interface
}

func NewGetTicketDetailUseCase(
	ticket GetTicketExecutor,
	comments ListCommentsExecutor,
	history ListHistoryExecutor,
	attachments ListAttachmentsExecutor,
	problems ListLinkedProblemsExecutor,
	logger logger.Interface,
) *GetTicketDetailUseCase {
	return &GetTicketDetailUseCase{
		ticket:      ticket,
		comments:    comments,
		history:     history,
		attachments: attachments,
		problems:    problems,
		logger:      logger,
	}
}

func (uc *GetTicketDetailUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	result := &dto.TicketDetailDTO{StatusOptions: dto.StatusOptions()}
	var ticketErr error

	// Each goroutine writes only its own field and returns nil, so one
	// failing panel never cancels the others.
	var g errgroup.Group
	g.Go(func() error {
		t, err := uc.ticket.Execute(ctx, ticketID)
		if err != nil {
			ticketErr = err
			result.Ticket = dto.ErrorPanel[*dto.TicketDTO](panelMessage(err))
			return nil
		}
		result.Ticket = dto.ReadyPanel(t)
		return nil
	})
	g.Go(func() error {
		data, err := uc.comments.Execute(ctx, ticketID)
		result.Comments = panel(data, err)
		return nil
	})
	g.Go(func() error {
		data, err := uc.history.Execute(ctx, ticketID)
		result.History = panel(data, err)
		return nil
	})
	g.Go(func() error {
		data, err := uc.attachments.Execute(ctx, ticketID)
		result.Attachments = panel(data, err)
		return nil
	})
	g.Go(func() error {
		data, err := uc.problems.Execute(ctx, ticketID)
		result.Problems = panel(data, err)
		return nil
	})
	_ = g.Wait()

	if errors.IsNotFoundError(ticketErr) {
		return nil, ticketErr
	}
	uc.logger.Debugw("ticket detail loaded",
		"ticket_id", ticketID,
		"ticket", result.Ticket.State,
		"comments", result.Comments.State,
		"history", result.History.State,
		"attachments", result.Attachments.State,
		"problems", result.Problems.State,
	)
	return result, nil
}

func panel[T any](data T, err error) dto.Panel[T] {
	if err != nil {
		return dto.ErrorPanel[T](panelMessage(err))
	}
	return dto.ReadyPanel(data)
}

func panelMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
