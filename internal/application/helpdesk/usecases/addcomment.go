package usecases

import (
	"context"
	"strings"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

const (
	commentAddedMessage = "Comment added"
	addCommentFailure   = "Failed to add comment"
)

type AddCommentCommand struct {
	TicketID uint
	Comment  string
	Session  *authorization.Session
}

type AddCommentResult struct {
	Comment dto.CommentDTO
	Message string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	queries     query.Client
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	queries query.Client,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		queries:     queries,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.Session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if strings.TrimSpace(cmd.Comment) == "" {
		return nil, errors.NewValidationError("Comment cannot be empty")
	}

	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Session.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewMutationError(addCommentFailure, err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticketNotFoundMessage)
	}

	// The author's tenant wins; tickets carry their own for authors
	// without one.
	tenantID := cmd.Session.TenantID
	if tenantID == nil {
		tenantID = t.TenantID()
	}

	c, err := ticket.NewComment(t.ID(), cmd.Session.UserID, cmd.Comment, tenantID, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.commentRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewMutationError(addCommentFailure, err)
	}

	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger, query.TicketCommentsKey(t.ID()))

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", c.ID())
	return &AddCommentResult{
		Comment: dto.ToCommentDTO(c, map[uint]string{cmd.Session.UserID: cmd.Session.Name}),
		Message: commentAddedMessage,
	}, nil
}
