package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
)

type GetTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]dto.CommentDTO, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]dto.HistoryDTO, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]dto.AttachmentDTO, error)
}

type ListLinkedProblemsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]dto.ProblemDTO, error)
}

type GetTicketDetailExecutor interface {
	Execute(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, q ListTicketsQuery) (*dto.TicketListDTO, error)
}

type ListProblemsExecutor interface {
	Execute(ctx context.Context) ([]dto.ProblemDTO, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}
