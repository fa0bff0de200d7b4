package usecases

import (
	"context"
	"fmt"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/mapper"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/services/markdown"
)

// ListCommentsUseCase reads a ticket's comments, oldest first.
type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	names       nameResolver
	renderer    markdown.Renderer
	queries     query.Client
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	queries query.Client,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		names:       nameResolver{userRepo: userRepo},
		renderer:    renderer,
		queries:     queries,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, ticketID uint) ([]dto.CommentDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.TicketCommentsKey(ticketID), func(ctx context.Context) ([]dto.CommentDTO, error) {
		comments, err := uc.commentRepo.ListByTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		ids := make([]uint, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.UserID())
		}
		users, err := uc.names.userNames(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CommentDTO, 0, len(comments))
		for _, c := range comments {
			d := dto.ToCommentDTO(c, users)
			if html, err := uc.renderer.RenderHTML(c.Text()); err == nil {
				d.CommentHTML = html
			}
			out = append(out, d)
		}
		return out, nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list ticket comments", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("Failed to load comments", err.Error())
	}
	return result, nil
}

// ListHistoryUseCase reads a ticket's change history, newest first.
type ListHistoryUseCase struct {
	historyRepo ticket.HistoryRepository
	names       nameResolver
	queries     query.Client
	logger      logger.Interface
}

func NewListHistoryUseCase(
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	queries query.Client,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		historyRepo: historyRepo,
		names:       nameResolver{userRepo: userRepo},
		queries:     queries,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, ticketID uint) ([]dto.HistoryDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.TicketHistoryKey(ticketID), func(ctx context.Context) ([]dto.HistoryDTO, error) {
		entries, err := uc.historyRepo.ListByTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		var ids []uint
		for _, h := range entries {
			if id := h.UserID(); id != nil {
				ids = append(ids, *id)
			}
		}
		users, err := uc.names.userNames(ctx, ids)
		if err != nil {
			return nil, err
		}
		return mapper.MapSlice(entries, func(h *ticket.HistoryEntry) dto.HistoryDTO {
			return dto.ToHistoryDTO(h, users)
		}), nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list ticket history", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("Failed to load history", err.Error())
	}
	return emptyIfNil(result), nil
}

// ListAttachmentsUseCase reads a ticket's attachments, newest first.
type ListAttachmentsUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	names          nameResolver
	queries        query.Client
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.Repository,
	queries query.Client,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		attachmentRepo: attachmentRepo,
		names:          nameResolver{userRepo: userRepo},
		queries:        queries,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, ticketID uint) ([]dto.AttachmentDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.TicketAttachmentsKey(ticketID), func(ctx context.Context) ([]dto.AttachmentDTO, error) {
		attachments, err := uc.attachmentRepo.ListByTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		var ids []uint
		for _, a := range attachments {
			if id := a.UploadedBy(); id != nil {
				ids = append(ids, *id)
			}
		}
		users, err := uc.names.userNames(ctx, ids)
		if err != nil {
			return nil, err
		}
		return mapper.MapSlice(attachments, func(a *ticket.Attachment) dto.AttachmentDTO {
			return dto.ToAttachmentDTO(a, users)
		}), nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("Failed to load attachments", err.Error())
	}
	return emptyIfNil(result), nil
}

// ListLinkedProblemsUseCase reads the problems a ticket is linked to.
type ListLinkedProblemsUseCase struct {
	problemRepo ticket.ProblemRepository
	queries     query.Client
	logger      logger.Interface
}

func NewListLinkedProblemsUseCase(
	problemRepo ticket.ProblemRepository,
	queries query.Client,
	logger logger.Interface,
) *ListLinkedProblemsUseCase {
	return &ListLinkedProblemsUseCase{
		problemRepo: problemRepo,
		queries:     queries,
		logger:      logger,
	}
}

func (uc *ListLinkedProblemsUseCase) Execute(ctx context.Context, ticketID uint) ([]dto.ProblemDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.TicketProblemsKey(ticketID), func(ctx context.Context) ([]dto.ProblemDTO, error) {
		problems, err := uc.problemRepo.ListByTicket(ctx, ticketID)
		if err != nil {
			return nil, fmt.Errorf("failed to list linked problems: %w", err)
		}
		return mapper.MapSlice(problems, dto.ToProblemDTO), nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list linked problems", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("Failed to load problems", err.Error())
	}
	return emptyIfNil(result), nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
