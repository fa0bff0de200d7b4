package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/services/markdown"
)

const ticketNotFoundMessage = "Ticket not found"

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	names      nameResolver
	renderer   markdown.Renderer
	queries    query.Client
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo ticket.CategoryRepository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	queries query.Client,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		names:      nameResolver{userRepo: userRepo, categoryRepo: categoryRepo},
		renderer:   renderer,
		queries:    queries,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	result, err := query.Get(ctx, uc.queries, query.TicketKey(ticketID), func(ctx context.Context) (*dto.TicketDTO, error) {
		return uc.load(ctx, ticketID)
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("Failed to load ticket", err.Error())
	}
	return result, nil
}

func (uc *GetTicketUseCase) load(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticketNotFoundMessage)
	}

	users, err := uc.names.userNames(ctx, ticketUserIDs(t))
	if err != nil {
		return nil, err
	}
	categories, err := uc.names.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	result := dto.ToTicketDTO(t, dto.Names{Users: users, Categories: categories}, biztime.NowUTC())
	if html, err := uc.renderer.RenderHTML(t.Description()); err != nil {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", ticketID, "error", err)
	} else {
		result.DescriptionHTML = html
	}
	return &result, nil
}
