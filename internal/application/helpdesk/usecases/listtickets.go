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
)

type ListTicketsQuery struct {
	Filter ticket.ListFilter
}

// ListTicketsUseCase reads every ticket once under one key and filters in
// memory, so changing a filter never refetches.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	names      nameResolver
	queries    query.Client
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo ticket.CategoryRepository,
	userRepo user.Repository,
	queries query.Client,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		names:      nameResolver{userRepo: userRepo, categoryRepo: categoryRepo},
		queries:    queries,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*dto.TicketListDTO, error) {
	all, err := query.Get(ctx, uc.queries, query.AllTicketsKey(), uc.loadAll)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("Failed to load tickets", err.Error())
	}

	filtered := make([]dto.TicketDTO, 0, len(all))
	for _, t := range all {
		if q.Filter.Matches(t.Fields()) {
			filtered = append(filtered, t)
		}
	}
	return &dto.TicketListDTO{Tickets: filtered, Count: len(filtered)}, nil
}

func (uc *ListTicketsUseCase) loadAll(ctx context.Context) ([]dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.names.userNames(ctx, ticketUserIDs(tickets...))
	if err != nil {
		return nil, err
	}
	categories, err := uc.names.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	names := dto.Names{Users: users, Categories: categories}
	now := biztime.NowUTC()
	out := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.ToTicketDTO(t, names, now))
	}
	return out, nil
}
