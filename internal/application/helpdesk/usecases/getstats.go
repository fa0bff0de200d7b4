package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// GetStatsUseCase counts tickets for the helpdesk dashboard.
type GetStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	queries    query.Client
	logger     logger.Interface
}

func NewGetStatsUseCase(ticketRepo ticket.TicketRepository, queries query.Client, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{ticketRepo: ticketRepo, queries: queries, logger: logger}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.HelpdeskStatsKey(), func(ctx context.Context) (*dto.StatsDTO, error) {
		tickets, err := uc.ticketRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return computeStats(tickets), nil
	})
	if err != nil {
		uc.logger.Errorw("failed to compute helpdesk stats", "error", err)
		return nil, errors.NewInternalError("Failed to load helpdesk stats", err.Error())
	}
	return result, nil
}

func computeStats(tickets []*ticket.Ticket) *dto.StatsDTO {
	stats := &dto.StatsDTO{
		Total:      len(tickets),
		ByStatus:   make(map[string]int, len(vo.AllStatuses)),
		ByPriority: make(map[string]int, len(vo.AllPriorities)),
	}
	for _, s := range vo.AllStatuses {
		stats.ByStatus[s.String()] = 0
	}
	for _, p := range vo.AllPriorities {
		stats.ByPriority[p.String()] = 0
	}

	now := biztime.NowUTC()
	for _, t := range tickets {
		stats.ByStatus[t.Status().String()]++
		stats.ByPriority[t.Priority().String()]++
		if !t.Status().IsDone() {
			stats.Open++
		}
		if t.IsSLABreached(now) {
			stats.SLABreached++
		}
	}
	return stats
}
