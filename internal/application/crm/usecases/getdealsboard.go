package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/crm/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

type GetDealsBoardUseCase struct {
	dealRepo deal.Repository
	queries  query.Client
	logger   logger.Interface
}

func NewGetDealsBoardUseCase(dealRepo deal.Repository, queries query.Client, logger logger.Interface) *GetDealsBoardUseCase {
	return &GetDealsBoardUseCase{dealRepo: dealRepo, queries: queries, logger: logger}
}

func (uc *GetDealsBoardUseCase) Execute(ctx context.Context) (*dto.DealsBoardDTO, error) {
	board, err := query.Get(ctx, uc.queries, query.DealsKey(), func(ctx context.Context) (*dto.DealsBoardDTO, error) {
		deals, err := uc.dealRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		b := dto.ToDealsBoardDTO(deal.Board(deals))
		return &b, nil
	})
	if err != nil {
		uc.logger.Errorw("failed to load deals board", "error", err)
		return nil, errors.NewInternalError("Failed to load deals", err.Error())
	}
	return board, nil
}
