package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/crm/dto"
)

type ListCustomersExecutor interface {
	Execute(ctx context.Context, q ListCustomersQuery) (*dto.CustomerListDTO, error)
}

type GetDealsBoardExecutor interface {
	Execute(ctx context.Context) (*dto.DealsBoardDTO, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context) (*dto.DashboardDTO, error)
}
