package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/appmaster-hq/appmaster/internal/application/crm/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/mapper"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// dashboardListSize is how many recent customers and active deals the
// dashboard lists.
const dashboardListSize = 5

type GetDashboardUseCase struct {
	customerRepo customer.Repository
	dealRepo     deal.Repository
	queries      query.Client
	logger       logger.Interface
}

func NewGetDashboardUseCase(
	customerRepo customer.Repository,
	dealRepo deal.Repository,
	queries query.Client,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		customerRepo: customerRepo,
		dealRepo:     dealRepo,
		queries:      queries,
		logger:       logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.DashboardKey(), uc.load)
	if err != nil {
		uc.logger.Errorw("failed to load dashboard", "error", err)
		return nil, errors.NewInternalError("Failed to load dashboard", err.Error())
	}
	return result, nil
}

func (uc *GetDashboardUseCase) load(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		customers []*customer.Customer
		deals     []*deal.Deal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = uc.customerRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		deals, err = uc.dealRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return BuildDashboard(customers, deals), nil
}

// BuildDashboard derives the dashboard figures from the full customer and
// deal lists.
func BuildDashboard(customers []*customer.Customer, deals []*deal.Deal) *dto.DashboardDTO {
	open := deal.Open(deals)
	d := &dto.DashboardDTO{
		TotalRevenue:    deal.TotalRevenue(deals),
		ActiveCustomers: customer.CountActive(customers),
		TotalCustomers:  len(customers),
		OpenDeals:       len(open),
		PipelineValue:   deal.PipelineValue(deals),
		RecentCustomers: mapper.MapSlice(firstN(customers, dashboardListSize), dto.ToCustomerDTO),
		ActiveDeals:     mapper.MapSlice(firstN(open, dashboardListSize), dto.ToDealDTO),
	}
	d.Stats = []dto.StatCardDTO{
		{Title: "Total Revenue", Value: utils.FormatThousandsUSD(d.TotalRevenue), Description: "Closed deals this quarter"},
		{Title: "Active Customers", Value: fmt.Sprint(d.ActiveCustomers), Description: fmt.Sprintf("%d total customers", d.TotalCustomers)},
		{Title: "Open Deals", Value: fmt.Sprint(d.OpenDeals), Description: "In pipeline"},
		{Title: "Pipeline Value", Value: utils.FormatThousandsUSD(d.PipelineValue), Description: "Potential revenue"},
	}
	return d
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}
