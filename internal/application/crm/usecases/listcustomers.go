package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/crm/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/mapper"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

type ListCustomersQuery struct {
	Search string
}

// ListCustomersUseCase reads all customers under one key and applies the
// search term in memory.
type ListCustomersUseCase struct {
	customerRepo customer.Repository
	queries      query.Client
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, queries query.Client, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, queries: queries, logger: logger}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, q ListCustomersQuery) (*dto.CustomerListDTO, error) {
	all, err := query.Get(ctx, uc.queries, query.CustomersKey(), func(ctx context.Context) ([]dto.CustomerDTO, error) {
		customers, err := uc.customerRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return mapper.MapSlice(customers, dto.ToCustomerDTO), nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, errors.NewInternalError("Failed to load customers", err.Error())
	}

	matched := make([]dto.CustomerDTO, 0, len(all))
	for _, c := range all {
		if c.Matches(q.Search) {
			matched = append(matched, c)
		}
	}
	return &dto.CustomerListDTO{Customers: matched, Count: len(matched), Search: q.Search}, nil
}
