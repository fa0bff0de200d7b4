package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
)

func TestListCustomersUseCase_Execute(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{search: "", want: []string{"Sarah Johnson", "Michael Chen", "Emily Rodriguez", "David Kim", "Jessica Martinez"}},
		{search: "acme", want: []string{"Sarah Johnson"}},
		{search: "TECHSTART", want: []string{"Michael Chen"}},
		{search: "innovateplus.com", want: []string{"David Kim"}},
		{search: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			queries := querytest.NewRecorder()
			uc := NewListCustomersUseCase(&mockCustomerRepository{}, queries, logger.NewNop())

			result, err := uc.Execute(context.Background(), ListCustomersQuery{Search: tt.search})
			require.NoError(t, err)

			got := []string{}
			for _, c := range result.Customers {
				got = append(got, c.Name)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), result.Count)
			assert.Equal(t, []query.Key{query.CustomersKey()}, queries.Fetched())
		})
	}
}

func TestListCustomersUseCase_Execute_FormatsValue(t *testing.T) {
	result, err := NewListCustomersUseCase(&mockCustomerRepository{}, querytest.NewRecorder(), logger.NewNop()).
		Execute(context.Background(), ListCustomersQuery{Search: "sarah"})
	require.NoError(t, err)
	require.Len(t, result.Customers, 1)
	assert.Equal(t, "$125K", result.Customers[0].ValueLabel)
	assert.Equal(t, "active", result.Customers[0].Status)
}

func TestListCustomersUseCase_Execute_StoreFailure(t *testing.T) {
	repo := &mockCustomerRepository{
		ListFunc: func(ctx context.Context) ([]*customer.Customer, error) {
			return nil, errors.New("timeout")
		},
	}

	_, err := NewListCustomersUseCase(repo, querytest.NewRecorder(), logger.NewNop()).Execute(context.Background(), ListCustomersQuery{})
	require.Error(t, err)
}

func TestGetDealsBoardUseCase_Execute(t *testing.T) {
	queries := querytest.NewRecorder()

	board, err := NewGetDealsBoardUseCase(&mockDealRepository{}, queries, logger.NewNop()).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Columns, 4)
	type column struct {
		stage string
		count int
		total string
	}
	var got []column
	for _, c := range board.Columns {
		got = append(got, column{stage: c.Stage, count: c.Count, total: c.TotalLabel})
	}
	assert.Equal(t, []column{
		{stage: "lead", count: 1, total: "$45K"},
		{stage: "qualified", count: 1, total: "$85K"},
		{stage: "proposal", count: 2, total: "$300K"},
		{stage: "won", count: 1, total: "$210K"},
	}, got)
	assert.Equal(t, "Proposal", board.Columns[2].Label)
	assert.Equal(t, []query.Key{query.DealsKey()}, queries.Fetched())
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	queries := querytest.NewRecorder()
	uc := NewGetDashboardUseCase(&mockCustomerRepository{}, &mockDealRepository{}, queries, logger.NewNop())

	d, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 210000.0, d.TotalRevenue)
	assert.Equal(t, 430000.0, d.PipelineValue)
	assert.Equal(t, 4, d.ActiveCustomers)
	assert.Equal(t, 5, d.TotalCustomers)
	assert.Equal(t, 4, d.OpenDeals)
	assert.Len(t, d.RecentCustomers, 5)
	require.Len(t, d.ActiveDeals, 4)
	for _, deal := range d.ActiveDeals {
		assert.NotEqual(t, "won", deal.Stage)
		assert.NotEqual(t, "lost", deal.Stage)
	}

	require.Len(t, d.Stats, 4)
	assert.Equal(t, "$210K", d.Stats[0].Value)
	assert.Equal(t, "4", d.Stats[1].Value)
	assert.Equal(t, "5 total customers", d.Stats[1].Description)
	assert.Equal(t, "$430K", d.Stats[3].Value)
	assert.Equal(t, []query.Key{query.DashboardKey()}, queries.Fetched())
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(nil, nil)
	assert.Equal(t, 0.0, d.TotalRevenue)
	assert.Empty(t, d.RecentCustomers)
	assert.NotNil(t, d.ActiveDeals)
	assert.Equal(t, "$0K", d.Stats[0].Value)
}
