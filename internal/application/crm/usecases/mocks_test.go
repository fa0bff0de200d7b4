package usecases

import (
	"context"
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
)

var sampleTime = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

type mockCustomerRepository struct {
	ListFunc   func(ctx context.Context) ([]*customer.Customer, error)
	CreateFunc func(ctx context.Context, c *customer.Customer) error
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return sampleCustomers(), nil
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

type mockDealRepository struct {
	ListFunc   func(ctx context.Context) ([]*deal.Deal, error)
	CreateFunc func(ctx context.Context, d *deal.Deal) error
}

func (m *mockDealRepository) List(ctx context.Context) ([]*deal.Deal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return sampleDeals(), nil
}

func (m *mockDealRepository) Create(ctx context.Context, d *deal.Deal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func sampleCustomers() []*customer.Customer {
	return []*customer.Customer{
		customer.ReconstructCustomer(1, "Sarah Johnson", "sarah.j@acmecorp.com", "Acme Corporation", "+1 (555) 123-4567", 125000, customer.StatusActive, sampleTime),
		customer.ReconstructCustomer(2, "Michael Chen", "m.chen@techstart.io", "TechStart Inc", "+1 (555) 234-5678", 85000, customer.StatusActive, sampleTime),
		customer.ReconstructCustomer(3, "Emily Rodriguez", "emily@globalventures.com", "Global Ventures", "+1 (555) 345-6789", 210000, customer.StatusActive, sampleTime),
		customer.ReconstructCustomer(4, "David Kim", "d.kim@innovateplus.com", "InnovatePlus", "+1 (555) 456-7890", 45000, customer.StatusInactive, sampleTime),
		customer.ReconstructCustomer(5, "Jessica Martinez", "jmartinez@futuresystems.com", "Future Systems", "+1 (555) 567-8901", 175000, customer.StatusActive, sampleTime),
	}
}

func sampleDeals() []*deal.Deal {
	return []*deal.Deal{
		deal.ReconstructDeal(1, "Enterprise Software License", "Acme Corporation", 125000, deal.StageProposal, 75, "2025-01-15", sampleTime),
		deal.ReconstructDeal(2, "Cloud Infrastructure Setup", "TechStart Inc", 85000, deal.StageQualified, 60, "2025-01-30", sampleTime),
		deal.ReconstructDeal(3, "Annual Support Contract", "Global Ventures", 210000, deal.StageWon, 100, "2024-12-20", sampleTime),
		deal.ReconstructDeal(4, "Consulting Services", "InnovatePlus", 45000, deal.StageLead, 25, "2025-02-15", sampleTime),
		deal.ReconstructDeal(5, "Custom Development Project", "Future Systems", 175000, deal.StageProposal, 70, "2025-01-25", sampleTime),
	}
}
