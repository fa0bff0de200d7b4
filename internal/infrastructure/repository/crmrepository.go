package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/mappers"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/mapper"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var ms []models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return mapper.MapRefs(ms, mappers.CustomerToDomain), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) List(ctx context.Context) ([]*deal.Deal, error) {
	var ms []models.DealModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	return mapper.MapRefs(ms, mappers.DealToDomain), nil
}

func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	model := mappers.DealToModel(d)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	d.SetID(model.ID)
	return nil
}
