package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/mappers"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/mapper"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (*device.Device, error) {
	var model models.DeviceModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return mappers.DeviceToDomain(&model), nil
}

// List returns the organisation's devices, or the unassigned ones when
// organisationID is nil.
func (r *DeviceRepository) List(ctx context.Context, organisationID *string) ([]*device.Device, error) {
	var ms []models.DeviceModel
	query := db.GetTxFromContext(ctx, r.db)
	if organisationID != nil {
		query = query.Where("organisation_id = ?", *organisationID)
	} else {
		query = query.Where("organisation_id IS NULL")
	}
	if err := query.Order("name ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return mapper.MapRefs(ms, mappers.DeviceToDomain), nil
}

func (r *DeviceRepository) Create(ctx context.Context, d *device.Device) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.DeviceToModel(d)).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

type DeviceActionRepository struct {
	db *gorm.DB
}

func NewDeviceActionRepository(db *gorm.DB) *DeviceActionRepository {
	return &DeviceActionRepository{db: db}
}

func (r *DeviceActionRepository) Create(ctx context.Context, a *device.Action) error {
	model := mappers.DeviceActionToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to queue device action: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *DeviceActionRepository) ListByDevice(ctx context.Context, deviceID string) ([]*device.Action, error) {
	var ms []models.DeviceActionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list device actions: %w", err)
	}
	return mapper.MapRefs(ms, mappers.DeviceActionToDomain), nil
}
