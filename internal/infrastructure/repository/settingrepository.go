package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/mappers"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) GetByUserID(ctx context.Context, userID uint) (*setting.UserSettings, error) {
	var model models.UserSettingsModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return mappers.SettingsToDomain(&model), nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *setting.UserSettings) error {
	model := mappers.SettingsToModel(s)
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email_notifications", "deal_alerts", "sidebar_open", "theme", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}
	return nil
}
