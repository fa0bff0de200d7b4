package models

import (
	"time"

	"github.com/appmaster-hq/appmaster/internal/shared/constants"
)

// UserSettingsModel holds one row per user that has saved preferences.
type UserSettingsModel struct {
	UserID             uint   `gorm:"primarykey;autoIncrement:false"`
	EmailNotifications bool   `gorm:"not null;default:true"`
	DealAlerts         bool   `gorm:"not null;default:true"`
	SidebarOpen        bool   `gorm:"not null;default:true"`
	Theme              string `gorm:"not null;size:10;default:system"`
	UpdatedAt          time.Time
}

func (UserSettingsModel) TableName() string {
	return constants.TableUserSettings
}
