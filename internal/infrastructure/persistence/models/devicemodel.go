package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/appmaster-hq/appmaster/internal/shared/constants"
)

type DeviceModel struct {
	ID             string  `gorm:"primarykey;size:32"`
	Name           string  `gorm:"not null;size:255"`
	Hostname       string  `gorm:"size:255"`
	OrganisationID *string `gorm:"size:36;index"`
	LastSeenAt     *time.Time
	CreatedAt      time.Time
}

func (DeviceModel) TableName() string {
	return constants.TableDevices
}

// DeviceActionModel is one queued instruction. InitiatedBy holds the
// initiator's auth user ID.
type DeviceActionModel struct {
	ID             uint              `gorm:"primarykey"`
	DeviceID       string            `gorm:"not null;size:32;index"`
	OrganisationID *string           `gorm:"size:36;index"`
	ActionType     string            `gorm:"not null;size:50"`
	ActionPayload  datatypes.JSONMap `gorm:"type:json"`
	InitiatedBy    string            `gorm:"not null;size:36"`
	Status         string            `gorm:"not null;size:20;index"`
	CreatedAt      time.Time         `gorm:"index"`
}

func (DeviceActionModel) TableName() string {
	return constants.TableDeviceActions
}
