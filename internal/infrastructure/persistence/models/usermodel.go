package models

import (
	"time"

	"github.com/appmaster-hq/appmaster/internal/shared/constants"
)

// UserModel is the users row. AuthUserID is the external identifier
// referenced by device actions and cache keys.
type UserModel struct {
	ID                uint    `gorm:"primarykey"`
	AuthUserID        string  `gorm:"uniqueIndex;not null;size:36"`
	Email             string  `gorm:"uniqueIndex;not null;size:255"`
	Name              string  `gorm:"not null;size:100"`
	Phone             string  `gorm:"size:50"`
	Company           string  `gorm:"size:255"`
	PasswordHash      string  `gorm:"not null;size:255"`
	AccountType       string  `gorm:"not null;size:20;default:personal"`
	Role              string  `gorm:"not null;size:20;default:member"`
	UserType          string  `gorm:"size:50"`
	AppmasterRole     *string `gorm:"size:50"`
	OrganisationID    *string `gorm:"size:36;index"`
	TenantID          *string `gorm:"size:36;index"`
	EmailConfirmed    bool    `gorm:"not null;default:false"`
	ConfirmationToken *string `gorm:"size:64;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type OrganisationModel struct {
	ID        string `gorm:"primarykey;size:36"`
	Name      string `gorm:"not null;size:255"`
	CreatedAt time.Time
}

func (OrganisationModel) TableName() string {
	return constants.TableOrganisations
}

type SessionModel struct {
	ID        string    `gorm:"primarykey;size:36"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
