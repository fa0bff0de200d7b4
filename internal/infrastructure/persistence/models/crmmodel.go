package models

import (
	"time"

	"github.com/appmaster-hq/appmaster/internal/shared/constants"
)

type CustomerModel struct {
	ID        uint    `gorm:"primarykey"`
	Name      string  `gorm:"not null;size:255"`
	Email     string  `gorm:"size:255"`
	Company   string  `gorm:"size:255"`
	Phone     string  `gorm:"size:50"`
	Value     float64 `gorm:"not null;default:0"`
	Status    string  `gorm:"not null;size:20;index"`
	CreatedAt time.Time
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}

type DealModel struct {
	ID           uint    `gorm:"primarykey"`
	Title        string  `gorm:"not null;size:255"`
	CustomerName string  `gorm:"size:255"`
	Value        float64 `gorm:"not null;default:0"`
	Stage        string  `gorm:"not null;size:20;index"`
	Probability  int     `gorm:"not null;default:0"`
	CloseDate    string  `gorm:"size:10"`
	CreatedAt    time.Time
}

func (DealModel) TableName() string {
	return constants.TableDeals
}
