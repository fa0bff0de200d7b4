package mappers

import (
	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
)

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Company:   c.Company(),
		Phone:     c.Phone(),
		Value:     c.Value(),
		Status:    string(c.Status()),
		CreatedAt: c.CreatedAt(),
	}
}

func CustomerToDomain(m *models.CustomerModel) *customer.Customer {
	return customer.ReconstructCustomer(
		m.ID, m.Name, m.Email, m.Company, m.Phone, m.Value, customer.Status(m.Status), m.CreatedAt,
	)
}

func DealToModel(d *deal.Deal) *models.DealModel {
	return &models.DealModel{
		ID:           d.ID(),
		Title:        d.Title(),
		CustomerName: d.CustomerName(),
		Value:        d.Value(),
		Stage:        string(d.Stage()),
		Probability:  d.Probability(),
		CloseDate:    d.CloseDate(),
		CreatedAt:    d.CreatedAt(),
	}
}

func DealToDomain(m *models.DealModel) *deal.Deal {
	return deal.ReconstructDeal(
		m.ID, m.Title, m.CustomerName, m.Value, deal.Stage(m.Stage), m.Probability, m.CloseDate, m.CreatedAt,
	)
}

func SettingsToModel(s *setting.UserSettings) *models.UserSettingsModel {
	return &models.UserSettingsModel{
		UserID:             s.UserID(),
		EmailNotifications: s.EmailNotifications(),
		DealAlerts:         s.DealAlerts(),
		SidebarOpen:        s.SidebarOpen(),
		Theme:              string(s.Theme()),
		UpdatedAt:          s.UpdatedAt(),
	}
}

func SettingsToDomain(m *models.UserSettingsModel) *setting.UserSettings {
	return setting.Reconstruct(
		m.UserID, m.EmailNotifications, m.DealAlerts, m.SidebarOpen, setting.Theme(m.Theme), m.UpdatedAt,
	)
}
