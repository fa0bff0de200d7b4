package dto

import (
	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
)

type ProfileSettingsDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type NotificationSettingsDTO struct {
	EmailNotifications bool `json:"email_notifications"`
	DealAlerts         bool `json:"deal_alerts"`
}

// UIContextDTO is the shell state the layout renders with.
type UIContextDTO struct {
	SidebarOpen bool   `json:"sidebar_open"`
	Theme       string `json:"theme"`
}

type SettingsDTO struct {
	Profile       ProfileSettingsDTO      `json:"profile"`
	Notifications NotificationSettingsDTO `json:"notifications"`
	UI            UIContextDTO            `json:"ui"`
}

func ToSettingsDTO(u *user.User, s *setting.UserSettings) SettingsDTO {
	return SettingsDTO{
		Profile: ProfileSettingsDTO{
			Name:    u.Name(),
			Email:   u.Email().String(),
			Company: u.Company(),
		},
		Notifications: NotificationSettingsDTO{
			EmailNotifications: s.EmailNotifications(),
			DealAlerts:         s.DealAlerts(),
		},
		UI: UIContextDTO{
			SidebarOpen: s.SidebarOpen(),
			Theme:       string(s.Theme()),
		},
	}
}
