// Package setting holds per-user preferences: notification toggles and the
// UI context (sidebar state, theme) the shell renders with.
package setting

import (
	"fmt"
	"time"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

type UserSettings struct {
	userID             uint
	emailNotifications bool
	dealAlerts         bool
	sidebarOpen        bool
	theme              Theme
	updatedAt          time.Time
}

// Defaults are what a user sees before saving anything.
func Defaults(userID uint) *UserSettings {
	return &UserSettings{
		userID:             userID,
		emailNotifications: true,
		dealAlerts:         true,
		sidebarOpen:        true,
		theme:              ThemeSystem,
	}
}

func Reconstruct(userID uint, emailNotifications, dealAlerts, sidebarOpen bool, theme Theme, updatedAt time.Time) *UserSettings {
	if !theme.IsValid() {
		theme = ThemeSystem
	}
	return &UserSettings{
		userID:             userID,
		emailNotifications: emailNotifications,
		dealAlerts:         dealAlerts,
		sidebarOpen:        sidebarOpen,
		theme:              theme,
		updatedAt:          updatedAt,
	}
}

func (s *UserSettings) UserID() uint             { return s.userID }
func (s *UserSettings) EmailNotifications() bool { return s.emailNotifications }
func (s *UserSettings) DealAlerts() bool         { return s.dealAlerts }
func (s *UserSettings) SidebarOpen() bool        { return s.sidebarOpen }
func (s *UserSettings) Theme() Theme             { return s.theme }
func (s *UserSettings) UpdatedAt() time.Time     { return s.updatedAt }

// Patch holds optional changes; nil fields are left alone.
type Patch struct {
	EmailNotifications *bool
	DealAlerts         *bool
	SidebarOpen        *bool
	Theme              *Theme
}

func (s *UserSettings) Apply(p Patch, now time.Time) error {
	if p.Theme != nil && !p.Theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", *p.Theme)
	}
	if p.EmailNotifications != nil {
		s.emailNotifications = *p.EmailNotifications
	}
	if p.DealAlerts != nil {
		s.dealAlerts = *p.DealAlerts
	}
	if p.SidebarOpen != nil {
		s.sidebarOpen = *p.SidebarOpen
	}
	if p.Theme != nil {
		s.theme = *p.Theme
	}
	s.updatedAt = now
	return nil
}
