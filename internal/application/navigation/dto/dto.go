package dto

import "github.com/appmaster-hq/appmaster/internal/domain/navigation"

type LinkDTO struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

func ToLinkDTOs(items []navigation.Item, path string) []LinkDTO {
	out := make([]LinkDTO, 0, len(items))
	for _, item := range items {
		out = append(out, LinkDTO{Title: item.Title, URL: item.URL, Active: item.IsActive(path)})
	}
	return out
}

type SidebarDTO struct {
	Open  bool      `json:"open"`
	Items []LinkDTO `json:"items"`
}

// NavbarDTO lists the top bar controls. Links holds the login links shown
// to anonymous visitors.
type NavbarDTO struct {
	ShowBack          bool      `json:"show_back"`
	Authenticated     bool      `json:"authenticated"`
	ShowDashboardLink bool      `json:"show_dashboard_link"`
	ShowNotifications bool      `json:"show_notifications"`
	ShowProfileLink   bool      `json:"show_profile_link"`
	ShowAdminPanel    bool      `json:"show_admin_panel"`
	ShowLogout        bool      `json:"show_logout"`
	Links             []LinkDTO `json:"links"`
}

type NavigationDTO struct {
	Path           string     `json:"path"`
	Navbar         NavbarDTO  `json:"navbar"`
	Sidebar        SidebarDTO `json:"sidebar"`
	ProfileSidebar []LinkDTO  `json:"profile_sidebar"`
}
