package handlers

// UpdatePersonalInfoRequest is the personal info form. Email is read-only
// here.
type UpdatePersonalInfoRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateSettingsRequest is a partial settings update. Absent fields keep
// their stored value.
type UpdateSettingsRequest struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	Company            *string `json:"company"`
	EmailNotifications *bool   `json:"email_notifications"`
	DealAlerts         *bool   `json:"deal_alerts"`
	SidebarOpen        *bool   `json:"sidebar_open"`
	Theme              *string `json:"theme"`
}

// ToastResponse carries a mutation result together with the toast shown
// for it.
type ToastResponse struct {
	Title string      `json:"title"`
	Data  interface{} `json:"data"`
}
