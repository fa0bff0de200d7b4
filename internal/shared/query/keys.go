package query

// Keys shared between the views that read them and the mutations that
// invalidate them.

func CustomersKey() Key { return Key{"customers"} }

func DealsKey() Key { return Key{"deals"} }

func DashboardKey() Key { return Key{"dashboard"} }

func SettingsKey(authUserID string) Key { return Key{"settings", authUserID} }

func UserProfileKey(authUserID string) Key { return Key{"user-profile", authUserID} }

func CurrentUserKey(authUserID string) Key { return Key{"current-user-id", authUserID} }

func TicketKey(ticketID uint) Key { return NewKey("helpdesk-ticket", ticketID) }

func TicketCommentsKey(ticketID uint) Key { return NewKey("helpdesk-ticket-comments", ticketID) }

func TicketHistoryKey(ticketID uint) Key { return NewKey("helpdesk-ticket-history", ticketID) }

func TicketAttachmentsKey(ticketID uint) Key { return NewKey("helpdesk-ticket-attachments", ticketID) }

func TicketProblemsKey(ticketID uint) Key { return NewKey("helpdesk-problem-tickets", ticketID) }

// TicketsKey is the prefix of every ticket list.
func TicketsKey() Key { return Key{"helpdesk-tickets"} }

func AllTicketsKey() Key { return Key{"helpdesk-tickets", "all"} }

func ProblemsKey() Key { return Key{"helpdesk-problems"} }

func HelpdeskStatsKey() Key { return Key{"helpdesk-dashboard-stats"} }

// DevicesKey is the prefix of every device list.
func DevicesKey() Key { return Key{"devices"} }

func OrganisationDevicesKey(organisationID string) Key { return Key{"devices", organisationID} }

// DeviceActionsKey is the prefix of every device action list.
func DeviceActionsKey() Key { return Key{"device-actions"} }

func DeviceActionsForKey(deviceID string) Key { return Key{"device-actions", deviceID} }
