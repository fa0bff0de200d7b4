package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers             = "users"
	TableOrganisations     = "organisations"
	TableSessions          = "sessions"
	TableUserSettings      = "user_settings"
	TableCustomers         = "customers"
	TableDeals             = "deals"
	TableTickets           = "helpdesk_tickets"
	TableTicketComments    = "helpdesk_ticket_comments"
	TableTicketHistory     = "helpdesk_ticket_history"
	TableTicketAttachments = "helpdesk_ticket_attachments"
	TableProblems          = "helpdesk_problems"
	TableProblemTickets    = "helpdesk_problem_tickets"
	TableCategories        = "helpdesk_categories"
	TableDevices           = "devices"
	TableDeviceActions     = "device_actions"
)
