package http

import (
	crmUsecases "github.com/appmaster-hq/appmaster/internal/application/crm/usecases"
	deviceUsecases "github.com/appmaster-hq/appmaster/internal/application/device/usecases"
	helpdeskUsecases "github.com/appmaster-hq/appmaster/internal/application/helpdesk/usecases"
	navigationUsecases "github.com/appmaster-hq/appmaster/internal/application/navigation/usecases"
	settingUsecases "github.com/appmaster-hq/appmaster/internal/application/setting/usecases"
	userUsecases "github.com/appmaster-hq/appmaster/internal/application/user/usecases"
)

// allUseCases holds every use case the handlers and middlewares call.
type allUseCases struct {
	// User & Auth
	signup             *userUsecases.SignupUseCase
	login              *userUsecases.LoginUseCase
	logout             *userUsecases.LogoutUseCase
	verifyEmail        *userUsecases.VerifyEmailUseCase
	resolveSession     *userUsecases.ResolveSessionUseCase
	getCurrentUser     *userUsecases.GetCurrentUserUseCase
	getPersonalInfo    *userUsecases.GetPersonalInfoUseCase
	updatePersonalInfo *userUsecases.UpdatePersonalInfoUseCase

	// Settings & Navigation
	getSettings    *settingUsecases.GetSettingsUseCase
	updateSettings *settingUsecases.UpdateSettingsUseCase
	getNavigation  *navigationUsecases.GetNavigationUseCase

	// CRM
	listCustomers *crmUsecases.ListCustomersUseCase
	getDealsBoard *crmUsecases.GetDealsBoardUseCase
	getDashboard  *crmUsecases.GetDashboardUseCase

	// Helpdesk
	listTickets        *helpdeskUsecases.ListTicketsUseCase
	listProblems       *helpdeskUsecases.ListProblemsUseCase
	getStats           *helpdeskUsecases.GetStatsUseCase
	getTicket          *helpdeskUsecases.GetTicketUseCase
	listComments       *helpdeskUsecases.ListCommentsUseCase
	listHistory        *helpdeskUsecases.ListHistoryUseCase
	listAttachments    *helpdeskUsecases.ListAttachmentsUseCase
	listLinkedProblems *helpdeskUsecases.ListLinkedProblemsUseCase
	getTicketDetail    *helpdeskUsecases.GetTicketDetailUseCase
	addComment         *helpdeskUsecases.AddCommentUseCase
	changeStatus       *helpdeskUsecases.ChangeStatusUseCase

	// Devices
	listDevices *deviceUsecases.ListDevicesUseCase
	listActions *deviceUsecases.ListActionsUseCase
	getCatalog  *deviceUsecases.GetCatalogUseCase
	queueAction *deviceUsecases.QueueActionUseCase
}

// newUseCases builds the use cases once the infrastructure section has set
// up repositories, the query client and the auth services.
func (c *Container) newUseCases() *allUseCases {
	cfg := c.cfg
	log := c.log
	r := c.repos
	q := c.queryClient
	requireConfirmation := cfg.Auth.RequireEmailConfirmation

	ucs := &allUseCases{
		signup:             userUsecases.NewSignupUseCase(r.userRepo, r.organisationRepo, c.hasher, c.mailer, c.txMgr, requireConfirmation, log),
		login:              userUsecases.NewLoginUseCase(r.userRepo, r.sessionRepo, c.hasher, c.jwtSvc, cfg.Auth.Session.TTL(), requireConfirmation, log),
		logout:             userUsecases.NewLogoutUseCase(r.sessionRepo, q, log),
		verifyEmail:        userUsecases.NewVerifyEmailUseCase(r.userRepo, q, log),
		resolveSession:     userUsecases.NewResolveSessionUseCase(r.userRepo, r.sessionRepo, log),
		getCurrentUser:     userUsecases.NewGetCurrentUserUseCase(r.userRepo, q, log),
		getPersonalInfo:    userUsecases.NewGetPersonalInfoUseCase(r.userRepo, q, log),
		updatePersonalInfo: userUsecases.NewUpdatePersonalInfoUseCase(r.userRepo, q, log),

		getSettings:    settingUsecases.NewGetSettingsUseCase(r.userRepo, r.settingRepo, q, log),
		updateSettings: settingUsecases.NewUpdateSettingsUseCase(r.userRepo, r.settingRepo, c.txMgr, q, log),

		listCustomers: crmUsecases.NewListCustomersUseCase(r.customerRepo, q, log),
		getDealsBoard: crmUsecases.NewGetDealsBoardUseCase(r.dealRepo, q, log),
		getDashboard:  crmUsecases.NewGetDashboardUseCase(r.customerRepo, r.dealRepo, q, log),

		listTickets:        helpdeskUsecases.NewListTicketsUseCase(r.ticketRepo, r.categoryRepo, r.userRepo, q, log),
		listProblems:       helpdeskUsecases.NewListProblemsUseCase(r.problemRepo, q, log),
		getStats:           helpdeskUsecases.NewGetStatsUseCase(r.ticketRepo, q, log),
		getTicket:          helpdeskUsecases.NewGetTicketUseCase(r.ticketRepo, r.categoryRepo, r.userRepo, c.renderer, q, log),
		listComments:       helpdeskUsecases.NewListCommentsUseCase(r.commentRepo, r.userRepo, c.renderer, q, log),
		listHistory:        helpdeskUsecases.NewListHistoryUseCase(r.historyRepo, r.userRepo, q, log),
		listAttachments:    helpdeskUsecases.NewListAttachmentsUseCase(r.attachmentRepo, r.userRepo, q, log),
		listLinkedProblems: helpdeskUsecases.NewListLinkedProblemsUseCase(r.problemRepo, q, log),
		addComment:         helpdeskUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, q, log),
		changeStatus:       helpdeskUsecases.NewChangeStatusUseCase(r.ticketRepo, q, log),

		listDevices: deviceUsecases.NewListDevicesUseCase(r.deviceRepo, q, log),
		listActions: deviceUsecases.NewListActionsUseCase(r.deviceRepo, r.deviceActionRepo, q, log),
		getCatalog:  deviceUsecases.NewGetCatalogUseCase(),
		queueAction: deviceUsecases.NewQueueActionUseCase(r.deviceRepo, r.deviceActionRepo, q, log),
	}

	ucs.getNavigation = navigationUsecases.NewGetNavigationUseCase(ucs.getSettings, c.enforcer, log)
	ucs.getTicketDetail = helpdeskUsecases.NewGetTicketDetailUseCase(
		ucs.getTicket, ucs.listComments, ucs.listHistory, ucs.listAttachments, ucs.listLinkedProblems, log,
	)

	return ucs
}
