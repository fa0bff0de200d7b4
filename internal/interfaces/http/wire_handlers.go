package http

import (
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/common"
	crmHandlers "github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/crm"
	deviceHandlers "github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/device"
	helpdeskHandlers "github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/helpdesk"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler

	// Shell
	settingsHandler   *handlers.SettingsHandler
	navigationHandler *handlers.NavigationHandler
	healthHandler     *handlers.HealthHandler
	eventsHandler     *common.EventsHandler

	// Pages
	crmHandler      *crmHandlers.Handler
	helpdeskHandler *helpdeskHandlers.Handler
	deviceHandler   *deviceHandlers.Handler
}

func (c *Container) newHandlers() *allHandlers {
	log := c.log
	ucs := c.ucs

	checks := map[string]handlers.Pinger{"database": sqlPinger{db: c.db}}
	if c.redis != nil {
		checks["redis"] = redisPinger{client: c.redis}
	}

	return &allHandlers{
		authHandler: handlers.NewAuthHandler(
			ucs.signup, ucs.login, ucs.logout, ucs.verifyEmail, ucs.getCurrentUser,
			log, c.cfg.Auth.Cookie,
		),
		profileHandler: handlers.NewProfileHandler(ucs.getPersonalInfo, ucs.updatePersonalInfo, log),

		settingsHandler:   handlers.NewSettingsHandler(ucs.getSettings, ucs.updateSettings, log),
		navigationHandler: handlers.NewNavigationHandler(ucs.getNavigation),
		healthHandler:     handlers.NewHealthHandler(checks),
		eventsHandler:     common.NewEventsHandler(c.hub, log),

		crmHandler: crmHandlers.NewHandler(ucs.listCustomers, ucs.getDealsBoard, ucs.getDashboard, log),
		helpdeskHandler: helpdeskHandlers.NewHandler(helpdeskHandlers.UseCases{
			ListTickets:        ucs.listTickets,
			ListProblems:       ucs.listProblems,
			GetStats:           ucs.getStats,
			GetTicket:          ucs.getTicket,
			GetTicketDetail:    ucs.getTicketDetail,
			ListComments:       ucs.listComments,
			ListHistory:        ucs.listHistory,
			ListAttachments:    ucs.listAttachments,
			ListLinkedProblems: ucs.listLinkedProblems,
			AddComment:         ucs.addComment,
			ChangeStatus:       ucs.changeStatus,
		}, log),
		deviceHandler: deviceHandlers.NewHandler(ucs.listDevices, ucs.listActions, ucs.getCatalog, ucs.queueAction, log),
	}
}
