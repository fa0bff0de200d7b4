package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/permission"
	helpdeskhandlers "github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/helpdesk"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
)

type HelpdeskRouteConfig struct {
	HelpdeskHandler      *helpdeskhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupHelpdeskRoutes(engine *gin.Engine, cfg *HelpdeskRouteConfig) {
	helpdesk := engine.Group("/helpdesk")
	helpdesk.Use(cfg.AuthMiddleware.RequireAuth())
	{
		helpdesk.GET("/problems", cfg.HelpdeskHandler.ListProblems)
		helpdesk.GET("/stats", cfg.HelpdeskHandler.GetStats)

		tickets := helpdesk.Group("/tickets")

		// Collection operations (no ID parameter)
		tickets.GET("", cfg.HelpdeskHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/:id/detail", cfg.HelpdeskHandler.GetTicketDetail)
		tickets.GET("/:id/comments", cfg.HelpdeskHandler.ListComments)
		tickets.GET("/:id/history", cfg.HelpdeskHandler.ListHistory)
		tickets.GET("/:id/attachments", cfg.HelpdeskHandler.ListAttachments)
		tickets.GET("/:id/problems", cfg.HelpdeskHandler.ListLinkedProblems)
		tickets.POST("/:id/comments",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceHelpdesk, permission.ActionUpdate),
			cfg.HelpdeskHandler.AddComment)
		tickets.PATCH("/:id/status",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceHelpdesk, permission.ActionUpdate),
			cfg.HelpdeskHandler.ChangeStatus)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", cfg.HelpdeskHandler.GetTicket)
	}
}
