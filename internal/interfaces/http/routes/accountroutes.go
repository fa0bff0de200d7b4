package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/permission"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/common"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
)

// AccountRouteConfig holds dependencies for the signed-in user's own pages
// and the layout shell.
type AccountRouteConfig struct {
	SettingsHandler      *handlers.SettingsHandler
	ProfileHandler       *handlers.ProfileHandler
	NavigationHandler    *handlers.NavigationHandler
	EventsHandler        *common.EventsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAccountRoutes(engine *gin.Engine, cfg *AccountRouteConfig) {
	engine.GET("/navigation", cfg.AuthMiddleware.OptionalAuth(), cfg.NavigationHandler.GetNavigation)

	authed := engine.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	{
		authed.GET("/settings", cfg.SettingsHandler.GetSettings)
		authed.PUT("/settings",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceSettings, permission.ActionUpdate),
			cfg.SettingsHandler.UpdateSettings)

		authed.GET("/profile/personal-info", cfg.ProfileHandler.GetPersonalInfo)
		authed.PUT("/profile/personal-info", cfg.ProfileHandler.UpdatePersonalInfo)

		authed.GET("/events", cfg.EventsHandler.Stream)
	}
}
