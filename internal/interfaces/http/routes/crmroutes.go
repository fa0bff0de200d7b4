package routes

import (
	"github.com/gin-gonic/gin"

	crmhandlers "github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/crm"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
)

type CRMRouteConfig struct {
	CRMHandler     *crmhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCRMRoutes configures the dashboard, customer and deal pages.
func SetupCRMRoutes(engine *gin.Engine, cfg *CRMRouteConfig) {
	crm := engine.Group("")
	crm.Use(cfg.AuthMiddleware.RequireAuth())
	{
		crm.GET("/dashboard", cfg.CRMHandler.GetDashboard)
		crm.GET("/customers", cfg.CRMHandler.ListCustomers)
		crm.GET("/deals", cfg.CRMHandler.GetDealsBoard)
	}
}
