package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/permission"
	devicehandlers "github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers/device"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
)

type DeviceRouteConfig struct {
	DeviceHandler        *devicehandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupDeviceRoutes(engine *gin.Engine, cfg *DeviceRouteConfig) {
	devices := engine.Group("/devices")
	devices.Use(cfg.AuthMiddleware.RequireAuth())
	{
		devices.GET("", cfg.DeviceHandler.ListDevices)
		devices.GET("/catalog", cfg.DeviceHandler.GetCatalog)
		devices.GET("/:id/actions", cfg.DeviceHandler.ListActions)
		devices.POST("/:id/actions",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceDevices, permission.ActionDispatch),
			cfg.DeviceHandler.QueueAction)
	}
}
