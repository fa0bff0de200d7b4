package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/config"
	_ "github.com/appmaster-hq/appmaster/internal/interfaces/http/docs"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/routes"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// Router represents the HTTP router configuration.
type Router struct {
	container *Container
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: c}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine
	h := c.hdlrs

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/health", h.healthHandler.HealthCheck)
	engine.GET("/version", h.healthHandler.Version)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupCRMRoutes(engine, &routes.CRMRouteConfig{
		CRMHandler:     h.crmHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupHelpdeskRoutes(engine, &routes.HelpdeskRouteConfig{
		HelpdeskHandler:      h.helpdeskHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupDeviceRoutes(engine, &routes.DeviceRouteConfig{
		DeviceHandler:        h.deviceHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAccountRoutes(engine, &routes.AccountRouteConfig{
		SettingsHandler:      h.settingsHandler,
		ProfileHandler:       h.profileHandler,
		NavigationHandler:    h.navigationHandler,
		EventsHandler:        h.eventsHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

// StartBackground starts the cross-instance invalidation subscriber.
func (r *Router) StartBackground(ctx context.Context) {
	r.container.StartBackground(ctx)
}

// Shutdown stops background services and closes the event streams so their
// handlers return before the HTTP server drains.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}

type sqlPinger struct {
	db *gorm.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
