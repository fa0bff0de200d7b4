package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/interfaces/http/handlers"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)

		auth.POST("/logout", cfg.AuthMiddleware.OptionalAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
