package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/shared/config"
)

const AccessTokenCookie = "access_token"

// SetAccessTokenCookie stores the session token as an HttpOnly cookie.
func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, token, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
}
