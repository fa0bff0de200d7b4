package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/user/usecases"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/auth"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// TokenVerifier is satisfied by auth.JWTService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware turns the access token into the caller's
// authorization.Session. A token is honoured only while its server-side
// session exists.
type AuthMiddleware struct {
	tokens   TokenVerifier
	sessions usecases.ResolveSessionExecutor
	logger   logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, sessions usecases.ResolveSessionExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewNotAuthenticatedError())
			c.Abort()
			return
		}

		session, err := m.resolve(c, token)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(authorization.ContextKeySession, session)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractToken(c); ok {
			if session, err := m.resolve(c, token); err == nil {
				c.Set(authorization.ContextKeySession, session)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context, token string) (*authorization.Session, error) {
	claims, err := m.tokens.Verify(token)
	if err != nil {
		m.logger.Debugw("failed to verify token", "error", err)
		return nil, errors.NewTokenInvalidError("access token")
	}
	return m.sessions.Execute(c.Request.Context(), usecases.ResolveSessionQuery{
		AuthUserID: claims.AuthUserID,
		SessionID:  claims.SessionID,
	})
}

// extractToken prefers the cookie and falls back to a Bearer header.
func extractToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(utils.AccessTokenCookie); err == nil && token != "" {
		return token, true
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireSession rejects requests that reached it without a session; used
// after OptionalAuth on mixed groups.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorization.SessionFromGin(c) == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}
