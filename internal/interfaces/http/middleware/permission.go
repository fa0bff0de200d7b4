package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// PermissionChecker is satisfied by the casbin enforcer.
type PermissionChecker interface {
	Enforce(subject, resource, action string) (bool, error)
}

// PermissionMiddleware guards routes by the caller's role.
type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{checker: checker, logger: logger}
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := authorization.SessionFromGin(c)
		if session == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.checker.Enforce(session.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", session.UserID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied", "user_id", session.UserID, "role", session.Role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
