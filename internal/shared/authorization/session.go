package authorization

import "github.com/gin-gonic/gin"

// ContextKeySession is the gin context key the auth middleware stores the
// caller's Session under.
const ContextKeySession = "session"

// Session is the authenticated caller as seen by use cases.
type Session struct {
	SessionID      string
	UserID         uint
	AuthUserID     string
	Email          string
	Name           string
	Role           UserRole
	UserType       string
	AccountType    string
	AppmasterRole  *string
	OrganisationID *string
	TenantID       *string
}

// IsPlatformAdmin reports whether the caller may open the admin panel.
func (s *Session) IsPlatformAdmin() bool {
	if s == nil {
		return false
	}
	return s.UserType == UserTypeAppmasterAdmin || (s.AppmasterRole != nil && *s.AppmasterRole != "")
}

// SessionFromGin returns the session set by the auth middleware, or nil on
// anonymous routes.
func SessionFromGin(c *gin.Context) *Session {
	v, ok := c.Get(ContextKeySession)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}
