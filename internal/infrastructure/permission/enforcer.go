// Package permission wraps a casbin RBAC enforcer persisted through GORM.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// Resources and actions checked by the application.
const (
	ResourcePayments = "payments"
	ResourceDevices  = "devices"
	ResourceHelpdesk = "helpdesk"
	ResourceSettings = "settings"

	ActionView     = "view"
	ActionDispatch = "dispatch"
	ActionUpdate   = "update"
)

const defaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies grant by role name. Subjects passed to Enforce are role
// names, so g rows can alias custom roles onto these.
var DefaultPolicies = [][]string{
	{"admin", ResourcePayments, ActionView},
	{"admin", ResourceDevices, ActionDispatch},
	{"admin", ResourceHelpdesk, ActionUpdate},
	{"admin", ResourceSettings, ActionUpdate},
	{"member", ResourceDevices, ActionDispatch},
	{"member", ResourceHelpdesk, ActionUpdate},
	{"member", ResourceSettings, ActionUpdate},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer loads the model from modelPath, or the built-in RBAC model
// when modelPath is empty.
func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	var m model.Model
	if modelPath != "" {
		m, err = model.NewModelFromFile(modelPath)
	} else {
		m, err = model.NewModelFromString(defaultModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(subject, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "subject", subject, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// EnsureDefaultPolicies adds any missing DefaultPolicies row. Existing rows,
// including operator edits, are kept.
func (e *Enforcer) EnsureDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range DefaultPolicies {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			e.logger.Errorw("failed to add policy", "error", err, "role", p[0], "resource", p[1], "action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}
	if added > 0 {
		e.logger.Infow("default permission policies added", "count", added)
	}
	return nil
}

func (e *Enforcer) AddRoleForSubject(subject, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddRoleForUser(subject, role); err != nil {
		return fmt.Errorf("failed to add role for subject: %w", err)
	}
	return nil
}
