package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, "", logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.EnsureDefaultPolicies())
	return e, db
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e, _ := newTestEnforcer(t)

	tests := []struct {
		subject, resource, action string
		want                      bool
	}{
		{"admin", ResourcePayments, ActionView, true},
		{"member", ResourcePayments, ActionView, false},
		{"member", ResourceDevices, ActionDispatch, true},
		{"member", ResourceHelpdesk, ActionUpdate, true},
		{"guest", ResourceDevices, ActionDispatch, false},
	}
	for _, tt := range tests {
		got, err := e.Enforce(tt.subject, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.subject, tt.resource, tt.action)
	}
}

func TestEnforcer_EnsureDefaultPoliciesIsIdempotent(t *testing.T) {
	e, db := newTestEnforcer(t)
	require.NoError(t, e.EnsureDefaultPolicies())

	var n int64
	require.NoError(t, db.Table("casbin_rule").Where("ptype = ?", "p").Count(&n).Error)
	assert.EqualValues(t, len(DefaultPolicies), n)
}

func TestEnforcer_RoleInheritance(t *testing.T) {
	e, _ := newTestEnforcer(t)
	require.NoError(t, e.AddRoleForSubject("billing", "admin"))

	ok, err := e.Enforce("billing", ResourcePayments, ActionView)
	require.NoError(t, err)
	assert.True(t, ok)
}
