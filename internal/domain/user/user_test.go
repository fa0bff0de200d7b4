package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

var now = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := vo.NewEmail("sarah.j@acmecorp.com")
	require.NoError(t, err)
	u, err := NewUser(email, "Sarah Johnson", "hash", vo.AccountTypePersonal, nil, now)
	require.NoError(t, err)
	return u
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Sarah Johnson":        "SJ",
		"emily":                "E",
		"Mary Ann Smith":       "MA",
		"":                     "U",
		"   ":                  "U",
		"  david   kim  extra": "DK",
	}
	for name, want := range tests {
		assert.Equal(t, want, Initials(name), name)
	}
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)

	assert.NotEmpty(t, u.AuthUserID())
	assert.False(t, u.EmailConfirmed())
	require.NotNil(t, u.ConfirmationToken())
	assert.Equal(t, authorization.RoleAdmin, u.Role())
	assert.Equal(t, "SJ", u.Initials())
}

func TestUser_ConfirmEmail(t *testing.T) {
	u := newTestUser(t)
	token := *u.ConfirmationToken()

	assert.Error(t, u.ConfirmEmail("wrong", now))
	assert.False(t, u.EmailConfirmed())

	require.NoError(t, u.ConfirmEmail(token, now))
	assert.True(t, u.EmailConfirmed())
	assert.Nil(t, u.ConfirmationToken())
}

func TestUser_UpdateContact(t *testing.T) {
	u := newTestUser(t)
	later := now.Add(time.Hour)

	require.NoError(t, u.UpdateContact(" Sarah J. Johnson ", "+1 (555) 123-4567", later))
	assert.Equal(t, "Sarah J. Johnson", u.Name())
	assert.Equal(t, "+1 (555) 123-4567", u.Phone())
	assert.Equal(t, later, u.UpdatedAt())

	assert.Error(t, u.UpdateContact("  ", "", later))
	assert.Equal(t, "Sarah J. Johnson", u.Name())
}

func TestSession_IsExpired(t *testing.T) {
	s, err := NewSession(1, time.Hour, now)
	require.NoError(t, err)

	assert.False(t, s.IsExpired(now.Add(59*time.Minute)))
	assert.True(t, s.IsExpired(now.Add(time.Hour)))
}
