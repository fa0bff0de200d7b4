package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("correct horse", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("correct horse", "not-a-hash"), ErrPasswordMismatch)
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestJWTService_RoundTrip(t *testing.T) {
	s := NewJWTService("test-secret", 15)

	token, exp, err := s.Issue("auth-1", "session-1", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 5*time.Second)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "auth-1", claims.AuthUserID)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	s := NewJWTService("test-secret", 15)

	other, _, err := NewJWTService("other-secret", 15).Issue("auth-1", "session-1", authorization.RoleMember)
	require.NoError(t, err)
	_, err = s.Verify(other)
	assert.Error(t, err)

	expired, _, err := NewJWTService("test-secret", -1).Issue("auth-1", "session-1", authorization.RoleMember)
	require.NoError(t, err)
	_, err = s.Verify(expired)
	assert.Error(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{AuthUserID: "auth-1", TokenType: "refresh"})
	signed, err := refresh.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.Verify(signed)
	assert.ErrorContains(t, err, "unexpected token type")

	_, err = s.Verify("garbage")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, _, err := NewJWTService("", 15).Issue("auth-1", "session-1", authorization.RoleMember)
	assert.Error(t, err)
}
