package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
)

const TokenTypeAccess = "access"

// Claims binds an access token to a server-side session. Deleting the
// session revokes the token even before it expires.
type Claims struct {
	AuthUserID string                 `json:"auth_user_id"`
	SessionID  string                 `json:"session_id"`
	Role       authorization.UserRole `json:"role"`
	TokenType  string                 `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: time.Duration(accessExpMinutes) * time.Minute,
	}
}

// Issue signs an HS256 access token and returns it with its expiry.
func (s *JWTService) Issue(authUserID, sessionID string, role authorization.UserRole) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret is not configured")
	}
	now := biztime.NowUTC()
	exp := now.Add(s.accessTTL)
	claims := &Claims{
		AuthUserID: authUserID,
		SessionID:  sessionID,
		Role:       role,
		TokenType:  TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   authUserID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}
	return claims, nil
}

func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}
