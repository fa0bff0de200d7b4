package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login. Logging out deletes it, which invalidates
// every token issued for it.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ttl time.Duration, now time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
