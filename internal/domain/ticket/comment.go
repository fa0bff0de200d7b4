package ticket

import (
	"fmt"
	"strings"
	"time"
)

const maxCommentLength = 5000

type Comment struct {
	id         uint
	ticketID   uint
	userID     uint
	comment    string
	isInternal bool
	tenantID   *string
	createdAt  time.Time
}

// NewComment creates a public comment. Text that is empty after trimming is
// rejected; otherwise it is stored as typed.
func NewComment(ticketID, userID uint, text string, tenantID *string, now time.Time) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}
	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		comment:   text,
		tenantID:  tenantID,
		createdAt: now,
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, text string, isInternal bool, tenantID *string, createdAt time.Time) *Comment {
	return &Comment{
		id:         id,
		ticketID:   ticketID,
		userID:     userID,
		comment:    text,
		isInternal: isInternal,
		tenantID:   tenantID,
		createdAt:  createdAt,
	}
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Text() string         { return c.comment }
func (c *Comment) IsInternal() bool     { return c.isInternal }
func (c *Comment) TenantID() *string    { return c.tenantID }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) { c.id = id }
