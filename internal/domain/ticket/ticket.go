package ticket

import (
	"errors"
	"fmt"
	"time"

	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
)

// ErrStatusUnchanged is returned when a status change names the current status.
var ErrStatusUnchanged = errors.New("status unchanged")

type Ticket struct {
	id          uint
	number      string
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	categoryID  *uint
	requesterID *uint
	assigneeID  *uint
	tenantID    *string
	slaDueDate  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
}

// NewTicket opens a ticket with an SLA due date derived from its priority.
func NewTicket(
	number string,
	title string,
	description string,
	priority vo.Priority,
	categoryID *uint,
	requesterID *uint,
	tenantID *string,
	now time.Time,
) (*Ticket, error) {
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	due := now.Add(time.Duration(priority.SLAHours()) * time.Hour)
	return &Ticket{
		number:      number,
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		categoryID:  categoryID,
		requesterID: requesterID,
		tenantID:    tenantID,
		slaDueDate:  &due,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	categoryID *uint,
	requesterID *uint,
	assigneeID *uint,
	tenantID *string,
	slaDueDate *time.Time,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return &Ticket{
		id:          id,
		number:      number,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		categoryID:  categoryID,
		requesterID: requesterID,
		assigneeID:  assigneeID,
		tenantID:    tenantID,
		slaDueDate:  slaDueDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) CategoryID() *uint       { return t.categoryID }
func (t *Ticket) RequesterID() *uint      { return t.requesterID }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) TenantID() *string       { return t.tenantID }
func (t *Ticket) SLADueDate() *time.Time  { return t.slaDueDate }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time  { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time    { return t.closedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo sets the assignee; nil unassigns.
func (t *Ticket) AssignTo(assigneeID *uint, now time.Time) {
	t.assigneeID = assigneeID
	t.updatedAt = now
}

// ChangeStatus moves the ticket to any other valid status. Resolving stamps
// resolvedAt and closing stamps closedAt; neither clears the other stamp.
// It returns the previous status.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, now time.Time) (vo.TicketStatus, error) {
	if !newStatus.IsValid() {
		return "", fmt.Errorf("invalid status: %s", newStatus)
	}
	old := t.status
	if old == newStatus {
		return old, ErrStatusUnchanged
	}

	t.status = newStatus
	t.updatedAt = now
	switch newStatus {
	case vo.StatusResolved:
		t.resolvedAt = &now
	case vo.StatusClosed:
		t.closedAt = &now
	}
	return old, nil
}

// IsSLABreached reports an open ticket whose SLA due date has passed.
func (t *Ticket) IsSLABreached(now time.Time) bool {
	if t.slaDueDate == nil || t.status.IsDone() {
		return false
	}
	return now.After(*t.slaDueDate)
}
