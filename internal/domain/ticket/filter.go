package ticket

import (
	"strconv"
	"strings"
	"time"
)

// AssigneeUnassigned selects tickets without an assignee.
const AssigneeUnassigned = "unassigned"

// ListFilter narrows the full ticket list in memory. Empty fields match
// everything.
type ListFilter struct {
	Status     string
	Priority   string
	CategoryID string
	// Assignee is a user ID or AssigneeUnassigned.
	Assignee string
	// Search is matched case-insensitively against title, description and
	// ticket number.
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Fields is the part of a ticket a ListFilter looks at. Cached list rows
// expose it as well as *Ticket.
type Fields struct {
	Number      string
	Title       string
	Description string
	Status      string
	Priority    string
	CategoryID  *uint
	AssigneeID  *uint
	CreatedAt   time.Time
}

func (t *Ticket) Fields() Fields {
	return Fields{
		Number:      t.number,
		Title:       t.title,
		Description: t.description,
		Status:      string(t.status),
		Priority:    string(t.priority),
		CategoryID:  t.categoryID,
		AssigneeID:  t.assigneeID,
		CreatedAt:   t.createdAt,
	}
}

func (f ListFilter) IsEmpty() bool {
	return f.Status == "" && f.Priority == "" && f.CategoryID == "" && f.Assignee == "" &&
		strings.TrimSpace(f.Search) == "" && f.DateFrom == nil && f.DateTo == nil
}

func (f ListFilter) Matches(t Fields) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.CategoryID != "" && !uintEquals(t.CategoryID, f.CategoryID) {
		return false
	}
	if f.Assignee != "" {
		if f.Assignee == AssigneeUnassigned {
			if t.AssigneeID != nil {
				return false
			}
		} else if !uintEquals(t.AssigneeID, f.Assignee) {
			return false
		}
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) &&
			!strings.Contains(strings.ToLower(t.Number), term) {
			return false
		}
	}
	if f.DateFrom != nil && t.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}

// Apply returns the matching tickets in their original order.
func (f ListFilter) Apply(tickets []*Ticket) []*Ticket {
	out := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Matches(t.Fields()) {
			out = append(out, t)
		}
	}
	return out
}

func uintEquals(v *uint, s string) bool {
	return v != nil && strconv.FormatUint(uint64(*v), 10) == s
}
