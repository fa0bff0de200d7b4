package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusOnHold     TicketStatus = "on_hold"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// AllStatuses is the order status options are offered in.
var AllStatuses = []TicketStatus{
	StatusOpen,
	StatusInProgress,
	StatusOnHold,
	StatusResolved,
	StatusClosed,
}

var titleCaser = cases.Title(language.English)

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s TicketStatus) IsResolved() bool { return s == StatusResolved }

func (s TicketStatus) IsClosed() bool { return s == StatusClosed }

// IsDone reports whether work on the ticket has finished, which stops the
// SLA clock.
func (s TicketStatus) IsDone() bool { return s == StatusResolved || s == StatusClosed }

// Label renders the status for display, e.g. "in_progress" as "In Progress".
func (s TicketStatus) Label() string {
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

func NewTicketStatus(s string) (TicketStatus, error) {
	st := TicketStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
