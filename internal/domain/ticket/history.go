package ticket

import "time"

const FieldStatus = "status"

// HistoryEntry records one field change on a ticket. UserID is nil for
// changes made by the system.
type HistoryEntry struct {
	id        uint
	ticketID  uint
	userID    *uint
	fieldName string
	oldValue  *string
	newValue  *string
	timestamp time.Time
}

func NewFieldChange(ticketID uint, userID *uint, field string, oldValue, newValue string, at time.Time) *HistoryEntry {
	return &HistoryEntry{
		ticketID:  ticketID,
		userID:    userID,
		fieldName: field,
		oldValue:  &oldValue,
		newValue:  &newValue,
		timestamp: at,
	}
}

func ReconstructHistoryEntry(id, ticketID uint, userID *uint, field string, oldValue, newValue *string, at time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		fieldName: field,
		oldValue:  oldValue,
		newValue:  newValue,
		timestamp: at,
	}
}

func (h *HistoryEntry) ID() uint             { return h.id }
func (h *HistoryEntry) TicketID() uint       { return h.ticketID }
func (h *HistoryEntry) UserID() *uint        { return h.userID }
func (h *HistoryEntry) FieldName() string    { return h.fieldName }
func (h *HistoryEntry) OldValue() *string    { return h.oldValue }
func (h *HistoryEntry) NewValue() *string    { return h.newValue }
func (h *HistoryEntry) Timestamp() time.Time { return h.timestamp }
