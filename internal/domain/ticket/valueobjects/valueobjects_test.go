package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_Label(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "On Hold", StatusOnHold.Label())
	assert.Equal(t, "Open", StatusOpen.Label())
}

func TestNewTicketStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := NewTicketStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := NewTicketStatus("pending")
	assert.Error(t, err)
}

func TestPriority_Color(t *testing.T) {
	tests := map[Priority]string{
		PriorityUrgent:      "red",
		PriorityHigh:        "orange",
		PriorityMedium:      "yellow",
		PriorityLow:         "green",
		Priority("someday"): "gray",
	}
	for p, want := range tests {
		assert.Equal(t, want, p.Color(), string(p))
	}
}
