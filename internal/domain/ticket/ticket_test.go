package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
)

var baseTime = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func newTestTicket(t *testing.T, status vo.TicketStatus) *Ticket {
	t.Helper()
	tk, err := ReconstructTicket(1, "TKT-0001", "VPN drops", "Connection drops every hour",
		status, vo.PriorityHigh, nil, nil, nil, nil, nil, baseTime, baseTime, nil, nil)
	require.NoError(t, err)
	return tk
}

func TestTicket_ChangeStatus(t *testing.T) {
	later := baseTime.Add(time.Hour)

	t.Run("resolved stamps resolved_at only", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusOpen)

		old, err := tk.ChangeStatus(vo.StatusResolved, later)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusOpen, old)
		require.NotNil(t, tk.ResolvedAt())
		assert.Equal(t, later, *tk.ResolvedAt())
		assert.Nil(t, tk.ClosedAt())
		assert.Equal(t, later, tk.UpdatedAt())
	})

	t.Run("closed stamps closed_at and keeps resolved_at", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusOpen)
		_, err := tk.ChangeStatus(vo.StatusResolved, later)
		require.NoError(t, err)

		closeAt := later.Add(time.Hour)
		_, err = tk.ChangeStatus(vo.StatusClosed, closeAt)
		require.NoError(t, err)

		require.NotNil(t, tk.ClosedAt())
		assert.Equal(t, closeAt, *tk.ClosedAt())
		require.NotNil(t, tk.ResolvedAt())
		assert.Equal(t, later, *tk.ResolvedAt())
	})

	t.Run("other statuses touch no timestamps", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusOpen)
		_, err := tk.ChangeStatus(vo.StatusOnHold, later)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusOnHold, tk.Status())
		assert.Nil(t, tk.ResolvedAt())
		assert.Nil(t, tk.ClosedAt())
	})

	t.Run("any status may follow closed", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusClosed)
		_, err := tk.ChangeStatus(vo.StatusOpen, later)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("same status is rejected", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusInProgress)
		_, err := tk.ChangeStatus(vo.StatusInProgress, later)
		assert.ErrorIs(t, err, ErrStatusUnchanged)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusOpen)
		_, err := tk.ChangeStatus(vo.TicketStatus("reopened"), later)
		assert.Error(t, err)
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})
}

func TestTicket_IsSLABreached(t *testing.T) {
	tk, err := NewTicket("TKT-0002", "Printer offline", "", vo.PriorityUrgent, nil, nil, nil, baseTime)
	require.NoError(t, err)

	assert.False(t, tk.IsSLABreached(baseTime.Add(time.Hour)))
	assert.True(t, tk.IsSLABreached(baseTime.Add(5*time.Hour)))

	_, err = tk.ChangeStatus(vo.StatusResolved, baseTime.Add(6*time.Hour))
	require.NoError(t, err)
	assert.False(t, tk.IsSLABreached(baseTime.Add(7*time.Hour)))
}

func TestNewComment(t *testing.T) {
	_, err := NewComment(1, 2, "   ", nil, baseTime)
	assert.Error(t, err)

	c, err := NewComment(1, 2, "  Restarted the router ", nil, baseTime)
	require.NoError(t, err)
	assert.Equal(t, "  Restarted the router ", c.Text())
	assert.False(t, c.IsInternal())
}

func TestListFilter_Matches(t *testing.T) {
	cat := uint(3)
	assignee := uint(9)
	assigned, err := ReconstructTicket(1, "TKT-0100", "Laptop screen flicker", "Dell XPS",
		vo.StatusOpen, vo.PriorityHigh, &cat, nil, &assignee, nil, nil, baseTime, baseTime, nil, nil)
	require.NoError(t, err)
	unassigned, err := ReconstructTicket(2, "TKT-0101", "Password reset", "Locked out of email",
		vo.StatusResolved, vo.PriorityLow, nil, nil, nil, nil, nil, baseTime.AddDate(0, 0, 5), baseTime, nil, nil)
	require.NoError(t, err)

	from := baseTime.AddDate(0, 0, 1)
	tests := []struct {
		name   string
		filter ListFilter
		want   []uint
	}{
		{name: "empty filter", filter: ListFilter{}, want: []uint{1, 2}},
		{name: "status", filter: ListFilter{Status: "resolved"}, want: []uint{2}},
		{name: "priority", filter: ListFilter{Priority: "high"}, want: []uint{1}},
		{name: "category", filter: ListFilter{CategoryID: "3"}, want: []uint{1}},
		{name: "unassigned", filter: ListFilter{Assignee: AssigneeUnassigned}, want: []uint{2}},
		{name: "assignee id", filter: ListFilter{Assignee: "9"}, want: []uint{1}},
		{name: "search title", filter: ListFilter{Search: "FLICKER"}, want: []uint{1}},
		{name: "search description", filter: ListFilter{Search: "locked"}, want: []uint{2}},
		{name: "search number", filter: ListFilter{Search: "tkt-0101"}, want: []uint{2}},
		{name: "date from", filter: ListFilter{DateFrom: &from}, want: []uint{2}},
		{name: "date to", filter: ListFilter{DateTo: &from}, want: []uint{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []uint
			for _, tk := range tt.filter.Apply([]*Ticket{assigned, unassigned}) {
				got = append(got, tk.ID())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
