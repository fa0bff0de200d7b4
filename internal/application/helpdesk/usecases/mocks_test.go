package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type mockTicketRepository struct {
	GetByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context) ([]*ticket.Ticket, error)
	CreateFunc       func(ctx context.Context, t *ticket.Ticket) error
	UpdateStatusFunc func(ctx context.Context, t *ticket.Ticket, change *ticket.HistoryEntry) error
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket, change *ticket.HistoryEntry) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t, change)
	}
	return nil
}

type mockCommentRepository struct {
	CreateFunc       func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockProblemRepository struct {
	ListFunc         func(ctx context.Context) ([]*ticket.Problem, error)
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Problem, error)
}

func (m *mockProblemRepository) List(ctx context.Context) ([]*ticket.Problem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProblemRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Problem, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	ListFunc func(ctx context.Context) ([]*ticket.Category, error)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*ticket.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// mockUserRepository serves GetByIDs from Users; the other methods are
// unused by helpdesk views.
type mockUserRepository struct {
	user.Repository
	Users       map[uint]string
	GetByIDsErr error
}

func (m *mockUserRepository) GetByIDs(_ context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsErr != nil {
		return nil, m.GetByIDsErr
	}
	var out []*user.User
	for _, id := range ids {
		name, ok := m.Users[id]
		if !ok {
			continue
		}
		u, err := user.ReconstructUser(user.UserData{
			ID:    id,
			Email: "user@example.com",
			Name:  name,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

func newTestTicket(id uint, status vo.TicketStatus, priority vo.Priority) *ticket.Ticket {
	due := baseTime.Add(time.Duration(priority.SLAHours()) * time.Hour)
	t, err := ticket.ReconstructTicket(id, fmt.Sprintf("TKT-%d", 1000+id), "Printer offline", "The **3rd floor** printer is offline",
		status, priority, uintPtr(1), uintPtr(10), uintPtr(20), strPtr("tenant-a"), &due,
		baseTime, baseTime, nil, nil)
	if err != nil {
		panic(err)
	}
	return t
}
