package ticket

import "context"

type TicketRepository interface {
	// GetByID returns nil, nil when the ticket does not exist.
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns every ticket, newest first.
	List(ctx context.Context) ([]*Ticket, error)
	Create(ctx context.Context, t *Ticket) error
	// UpdateStatus persists t's status fields and appends the history entry
	// in the same transaction.
	UpdateStatus(ctx context.Context, t *Ticket, change *HistoryEntry) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	// ListByTicket returns comments oldest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type HistoryRepository interface {
	// ListByTicket returns entries newest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

type AttachmentRepository interface {
	// ListByTicket returns attachments newest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

type ProblemRepository interface {
	// List returns every problem with its linked ticket IDs, newest first.
	List(ctx context.Context) ([]*Problem, error)
	// ListByTicket returns the problems a ticket is linked to.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Problem, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
}
