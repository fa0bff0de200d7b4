package mappers

import (
	"fmt"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
)

// TicketMapper converts helpdesk rows to domain entities and back.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.TicketCommentModel
	CommentToDomain(model *models.TicketCommentModel) *ticket.Comment

	HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) *ticket.HistoryEntry

	AttachmentToDomain(model *models.TicketAttachmentModel) *ticket.Attachment
	ProblemToDomain(model *models.ProblemModel, ticketIDs []uint) *ticket.Problem
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CategoryID:  t.CategoryID(),
		RequesterID: t.RequesterID(),
		AssigneeID:  t.AssigneeID(),
		TenantID:    t.TenantID(),
		SLADueDate:  t.SLADueDate(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		status,
		priority,
		model.CategoryID,
		model.RequesterID,
		model.AssigneeID,
		model.TenantID,
		model.SLADueDate,
		model.CreatedAt,
		model.UpdatedAt,
		model.ResolvedAt,
		model.ClosedAt,
	)
}

func (m *TicketMapperImpl) ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ms))
	for i := range ms {
		t, err := m.ToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		Comment:    c.Text(),
		IsInternal: c.IsInternal(),
		TenantID:   c.TenantID(),
		CreatedAt:  c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.TicketCommentModel) *ticket.Comment {
	return ticket.ReconstructComment(
		model.ID, model.TicketID, model.UserID, model.Comment, model.IsInternal, model.TenantID, model.CreatedAt,
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		UserID:    h.UserID(),
		FieldName: h.FieldName(),
		OldValue:  h.OldValue(),
		NewValue:  h.NewValue(),
		Timestamp: h.Timestamp(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) *ticket.HistoryEntry {
	return ticket.ReconstructHistoryEntry(
		model.ID, model.TicketID, model.UserID, model.FieldName, model.OldValue, model.NewValue, model.Timestamp,
	)
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(
		model.ID, model.TicketID, model.FileName, model.FileURL, model.UploadedBy, model.UploadedAt,
	)
}

// ProblemToDomain keeps an unknown priority as-is rather than failing the
// whole problem list.
func (m *TicketMapperImpl) ProblemToDomain(model *models.ProblemModel, ticketIDs []uint) *ticket.Problem {
	return ticket.ReconstructProblem(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		model.Status,
		vo.Priority(model.Priority),
		ticketIDs,
		model.CreatedAt,
	)
}
