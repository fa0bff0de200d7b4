// Package dto holds the helpdesk view models. They travel through the query
// cache as JSON, so every field is exported and tagged.
package dto

import (
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
)

const (
	UnknownAuthor = "Unknown"
	SystemActor   = "System"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Number          string     `json:"ticket_number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"description_html,omitempty"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	Priority        string     `json:"priority"`
	PriorityColor   string     `json:"priority_color"`
	CategoryID      *uint      `json:"category_id"`
	CategoryName    string     `json:"category_name,omitempty"`
	RequesterID     *uint      `json:"requester_id"`
	RequesterName   string     `json:"requester_name,omitempty"`
	AssigneeID      *uint      `json:"assignee_id"`
	AssigneeName    string     `json:"assignee_name,omitempty"`
	TenantID        *string    `json:"tenant_id"`
	SLADueDate      *time.Time `json:"sla_due_date"`
	SLABreached     bool       `json:"sla_breached"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	ClosedAt        *time.Time `json:"closed_at"`
}

// Fields exposes the filterable part of a cached list row.
func (d TicketDTO) Fields() ticket.Fields {
	return ticket.Fields{
		Number:      d.Number,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		Priority:    d.Priority,
		CategoryID:  d.CategoryID,
		AssigneeID:  d.AssigneeID,
		CreatedAt:   d.CreatedAt,
	}
}

// Names resolves the user and category IDs a view shows by name.
type Names struct {
	Users      map[uint]string
	Categories map[uint]string
}

func (n Names) user(id *uint) string {
	if id == nil {
		return ""
	}
	return n.Users[*id]
}

func (n Names) category(id *uint) string {
	if id == nil {
		return ""
	}
	return n.Categories[*id]
}

func ToTicketDTO(t *ticket.Ticket, names Names, now time.Time) TicketDTO {
	return TicketDTO{
		ID:            t.ID(),
		Number:        t.Number(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		StatusLabel:   t.Status().Label(),
		Priority:      t.Priority().String(),
		PriorityColor: t.Priority().Color(),
		CategoryID:    t.CategoryID(),
		CategoryName:  names.category(t.CategoryID()),
		RequesterID:   t.RequesterID(),
		RequesterName: names.user(t.RequesterID()),
		AssigneeID:    t.AssigneeID(),
		AssigneeName:  names.user(t.AssigneeID()),
		TenantID:      t.TenantID(),
		SLADueDate:    t.SLADueDate(),
		SLABreached:   t.IsSLABreached(now),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
		ResolvedAt:    t.ResolvedAt(),
		ClosedAt:      t.ClosedAt(),
	}
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	UserID      uint      `json:"user_id"`
	AuthorName  string    `json:"author_name"`
	Comment     string    `json:"comment"`
	CommentHTML string    `json:"comment_html,omitempty"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToCommentDTO(c *ticket.Comment, users map[uint]string) CommentDTO {
	name, ok := users[c.UserID()]
	if !ok || name == "" {
		name = UnknownAuthor
	}
	return CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		AuthorName: name,
		Comment:    c.Text(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

type HistoryDTO struct {
	ID        uint      `json:"id"`
	FieldName string    `json:"field_name"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	UserID    *uint     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
}

func ToHistoryDTO(h *ticket.HistoryEntry, users map[uint]string) HistoryDTO {
	name := SystemActor
	if id := h.UserID(); id != nil {
		if n := users[*id]; n != "" {
			name = n
		}
	}
	return HistoryDTO{
		ID:        h.ID(),
		FieldName: h.FieldName(),
		OldValue:  h.OldValue(),
		NewValue:  h.NewValue(),
		UserID:    h.UserID(),
		UserName:  name,
		Timestamp: h.Timestamp(),
	}
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	FileName     string    `json:"file_name"`
	FileURL      string    `json:"file_url"`
	UploadedBy   *uint     `json:"uploaded_by"`
	UploaderName string    `json:"uploader_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func ToAttachmentDTO(a *ticket.Attachment, users map[uint]string) AttachmentDTO {
	name := UnknownAuthor
	if id := a.UploadedBy(); id != nil {
		if n := users[*id]; n != "" {
			name = n
		}
	}
	return AttachmentDTO{
		ID:           a.ID(),
		FileName:     a.FileName(),
		FileURL:      a.FileURL(),
		UploadedBy:   a.UploadedBy(),
		UploaderName: name,
		UploadedAt:   a.UploadedAt(),
	}
}

type ProblemDTO struct {
	ID              uint      `json:"id"`
	Number          string    `json:"problem_number"`
	Title           string    `json:"problem_title"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	PriorityColor   string    `json:"priority_color"`
	LinkedTicketIDs []uint    `json:"linked_ticket_ids"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToProblemDTO(p *ticket.Problem) ProblemDTO {
	linked := p.LinkedTicketIDs()
	if linked == nil {
		linked = []uint{}
	}
	return ProblemDTO{
		ID:              p.ID(),
		Number:          p.Number(),
		Title:           p.Title(),
		Description:     p.Description(),
		Status:          p.Status(),
		Priority:        p.Priority().String(),
		PriorityColor:   p.Priority().Color(),
		LinkedTicketIDs: linked,
		CreatedAt:       p.CreatedAt(),
	}
}

// Panel state values.
const (
	PanelReady = "ready"
	PanelError = "error"
)

// Panel is one independently loaded part of a page.
type Panel[T any] struct {
	State string `json:"state"`
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

func ReadyPanel[T any](data T) Panel[T] {
	return Panel[T]{State: PanelReady, Data: data}
}

func ErrorPanel[T any](message string) Panel[T] {
	return Panel[T]{State: PanelError, Error: message}
}

type StatusOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func StatusOptions() []StatusOptionDTO {
	out := make([]StatusOptionDTO, 0, len(vo.AllStatuses))
	for _, s := range vo.AllStatuses {
		out = append(out, StatusOptionDTO{Value: s.String(), Label: s.Label()})
	}
	return out
}

type TicketDetailDTO struct {
	Ticket        Panel[*TicketDTO]      `json:"ticket"`
	Comments      Panel[[]CommentDTO]    `json:"comments"`
	History       Panel[[]HistoryDTO]    `json:"history"`
	Attachments   Panel[[]AttachmentDTO] `json:"attachments"`
	Problems      Panel[[]ProblemDTO]    `json:"problems"`
	StatusOptions []StatusOptionDTO      `json:"status_options"`
}

type TicketListDTO struct {
	Tickets []TicketDTO `json:"tickets"`
	Count   int         `json:"count"`
}

type StatsDTO struct {
	Total       int            `json:"total"`
	Open        int            `json:"open"`
	SLABreached int            `json:"sla_breached"`
	ByStatus    map[string]int `json:"by_status"`
	ByPriority  map[string]int `json:"by_priority"`
}

type ChangeStatusResultDTO struct {
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}
