package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/mappers"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ms []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToDomainList(ms)
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return t.SetID(model.ID)
}

// UpdateStatus writes the status columns and the history row together. When
// ctx already carries a transaction the work joins it.
func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket, change *ticket.HistoryEntry) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).
			Where("id = ?", t.ID()).
			Updates(map[string]any{
				"status":      t.Status().String(),
				"updated_at":  t.UpdatedAt(),
				"resolved_at": t.ResolvedAt(),
				"closed_at":   t.ClosedAt(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update ticket status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", t.ID()))
		}

		if change == nil {
			return nil
		}
		if err := tx.Create(r.mapper.HistoryToModel(change)).Error; err != nil {
			return fmt.Errorf("failed to record ticket history: %w", err)
		}
		return nil
	})
}

type TicketCommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketCommentRepository(db *gorm.DB) *TicketCommentRepository {
	return &TicketCommentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *TicketCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var ms []models.TicketCommentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	comments := make([]*ticket.Comment, len(ms))
	for i := range ms {
		comments[i] = r.mapper.CommentToDomain(&ms[i])
	}
	return comments, nil
}

type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(db *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var ms []models.TicketHistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("timestamp DESC").Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket history: %w", err)
	}
	entries := make([]*ticket.HistoryEntry, len(ms))
	for i := range ms {
		entries[i] = r.mapper.HistoryToDomain(&ms[i])
	}
	return entries, nil
}

type TicketAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketAttachmentRepository(db *gorm.DB) *TicketAttachmentRepository {
	return &TicketAttachmentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var ms []models.TicketAttachmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("uploaded_at DESC").Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	attachments := make([]*ticket.Attachment, len(ms))
	for i := range ms {
		attachments[i] = r.mapper.AttachmentToDomain(&ms[i])
	}
	return attachments, nil
}
