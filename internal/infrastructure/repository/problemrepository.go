package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/mappers"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
)

type ProblemRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *ProblemRepository) List(ctx context.Context) ([]*ticket.Problem, error) {
	var ms []models.ProblemModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return r.withLinks(tx, ms)
}

func (r *ProblemRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Problem, error) {
	var ms []models.ProblemModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.
		Where("id IN (?)", tx.Model(&models.ProblemTicketModel{}).Select("problem_id").Where("ticket_id = ?", ticketID)).
		Order("created_at DESC").Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list problems for ticket: %w", err)
	}
	return r.withLinks(tx, ms)
}

// withLinks loads the linked ticket IDs of every problem in one query.
func (r *ProblemRepository) withLinks(tx *gorm.DB, ms []models.ProblemModel) ([]*ticket.Problem, error) {
	if len(ms) == 0 {
		return []*ticket.Problem{}, nil
	}
	ids := make([]uint, len(ms))
	for i := range ms {
		ids[i] = ms[i].ID
	}

	var links []models.ProblemTicketModel
	if err := tx.Where("problem_id IN ?", ids).Order("ticket_id ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to load problem links: %w", err)
	}
	byProblem := make(map[uint][]uint, len(ms))
	for _, l := range links {
		byProblem[l.ProblemID] = append(byProblem[l.ProblemID], l.TicketID)
	}

	problems := make([]*ticket.Problem, len(ms))
	for i := range ms {
		problems[i] = r.mapper.ProblemToDomain(&ms[i], byProblem[ms[i].ID])
	}
	return problems, nil
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*ticket.Category, error) {
	var ms []models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]*ticket.Category, len(ms))
	for i := range ms {
		categories[i] = &ticket.Category{ID: ms[i].ID, Name: ms[i].Name}
	}
	return categories, nil
}
