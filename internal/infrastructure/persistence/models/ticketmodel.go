package models

import (
	"time"

	"github.com/appmaster-hq/appmaster/internal/shared/constants"
)

// TicketModel is the helpdesk_tickets row.
type TicketModel struct {
	ID          uint    `gorm:"primarykey"`
	Number      string  `gorm:"uniqueIndex;not null;size:50"`
	Title       string  `gorm:"not null;size:200"`
	Description string  `gorm:"type:text"`
	Status      string  `gorm:"not null;size:20;index"`
	Priority    string  `gorm:"not null;size:20;index"`
	CategoryID  *uint   `gorm:"index"`
	RequesterID *uint   `gorm:"index"`
	AssigneeID  *uint   `gorm:"index"`
	TenantID    *string `gorm:"size:36;index"`
	SLADueDate  *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	ClosedAt    *time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketCommentModel struct {
	ID         uint    `gorm:"primarykey"`
	TicketID   uint    `gorm:"not null;index"`
	UserID     uint    `gorm:"not null;index"`
	Comment    string  `gorm:"type:text;not null"`
	IsInternal bool    `gorm:"not null;default:false"`
	TenantID   *string `gorm:"size:36"`
	CreatedAt  time.Time
}

func (TicketCommentModel) TableName() string {
	return constants.TableTicketComments
}

type TicketHistoryModel struct {
	ID        uint    `gorm:"primarykey"`
	TicketID  uint    `gorm:"not null;index"`
	UserID    *uint   `gorm:"index"`
	FieldName string  `gorm:"not null;size:50"`
	OldValue  *string `gorm:"type:text"`
	NewValue  *string `gorm:"type:text"`
	Timestamp time.Time
}

func (TicketHistoryModel) TableName() string {
	return constants.TableTicketHistory
}

type TicketAttachmentModel struct {
	ID         uint   `gorm:"primarykey"`
	TicketID   uint   `gorm:"not null;index"`
	FileName   string `gorm:"not null;size:255"`
	FileURL    string `gorm:"not null;size:1024"`
	UploadedBy *uint
	UploadedAt time.Time
}

func (TicketAttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}

type ProblemModel struct {
	ID          uint   `gorm:"primarykey"`
	Number      string `gorm:"uniqueIndex;not null;size:50"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"not null;size:20"`
	Priority    string `gorm:"not null;size:20"`
	CreatedAt   time.Time
}

func (ProblemModel) TableName() string {
	return constants.TableProblems
}

// ProblemTicketModel links a problem to one of its tickets.
type ProblemTicketModel struct {
	ProblemID uint `gorm:"primarykey;autoIncrement:false"`
	TicketID  uint `gorm:"primarykey;autoIncrement:false;index"`
}

func (ProblemTicketModel) TableName() string {
	return constants.TableProblemTickets
}

type CategoryModel struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"uniqueIndex;not null;size:100"`
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
