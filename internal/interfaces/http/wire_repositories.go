package http

import (
	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	sessionRepo      user.SessionRepository
	organisationRepo user.OrganisationRepository
	settingRepo      setting.Repository
	customerRepo     customer.Repository
	dealRepo         deal.Repository
	ticketRepo       ticket.TicketRepository
	commentRepo      ticket.CommentRepository
	historyRepo      ticket.HistoryRepository
	attachmentRepo   ticket.AttachmentRepository
	problemRepo      ticket.ProblemRepository
	categoryRepo     ticket.CategoryRepository
	deviceRepo       device.Repository
	deviceActionRepo device.ActionRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db),
		sessionRepo:      repository.NewSessionRepository(db),
		organisationRepo: repository.NewOrganisationRepository(db),
		settingRepo:      repository.NewSettingRepository(db),
		customerRepo:     repository.NewCustomerRepository(db),
		dealRepo:         repository.NewDealRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		commentRepo:      repository.NewTicketCommentRepository(db),
		historyRepo:      repository.NewTicketHistoryRepository(db),
		attachmentRepo:   repository.NewTicketAttachmentRepository(db),
		problemRepo:      repository.NewProblemRepository(db),
		categoryRepo:     repository.NewCategoryRepository(db),
		deviceRepo:       repository.NewDeviceRepository(db),
		deviceActionRepo: repository.NewDeviceActionRepository(db),
	}
}
