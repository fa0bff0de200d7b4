// Package seeds loads the demo fixtures used by `appmaster seed`.
package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	ticketvo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	uservo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/repository"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/id"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type Fixtures struct {
	Organisation struct {
		Name string `yaml:"name"`
	} `yaml:"organisation"`
	User struct {
		Name        string `yaml:"name"`
		Email       string `yaml:"email"`
		Password    string `yaml:"password"`
		AccountType string `yaml:"account_type"`
	} `yaml:"user"`
	Customers []struct {
		Name    string  `yaml:"name"`
		Email   string  `yaml:"email"`
		Company string  `yaml:"company"`
		Phone   string  `yaml:"phone"`
		Value   float64 `yaml:"value"`
		Status  string  `yaml:"status"`
	} `yaml:"customers"`
	Deals []struct {
		Title       string  `yaml:"title"`
		Customer    string  `yaml:"customer"`
		Value       float64 `yaml:"value"`
		Stage       string  `yaml:"stage"`
		Probability int     `yaml:"probability"`
		CloseDate   string  `yaml:"close_date"`
	} `yaml:"deals"`
	Categories []string        `yaml:"categories"`
	Tickets    []TicketFixture `yaml:"tickets"`
	Problems   []struct {
		Number      string   `yaml:"number"`
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		Status      string   `yaml:"status"`
		Priority    string   `yaml:"priority"`
		Tickets     []string `yaml:"tickets"`
	} `yaml:"problems"`
	Devices []struct {
		Name     string `yaml:"name"`
		Hostname string `yaml:"hostname"`
	} `yaml:"devices"`
}

type TicketFixture struct {
	Number      string   `yaml:"number"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Priority    string   `yaml:"priority"`
	Status      string   `yaml:"status"`
	Category    string   `yaml:"category"`
	AgeHours    int      `yaml:"age_hours"`
	Comments    []string `yaml:"comments"`
	Attachments []struct {
		FileName string `yaml:"file_name"`
		FileURL  string `yaml:"file_url"`
	} `yaml:"attachments"`
}

func LoadFixtures() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Seeder struct {
	db     *gorm.DB
	hasher PasswordHasher
	now    func() time.Time
	logger logger.Interface
}

func NewSeeder(gdb *gorm.DB, hasher PasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{
		db:     gdb,
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

// Run inserts every fixture in one transaction. A database that already
// holds customers is left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if count > 0 {
		s.logger.Infow("database already seeded, skipping", "customers", count)
		return nil
	}

	f, err := LoadFixtures()
	if err != nil {
		return err
	}

	tm := db.NewTransactionManager(s.db)
	return tm.RunInTransaction(ctx, func(ctx context.Context) error {
		now := s.now()

		org, err := user.NewOrganisation(f.Organisation.Name, now)
		if err != nil {
			return err
		}
		if err := repository.NewOrganisationRepository(s.db).Create(ctx, org); err != nil {
			return err
		}

		admin, err := s.seedUser(ctx, f, org, now)
		if err != nil {
			return err
		}
		if err := s.seedCRM(ctx, f, now); err != nil {
			return err
		}
		if err := s.seedHelpdesk(ctx, f, admin, org, now); err != nil {
			return err
		}
		if err := s.seedDevices(ctx, f, org, now); err != nil {
			return err
		}

		s.logger.Infow("seed data loaded",
			"customers", len(f.Customers),
			"deals", len(f.Deals),
			"tickets", len(f.Tickets),
			"devices", len(f.Devices),
			"login", f.User.Email)
		return nil
	})
}

func (s *Seeder) seedUser(ctx context.Context, f *Fixtures, org *user.Organisation, now time.Time) (*user.User, error) {
	email, err := uservo.NewEmail(f.User.Email)
	if err != nil {
		return nil, err
	}
	accountType, err := uservo.NewAccountType(f.User.AccountType)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(f.User.Password)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(email, f.User.Name, hash, accountType, &org.ID, now)
	if err != nil {
		return nil, err
	}
	u.MarkEmailConfirmed()
	if err := repository.NewUserRepository(s.db).Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Seeder) seedCRM(ctx context.Context, f *Fixtures, now time.Time) error {
	customers := repository.NewCustomerRepository(s.db)
	for _, c := range f.Customers {
		entity, err := customer.NewCustomer(c.Name, c.Email, c.Company, c.Phone, c.Value, customer.Status(c.Status), now)
		if err != nil {
			return fmt.Errorf("customer %q: %w", c.Name, err)
		}
		if err := customers.Create(ctx, entity); err != nil {
			return err
		}
	}

	deals := repository.NewDealRepository(s.db)
	for _, d := range f.Deals {
		entity, err := deal.NewDeal(d.Title, d.Customer, d.Value, deal.Stage(d.Stage), d.Probability, d.CloseDate, now)
		if err != nil {
			return fmt.Errorf("deal %q: %w", d.Title, err)
		}
		if err := deals.Create(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedHelpdesk(ctx context.Context, f *Fixtures, admin *user.User, org *user.Organisation, now time.Time) error {
	tx := db.GetTxFromContext(ctx, s.db)

	categoryIDs := make(map[string]uint, len(f.Categories))
	for _, name := range f.Categories {
		m := models.CategoryModel{Name: name}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
		categoryIDs[name] = m.ID
	}

	tickets := repository.NewTicketRepository(s.db)
	comments := repository.NewTicketCommentRepository(s.db)
	ticketIDs := make(map[string]uint, len(f.Tickets))
	requester := admin.ID()

	for _, tf := range f.Tickets {
		opened := now.Add(-time.Duration(tf.AgeHours) * time.Hour)
		t, err := s.openTicket(tf, categoryIDs, &requester, org, opened)
		if err != nil {
			return err
		}
		if err := tickets.Create(ctx, t); err != nil {
			return err
		}
		ticketIDs[tf.Number] = t.ID()

		for i, text := range tf.Comments {
			c, err := ticket.NewComment(t.ID(), admin.ID(), text, &org.ID, opened.Add(time.Duration(i+1)*time.Hour))
			if err != nil {
				return fmt.Errorf("ticket %s comment: %w", tf.Number, err)
			}
			if err := comments.Create(ctx, c); err != nil {
				return err
			}
		}

		for _, a := range tf.Attachments {
			m := models.TicketAttachmentModel{
				TicketID:   t.ID(),
				FileName:   a.FileName,
				FileURL:    a.FileURL,
				UploadedBy: &requester,
				UploadedAt: opened,
			}
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("failed to create attachment: %w", err)
			}
		}

		status := ticketvo.TicketStatus(tf.Status)
		if status != "" && status != t.Status() {
			old, err := t.ChangeStatus(status, opened.Add(time.Duration(tf.AgeHours)*time.Hour/2))
			if err != nil {
				return fmt.Errorf("ticket %s: %w", tf.Number, err)
			}
			change := ticket.NewFieldChange(t.ID(), &requester, ticket.FieldStatus, old.String(), status.String(), t.UpdatedAt())
			if err := tickets.UpdateStatus(ctx, t, change); err != nil {
				return err
			}
		}
	}

	for _, p := range f.Problems {
		m := models.ProblemModel{
			Number:      p.Number,
			Title:       p.Title,
			Description: p.Description,
			Status:      p.Status,
			Priority:    p.Priority,
			CreatedAt:   now,
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to create problem %s: %w", p.Number, err)
		}
		for _, number := range p.Tickets {
			ticketID, ok := ticketIDs[number]
			if !ok {
				return fmt.Errorf("problem %s links unknown ticket %s", p.Number, number)
			}
			if err := tx.Create(&models.ProblemTicketModel{ProblemID: m.ID, TicketID: ticketID}).Error; err != nil {
				return fmt.Errorf("failed to link problem %s: %w", p.Number, err)
			}
		}
	}
	return nil
}

func (s *Seeder) openTicket(tf TicketFixture, categoryIDs map[string]uint, requester *uint, org *user.Organisation, opened time.Time) (*ticket.Ticket, error) {
	priority, err := ticketvo.NewPriority(tf.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", tf.Number, err)
	}
	var categoryID *uint
	if cid, ok := categoryIDs[tf.Category]; ok {
		categoryID = &cid
	}
	return ticket.NewTicket(tf.Number, tf.Title, strings.TrimSpace(tf.Description), priority, categoryID, requester, &org.ID, opened)
}

func (s *Seeder) seedDevices(ctx context.Context, f *Fixtures, org *user.Organisation, now time.Time) error {
	devices := repository.NewDeviceRepository(s.db)
	for _, d := range f.Devices {
		deviceID, err := id.NewDeviceID()
		if err != nil {
			return err
		}
		entity, err := device.NewDevice(deviceID, d.Name, d.Hostname, &org.ID, now)
		if err != nil {
			return fmt.Errorf("device %q: %w", d.Name, err)
		}
		if err := devices.Create(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}
