package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/mappers"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*user.User, error) {
	return r.first(ctx, "auth_user_id = ?", authUserID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) GetByConfirmationToken(ctx context.Context, token string) (*user.User, error) {
	return r.first(ctx, "confirmation_token = ?", token)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}
	var ms []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	users := make([]*user.User, 0, len(ms))
	for i := range ms {
		u, err := r.mapper.ToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db, mapper: mappers.NewUserMapper()}
}

func (r *SessionRepository) Create(ctx context.Context, s *user.Session) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.SessionToModel(s)).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*user.Session, error) {
	var model models.SessionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.SessionToDomain(&model), nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type OrganisationRepository struct {
	db *gorm.DB
}

func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

func (r *OrganisationRepository) Create(ctx context.Context, o *user.Organisation) error {
	model := &models.OrganisationModel{ID: o.ID, Name: o.Name, CreatedAt: o.CreatedAt}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organisation: %w", err)
	}
	return nil
}

func (r *OrganisationRepository) GetByID(ctx context.Context, id string) (*user.Organisation, error) {
	var model models.OrganisationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}
	return &user.Organisation{ID: model.ID, Name: model.Name, CreatedAt: model.CreatedAt}, nil
}
