package mappers

import (
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	SessionToModel(s *user.Session) *models.SessionModel
	SessionToDomain(model *models.SessionModel) *user.Session
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	if u == nil {
		return nil
	}
	return &models.UserModel{
		ID:                u.ID(),
		AuthUserID:        u.AuthUserID(),
		Email:             u.Email().String(),
		Name:              u.Name(),
		Phone:             u.Phone(),
		Company:           u.Company(),
		PasswordHash:      u.PasswordHash(),
		AccountType:       u.AccountType().String(),
		Role:              u.Role().String(),
		UserType:          u.UserType(),
		AppmasterRole:     u.AppmasterRole(),
		OrganisationID:    u.OrganisationID(),
		TenantID:          u.TenantID(),
		EmailConfirmed:    u.EmailConfirmed(),
		ConfirmationToken: u.ConfirmationToken(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(user.UserData{
		ID:                model.ID,
		AuthUserID:        model.AuthUserID,
		Email:             model.Email,
		Name:              model.Name,
		Phone:             model.Phone,
		Company:           model.Company,
		PasswordHash:      model.PasswordHash,
		AccountType:       model.AccountType,
		Role:              model.Role,
		UserType:          model.UserType,
		AppmasterRole:     model.AppmasterRole,
		OrganisationID:    model.OrganisationID,
		TenantID:          model.TenantID,
		EmailConfirmed:    model.EmailConfirmed,
		ConfirmationToken: model.ConfirmationToken,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
}

func (m *UserMapperImpl) SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

func (m *UserMapperImpl) SessionToDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
