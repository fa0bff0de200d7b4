package usecases

import (
	"context"
	"time"

	"github.com/appmaster-hq/appmaster/internal/application/setting/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	vo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

const (
	settingsSavedMessage  = "Settings saved"
	updateSettingsFailure = "Failed to save settings"
)

// UpdateSettingsCommand carries optional changes; nil fields keep their
// current value.
type UpdateSettingsCommand struct {
	Session            *authorization.Session
	Name               *string
	Email              *string
	Company            *string
	EmailNotifications *bool
	DealAlerts         *bool
	SidebarOpen        *bool
	Theme              *string
}

func (c UpdateSettingsCommand) changesProfile() bool {
	return c.Name != nil || c.Email != nil || c.Company != nil
}

type UpdateSettingsResult struct {
	Settings dto.SettingsDTO
	Message  string
}

type UpdateSettingsUseCase struct {
	userRepo    user.Repository
	settingRepo setting.Repository
	txMgr       db.Transactor
	queries     query.Client
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(
	userRepo user.Repository,
	settingRepo setting.Repository,
	txMgr db.Transactor,
	queries query.Client,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		userRepo:    userRepo,
		settingRepo: settingRepo,
		txMgr:       txMgr,
		queries:     queries,
		logger:      logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if cmd.Session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}
	uc.logger.Infow("executing update settings use case", "user_id", cmd.Session.UserID)

	u, s, err := loadSettings(ctx, uc.userRepo, uc.settingRepo, cmd.Session.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load settings", "user_id", cmd.Session.UserID, "error", err)
		return nil, errors.NewMutationError(updateSettingsFailure, err)
	}

	now := biztime.NowUTC()
	if err := applyProfile(u, cmd, now); err != nil {
		return nil, err
	}
	patch := setting.Patch{
		EmailNotifications: cmd.EmailNotifications,
		DealAlerts:         cmd.DealAlerts,
		SidebarOpen:        cmd.SidebarOpen,
	}
	if cmd.Theme != nil {
		theme := setting.Theme(*cmd.Theme)
		patch.Theme = &theme
	}
	if err := s.Apply(patch, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.changesProfile() {
			if err := uc.userRepo.Update(txCtx, u); err != nil {
				return err
			}
		}
		return uc.settingRepo.Upsert(txCtx, s)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("Email is already in use")
		}
		uc.logger.Errorw("failed to save settings", "user_id", cmd.Session.UserID, "error", err)
		return nil, errors.NewMutationError(updateSettingsFailure, err)
	}

	keys := []query.Key{query.SettingsKey(cmd.Session.AuthUserID)}
	if cmd.changesProfile() {
		keys = append(keys, query.UserProfileKey(cmd.Session.AuthUserID))
	}
	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger, keys...)

	uc.logger.Infow("settings saved", "user_id", cmd.Session.UserID)
	return &UpdateSettingsResult{Settings: dto.ToSettingsDTO(u, s), Message: settingsSavedMessage}, nil
}

func applyProfile(u *user.User, cmd UpdateSettingsCommand, now time.Time) error {
	if !cmd.changesProfile() {
		return nil
	}
	name, company := u.Name(), u.Company()
	email := u.Email()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Company != nil {
		company = *cmd.Company
	}
	if cmd.Email != nil {
		e, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return errors.NewValidationError("Invalid email address")
		}
		email = e
	}
	if err := u.UpdateProfile(name, email, company, now); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
