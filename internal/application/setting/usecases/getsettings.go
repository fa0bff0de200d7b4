package usecases

import (
	"context"
	"fmt"

	"github.com/appmaster-hq/appmaster/internal/application/setting/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// GetSettingsUseCase returns the caller's settings page, falling back to
// defaults for users who never saved any.
type GetSettingsUseCase struct {
	userRepo    user.Repository
	settingRepo setting.Repository
	queries     query.Client
	logger      logger.Interface
}

func NewGetSettingsUseCase(
	userRepo user.Repository,
	settingRepo setting.Repository,
	queries query.Client,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		userRepo:    userRepo,
		settingRepo: settingRepo,
		queries:     queries,
		logger:      logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, session *authorization.Session) (*dto.SettingsDTO, error) {
	if session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	result, err := query.Get(ctx, uc.queries, query.SettingsKey(session.AuthUserID), func(ctx context.Context) (*dto.SettingsDTO, error) {
		u, s, err := loadSettings(ctx, uc.userRepo, uc.settingRepo, session.UserID)
		if err != nil {
			return nil, err
		}
		out := dto.ToSettingsDTO(u, s)
		return &out, nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load settings", "user_id", session.UserID, "error", err)
		return nil, errors.NewInternalError("Failed to load settings", err.Error())
	}
	return result, nil
}

func loadSettings(ctx context.Context, userRepo user.Repository, settingRepo setting.Repository, userID uint) (*user.User, *setting.UserSettings, error) {
	u, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, nil, errors.NewNotFoundError("User not found")
	}
	s, err := settingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if s == nil {
		s = setting.Defaults(userID)
	}
	return u, s, nil
}
