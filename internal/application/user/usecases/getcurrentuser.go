package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/user/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	queries  query.Client
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, queries query.Client, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, queries: queries, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, session *authorization.Session) (*dto.CurrentUserDTO, error) {
	if session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	result, err := query.Get(ctx, uc.queries, query.CurrentUserKey(session.AuthUserID), func(ctx context.Context) (dto.CurrentUserDTO, error) {
		u, err := loadUser(ctx, uc.userRepo, session.AuthUserID)
		if err != nil {
			return dto.CurrentUserDTO{}, err
		}
		return dto.ToCurrentUserDTO(u), nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load current user", "auth_user_id", session.AuthUserID, "error", err)
		return nil, errors.NewInternalError("Failed to load user", err.Error())
	}
	return &result, nil
}

func loadUser(ctx context.Context, repo user.Repository, authUserID string) (*user.User, error) {
	u, err := repo.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return u, nil
}
