package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/user/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

const (
	profileUpdatedTitle   = "Profile updated"
	profileUpdatedMessage = "Your changes have been saved."
	profileUpdateFailed   = "Update failed"
)

type GetPersonalInfoUseCase struct {
	userRepo user.Repository
	queries  query.Client
	logger   logger.Interface
}

func NewGetPersonalInfoUseCase(userRepo user.Repository, queries query.Client, logger logger.Interface) *GetPersonalInfoUseCase {
	return &GetPersonalInfoUseCase{userRepo: userRepo, queries: queries, logger: logger}
}

func (uc *GetPersonalInfoUseCase) Execute(ctx context.Context, session *authorization.Session) (*dto.PersonalInfoDTO, error) {
	if session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	result, err := query.Get(ctx, uc.queries, query.UserProfileKey(session.AuthUserID), func(ctx context.Context) (dto.PersonalInfoDTO, error) {
		u, err := loadUser(ctx, uc.userRepo, session.AuthUserID)
		if err != nil {
			return dto.PersonalInfoDTO{}, err
		}
		return dto.ToPersonalInfoDTO(u), nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load personal info", "auth_user_id", session.AuthUserID, "error", err)
		return nil, errors.NewInternalError("Failed to load profile", err.Error())
	}
	return &result, nil
}

type UpdatePersonalInfoCommand struct {
	Session *authorization.Session
	Name    string `validate:"required,max=100"`
	Phone   string `validate:"max=50"`
}

type UpdatePersonalInfoResult struct {
	Profile dto.PersonalInfoDTO
	Title   string
	Message string
}

// UpdatePersonalInfoUseCase edits the caller's name and phone. Email is
// changed from the settings page only.
type UpdatePersonalInfoUseCase struct {
	userRepo user.Repository
	queries  query.Client
	logger   logger.Interface
}

func NewUpdatePersonalInfoUseCase(userRepo user.Repository, queries query.Client, logger logger.Interface) *UpdatePersonalInfoUseCase {
	return &UpdatePersonalInfoUseCase{userRepo: userRepo, queries: queries, logger: logger}
}

func (uc *UpdatePersonalInfoUseCase) Execute(ctx context.Context, cmd UpdatePersonalInfoCommand) (*UpdatePersonalInfoResult, error) {
	if cmd.Session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	u, err := loadUser(ctx, uc.userRepo, cmd.Session.AuthUserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load user", "auth_user_id", cmd.Session.AuthUserID, "error", err)
		return nil, errors.NewMutationError(profileUpdateFailed, err)
	}

	if err := u.UpdateContact(cmd.Name, cmd.Phone, biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update personal info", "user_id", u.ID(), "error", err)
		return nil, errors.NewMutationError(profileUpdateFailed, err)
	}

	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger,
		query.UserProfileKey(u.AuthUserID()),
		query.CurrentUserKey(u.AuthUserID()),
		query.SettingsKey(u.AuthUserID()),
	)

	uc.logger.Infow("personal info updated", "user_id", u.ID())
	return &UpdatePersonalInfoResult{
		Profile: dto.ToPersonalInfoDTO(u),
		Title:   profileUpdatedTitle,
		Message: profileUpdatedMessage,
	}, nil
}
