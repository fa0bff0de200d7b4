package usecases

import (
	"context"
	"strings"

	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

const (
	emailConfirmedMessage = "Email confirmed. You can now log in."
	invalidLinkMessage    = "Invalid or expired confirmation link"
)

type VerifyEmailResult struct {
	Message string
}

type VerifyEmailUseCase struct {
	userRepo user.Repository
	queries  query.Client
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, queries query.Client, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo, queries: queries, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, token string) (*VerifyEmailResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewValidationError(invalidLinkMessage)
	}

	u, err := uc.userRepo.GetByConfirmationToken(ctx, token)
	if err != nil {
		uc.logger.Errorw("failed to look up confirmation token", "error", err)
		return nil, errors.NewInternalError("Failed to confirm email")
	}
	if u == nil {
		return nil, errors.NewValidationError(invalidLinkMessage)
	}
	if err := u.ConfirmEmail(token, biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(invalidLinkMessage)
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to save confirmed user", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to confirm email")
	}

	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger, query.CurrentUserKey(u.AuthUserID()))

	uc.logger.Infow("email confirmed", "user_id", u.ID())
	return &VerifyEmailResult{Message: emailConfirmedMessage}, nil
}
