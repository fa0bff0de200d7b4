package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// LogoutUseCase deletes the caller's session, which revokes every token
// issued for it, and drops the caller's cached views.
type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	queries     query.Client
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, queries query.Client, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, queries: queries, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, session *authorization.Session) error {
	if session == nil {
		return errors.NewNotAuthenticatedError()
	}

	if err := uc.sessionRepo.Delete(ctx, session.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "session_id", session.SessionID, "error", err)
		return errors.NewInternalError("Failed to log out")
	}

	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger,
		query.CurrentUserKey(session.AuthUserID),
		query.UserProfileKey(session.AuthUserID),
		query.SettingsKey(session.AuthUserID),
	)

	uc.logger.Infow("user logged out", "user_id", session.UserID, "session_id", session.SessionID)
	return nil
}
