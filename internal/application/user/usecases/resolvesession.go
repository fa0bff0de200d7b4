package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// ResolveSessionQuery carries the claims of a verified access token.
type ResolveSessionQuery struct {
	AuthUserID string
	SessionID  string
}

// ResolveSessionUseCase turns token claims into the caller's Session. The
// server-side session must still exist, be unexpired and belong to the
// token's user.
type ResolveSessionUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewResolveSessionUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, logger logger.Interface) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{userRepo: userRepo, sessionRepo: sessionRepo, logger: logger}
}

func (uc *ResolveSessionUseCase) Execute(ctx context.Context, q ResolveSessionQuery) (*authorization.Session, error) {
	if q.AuthUserID == "" || q.SessionID == "" {
		return nil, errors.NewNotAuthenticatedError()
	}

	session, err := uc.sessionRepo.GetByID(ctx, q.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to get session", "session_id", q.SessionID, "error", err)
		return nil, errors.NewInternalError("Failed to resolve session")
	}
	if session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}
	if session.IsExpired(biztime.NowUTC()) {
		return nil, errors.NewSessionExpiredError()
	}

	u, err := uc.userRepo.GetByAuthUserID(ctx, q.AuthUserID)
	if err != nil {
		uc.logger.Errorw("failed to get session user", "auth_user_id", q.AuthUserID, "error", err)
		return nil, errors.NewInternalError("Failed to resolve session")
	}
	if u == nil || u.ID() != session.UserID {
		uc.logger.Warnw("session does not belong to token user", "session_id", q.SessionID)
		return nil, errors.NewNotAuthenticatedError()
	}

	return &authorization.Session{
		SessionID:      session.ID,
		UserID:         u.ID(),
		AuthUserID:     u.AuthUserID(),
		Email:          u.Email().String(),
		Name:           u.Name(),
		Role:           u.Role(),
		UserType:       u.UserType(),
		AccountType:    u.AccountType().String(),
		AppmasterRole:  u.AppmasterRole(),
		OrganisationID: u.OrganisationID(),
		TenantID:       u.TenantID(),
	}, nil
}
