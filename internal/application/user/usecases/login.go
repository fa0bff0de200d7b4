package usecases

import (
	"context"
	"time"

	"github.com/appmaster-hq/appmaster/internal/application/user/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	vo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

const loginSuccessMessage = "Logged in successfully!"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Login   dto.LoginDTO
	Message string
}

// LoginUseCase checks a password login, opens a session and issues the
// access token bound to it.
type LoginUseCase struct {
	userRepo            user.Repository
	sessionRepo         user.SessionRepository
	hasher              PasswordHasher
	tokens              TokenIssuer
	sessionTTL          time.Duration
	requireConfirmation bool
	logger              logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	sessionTTL time.Duration,
	requireConfirmation bool,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:            userRepo,
		sessionRepo:         sessionRepo,
		hasher:              hasher,
		tokens:              tokens,
		sessionTTL:          sessionTTL,
		requireConfirmation: requireConfirmation,
		logger:              logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	u, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("Failed to log in")
	}
	// Unknown emails and wrong passwords look the same to the caller.
	if u == nil {
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}
	if uc.requireConfirmation && !u.EmailConfirmed() {
		return nil, errors.NewEmailNotConfirmedError()
	}

	now := biztime.NowUTC()
	session, err := user.NewSession(u.ID(), uc.sessionTTL, now)
	if err != nil {
		return nil, errors.NewInternalError("Failed to log in")
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to log in")
	}

	token, expiresAt, err := uc.tokens.Issue(u.AuthUserID(), session.ID, u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to log in")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID(), "session_id", session.ID)
	return &LoginResult{
		Login: dto.LoginDTO{
			AccessToken: token,
			ExpiresAt:   expiresAt,
			User:        dto.ToCurrentUserDTO(u),
		},
		Message: loginSuccessMessage,
	}, nil
}
