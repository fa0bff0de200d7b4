package usecases

import (
	"context"
	"time"

	"github.com/appmaster-hq/appmaster/internal/application/user/dto"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Issue(authUserID, sessionID string, role authorization.UserRole) (string, time.Time, error)
}

type ConfirmationSender interface {
	SendConfirmationEmail(to, name, token string) error
}

type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, session *authorization.Session) error
}

type VerifyEmailExecutor interface {
	Execute(ctx context.Context, token string) (*VerifyEmailResult, error)
}

type ResolveSessionExecutor interface {
	Execute(ctx context.Context, q ResolveSessionQuery) (*authorization.Session, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, session *authorization.Session) (*dto.CurrentUserDTO, error)
}

type GetPersonalInfoExecutor interface {
	Execute(ctx context.Context, session *authorization.Session) (*dto.PersonalInfoDTO, error)
}

type UpdatePersonalInfoExecutor interface {
	Execute(ctx context.Context, cmd UpdatePersonalInfoCommand) (*UpdatePersonalInfoResult, error)
}
