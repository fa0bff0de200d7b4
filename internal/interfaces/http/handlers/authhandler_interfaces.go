package handlers

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/user/dto"
	"github.com/appmaster-hq/appmaster/internal/application/user/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, session *authorization.Session) error
}

type verifyEmailUseCase interface {
	Execute(ctx context.Context, token string) (*usecases.VerifyEmailResult, error)
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, session *authorization.Session) (*dto.CurrentUserDTO, error)
}
