package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/setting/dto"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

type GetSettingsExecutor interface {
	Execute(ctx context.Context, session *authorization.Session) (*dto.SettingsDTO, error)
}

type UpdateSettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error)
}
