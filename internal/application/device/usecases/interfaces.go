package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/device/dto"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

type QueueActionExecutor interface {
	Execute(ctx context.Context, cmd QueueActionCommand) (*QueueActionResult, error)
}

type ListDevicesExecutor interface {
	Execute(ctx context.Context, session *authorization.Session) ([]dto.DeviceDTO, error)
}

type ListActionsExecutor interface {
	Execute(ctx context.Context, q ListActionsQuery) ([]dto.ActionDTO, error)
}

type GetCatalogExecutor interface {
	Execute(ctx context.Context) dto.CatalogDTO
}
