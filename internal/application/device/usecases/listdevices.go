package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/device/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

type ListDevicesUseCase struct {
	deviceRepo device.Repository
	queries    query.Client
	logger     logger.Interface
}

func NewListDevicesUseCase(deviceRepo device.Repository, queries query.Client, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{deviceRepo: deviceRepo, queries: queries, logger: logger}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context, session *authorization.Session) ([]dto.DeviceDTO, error) {
	if session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	key := query.DevicesKey()
	if session.OrganisationID != nil {
		key = query.OrganisationDevicesKey(*session.OrganisationID)
	}

	result, err := query.Get(ctx, uc.queries, key, func(ctx context.Context) ([]dto.DeviceDTO, error) {
		devices, err := uc.deviceRepo.List(ctx, session.OrganisationID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.DeviceDTO, 0, len(devices))
		for _, d := range devices {
			out = append(out, dto.ToDeviceDTO(d))
		}
		return out, nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list devices", "error", err)
		return nil, errors.NewInternalError("Failed to load devices", err.Error())
	}
	return result, nil
}

type ListActionsQuery struct {
	DeviceID string
	Session  *authorization.Session
}

// ListActionsUseCase returns a device's action history, newest first.
type ListActionsUseCase struct {
	deviceRepo device.Repository
	actionRepo device.ActionRepository
	queries    query.Client
	logger     logger.Interface
}

func NewListActionsUseCase(
	deviceRepo device.Repository,
	actionRepo device.ActionRepository,
	queries query.Client,
	logger logger.Interface,
) *ListActionsUseCase {
	return &ListActionsUseCase{deviceRepo: deviceRepo, actionRepo: actionRepo, queries: queries, logger: logger}
}

func (uc *ListActionsUseCase) Execute(ctx context.Context, q ListActionsQuery) ([]dto.ActionDTO, error) {
	if q.Session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	d, err := uc.deviceRepo.GetByID(ctx, q.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to get device", "device_id", q.DeviceID, "error", err)
		return nil, errors.NewInternalError("Failed to load device actions", err.Error())
	}
	if d == nil || !visibleTo(d, q.Session) {
		return nil, errors.NewNotFoundError("Device not found")
	}

	result, err := query.Get(ctx, uc.queries, query.DeviceActionsForKey(d.ID()), func(ctx context.Context) ([]dto.ActionDTO, error) {
		actions, err := uc.actionRepo.ListByDevice(ctx, d.ID())
		if err != nil {
			return nil, err
		}
		out := make([]dto.ActionDTO, 0, len(actions))
		for _, a := range actions {
			out = append(out, dto.ToActionDTO(a))
		}
		return out, nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list device actions", "device_id", d.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to load device actions", err.Error())
	}
	return result, nil
}

type GetCatalogUseCase struct{}

func NewGetCatalogUseCase() *GetCatalogUseCase { return &GetCatalogUseCase{} }

func (uc *GetCatalogUseCase) Execute(ctx context.Context) dto.CatalogDTO {
	return dto.ToCatalogDTO(device.MenuGroups)
}
