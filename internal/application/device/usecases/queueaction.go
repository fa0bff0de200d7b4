package usecases

import (
	"context"
	stderrors "errors"

	"github.com/appmaster-hq/appmaster/internal/application/device/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

const queueFailedPrefix = "Failed to queue action"

type QueueActionCommand struct {
	DeviceID   string
	ActionType string
	Input      string
	Confirmed  bool
	Session    *authorization.Session
}

// QueueActionResult holds either the queued action or, when the action
// still needs the user's confirmation, the dialog to show. Exactly one of
// Action and Dialog is set.
type QueueActionResult struct {
	Action  *dto.ActionDTO
	Dialog  *device.Dialog
	Message string
}

// NeedsConfirmation reports whether nothing was written yet.
func (r *QueueActionResult) NeedsConfirmation() bool { return r.Dialog != nil }

type QueueActionUseCase struct {
	deviceRepo device.Repository
	actionRepo device.ActionRepository
	queries    query.Client
	logger     logger.Interface
}

func NewQueueActionUseCase(
	deviceRepo device.Repository,
	actionRepo device.ActionRepository,
	queries query.Client,
	logger logger.Interface,
) *QueueActionUseCase {
	return &QueueActionUseCase{
		deviceRepo: deviceRepo,
		actionRepo: actionRepo,
		queries:    queries,
		logger:     logger,
	}
}

func (uc *QueueActionUseCase) Execute(ctx context.Context, cmd QueueActionCommand) (*QueueActionResult, error) {
	if cmd.Session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	actionType, err := device.NewActionType(cmd.ActionType)
	if err != nil {
		return nil, errors.NewValidationError("Unknown action type", cmd.ActionType)
	}
	def, _ := actionType.Definition()

	d, err := uc.loadDevice(ctx, cmd.DeviceID, cmd.Session)
	if err != nil {
		return nil, err
	}

	if def.RequiresConfirmation() && !cmd.Confirmed {
		dialog := def.ConfirmationDialog(d.Name())
		return &QueueActionResult{Dialog: &dialog}, nil
	}

	payload, err := def.BuildPayload(cmd.Input)
	if err != nil {
		var inputErr *device.InputError
		if stderrors.As(err, &inputErr) {
			return nil, errors.NewValidationError(inputErr.Message)
		}
		return nil, errors.NewMutationError(queueFailedPrefix, err)
	}

	uc.logger.Infow("executing queue action use case",
		"device_id", d.ID(),
		"action_type", actionType,
		"initiated_by", cmd.Session.AuthUserID,
	)

	action, err := device.NewPendingAction(d, actionType, payload, cmd.Session.AuthUserID, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewMutationError(queueFailedPrefix, err)
	}
	if err := uc.actionRepo.Create(ctx, action); err != nil {
		uc.logger.Errorw("failed to queue device action", "device_id", d.ID(), "action_type", actionType, "error", err)
		return nil, errors.NewMutationError(queueFailedPrefix, err)
	}

	query.InvalidateAfterWrite(ctx, uc.queries, uc.logger, query.DeviceActionsKey())

	uc.logger.Infow("device action queued", "action_id", action.ID(), "device_id", d.ID())
	queued := dto.ToActionDTO(action)
	return &QueueActionResult{
		Action:  &queued,
		Message: "Action queued for " + d.Name(),
	}, nil
}

// loadDevice hides devices of other organisations behind not found.
func (uc *QueueActionUseCase) loadDevice(ctx context.Context, id string, session *authorization.Session) (*device.Device, error) {
	d, err := uc.deviceRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get device", "device_id", id, "error", err)
		return nil, errors.NewMutationError(queueFailedPrefix, err)
	}
	if d == nil || !visibleTo(d, session) {
		return nil, errors.NewNotFoundError("Device not found")
	}
	return d, nil
}

func visibleTo(d *device.Device, session *authorization.Session) bool {
	if d.OrganisationID() == nil || session.OrganisationID == nil {
		return d.OrganisationID() == nil
	}
	return *d.OrganisationID() == *session.OrganisationID
}
