package device

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/device/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/id"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

type Handler struct {
	listDevicesUC usecases.ListDevicesExecutor
	listActionsUC usecases.ListActionsExecutor
	getCatalogUC  usecases.GetCatalogExecutor
	queueActionUC usecases.QueueActionExecutor
	logger        logger.Interface
}

func NewHandler(
	listDevicesUC usecases.ListDevicesExecutor,
	listActionsUC usecases.ListActionsExecutor,
	getCatalogUC usecases.GetCatalogExecutor,
	queueActionUC usecases.QueueActionExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listDevicesUC: listDevicesUC,
		listActionsUC: listActionsUC,
		getCatalogUC:  getCatalogUC,
		queueActionUC: queueActionUC,
		logger:        logger,
	}
}

// QueueActionRequest is the body of a dispatch. Input carries the free text
// of actions that ask for it; Confirmed is set once the user accepted the
// dialog.
type QueueActionRequest struct {
	ActionType string `json:"action_type" binding:"required"`
	Input      string `json:"input"`
	Confirmed  bool   `json:"confirmed"`
}

// ConfirmationResponse is returned instead of a queued action when the
// dispatch has to be confirmed first.
type ConfirmationResponse struct {
	RequiresConfirmation bool        `json:"requires_confirmation"`
	Dialog               interface{} `json:"dialog"`
}

// ListDevices handles GET /devices
// @Summary List devices
// @Description List the devices of the caller's organisation
// @Tags devices
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /devices [get]
func (h *Handler) ListDevices(c *gin.Context) {
	result, err := h.listDevicesUC.Execute(c.Request.Context(), authorization.SessionFromGin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// GetCatalog handles GET /devices/catalog
// @Summary Get action catalog
// @Description Device actions in menu order
// @Tags devices
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /devices/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.getCatalogUC.Execute(c.Request.Context()))
}

// ListActions handles GET /devices/:id/actions
// @Summary List device actions
// @Description Action history of a device, newest first
// @Tags devices
// @Produce json
// @Security Bearer
// @Param id path string true "Device ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /devices/{id}/actions [get]
func (h *Handler) ListActions(c *gin.Context) {
	deviceID, err := utils.ParseSIDParam(c, "id", id.PrefixDevice, "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listActionsUC.Execute(c.Request.Context(), usecases.ListActionsQuery{
		DeviceID: deviceID,
		Session:  authorization.SessionFromGin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// QueueAction handles POST /devices/:id/actions
// @Summary Queue a device action
// @Description Queue an action. Unconfirmed dangerous or input actions return a confirmation dialog with status 200
// @Tags devices
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Device ID"
// @Param request body QueueActionRequest true "Action to queue"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /devices/{id}/actions [post]
func (h *Handler) QueueAction(c *gin.Context) {
	deviceID, err := utils.ParseSIDParam(c, "id", id.PrefixDevice, "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req QueueActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for queue action", "error", err, "device_id", deviceID)
		utils.ErrorResponse(c, http.StatusBadRequest, "action_type is required")
		return
	}

	result, err := h.queueActionUC.Execute(c.Request.Context(), usecases.QueueActionCommand{
		DeviceID:   deviceID,
		ActionType: req.ActionType,
		Input:      req.Input,
		Confirmed:  req.Confirmed,
		Session:    authorization.SessionFromGin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.NeedsConfirmation() {
		utils.SuccessResponse(c, http.StatusOK, "", ConfirmationResponse{
			RequiresConfirmation: true,
			Dialog:               result.Dialog,
		})
		return
	}

	utils.CreatedResponse(c, result.Action, result.Message)
}
