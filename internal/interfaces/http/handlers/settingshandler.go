package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/setting/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

type SettingsHandler struct {
	getSettingsUC    usecases.GetSettingsExecutor
	updateSettingsUC usecases.UpdateSettingsExecutor
	logger           logger.Interface
}

func NewSettingsHandler(
	getSettingsUC usecases.GetSettingsExecutor,
	updateSettingsUC usecases.UpdateSettingsExecutor,
	logger logger.Interface,
) *SettingsHandler {
	return &SettingsHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context(), authorization.SessionFromGin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		Session:            authorization.SessionFromGin(c),
		Name:               req.Name,
		Email:              req.Email,
		Company:            req.Company,
		EmailNotifications: req.EmailNotifications,
		DealAlerts:         req.DealAlerts,
		SidebarOpen:        req.SidebarOpen,
		Theme:              req.Theme,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result.Settings)
}
