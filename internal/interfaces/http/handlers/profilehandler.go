package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/user/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// ProfileHandler serves the personal info page of the profile area.
type ProfileHandler struct {
	getPersonalInfoUC    usecases.GetPersonalInfoExecutor
	updatePersonalInfoUC usecases.UpdatePersonalInfoExecutor
	logger               logger.Interface
}

func NewProfileHandler(
	getPersonalInfoUC usecases.GetPersonalInfoExecutor,
	updatePersonalInfoUC usecases.UpdatePersonalInfoExecutor,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getPersonalInfoUC:    getPersonalInfoUC,
		updatePersonalInfoUC: updatePersonalInfoUC,
		logger:               logger,
	}
}

// GetPersonalInfo handles GET /profile/personal-info
func (h *ProfileHandler) GetPersonalInfo(c *gin.Context) {
	result, err := h.getPersonalInfoUC.Execute(c.Request.Context(), authorization.SessionFromGin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePersonalInfo handles PUT /profile/personal-info
func (h *ProfileHandler) UpdatePersonalInfo(c *gin.Context) {
	var req UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	result, err := h.updatePersonalInfoUC.Execute(c.Request.Context(), usecases.UpdatePersonalInfoCommand{
		Session: authorization.SessionFromGin(c),
		Name:    req.Name,
		Phone:   req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, ToastResponse{
		Title: result.Title,
		Data:  result.Profile,
	})
}
