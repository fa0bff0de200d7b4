package crm

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/crm/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

type Handler struct {
	listCustomersUC usecases.ListCustomersExecutor
	getDealsBoardUC usecases.GetDealsBoardExecutor
	getDashboardUC  usecases.GetDashboardExecutor
	logger          logger.Interface
}

func NewHandler(
	listCustomersUC usecases.ListCustomersExecutor,
	getDealsBoardUC usecases.GetDealsBoardExecutor,
	getDashboardUC usecases.GetDashboardExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listCustomersUC: listCustomersUC,
		getDealsBoardUC: getDealsBoardUC,
		getDashboardUC:  getDashboardUC,
		logger:          logger,
	}
}

// GetDashboard handles GET /dashboard
// @Summary Get CRM dashboard
// @Description Revenue, deal and customer totals with recent activity
// @Tags crm
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCustomers handles GET /customers?search=
// @Summary List customers
// @Description List customers, optionally filtered by a search term
// @Tags crm
// @Produce json
// @Security Bearer
// @Param search query string false "Match on name, email or company"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	result, err := h.listCustomersUC.Execute(c.Request.Context(), usecases.ListCustomersQuery{
		Search: c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDealsBoard handles GET /deals
// @Summary Get deals board
// @Description Deals grouped into pipeline stage columns
// @Tags crm
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /deals [get]
func (h *Handler) GetDealsBoard(c *gin.Context) {
	result, err := h.getDealsBoardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
