package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/navigation/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// NavigationHandler tells the layout which chrome to render for a path.
type NavigationHandler struct {
	getNavigationUC usecases.GetNavigationExecutor
}

func NewNavigationHandler(getNavigationUC usecases.GetNavigationExecutor) *NavigationHandler {
	return &NavigationHandler{getNavigationUC: getNavigationUC}
}

// GetNavigation handles GET /navigation?path=. Anonymous callers get the
// public navbar.
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	result, err := h.getNavigationUC.Execute(c.Request.Context(), usecases.GetNavigationQuery{
		Path:    c.DefaultQuery("path", "/"),
		Session: authorization.SessionFromGin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
