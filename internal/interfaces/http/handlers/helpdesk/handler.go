package helpdesk

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// Handler serves the ticket list, ticket detail panels and the two ticket
// mutations.
type Handler struct {
	listTicketsUC     usecases.ListTicketsExecutor
	listProblemsUC    usecases.ListProblemsExecutor
	getStatsUC        usecases.GetStatsExecutor
	getTicketUC       usecases.GetTicketExecutor
	getDetailUC       usecases.GetTicketDetailExecutor
	listCommentsUC    usecases.ListCommentsExecutor
	listHistoryUC     usecases.ListHistoryExecutor
	listAttachmentsUC usecases.ListAttachmentsExecutor
	listProblemsForUC usecases.ListLinkedProblemsExecutor
	addCommentUC      usecases.AddCommentExecutor
	changeStatusUC    usecases.ChangeStatusExecutor
	logger            logger.Interface
}

// UseCases groups the executors the handler depends on.
type UseCases struct {
	ListTickets        usecases.ListTicketsExecutor
	ListProblems       usecases.ListProblemsExecutor
	GetStats           usecases.GetStatsExecutor
	GetTicket          usecases.GetTicketExecutor
	GetTicketDetail    usecases.GetTicketDetailExecutor
	ListComments       usecases.ListCommentsExecutor
	ListHistory        usecases.ListHistoryExecutor
	ListAttachments    usecases.ListAttachmentsExecutor
	ListLinkedProblems usecases.ListLinkedProblemsExecutor
	AddComment         usecases.AddCommentExecutor
	ChangeStatus       usecases.ChangeStatusExecutor
}

func NewHandler(ucs UseCases, logger logger.Interface) *Handler {
	return &Handler{
		listTicketsUC:     ucs.ListTickets,
		listProblemsUC:    ucs.ListProblems,
		getStatsUC:        ucs.GetStats,
		getTicketUC:       ucs.GetTicket,
		getDetailUC:       ucs.GetTicketDetail,
		listCommentsUC:    ucs.ListComments,
		listHistoryUC:     ucs.ListHistory,
		listAttachmentsUC: ucs.ListAttachments,
		listProblemsForUC: ucs.ListLinkedProblems,
		addCommentUC:      ucs.AddComment,
		changeStatusUC:    ucs.ChangeStatus,
		logger:            logger,
	}
}

// ListTickets handles GET /helpdesk/tickets
// @Summary List tickets
// @Description List tickets with optional filters
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param status query string false "Ticket status"
// @Param priority query string false "Ticket priority"
// @Param category_id query string false "Category ID"
// @Param assignee query string false "Assignee"
// @Param search query string false "Search term"
// @Param date_from query string false "Created on or after (YYYY-MM-DD)"
// @Param date_to query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Count)
}

// ListProblems handles GET /helpdesk/problems
// @Summary List problems
// @Description List helpdesk problems
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/problems [get]
func (h *Handler) ListProblems(c *gin.Context) {
	result, err := h.listProblemsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// GetStats handles GET /helpdesk/stats
// @Summary Get helpdesk stats
// @Description Ticket counts by state and SLA
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /helpdesk/tickets/:id
// @Summary Get ticket by ID
// @Description Get a ticket
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id} [get]
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicketDetail handles GET /helpdesk/tickets/:id/detail. Panels that
// failed are reported inside the payload; the request still succeeds.
// @Summary Get ticket detail
// @Description Ticket with comments, history, attachments and linked problems
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/detail [get]
func (h *Handler) GetTicketDetail(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDetailUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComments handles GET /helpdesk/tickets/:id/comments
// @Summary List ticket comments
// @Description Comments of a ticket
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	servePanel(c, h.listCommentsUC.Execute)
}

// ListHistory handles GET /helpdesk/tickets/:id/history
// @Summary List ticket history
// @Description Status history of a ticket
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/history [get]
func (h *Handler) ListHistory(c *gin.Context) {
	servePanel(c, h.listHistoryUC.Execute)
}

// ListAttachments handles GET /helpdesk/tickets/:id/attachments
// @Summary List ticket attachments
// @Description Attachments of a ticket
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/attachments [get]
func (h *Handler) ListAttachments(c *gin.Context) {
	servePanel(c, h.listAttachmentsUC.Execute)
}

// ListLinkedProblems handles GET /helpdesk/tickets/:id/problems
// @Summary List linked problems
// @Description Problems linked to a ticket
// @Tags helpdesk
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/problems [get]
func (h *Handler) ListLinkedProblems(c *gin.Context) {
	servePanel(c, h.listProblemsForUC.Execute)
}

// AddComment handles POST /helpdesk/tickets/:id/comments
// @Summary Add a ticket comment
// @Description Add a comment to a ticket
// @Tags helpdesk
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param request body AddCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err, "ticket_id", ticketID)
		utils.ErrorResponse(c, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Comment:  req.Comment,
		Session:  authorization.SessionFromGin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Comment, result.Message)
}

// ChangeStatus handles PATCH /helpdesk/tickets/:id/status
// @Summary Change ticket status
// @Description Move a ticket to another status
// @Tags helpdesk
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param request body ChangeStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /helpdesk/tickets/{id}/status [patch]
func (h *Handler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err, "ticket_id", ticketID)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid status")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		Session:   authorization.SessionFromGin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result.Ticket)
}

func servePanel[T any](c *gin.Context, fetch func(ctx context.Context, ticketID uint) ([]T, error)) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := fetch(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, items, len(items))
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "ticket")
}
