// Package common provides shared HTTP handler utilities.
package common

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/services"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

const (
	// SSEKeepaliveInterval is the interval for sending keepalive messages.
	SSEKeepaliveInterval = 30 * time.Second

	// SSEContentType is the content type for SSE responses.
	SSEContentType = "text/event-stream"
)

// EventsHandler streams query invalidations to the browser so open pages
// refetch data another tab or user changed.
type EventsHandler struct {
	hub       *services.InvalidationHub
	logger    logger.Interface
	keepalive time.Duration
}

func NewEventsHandler(hub *services.InvalidationHub, log logger.Interface) *EventsHandler {
	return &EventsHandler{
		hub:       hub,
		logger:    log,
		keepalive: SSEKeepaliveInterval,
	}
}

// Stream handles GET /events
func (h *EventsHandler) Stream(c *gin.Context) {
	session := authorization.SessionFromGin(c)
	if session == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	connID := uuid.New().String()
	conn := h.hub.RegisterConn(connID, session.AuthUserID, session.OrganisationID)
	if conn == nil {
		utils.ErrorResponse(c, http.StatusTooManyRequests, "too many connections")
		return
	}

	setupSSEResponse(c)
	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		h.hub.UnregisterConn(connID)
		h.logger.Warnw("SSE initial write error", "conn_id", connID, "error", err)
		return
	}
	c.Writer.Flush()

	h.runEventLoop(c, conn)
}

func setupSSEResponse(c *gin.Context) {
	c.Header("Content-Type", SSEContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable Nginx buffering
}

// runEventLoop blocks until the client disconnects, the hub closes the
// connection or a write fails.
func (h *EventsHandler) runEventLoop(c *gin.Context, conn *services.SSEConn) {
	keepAliveTicker := time.NewTicker(h.keepalive)
	defer keepAliveTicker.Stop()

	ctx := c.Request.Context()

	for {
		select {
		case <-ctx.Done():
			h.hub.UnregisterConn(conn.ID)
			return

		case data, ok := <-conn.Send:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(data); err != nil {
				h.hub.UnregisterConn(conn.ID)
				h.logger.Warnw("SSE write error", "conn_id", conn.ID, "error", err)
				return
			}
			c.Writer.Flush()

		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.hub.UnregisterConn(conn.ID)
				h.logger.Warnw("SSE keepalive error", "conn_id", conn.ID, "error", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
