// Package services provides infrastructure services.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// InvalidationEventType is the SSE event name browsers listen for.
const InvalidationEventType = "query:invalidated"

// InvalidationEvent tells a browser which query keys to refetch.
type InvalidationEvent struct {
	Type      string     `json:"type"`
	Keys      [][]string `json:"keys"`
	Timestamp int64      `json:"timestamp"`
}

// SSEConn is one open event stream of a signed-in browser tab.
type SSEConn struct {
	ID             string
	AuthUserID     string
	OrganisationID *string
	Send           chan []byte
	ConnectedAt    time.Time
	closed         atomic.Bool
}

// TrySend attempts to send data to the SSE connection.
// Returns false if the channel is closed or full.
func (c *SSEConn) TrySend(data []byte) (sent bool) {
	if c.closed.Load() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// Close marks the connection as closed and closes the send channel.
func (c *SSEConn) Close() {
	if c.closed.CompareAndSwap(false, true) {
		close(c.Send)
	}
}

// userScopedKeys name the query keys whose second part is an auth user ID.
// Those are only sent to that user's connections.
var userScopedKeys = map[string]bool{
	query.SettingsKey("")[0]:    true,
	query.UserProfileKey("")[0]: true,
	query.CurrentUserKey("")[0]: true,
}

// organisationScopedKeys name the query keys whose second part is an
// organisation ID.
var organisationScopedKeys = map[string]bool{
	query.DevicesKey()[0]: true,
}

// visibleKeys filters keys down to the ones conn may see. A device action
// key is reduced to its prefix since the device ID alone does not say which
// organisation it belongs to.
func (c *SSEConn) visibleKeys(keys []query.Key) [][]string {
	visible := make([]query.Key, 0, len(keys))
	for _, k := range keys {
		switch {
		case len(k) > 1 && userScopedKeys[k[0]]:
			if k[1] != c.AuthUserID {
				continue
			}
		case len(k) > 1 && organisationScopedKeys[k[0]]:
			if c.OrganisationID == nil || k[1] != *c.OrganisationID {
				continue
			}
		case len(k) > 1 && k[0] == query.DeviceActionsKey()[0]:
			k = query.DeviceActionsKey()
		}
		visible = append(visible, k)
	}

	unique := query.Unique(visible)
	out := make([][]string, 0, len(unique))
	for _, k := range unique {
		out = append(out, k)
	}
	return out
}

// InvalidationHub fans query invalidations out to browser event streams so
// open pages refetch what went stale.
type InvalidationHub struct {
	conns   map[string]*SSEConn
	connsMu sync.RWMutex

	// Connections per user
	userConns   map[string]int
	userConnsMu sync.RWMutex

	maxConnsPerUser int

	shutdown atomic.Bool

	logger logger.Interface
}

type InvalidationHubConfig struct {
	MaxConnsPerUser int // default: 5
}

func NewInvalidationHub(log logger.Interface, config *InvalidationHubConfig) *InvalidationHub {
	maxConns := 5
	if config != nil && config.MaxConnsPerUser > 0 {
		maxConns = config.MaxConnsPerUser
	}

	return &InvalidationHub{
		conns:           make(map[string]*SSEConn),
		userConns:       make(map[string]int),
		maxConnsPerUser: maxConns,
		logger:          log,
	}
}

// Shutdown closes every connection. Safe to call multiple times.
func (h *InvalidationHub) Shutdown() {
	if !h.shutdown.CompareAndSwap(false, true) {
		return
	}

	h.connsMu.Lock()
	for _, conn := range h.conns {
		conn.Close()
	}
	h.conns = make(map[string]*SSEConn)
	h.connsMu.Unlock()

	h.userConnsMu.Lock()
	h.userConns = make(map[string]int)
	h.userConnsMu.Unlock()
}

// RegisterConn registers a new SSE connection for a user of organisationID,
// which is nil for users outside any organisation.
// Returns nil if the user is at the connection limit or the hub is shut down.
func (h *InvalidationHub) RegisterConn(connID, authUserID string, organisationID *string) *SSEConn {
	if h.shutdown.Load() {
		return nil
	}

	conn := &SSEConn{
		ID:             connID,
		AuthUserID:     authUserID,
		OrganisationID: organisationID,
		Send:           make(chan []byte, 64),
		ConnectedAt:    biztime.NowUTC(),
	}

	// Lock order is connsMu then userConnsMu, same as UnregisterConn.
	h.connsMu.Lock()
	defer h.connsMu.Unlock()

	h.userConnsMu.Lock()
	defer h.userConnsMu.Unlock()

	if h.userConns[authUserID] >= h.maxConnsPerUser {
		h.logger.Warnw("SSE connection limit exceeded",
			"auth_user_id", authUserID,
			"limit", h.maxConnsPerUser,
		)
		return nil
	}

	h.conns[connID] = conn
	h.userConns[authUserID]++

	h.logger.Infow("SSE connection registered",
		"conn_id", connID,
		"auth_user_id", authUserID,
	)

	return conn
}

func (h *InvalidationHub) UnregisterConn(connID string) {
	h.connsMu.Lock()
	h.userConnsMu.Lock()

	conn, ok := h.conns[connID]
	if ok {
		delete(h.conns, connID)
		if h.userConns[conn.AuthUserID] > 0 {
			h.userConns[conn.AuthUserID]--
		}
	}

	h.userConnsMu.Unlock()
	h.connsMu.Unlock()

	if ok {
		conn.Close()
		h.logger.Infow("SSE connection unregistered",
			"conn_id", connID,
			"auth_user_id", conn.AuthUserID,
		)
	}
}

// ConnCount returns the number of open connections.
func (h *InvalidationHub) ConnCount() int {
	h.connsMu.RLock()
	defer h.connsMu.RUnlock()
	return len(h.conns)
}

// PublishInvalidation sends keys to every connection allowed to see them.
// It satisfies cache.InvalidationPublisher and never fails.
func (h *InvalidationHub) PublishInvalidation(_ context.Context, keys []query.Key) error {
	h.Broadcast(keys)
	return nil
}

func (h *InvalidationHub) Broadcast(keys []query.Key) {
	if len(keys) == 0 {
		return
	}

	h.connsMu.RLock()
	defer h.connsMu.RUnlock()

	now := biztime.NowUTC().Unix()
	for _, conn := range h.conns {
		visible := conn.visibleKeys(keys)
		if len(visible) == 0 {
			continue
		}
		data, err := formatSSEEvent(InvalidationEvent{
			Type:      InvalidationEventType,
			Keys:      visible,
			Timestamp: now,
		})
		if err != nil {
			h.logger.Errorw("failed to format SSE event", "error", err)
			return
		}
		if !conn.TrySend(data) {
			h.logger.Warnw("failed to send SSE event, channel full",
				"conn_id", conn.ID,
			)
		}
	}
}

func formatSSEEvent(event InvalidationEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, payload)), nil
}
