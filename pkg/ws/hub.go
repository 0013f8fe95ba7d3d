// Package ws binds transport sessions to the coordinator core: it upgrades
// HTTP requests to WebSocket sessions, dispatches the command frames each
// session sends, fans coordinator events out to every session, and runs the
// periodic stale-device sweep.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/comms"
)

type Hub struct {
	Comms            *comms.Comms
	RateLimiterStore *comms.RateLimiterStore

	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*Session // session id -> session
	byDevice map[string]string   // device id -> owning session id
}

func NewHub(core *comms.Comms) *Hub {
	return &Hub{
		Comms: core,
		upgrader: websocket.Upgrader{
			// terminals are served from ship-local origins we do not control
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*Session),
		byDevice: make(map[string]string),
	}
}

// HandleUpgrade is the gin handler for the websocket endpoint.
func (h *Hub) HandleUpgrade(c *gin.Context) {
	logger := common.GetLogger().Named(common.LoggerNameWsHub)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	sess := newSession(conn)

	h.mu.Lock()
	h.sessions[sess.id] = sess
	total := len(h.sessions)
	h.mu.Unlock()

	logger.Info("Session connected", zap.String("session_id", sess.id), zap.Int("total", total))

	go sess.readLoop(h)
}

// BroadcastAll implements comms.Broadcaster: every connected session receives
// every event. Write failures are logged and left to the session's read loop
// to clean up.
func (h *Hub) BroadcastAll(event string, payload any) {
	logger := common.GetLogger().Named(common.LoggerNameWsHub)

	frame, err := json.Marshal(outFrame{Event: event, Data: payload})
	if err != nil {
		logger.Error("Event marshal failed", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.Lock()
	targets := make([]*Session, 0, len(h.sessions))
	for _, sess := range h.sessions {
		targets = append(targets, sess)
	}
	h.mu.Unlock()

	for _, sess := range targets {
		if err := sess.sendRaw(frame); err != nil {
			logger.Warn("Event delivery failed",
				zap.String("event", event),
				zap.String("session_id", sess.id),
				zap.Error(err))
		}
	}
}

// bind records session <-> device ownership. A device re-registering from a
// new session steals the binding, so the old session's eventual disconnect
// cannot knock the device offline.
func (h *Hub) bind(sess *Session, deviceID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if oldID, ok := h.byDevice[deviceID]; ok && oldID != sess.id {
		if old, ok := h.sessions[oldID]; ok {
			old.deviceID = ""
		}
	}
	if sess.deviceID != "" && sess.deviceID != deviceID {
		delete(h.byDevice, sess.deviceID)
	}

	sess.deviceID = deviceID
	h.byDevice[deviceID] = sess.id
}

// dropSession removes the session and marks its bound device offline. An
// already-evicted device makes MarkOffline a benign NotFound.
func (h *Hub) dropSession(sess *Session) {
	logger := common.GetLogger().Named(common.LoggerNameWsHub)

	h.mu.Lock()
	delete(h.sessions, sess.id)
	deviceID := sess.deviceID
	if deviceID != "" && h.byDevice[deviceID] == sess.id {
		delete(h.byDevice, deviceID)
	} else {
		deviceID = ""
	}
	total := len(h.sessions)
	h.mu.Unlock()

	sess.close()

	logger.Info("Session disconnected", zap.String("session_id", sess.id), zap.Int("total", total))

	if deviceID != "" {
		if _, err := h.Comms.Registry.MarkOffline(deviceID); err != nil && !comms.IsNotFoundError(err) {
			logger.Warn("Mark offline failed", zap.String("device_id", deviceID), zap.Error(err))
		}
	}
}

// unbindDevices drops the session binding for devices the sweep evicted. The
// sessions themselves stay open; a live client will simply re-register.
func (h *Hub) unbindDevices(deviceIDs []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, deviceID := range deviceIDs {
		if sessID, ok := h.byDevice[deviceID]; ok {
			if sess, ok := h.sessions[sessID]; ok {
				sess.deviceID = ""
			}
			delete(h.byDevice, deviceID)
		}
	}
}

func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Hub) checkDeviceLimiter(deviceID string) bool {
	if h.RateLimiterStore == nil {
		return true
	}
	return h.RateLimiterStore.GetLimiter(deviceID).Allow()
}
