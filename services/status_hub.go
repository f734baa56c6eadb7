package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fahrezi93/NutriSuggest/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Engine connectivity states, mirrored by the frontend indicator.
const (
	StatusChecking  = "checking"
	StatusConnected = "connected"
	StatusError     = "error"
)

// StatusHub broadcasts engine connectivity to every connected client.
type StatusHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
	status  string
}

func NewStatusHub() *StatusHub {
	return &StatusHub{
		clients: make(map[*websocket.Conn]struct{}),
		status:  StatusChecking,
	}
}

// Register adds a client and sends it the current status. The write happens
// under the hub lock: broadcasts, snapshot writes and Close are all
// serialized, since the connection allows only one writer at a time.
func (h *StatusHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	_ = conn.WriteMessage(websocket.TextMessage, statusMessage(h.status))
}

func (h *StatusHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	_ = conn.Close()
}

func (h *StatusHub) Status() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// SetStatus broadcasts only on change.
func (h *StatusHub) SetStatus(status string) {
	h.mu.Lock()
	if h.status == status {
		h.mu.Unlock()
		return
	}
	h.status = status
	msg := statusMessage(status)
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
	h.mu.Unlock()

	logger.Info("engine status changed", zap.String("status", status))
}

// Watch probes the engine until ctx is done.
func (h *StatusHub) Watch(ctx context.Context, engine *EngineService, interval time.Duration) {
	probe := func() {
		if _, err := engine.Health(ctx); err != nil {
			h.SetStatus(StatusError)
		} else {
			h.SetStatus(StatusConnected)
		}
	}

	probe()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}

func statusMessage(status string) []byte {
	msg, _ := json.Marshal(map[string]string{
		"kind":   "engine.status",
		"status": status,
	})
	return msg
}
