package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/workflow"
)

const wsWriteTimeout = 10 * time.Second

// eventHub fans engine user events (lead-agent messages, surfaced
// questions) out to connected WebSocket clients.
type eventHub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	conns map[string]*wsConn
}

type wsConn struct {
	id     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

func newEventHub(logger *slog.Logger) *eventHub {
	return &eventHub{
		logger: logger,
		conns:  make(map[string]*wsConn),
	}
}

// run consumes the engine's event stream until ctx ends.
func (h *eventHub) run(ctx context.Context, events <-chan workflow.UserEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			h.broadcast(ev)
		}
	}
}

func (h *eventHub) broadcast(ev workflow.UserEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Warn("Failed to marshal user event", "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*wsConn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		writeCtx, cancel := context.WithTimeout(c.ctx, wsWriteTimeout)
		err := c.conn.Write(writeCtx, websocket.MessageText, data)
		cancel()
		if err != nil {
			h.logger.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "error", err)
		}
	}
}

func (h *eventHub) register(c *wsConn) {
	h.mu.Lock()
	h.conns[c.id] = c
	h.mu.Unlock()
}

func (h *eventHub) unregister(c *wsConn) {
	h.mu.Lock()
	delete(h.conns, c.id)
	h.mu.Unlock()
	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (h *eventHub) closeAll() {
	h.mu.Lock()
	conns := make([]*wsConn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.conns = make(map[string]*wsConn)
	h.mu.Unlock()

	for _, c := range conns {
		c.cancel()
		_ = c.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

// websocketHandler handles GET /ws: it upgrades the connection and streams
// user events until the client disconnects. Client frames other than pings
// are ignored.
func (s *Server) websocketHandler(c *echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	wc := &wsConn{
		id:     uuid.NewString(),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}
	s.hub.register(wc)
	defer s.hub.unregister(wc)

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return nil
		}
		if typ != websocket.MessageText {
			continue
		}
		var msg struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Action == "ping" {
			writeCtx, cancelWrite := context.WithTimeout(ctx, wsWriteTimeout)
			_ = conn.Write(writeCtx, websocket.MessageText, []byte(`{"type":"pong"}`))
			cancelWrite()
		}
	}
}
