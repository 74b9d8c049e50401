package display

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/KirkDiggler/lol-cast-engine/internal/events"
	"github.com/KirkDiggler/lol-cast-engine/internal/services/caster"
)

const (
	writeWait  = 2 * time.Second
	sendBuffer = 32
)

// StatusProvider gives newly connected displays the current cooldown picture
type StatusProvider interface {
	Status() caster.Status
}

// Hub pushes every published event to connected websocket clients. It is
// an events.EventListener and never blocks the bus: frames for a client
// that cannot keep up are dropped along with the client.
type Hub struct {
	status   StatusProvider
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

type HubConfig struct {
	Status StatusProvider
	Logger *zap.Logger
}

func NewHub(cfg *HubConfig) *Hub {
	if cfg == nil {
		cfg = &HubConfig{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Hub{
		status: cfg.Status,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) ID() string    { return "display-hub" }
func (h *Hub) Priority() int { return events.PriorityDisplay }

func (h *Hub) HandleEvent(e events.Event) error {
	data, err := json.Marshal(eventFrame(e))
	if err != nil {
		return err
	}
	h.broadcast(data)
	return nil
}

// Clients returns the number of connected displays
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.Close()
		return
	}
	// registered before the snapshot so nothing falls between the two
	h.sendStatus(c)
	h.logger.Info("display connected", zap.String("remote", r.RemoteAddr))

	go h.writeLoop(c)

	// displays only listen; reading detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
	h.logger.Info("display disconnected", zap.String("remote", r.RemoteAddr))
}

// Close disconnects every display and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.closed = true
	h.mu.Unlock()

	for _, c := range clients {
		h.closeClient(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) sendStatus(c *client) {
	if h.status == nil {
		return
	}
	data, err := json.Marshal(statusFrame(h.status.Status()))
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		h.closeClient(c)
	}
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
			delete(h.clients, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow display", zap.String("remote", c.conn.RemoteAddr().String()))
		h.closeClient(c)
	}
}

func (h *Hub) closeClient(c *client) {
	c.once.Do(func() {
		close(c.send)
	})
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.unregister(c)
			return
		}
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
