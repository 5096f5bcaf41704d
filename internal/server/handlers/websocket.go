// internal/server/handlers/websocket.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"misinfotracker/internal/config"
	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/view"
)

// Live message types
const (
	MessageWelcome = "welcome"
	MessageSelect  = "select"
	MessageRender  = "render"
	MessageError   = "error"
)

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// NewWebSocketConfig derives the connection settings from cfg. Pings go out
// at nine tenths of the pong wait.
func NewWebSocketConfig(cfg config.WebSocketConfig) WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      cfg.WriteWait,
		PongWait:       cfg.PongWait,
		PingPeriod:     (cfg.PongWait * 9) / 10,
		MaxMessageSize: cfg.MaxMessageSize,
	}
}

// SelectionMessage is a filter state sent by a live client. An omitted
// dimension selects its full domain; an empty list selects nothing.
type SelectionMessage struct {
	Platforms  []string `json:"platforms"`
	Regions    []string `json:"regions"`
	Sentiments []string `json:"sentiments"`
}

// ClientMessage is an incoming live message
type ClientMessage struct {
	Type      string           `json:"type"`
	Selection SelectionMessage `json:"selection"`
}

// WelcomeMessage opens every live session
type WelcomeMessage struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Domains   record.Domains `json:"domains"`
	Total     int            `json:"total"`
	Time      time.Time      `json:"time"`
}

// RenderMessage answers a selection with everything the page needs to redraw
type RenderMessage struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id"`
	Selection record.Selection `json:"selection"`
	Query     string           `json:"query"`
	Count     int              `json:"count"`
	Total     int              `json:"total"`
	Charts    view.ChartURLs   `json:"charts"`
	Tooltips  view.Tooltips    `json:"tooltips"`
}

// ErrorMessage reports a rejected client message
type ErrorMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Error     string `json:"error"`
}

// upgrader is used to upgrade HTTP connections to WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveHandler pushes re-rendered dashboards to clients as their filters change
type LiveHandler struct {
	dash   Dashboard
	config WebSocketConfig
	logger *zap.Logger
}

// NewLiveHandler creates a new live dashboard handler
func NewLiveHandler(dash Dashboard, cfg WebSocketConfig, logger *zap.Logger) *LiveHandler {
	return &LiveHandler{
		dash:   dash,
		config: cfg,
		logger: logger,
	}
}

// WebSocketClient represents a connected WebSocket client
type WebSocketClient struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	sessionID string
	handler   *LiveHandler
	logger    *zap.Logger
}

// ServeHTTP upgrades the connection and runs the session until either side
// closes it
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade to WebSocket", zap.Error(err))
		return
	}

	sessionID := uuid.NewString()
	client := &WebSocketClient{
		conn:      conn,
		send:      make(chan []byte, 16),
		done:      make(chan struct{}),
		sessionID: sessionID,
		handler:   h,
		logger:    h.logger.With(zap.String("session_id", sessionID)),
	}

	client.enqueue(WelcomeMessage{
		Type:      MessageWelcome,
		SessionID: sessionID,
		Domains:   record.AllDomains(),
		Total:     h.dash.Total(),
		Time:      time.Now().UTC(),
	})

	client.logger.Info("WebSocket session opened", zap.String("remote_addr", r.RemoteAddr))

	go client.writePump()
	client.readPump()
}

// readPump reads selections from the connection and queues their renders.
// It is the only sender on c.send and closes it on exit.
func (c *WebSocketClient) readPump() {
	cfg := c.handler.config

	defer func() {
		close(c.send)
		c.logger.Info("WebSocket session closed")
	}()

	c.conn.SetReadLimit(cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("WebSocket error", zap.Error(err))
			}
			return
		}

		if !c.processIncomingMessage(message) {
			return
		}
	}
}

// writePump pumps queued messages to the WebSocket connection
func (c *WebSocketClient) writePump() {
	cfg := c.handler.config
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				next, ok := <-c.send
				if !ok {
					break
				}
				w.Write([]byte{'\n'})
				w.Write(next)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// processIncomingMessage handles one client message. It reports false once
// the writer has gone away.
func (c *WebSocketClient) processIncomingMessage(message []byte) bool {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		c.logger.Debug("Failed to parse WebSocket message", zap.Error(err))
		return c.enqueue(c.errorMessage("malformed message"))
	}

	switch msg.Type {
	case MessageSelect:
		return c.enqueue(c.handleSelect(msg.Selection))
	default:
		c.logger.Debug("Unknown message type", zap.String("type", msg.Type))
		return c.enqueue(c.errorMessage("unknown message type: " + msg.Type))
	}
}

// handleSelect renders the selection carried by a select message
func (c *WebSocketClient) handleSelect(m SelectionMessage) interface{} {
	sel, err := m.selection()
	if err != nil {
		return c.errorMessage(err.Error())
	}

	out, err := c.handler.dash.Render(sel)
	if err != nil {
		if !errors.Is(err, record.ErrUnknownValue) {
			c.logger.Error("Failed to render dashboard", zap.Error(err))
		}
		return c.errorMessage(err.Error())
	}

	c.logger.Debug("Rendered selection", zap.Int("count", out.Count))

	return RenderMessage{
		Type:      MessageRender,
		SessionID: c.sessionID,
		Selection: out.Selection,
		Query:     out.Selection.Values().Encode(),
		Count:     out.Count,
		Total:     out.Total,
		Charts:    view.BuildChartURLs(out),
		Tooltips:  view.BuildTooltips(out),
	}
}

func (c *WebSocketClient) errorMessage(text string) ErrorMessage {
	return ErrorMessage{Type: MessageError, SessionID: c.sessionID, Error: text}
}

// enqueue marshals payload onto the send queue, waiting for room unless the
// writer has stopped
func (c *WebSocketClient) enqueue(payload interface{}) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("Failed to marshal WebSocket message", zap.Error(err))
		return true
	}

	select {
	case c.send <- data:
		return true
	case <-c.done:
		return false
	}
}

func (m SelectionMessage) selection() (record.Selection, error) {
	sel := record.FullSelection()
	var err error

	if m.Platforms != nil {
		if sel.Platforms, err = record.ParsePlatforms(m.Platforms); err != nil {
			return record.Selection{}, err
		}
	}
	if m.Regions != nil {
		if sel.Regions, err = record.ParseRegions(m.Regions); err != nil {
			return record.Selection{}, err
		}
	}
	if m.Sentiments != nil {
		if sel.Sentiments, err = record.ParseSentiments(m.Sentiments); err != nil {
			return record.Selection{}, err
		}
	}

	return sel, nil
}
