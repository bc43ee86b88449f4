package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same wildcard policy as the REST routes
	},
}

// WebSocketHandler streams question events to connected clients
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// HandleWebSocket handles GET /ws?category=N. Without a category the client
// receives events for every category.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	categoryID := 0
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return echo.NewHTTPError(http.StatusBadRequest)
		}
		categoryID = id
	}

	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		return nil
	}

	client := ws.NewClient(h.hub, conn, categoryID)
	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return nil
	}

	go client.ReadPump()
	go client.WritePump()

	return nil
}
