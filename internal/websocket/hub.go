package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"go.uber.org/zap"
)

const broadcastBuffer = 64

// Message represents a WebSocket message
type Message struct {
	Type    domain.EventType `json:"type"`
	Payload domain.Question  `json:"payload"`
}

// Hub maintains the set of active clients and fans question events out to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Events waiting to be delivered
	broadcast chan Message

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Guards clients for readers outside Run
	mu sync.RWMutex

	log *zap.Logger
}

// NewHub creates a new hub instance
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan Message, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run processes registrations and broadcasts until ctx is done, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.deliver(message)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				h.remove(client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish queues a question event for delivery. Events are dropped when the
// queue is full.
func (h *Hub) Publish(eventType domain.EventType, question domain.Question) {
	select {
	case h.broadcast <- Message{Type: eventType, Payload: question}:
	default:
		h.log.Warn("dropping question event, broadcast queue full",
			zap.String("type", string(eventType)),
			zap.Int("question_id", question.ID),
		)
	}
}

// Register registers a new client with the hub. It returns false if the
// hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client. It is a no-op once the hub has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) deliver(message Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error("failed to marshal question event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if !client.Subscribed(message.Payload.Category) {
			continue
		}
		select {
		case client.Send <- data:
		default:
			// slow client
			h.remove(client)
		}
	}
}

// remove must be called with h.mu held
func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}
