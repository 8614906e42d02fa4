package services

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hyperpolymath/ambientops/internal/models"
)

// WebSocketMessage represents a message sent over WebSocket.
type WebSocketMessage struct {
	Type      string      `json:"type"` // "ambient", "event", "ping", "pong", "error"
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// ClientConnection represents a connected WebSocket client.
type ClientConnection struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan WebSocketMessage
	Close chan bool
}

// WebSocketHub pushes ambient payload refreshes and ingestion events to
// connected UI surfaces. It also serves as an EventRecorder so that
// ingestion's side channel reaches the same clients.
type WebSocketHub struct {
	payloads   *PayloadService
	clients    map[string]*ClientConnection
	broadcast  chan WebSocketMessage
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	interval   time.Duration
	done       chan bool
}

func NewWebSocketHub(payloads *PayloadService, interval time.Duration) *WebSocketHub {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &WebSocketHub{
		payloads:   payloads,
		clients:    make(map[string]*ClientConnection),
		broadcast:  make(chan WebSocketMessage, 256),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		interval:   interval,
		done:       make(chan bool),
	}
}

// Run manages the hub's event loop. Call it in its own goroutine.
func (h *WebSocketHub) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (total: %d)", client.ID, total)

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s (total: %d)", clientID, total)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Client's send channel is full, skip this message
				}
			}
			h.mu.RUnlock()

		case <-ticker.C:
			msg := WebSocketMessage{
				Type:      "ambient",
				Timestamp: time.Now(),
				Data:      h.payloads.Generate(),
			}
			select {
			case h.broadcast <- msg:
			default:
				// Channel full, skip this refresh
			}
		}
	}
}

// RecordEvent implements EventRecorder: ingestion events are pushed to
// every connected client.
func (h *WebSocketHub) RecordEvent(eventType, source string, data map[string]interface{}) {
	msg := WebSocketMessage{
		Type:      "event",
		Timestamp: time.Now(),
		Data: models.Event{
			Type:      eventType,
			Source:    source,
			Timestamp: time.Now(),
			Data:      data,
		},
	}
	select {
	case h.broadcast <- msg:
	default:
		// Fire-and-forget: a saturated hub drops rather than blocking ingestion
	}
}

// Register adds a new client to the hub.
func (h *WebSocketHub) Register(client *ClientConnection) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *WebSocketHub) Unregister(clientID string) {
	h.unregister <- clientID
}

// Broadcast sends a message to all connected clients.
func (h *WebSocketHub) Broadcast(msg WebSocketMessage) {
	h.broadcast <- msg
}

// Stop gracefully stops the hub.
func (h *WebSocketHub) Stop() {
	h.done <- true
}
