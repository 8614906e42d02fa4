package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hyperpolymath/ambientops/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is applied by middleware before the upgrade
		return true
	},
}

// WebSocketController upgrades clients onto the ambient stream hub.
type WebSocketController struct {
	hub *services.WebSocketHub
}

func NewWebSocketController(hub *services.WebSocketHub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// HandleWebSocket handles incoming WebSocket connections
func (ctl *WebSocketController) HandleWebSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &services.ClientConnection{
		ID:    c.ClientIP() + "-" + uuid.NewString()[:8],
		Conn:  ws,
		Send:  make(chan services.WebSocketMessage, 256),
		Close: make(chan bool),
	}
	ctl.hub.Register(client)

	go ctl.readPump(client)
	go ctl.writePump(client)
}

// readPump reads messages from the WebSocket client
func (ctl *WebSocketController) readPump(client *services.ClientConnection) {
	defer func() {
		ctl.hub.Unregister(client.ID)
		client.Conn.Close()
	}()

	client.Conn.SetPongHandler(func(string) error {
		return nil
	})

	for {
		var msg services.WebSocketMessage
		err := client.Conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] WebSocket error: %v", err)
			}
			return
		}

		switch msg.Type {
		case "ping":
			pong := services.WebSocketMessage{Type: "pong"}
			select {
			case client.Send <- pong:
			case <-client.Close:
				return
			default:
				return
			}

		case "subscribe":
			// Already subscribed on connect
			log.Printf("[WS] Client %s subscribed to updates", client.ID)

		case "unsubscribe":
			return

		default:
			log.Printf("[WS] Unknown message type: %s", msg.Type)
		}
	}
}

// writePump writes messages to the WebSocket client
func (ctl *WebSocketController) writePump(client *services.ClientConnection) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			err := client.Conn.WriteJSON(msg)
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[WS] Write error: %v", err)
				}
				return
			}

		case <-client.Close:
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
