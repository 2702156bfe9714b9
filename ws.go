package bustracker

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Passenger clients connect from app webviews and local tooling;
	// origin checks happen upstream if at all.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait      = 10 * time.Second
	greetingStatus = "Connected to Bus Tracking Server"
)

type statusMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// handleWS upgrades the connection and streams broadcast updates until
// the client disconnects. One slow or dead client only ever removes
// itself.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	clientID := fmt.Sprintf("client-%d", time.Now().UnixNano())
	log.Printf("client %s connected", clientID)

	// Greeting goes out before the hub subscription so it always precedes
	// any broadcast event.
	greeting, _ := json.Marshal(statusMessage{Type: "status", Message: greetingStatus})
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, greeting); err != nil {
		_ = conn.Close()
		return
	}

	ch := make(chan []byte, s.cfg.Broadcast.SubscriberBuffer)
	if err := s.hub.Subscribe(clientID, ch); err != nil {
		log.Printf("subscribe %s: %v", clientID, err)
		_ = conn.Close()
		return
	}

	done := make(chan struct{})

	// Writer: pump the subscriber channel to the connection. A write
	// failure tears down only this client.
	go func() {
		defer func() {
			_ = s.hub.Unsubscribe(clientID)
			_ = conn.Close()
		}()
		for {
			select {
			case msg := <-ch:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					log.Printf("client %s write error: %v", clientID, err)
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Reader: the viewer stream is one-way, but reading is what detects
	// the close handshake and connection loss.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	close(done)
	log.Printf("client %s disconnected", clientID)
}
