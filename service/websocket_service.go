package service

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/docassist/docassist-be/types"
)

// WebSocketService fans processing progress out to every connected client.
// It implements ProgressReporter, so it can be handed straight to the
// aggregators as their status collaborator.
type WebSocketService struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// HandleProgress upgrades the connection and keeps it registered until the
// client goes away. Inbound traffic is only ping messages.
func (s *WebSocketService) HandleProgress(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	s.register(conn)
	defer func() {
		s.unregister(conn)
		conn.Close()
	}()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		_ = p // any client message is treated as a ping
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		pongRes := types.WebSocketResponse{
			Type:    types.TypeWebsocketPong,
			Payload: nil,
		}
		if err := conn.WriteJSON(pongRes); err != nil {
			log.Println("Write error:", err)
			return
		}
	}
}

// Progress implements ProgressReporter.
func (s *WebSocketService) Progress(fraction float64) {
	s.broadcast(types.WebSocketResponse{
		Type:    types.TypeWebsocketProgress,
		Payload: types.ProcessingStatus{Status: "processing", Progress: fraction},
	})
}

// Status implements ProgressReporter.
func (s *WebSocketService) Status(message string) {
	s.broadcast(types.WebSocketResponse{
		Type:    types.TypeWebsocketProcessing,
		Payload: types.ProcessingStatus{Status: "processing", Message: message},
	})
}

// Warning implements ProgressReporter.
func (s *WebSocketService) Warning(message string) {
	s.broadcast(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.ProcessingStatus{Status: "warning", Message: message},
	})
}

func (s *WebSocketService) broadcast(res types.WebSocketResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteJSON(res); err != nil {
			log.Println("Write error:", err)
			delete(s.conns, conn)
			conn.Close()
		}
	}
}

func (s *WebSocketService) register(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[conn] = struct{}{}
}

func (s *WebSocketService) unregister(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *WebSocketService) Health() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
