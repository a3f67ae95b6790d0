package overlay

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

// ServeHTTP upgrades the connection, sends the current snapshot, and
// keeps the client on the broadcast list until it disconnects. Clients
// are read-only: anything they send is discarded.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Info("overlay upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	if err := s.sendCurrent(conn); err != nil {
		s.logger.Info("overlay initial send failed", "remote", r.RemoteAddr, "error", err)
		conn.Close()
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	total := len(s.clients)
	s.mu.Unlock()
	s.logger.Info("overlay client connected", "remote", r.RemoteAddr, "clients", total)

	// Drain inbound messages so control frames keep flowing; the read
	// error is the disconnect signal
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
		s.logger.Info("overlay client disconnected", "remote", r.RemoteAddr)
	}()
}

func (s *Server) sendCurrent(conn *websocket.Conn) error {
	s.mu.Lock()
	payload, err := json.Marshal(&Frame{
		Type:     "snapshot",
		Snapshot: s.snapshot,
	})
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
