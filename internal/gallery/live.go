package gallery

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is one inbound viewer command.
type liveRequest struct {
	Op       string `json:"op"`
	Category string `json:"category,omitempty"`
	ID       int    `json:"id,omitempty"`
}

// liveMessage is pushed to the client: a snapshot after every operation, or
// an error for commands that could not be decoded.
type liveMessage struct {
	Type     string    `json:"type"` // "snapshot" or "error"
	State    *State    `json:"state,omitempty"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// handleLive keeps one Browser per connection. The initial state comes from
// the query string; afterwards each command is applied and the subscription
// writes the resulting snapshot before the next command is read.
func handleLive(catalog *Catalog, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("gallery: websocket upgrade", zap.Error(err))
			return
		}
		defer conn.Close()

		b := Restore(catalog, StateFromQuery(r.URL.Query()))
		send := func(snap Snapshot) {
			st := b.State()
			if err := conn.WriteJSON(liveMessage{Type: "snapshot", State: &st, Snapshot: &snap}); err != nil {
				logger.Debug("gallery: websocket write", zap.Error(err))
			}
		}
		unsubscribe := b.Subscribe(send)
		defer unsubscribe()

		send(b.Snapshot())

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn("gallery: websocket read", zap.Error(err))
				}
				return
			}

			var req liveRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendError(conn, logger, "invalid message format")
				continue
			}
			op, err := ParseOp(req.Op)
			if err != nil {
				sendError(conn, logger, err.Error())
				continue
			}
			b.Do(Action{Op: op, Category: req.Category, ID: req.ID})
		}
	}
}

func sendError(conn *websocket.Conn, logger *zap.Logger, message string) {
	if err := conn.WriteJSON(liveMessage{Type: "error", Error: message}); err != nil {
		logger.Debug("gallery: websocket write error", zap.Error(err))
	}
}
