package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// writeWait bounds every socket write. A peer that stops draining its TCP
// buffer gets a failed write and a session drop instead of stalling the
// broadcast fan-out for everyone else.
const writeWait = 10 * time.Second

// Frame is the inbound command envelope: {"event": "...", "data": {...}}.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Session is one live transport connection. deviceID is the registry binding
// and is guarded by the hub mutex; the write mutex serializes concurrent
// emits onto the single websocket.
type Session struct {
	id       string
	conn     *websocket.Conn
	deviceID string

	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn) *Session {
	return &Session{
		id:   uuid.NewString(),
		conn: conn,
	}
}

func (s *Session) Emit(event string, payload any) error {
	frame, err := json.Marshal(outFrame{Event: event, Data: payload})
	if err != nil {
		return err
	}
	return s.sendRaw(frame)
}

func (s *Session) sendRaw(frame []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}

func (s *Session) close() {
	s.conn.Close()
}

// readLoop processes commands in arrival order for this session. Any read
// error ends the session and triggers disconnect cleanup.
func (s *Session) readLoop(h *Hub) {
	defer h.dropSession(s)

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		h.dispatch(s, raw)
	}
}
