package websocket

import (
	"context"
	"encoding/json"
	"time"

	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/pkg/logger"
	"nec-chat-be/pkg/chat"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Session binds one websocket connection to one chat manager. Inbound
// frames are send/cancel commands; every manager state change goes back
// out as a state frame.
type Session struct {
	conn     *websocket.Conn
	manager  *chat.Manager
	username string
	logger   logger.ILogger

	send chan []byte
	done chan struct{}
}

func NewSession(conn *websocket.Conn, username string, log logger.ILogger) *Session {
	return &Session{
		conn:     conn,
		username: username,
		logger:   log,
		send:     make(chan []byte, 256),
		done:     make(chan struct{}),
	}
}

// Bind attaches the manager after construction; the manager's OnChange
// must already point at PushState, so the two reference each other.
func (s *Session) Bind(m *chat.Manager) {
	s.manager = m
}

// PushState queues a state frame for delivery. It never blocks: when the
// buffer is full the oldest frame is dropped, a newer snapshot always
// supersedes it.
func (s *Session) PushState(snapshot chat.Snapshot) {
	frame := dto.ChatStateFrame{Type: "state", Data: snapshot}
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	for {
		select {
		case s.send <- data:
			return
		default:
			select {
			case <-s.send:
			default:
			}
		}
	}
}

// Run drives the session until the peer disconnects. The write pump runs
// in its own goroutine; reads stay on the caller's goroutine, matching
// how fiber's websocket handler hands over the connection.
func (s *Session) Run(ctx context.Context) {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.writePump()
	s.readPump(sessionCtx)

	close(s.done)
	s.manager.Cancel()
}

func (s *Session) readPump(ctx context.Context) {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// First frame: the restored transcript, so the client renders history
	// before sending anything.
	s.PushState(s.manager.Snapshot())

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.logWarn("unexpected websocket close", err)
			}
			return
		}

		var cmd dto.ChatCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			s.logWarn("unreadable chat command", err)
			continue
		}

		switch cmd.Type {
		case "send":
			// Send blocks for the whole reveal cycle; run it off the read
			// loop so a cancel command can still come through.
			go func(prompt string) {
				if err := s.manager.Send(ctx, prompt); err != nil && err != chat.ErrBusy {
					s.logWarn("chat send failed", err)
				}
			}(cmd.Prompt)
		case "cancel":
			s.manager.Cancel()
		default:
			s.logWarn("unknown chat command type: "+cmd.Type, nil)
		}
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (s *Session) logWarn(msg string, err error) {
	if s.logger == nil {
		return
	}
	details := map[string]interface{}{"username": s.username}
	if err != nil {
		details["error"] = err.Error()
	}
	s.logger.Warn("ChatSession", msg, details)
}
