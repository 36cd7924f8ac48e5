package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/app"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// authDeadline bounds how long a fresh connection may take to present its
// auth frame before the server drops it.
const authDeadline = 10 * time.Second

// wsWriter serialises concurrent frame writes to one WebSocket connection.
// The hub pushes from timer goroutines while the read loop answers pings, so
// writes must be locked.
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) WriteFrame(msg models.InboundMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(msg)
}

// realtime serves the /api/ws endpoint.
//
// The channel authenticates in-band: the first client frame must be an "auth"
// frame carrying a bearer token. A valid token gets "auth_success" and the
// connection joins the push hub; anything else gets "auth_error" with a
// reason and the connection is closed. After the handshake the loop accepts
// subscribe/unsubscribe frames to manage the entity set and answers "ping"
// with "pong". Unknown frame types are ignored.
func (h *Handler) realtime(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту кодом ошибки
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	writer := &wsWriter{conn: conn}

	session, ok := h.handshake(conn, writer, log)
	if !ok {
		return
	}
	defer session.Close()

	h.readLoop(conn, writer, session, log)
}

// handshake reads and validates the auth frame. On success the connection is
// attached to the hub and true is returned.
func (h *Handler) handshake(conn *websocket.Conn, writer *wsWriter, log *logger.Logger) (*devserver.Session, bool) {
	if err := conn.SetReadDeadline(time.Now().Add(authDeadline)); err != nil {
		log.Err(err).Msg("set handshake deadline failed")
		return nil, false
	}

	var first models.OutboundMessage
	if err := conn.ReadJSON(&first); err != nil {
		log.Err(err).Msg("no auth frame received")
		return nil, false
	}

	if first.Type != models.MsgAuth {
		_ = writer.WriteFrame(models.InboundMessage{Type: models.MsgAuthError, Reason: "auth frame expected"})
		return nil, false
	}

	token, err := utils.ValidateAndParseJWTToken(first.Token, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
	if err != nil {
		log.Err(err).Msg("realtime auth rejected")
		_ = writer.WriteFrame(models.InboundMessage{Type: models.MsgAuthError, Reason: app.MsgTokenIsExpiredOrInvalid})
		return nil, false
	}

	// дальше соединение живёт без дедлайна, закрытие придёт от клиента
	if err = conn.SetReadDeadline(time.Time{}); err != nil {
		log.Err(err).Msg("clear read deadline failed")
		return nil, false
	}

	if err = writer.WriteFrame(models.InboundMessage{Type: models.MsgAuthSuccess}); err != nil {
		log.Err(err).Msg("auth_success write failed")
		return nil, false
	}

	log.Info().Str("user_id", token.UserID).Msg("realtime session authenticated")
	return h.hub.Attach(writer), true
}

func (h *Handler) readLoop(conn *websocket.Conn, writer *wsWriter, session *devserver.Session, log *logger.Logger) {
	for {
		var frame models.OutboundMessage
		if err := conn.ReadJSON(&frame); err != nil {
			log.Debug().Err(err).Msg("realtime session closed")
			return
		}

		switch frame.Type {
		case models.MsgSubscribe:
			session.Subscribe(frame.EntityID)
		case models.MsgUnsubscribe:
			session.Unsubscribe(frame.EntityID)
		case models.MsgPing:
			if err := writer.WriteFrame(models.InboundMessage{Type: models.MsgPong}); err != nil {
				log.Err(err).Msg("pong write failed")
				return
			}
		default:
			log.Debug().Str("type", string(frame.Type)).Msg("unknown frame type ignored")
		}
	}
}
