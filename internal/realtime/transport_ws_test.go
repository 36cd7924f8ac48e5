package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// ── endpoint derivation ──────────────────────────────────────────────────────

func TestDeriveEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{
			name:    "http becomes ws",
			baseURL: "http://localhost:8080",
			want:    "ws://localhost:8080/api/ws",
		},
		{
			name:    "https becomes wss",
			baseURL: "https://api.namaskah.app",
			want:    "wss://api.namaskah.app/api/ws",
		},
		{
			name:    "scheme-less host defaults to ws",
			baseURL: "localhost:8080",
			want:    "ws://localhost:8080/api/ws",
		},
		{
			name:    "path and query are replaced",
			baseURL: "https://api.namaskah.app/v2?debug=1",
			want:    "wss://api.namaskah.app/api/ws",
		},
		{
			name:    "ws scheme passes through",
			baseURL: "ws://localhost:8080",
			want:    "ws://localhost:8080/api/ws",
		},
		{
			name:    "empty base",
			baseURL: "",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			baseURL: "ftp://example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveEndpoint(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── loopback server ──────────────────────────────────────────────────────────

// wsTestServer — минимальный сервер протокола: принимает auth-фрейм,
// отвечает auth_success и шлёт entity_update на каждую подписку.
type wsTestServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	received []models.OutboundMessage
}

func newWSTestServer(t *testing.T) *wsTestServer {
	t.Helper()
	s := &wsTestServer{}
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc(DefaultEndpointPath, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var msg models.OutboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			s.mu.Lock()
			s.received = append(s.received, msg)
			s.mu.Unlock()

			switch msg.Type {
			case models.MsgAuth:
				reply := models.InboundMessage{Type: models.MsgAuthSuccess}
				if msg.Token != "valid-token" {
					reply = models.InboundMessage{Type: models.MsgAuthError, Reason: "token expired"}
				}
				if err := conn.WriteJSON(reply); err != nil {
					return
				}
			case models.MsgSubscribe:
				update := models.InboundMessage{
					Type:     models.MsgVerificationUpdate,
					EntityID: msg.EntityID,
					Status:   string(models.VerificationActive),
				}
				if err := conn.WriteJSON(update); err != nil {
					return
				}
			case models.MsgPing:
				if err := conn.WriteJSON(models.InboundMessage{Type: models.MsgPong}); err != nil {
					return
				}
			}
		}
	})

	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

func (s *wsTestServer) frames() []models.OutboundMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.OutboundMessage, len(s.received))
	copy(out, s.received)
	return out
}

func TestWebsocketDialer_Dial(t *testing.T) {
	srv := newWSTestServer(t)

	dialer, err := NewWebsocketDialer(srv.srv.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dialer.Endpoint(), "ws://"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	tr, err := dialer.Dial(ctx)
	require.NoError(t, err)
	defer tr.Close()

	require.NoError(t, tr.WriteMessage(models.OutboundMessage{Type: models.MsgAuth, Token: "valid-token"}))

	raw, err := tr.ReadMessage()
	require.NoError(t, err)
	var msg models.InboundMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, models.MsgAuthSuccess, msg.Type)
}

func TestWebsocketDialer_Dial_Refused(t *testing.T) {
	dialer, err := NewWebsocketDialer("http://127.0.0.1:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = dialer.Dial(ctx)
	assert.Error(t, err)
}

// TestSyncClient_OverRealWebsocket: полный цикл клиента через настоящее
// websocket-соединение — handshake, подписка, доставка обновления.
func TestSyncClient_OverRealWebsocket(t *testing.T) {
	srv := newWSTestServer(t)

	dialer, err := NewWebsocketDialer(srv.srv.URL)
	require.NoError(t, err)

	c := NewSyncClient(
		dialer,
		staticCreds{token: "valid-token"},
		Config{
			HeartbeatInterval:    50 * time.Millisecond,
			ReconnectBaseDelay:   20 * time.Millisecond,
			MaxReconnectAttempts: 3,
			QueueCap:             16,
		},
		Hooks{},
		logger.Nop(),
	)
	t.Cleanup(c.Stop)

	var mu sync.Mutex
	var updates []models.InboundMessage

	c.Start()
	c.Subscribe("ver-42", func(msg models.InboundMessage) {
		mu.Lock()
		updates = append(updates, msg)
		mu.Unlock()
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(updates) == 1
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	got := updates[0]
	mu.Unlock()
	assert.Equal(t, models.MsgVerificationUpdate, got.Type)
	assert.Equal(t, "ver-42", got.EntityID)
	assert.Equal(t, string(models.VerificationActive), got.Status)

	// heartbeat pings flow over the live connection
	require.Eventually(t, func() bool {
		for _, f := range srv.frames() {
			if f.Type == models.MsgPing {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSyncClient_OverRealWebsocket_AuthRejected(t *testing.T) {
	srv := newWSTestServer(t)

	dialer, err := NewWebsocketDialer(srv.srv.URL)
	require.NoError(t, err)

	var mu sync.Mutex
	var reasons []string
	c := NewSyncClient(
		dialer,
		staticCreds{token: "stale-token"},
		Config{ReconnectBaseDelay: 20 * time.Millisecond, MaxReconnectAttempts: 3},
		Hooks{OnAuthFailure: func(reason string) {
			mu.Lock()
			reasons = append(reasons, reason)
			mu.Unlock()
		}},
		logger.Nop(),
	)
	t.Cleanup(c.Stop)

	c.Start()
	waitState(t, c, StateFailed)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"token expired"}, reasons)
}
