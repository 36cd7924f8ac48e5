package realtime

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// DefaultEndpointPath is where the server exposes the realtime channel.
const DefaultEndpointPath = "/api/ws"

// DeriveEndpoint maps the REST base URL onto the realtime endpoint: ws:// for
// http:// bases and wss:// for https:// ones, preserving the host. A base
// without a scheme defaults to http. Returns an error for an unparseable or
// hostless address.
func DeriveEndpoint(baseURL string) (string, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		return "", fmt.Errorf("empty base url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url must include a host")
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = DefaultEndpointPath
	u.RawQuery = ""
	return u.String(), nil
}

// WebsocketDialer is the production [Dialer] backed by gorilla/websocket.
type WebsocketDialer struct {
	endpoint string
}

// NewWebsocketDialer derives the realtime endpoint from the REST base URL and
// returns a dialer for it.
func NewWebsocketDialer(baseURL string) (*WebsocketDialer, error) {
	endpoint, err := DeriveEndpoint(baseURL)
	if err != nil {
		return nil, fmt.Errorf("derive realtime endpoint: %w", err)
	}
	return &WebsocketDialer{endpoint: endpoint}, nil
}

// Endpoint returns the resolved ws:// or wss:// URL.
func (d *WebsocketDialer) Endpoint() string {
	return d.endpoint
}

// Dial implements [Dialer]. The dial (including the websocket upgrade) is
// bounded by ctx.
func (d *WebsocketDialer) Dial(ctx context.Context) (Transport, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, d.endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", d.endpoint, err)
	}
	return newWSTransport(conn), nil
}

// wsTransport adapts a gorilla connection to [Transport]. Gorilla allows at
// most one concurrent writer, so writes are serialized with a mutex.
type wsTransport struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

func newWSTransport(conn *websocket.Conn) *wsTransport {
	return &wsTransport{conn: conn}
}

func (t *wsTransport) WriteMessage(msg models.OutboundMessage) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if err := t.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s frame: %w", msg.Type, err)
	}
	return nil
}

func (t *wsTransport) ReadMessage() ([]byte, error) {
	_, raw, err := t.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return raw, nil
}

func (t *wsTransport) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}
