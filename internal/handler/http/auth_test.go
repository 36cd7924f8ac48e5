// SPDX-License-Identifier: Apache-2.0

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/app"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/config"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
)

// ── общая обвязка ──────────────────────────────────────────────────────────

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		HTTPAddress:    "localhost:0",
		TokenSignKey:   "test-sign-key",
		TokenIssuer:    "namaskah-devserver",
		TokenDuration:  time.Hour,
		RequestTimeout: 5 * time.Second,
	}
}

// newTestHandler собирает полный devserver-стек на in-memory бэкенде.
func newTestHandler(t *testing.T) (*Handler, *devserver.Backend) {
	t.Helper()

	hub := devserver.NewHub(logger.Nop())
	backend := devserver.NewBackend(hub, logger.Nop())
	t.Cleanup(backend.Close)

	return NewHandler(backend, hub, testServerConfig(), logger.Nop()), backend
}

func newTestServer(t *testing.T) (*httptest.Server, *devserver.Backend) {
	t.Helper()

	h, backend := newTestHandler(t)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, backend
}

// bearerToken issues a token signed the way the devserver signs them.
func bearerToken(t *testing.T) string {
	t.Helper()

	cfg := testServerConfig()
	token, err := utils.GenerateJWTToken(cfg.TokenIssuer, "user-1", cfg.TokenDuration, cfg.TokenSignKey)
	require.NoError(t, err)

	return token.SignedString
}

// demoToken выпускает токен для посевного demo-пользователя бэкенда.
func demoToken(t *testing.T, backend *devserver.Backend) string {
	t.Helper()

	userID, err := backend.Authenticate(devserver.DemoEmail, devserver.DemoPassword)
	require.NoError(t, err)

	cfg := testServerConfig()
	token, err := utils.GenerateJWTToken(cfg.TokenIssuer, userID, cfg.TokenDuration, cfg.TokenSignKey)
	require.NoError(t, err)

	return token.SignedString
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// ── вход ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"email":"`+devserver.DemoEmail+`","password":"`+devserver.DemoPassword+`"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	bearer, err := utils.ParseBearerToken(resp.Header.Get("Authorization"))
	require.NoError(t, err)

	cfg := testServerConfig()
	token, err := utils.ValidateAndParseJWTToken(bearer, cfg.TokenSignKey, cfg.TokenIssuer)
	require.NoError(t, err)
	assert.NotEmpty(t, token.UserID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"email":"`+devserver.DemoEmail+`","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Authorization"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, app.MsgInvalidLoginPassword, strings.TrimSpace(string(body)))
}

func TestLogin_InvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/auth/login", "", `{not json`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_EmptyFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── middleware авторизации ─────────────────────────────────────────────────

func TestAuth_MissingHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", "", "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_MalformedToken(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", "not-a-jwt", "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_ExpiredToken(t *testing.T) {
	srv, _ := newTestServer(t)

	cfg := testServerConfig()
	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, "user-1", time.Nanosecond, cfg.TokenSignKey)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", expired.SignedString, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_WrongIssuer(t *testing.T) {
	srv, _ := newTestServer(t)

	cfg := testServerConfig()
	foreign, err := utils.GenerateJWTToken("someone-else", "user-1", cfg.TokenDuration, cfg.TokenSignKey)
	require.NoError(t, err)

	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", foreign.SignedString, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_ValidTokenPasses(t *testing.T) {
	srv, backend := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", demoToken(t, backend), "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "валидный bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "без токена", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "пустой токен", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
