// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// ── верификации ────────────────────────────────────────────────────────────

func TestCreateVerification(t *testing.T) {
	srv, _ := newTestServer(t)
	token := bearerToken(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/verifications", token,
		`{"service_name":"telegram","capability":"sms"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Verification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "telegram", created.ServiceName)
	assert.Equal(t, models.VerificationPending, created.Status)
}

func TestCreateVerification_NoServiceName(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/verifications", bearerToken(t), `{"capability":"sms"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetVerification(t *testing.T) {
	srv, backend := newTestServer(t)

	created := backend.CreateVerification(models.CreateVerificationRequest{ServiceName: "whatsapp"})

	resp := doRequest(t, srv, http.MethodGet, "/api/verifications/"+created.ID, bearerToken(t), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found models.Verification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "whatsapp", found.ServiceName)
}

func TestGetVerification_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/verifications/no-such-id", bearerToken(t), "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetVerificationMessages_EmptyList(t *testing.T) {
	srv, backend := newTestServer(t)

	created := backend.CreateVerification(models.CreateVerificationRequest{ServiceName: "telegram"})

	resp := doRequest(t, srv, http.MethodGet, "/api/verifications/"+created.ID+"/messages", bearerToken(t), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mr models.MessagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mr))
	assert.Zero(t, mr.Length)
	assert.Empty(t, mr.Messages)
}

func TestCancelVerification(t *testing.T) {
	srv, backend := newTestServer(t)
	token := bearerToken(t)

	created := backend.CreateVerification(models.CreateVerificationRequest{ServiceName: "telegram"})

	resp := doRequest(t, srv, http.MethodDelete, "/api/verifications/"+created.ID, token, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// повторная отмена — конфликт: верификация уже в терминальном статусе
	resp = doRequest(t, srv, http.MethodDelete, "/api/verifications/"+created.ID, token, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ── кошелёк и аренды ───────────────────────────────────────────────────────

// seededRental возвращает посевную аренду demo-пользователя.
func seededRental(t *testing.T, backend *devserver.Backend) models.Rental {
	t.Helper()

	userID, err := backend.Authenticate(devserver.DemoEmail, devserver.DemoPassword)
	require.NoError(t, err)

	rentals, err := backend.Rentals(userID)
	require.NoError(t, err)
	require.NotEmpty(t, rentals)

	return rentals[0]
}

func TestWalletBalance(t *testing.T) {
	srv, backend := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", demoToken(t, backend), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var balance models.WalletBalance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&balance))
	assert.Equal(t, "USD", balance.Currency)
	assert.NotEmpty(t, balance.Amount)
}

func TestWalletBalance_ForeignUser(t *testing.T) {
	srv, _ := newTestServer(t)

	// токен подписан верно, но называет пользователя, которого бэкенд не знает
	resp := doRequest(t, srv, http.MethodGet, "/api/wallet/balance", bearerToken(t), "")

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListRentals(t *testing.T) {
	srv, backend := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/rentals", demoToken(t, backend), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rr models.RentalsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rr))
	require.Equal(t, rr.Length, len(rr.Rentals))
	require.NotEmpty(t, rr.Rentals)
}

func TestExtendRental(t *testing.T) {
	srv, backend := newTestServer(t)

	seeded := seededRental(t, backend)

	resp := doRequest(t, srv, http.MethodPost, "/api/rentals/"+seeded.ID+"/extend", demoToken(t, backend), `{"hours":6}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var extended models.Rental
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&extended))
	assert.Equal(t, seeded.ID, extended.ID)
	assert.True(t, extended.ExpiresAt.After(seeded.ExpiresAt))
}

func TestExtendRental_InvalidHours(t *testing.T) {
	srv, backend := newTestServer(t)

	seeded := seededRental(t, backend)

	resp := doRequest(t, srv, http.MethodPost, "/api/rentals/"+seeded.ID+"/extend", demoToken(t, backend), `{"hours":0}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtendRental_NotFound(t *testing.T) {
	srv, backend := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/rentals/no-such-rental/extend", demoToken(t, backend), `{"hours":6}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── маршрутизация ──────────────────────────────────────────────────────────

func TestRoutes_UnsupportedMethodHidden(t *testing.T) {
	srv, _ := newTestServer(t)

	// PUT не зарегистрирован для /api/verifications: вместо 405 отдаём 404
	resp := doRequest(t, srv, http.MethodPut, "/api/verifications", bearerToken(t), "{}")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
