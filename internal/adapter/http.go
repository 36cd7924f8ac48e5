package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/config"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header, inspected for its subject claim and stored
// via SetToken. Returns an error if the request fails, the server returns a
// non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	bearer, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	token, err := utils.InspectJWTToken(bearer)
	if err != nil {
		return models.Token{}, fmt.Errorf("login inspect session token: %w", err)
	}

	h.SetToken(bearer)
	return token, nil
}

// CreateVerification implements [ServerAdapter]. It POSTs the allocation
// request to POST /api/verifications and decodes the created verification
// snapshot. Requires a valid bearer token. Returns [ErrPaymentRequired]
// (wrapped) on HTTP 402.
func (h *httpServerAdapter) CreateVerification(ctx context.Context, req models.CreateVerificationRequest) (models.Verification, error) {
	var created models.Verification

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/verifications")
	if err != nil {
		return models.Verification{}, fmt.Errorf("create verification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verification{}, err
	}

	return created, nil
}

// GetVerification implements [ServerAdapter]. It GETs
// GET /api/verifications/{id} and decodes the verification snapshot. Requires
// a valid bearer token. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpServerAdapter) GetVerification(ctx context.Context, verificationID string) (models.Verification, error) {
	var found models.Verification

	resp, err := h.authedRequest(ctx).
		SetResult(&found).
		Get("/api/verifications/" + url.PathEscape(verificationID))
	if err != nil {
		return models.Verification{}, fmt.Errorf("get verification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verification{}, err
	}

	return found, nil
}

// GetVerificationMessages implements [ServerAdapter]. It GETs
// GET /api/verifications/{id}/messages and returns the captured messages,
// oldest first. Requires a valid bearer token.
func (h *httpServerAdapter) GetVerificationMessages(ctx context.Context, verificationID string) ([]models.SMSMessage, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/verifications/" + url.PathEscape(verificationID) + "/messages")
	if err != nil {
		return nil, fmt.Errorf("get verification messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var mr models.MessagesResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return mr.Messages, nil
}

// CancelVerification implements [ServerAdapter]. It sends
// DELETE /api/verifications/{id}. Requires a valid bearer token. Returns
// [ErrConflict] (wrapped) on HTTP 409 when the verification already completed.
func (h *httpServerAdapter) CancelVerification(ctx context.Context, verificationID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/verifications/" + url.PathEscape(verificationID))
	if err != nil {
		return fmt.Errorf("cancel verification request: %w", err)
	}

	return mapHTTPError(resp)
}

// WalletBalance implements [ServerAdapter]. It GETs GET /api/wallet/balance
// and decodes the balance snapshot. Requires a valid bearer token.
func (h *httpServerAdapter) WalletBalance(ctx context.Context) (models.WalletBalance, error) {
	var balance models.WalletBalance

	resp, err := h.authedRequest(ctx).
		SetResult(&balance).
		Get("/api/wallet/balance")
	if err != nil {
		return models.WalletBalance{}, fmt.Errorf("wallet balance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletBalance{}, err
	}

	return balance, nil
}

// ListRentals implements [ServerAdapter]. It GETs GET /api/rentals and decodes
// the rental listing. Requires a valid bearer token.
func (h *httpServerAdapter) ListRentals(ctx context.Context) ([]models.Rental, error) {
	resp, err := h.authedRequest(ctx).Get("/api/rentals")
	if err != nil {
		return nil, fmt.Errorf("list rentals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rr models.RentalsResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return nil, fmt.Errorf("decode rentals response: %w", err)
	}

	return rr.Rentals, nil
}

// ExtendRental implements [ServerAdapter]. It POSTs the extension request to
// POST /api/rentals/{id}/extend and decodes the updated rental. Requires a
// valid bearer token. Returns [ErrPaymentRequired] (wrapped) on HTTP 402 and
// [ErrConflict] (wrapped) on HTTP 409.
func (h *httpServerAdapter) ExtendRental(ctx context.Context, rentalID string, req models.ExtendRentalRequest) (models.Rental, error) {
	var extended models.Rental

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&extended).
		Post("/api/rentals/" + url.PathEscape(rentalID) + "/extend")
	if err != nil {
		return models.Rental{}, fmt.Errorf("extend rental request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Rental{}, err
	}

	return extended, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
