package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type httpLedgerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPLedgerAdapter constructs the HTTP implementation of
// [LedgerAdapter]. The address may omit the scheme ("localhost:8080").
func NewHTTPLedgerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (LedgerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpLedgerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpLedgerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpLedgerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs /api/auth/register and keeps the token from the
// Authorization response header.
func (h *httpLedgerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login POSTs /api/auth/login and keeps the token from the Authorization
// response header.
func (h *httpLedgerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpLedgerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).SetBody(body).SetResult(&auth).Post(path)
	if err := h.check(resp, err, path); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s: parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return auth, nil
}

// Params POSTs /api/auth/params.
func (h *httpLedgerAdapter) Params(ctx context.Context, req models.ParamsRequest) (models.ParamsResponse, error) {
	var params models.ParamsResponse
	resp, err := h.request(ctx).SetBody(req).SetResult(&params).Post("/api/auth/params")
	return params, h.check(resp, err, "params")
}

func (h *httpLedgerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse
	resp, err := h.request(ctx).SetResult(&version).Get("/api/version")
	return version.Version, h.check(resp, err, "version")
}

func (h *httpLedgerAdapter) CreateAsset(ctx context.Context, req models.CreateAssetRequest) (models.Asset, error) {
	var asset models.Asset
	resp, err := h.authedRequest(ctx).SetBody(req).SetResult(&asset).Post("/api/assets")
	return asset, h.check(resp, err, "create asset")
}

func (h *httpLedgerAdapter) PurchaseAccess(ctx context.Context, assetID int64, payment models.Amount) (models.PurchaseReceipt, error) {
	var receipt models.PurchaseReceipt
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(assetID, 10)).
		SetBody(models.PurchaseRequest{Payment: payment}).
		SetResult(&receipt).
		Post("/api/assets/{id}/purchase")
	return receipt, h.check(resp, err, "purchase")
}

func (h *httpLedgerAdapter) GetEncryptedKey(ctx context.Context, assetID int64) ([]byte, error) {
	var key models.EncryptedKeyResponse
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(assetID, 10)).
		SetResult(&key).
		Get("/api/assets/{id}/key")
	if err := h.check(resp, err, "get encrypted key"); err != nil {
		return nil, err
	}
	return key.EncryptedKey, nil
}

func (h *httpLedgerAdapter) GetAssetPublicInfo(ctx context.Context, assetID int64) (models.AssetPublicInfo, error) {
	var info models.AssetPublicInfo
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(assetID, 10)).
		SetResult(&info).
		Get("/api/assets/{id}")
	return info, h.check(resp, err, "get asset")
}

func (h *httpLedgerAdapter) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error) {
	var assets []models.AssetPublicInfo

	req := h.request(ctx).SetResult(&assets)
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.BeforeID > 0 {
		req.SetQueryParam("before", strconv.FormatInt(filter.BeforeID, 10))
	}

	resp, err := req.Get("/api/assets")
	return assets, h.check(resp, err, "list assets")
}

func (h *httpLedgerAdapter) AssetCount(ctx context.Context) (int64, error) {
	var count models.AssetCount
	resp, err := h.request(ctx).SetResult(&count).Get("/api/assets/count")
	return count.Count, h.check(resp, err, "asset count")
}

func (h *httpLedgerAdapter) OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error) {
	var ownership models.Ownership
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{
			"id":      strconv.FormatInt(accountID, 10),
			"assetID": strconv.FormatInt(assetID, 10),
		}).
		SetResult(&ownership).
		Get("/api/accounts/{id}/assets/{assetID}")
	return ownership, h.check(resp, err, "ownership")
}

func (h *httpLedgerAdapter) PendingWithdrawals(ctx context.Context, accountID int64) (models.Amount, error) {
	var payout models.PendingPayout
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(accountID, 10)).
		SetResult(&payout).
		Get("/api/accounts/{id}/pending")
	return payout.Amount, h.check(resp, err, "pending withdrawals")
}

func (h *httpLedgerAdapter) Withdraw(ctx context.Context) (models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	resp, err := h.authedRequest(ctx).SetResult(&withdrawal).Post("/api/payouts/withdraw")
	return withdrawal, h.check(resp, err, "withdraw")
}

func (h *httpLedgerAdapter) LedgerBalance(ctx context.Context) (models.LedgerBalance, error) {
	var balance models.LedgerBalance
	resp, err := h.request(ctx).SetResult(&balance).Get("/api/ledger/balance")
	return balance, h.check(resp, err, "ledger balance")
}

func (h *httpLedgerAdapter) Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error) {
	var events []models.LedgerEvent

	req := h.request(ctx).SetResult(&events)
	if filter.AfterID > 0 {
		req.SetQueryParam("after", strconv.FormatInt(filter.AfterID, 10))
	}
	if filter.AccountID > 0 {
		req.SetQueryParam("account", strconv.FormatInt(filter.AccountID, 10))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/api/events")
	return events, h.check(resp, err, "events")
}

func (h *httpLedgerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

func (h *httpLedgerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check folds a transport error and an error status into one error.
func (h *httpLedgerAdapter) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		logger.FromContext(requestContext(resp)).Err(err).Str("op", op).Msg("ledger request failed")
		return fmt.Errorf("%w: %s: %w", ErrLedgerUnavailable, op, err)
	}
	return mapHTTPError(resp)
}

func requestContext(resp *resty.Response) context.Context {
	if resp != nil && resp.Request != nil {
		return resp.Request.Context()
	}
	return context.Background()
}
