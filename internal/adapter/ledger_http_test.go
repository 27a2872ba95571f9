package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func newTestLedgerAdapter(t *testing.T, serverURL string) *httpLedgerAdapter {
	t.Helper()
	a, err := NewHTTPLedgerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpLedgerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeCode(t *testing.T, w http.ResponseWriter, status int, code string) {
	writeJSON(t, w, status, models.ErrorResponse{Code: code, Message: code})
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://ledger.example/", want: "https://ledger.example"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Login)

		w.Header().Set("Authorization", "Bearer signed.jwt.token")
		writeJSON(t, w, http.StatusOK, models.AuthResponse{AccountID: 7, Login: "alice"})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Login: "alice", AuthHash: "ab"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.AccountID)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestRegister_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{AccountID: 1, Login: "alice"})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Login: "alice"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestRegister_LoginExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeCode(t, w, http.StatusConflict, models.CodeLoginExists)
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Login: "alice"})

	assert.ErrorIs(t, err, ErrLoginExists)
}

func TestPurchaseAccess_SendsTokenAndPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assets/3/purchase", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.PurchaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.OneUnit, req.Payment)

		writeJSON(t, w, http.StatusOK, models.PurchaseReceipt{AssetID: 3, AccountID: 2, Units: 1, Paid: req.Payment})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	a.SetToken("tok")

	receipt, err := a.PurchaseAccess(context.Background(), 3, models.OneUnit)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.Units)
	assert.Equal(t, models.OneUnit, receipt.Paid)
}

func TestLedgerErrors_MapToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		want   error
	}{
		{name: "unknown asset", status: http.StatusNotFound, code: models.CodeUnknownAsset, want: models.ErrUnknownAsset},
		{name: "insufficient", status: http.StatusPaymentRequired, code: models.CodeInsufficientPayment, want: models.ErrInsufficientPayment},
		{name: "excess", status: http.StatusBadRequest, code: models.CodeExcessPayment, want: models.ErrExcessPayment},
		{name: "unauthorized", status: http.StatusForbidden, code: models.CodeUnauthorized, want: models.ErrUnauthorized},
		{name: "nothing to withdraw", status: http.StatusConflict, code: models.CodeNothingToWithdraw, want: models.ErrNothingToWithdraw},
		{name: "unauthenticated", status: http.StatusUnauthorized, code: models.CodeUnauthenticated, want: ErrUnauthenticated},
		{name: "invalid request", status: http.StatusBadRequest, code: models.CodeInvalidRequest, want: ErrBadRequest},
		{name: "unavailable", status: http.StatusServiceUnavailable, code: models.CodeUnavailable, want: ErrLedgerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeCode(t, w, tt.status, tt.code)
			}))
			defer srv.Close()

			a := newTestLedgerAdapter(t, srv.URL)
			_, err := a.GetEncryptedKey(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	_, err := a.LedgerBalance(context.Background())

	require.ErrorIs(t, err, ErrLedgerUnavailable)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestGetEncryptedKey_ReturnsBytes(t *testing.T) {
	key := []byte("0xdeadbeef")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assets/5/key", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.EncryptedKeyResponse{AssetID: 5, EncryptedKey: key})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	got, err := a.GetEncryptedKey(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestListAssets_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assets", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "42", r.URL.Query().Get("before"))
		writeJSON(t, w, http.StatusOK, []models.AssetPublicInfo{{ID: 41}, {ID: 40}})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	got, err := a.ListAssets(context.Background(), models.AssetFilter{Limit: 10, BeforeID: 42})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(41), got[0].ID)
}

func TestPendingWithdrawals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/9/pending", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.PendingPayout{AccountID: 9, Amount: 3 * models.OneUnit})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.PendingWithdrawals(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, 3*models.OneUnit, got)
}

func TestEvents_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("after"))
		assert.Empty(t, r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []models.LedgerEvent{{ID: 6, Type: models.EventAccessGranted}})
	}))
	defer srv.Close()

	a := newTestLedgerAdapter(t, srv.URL)
	got, err := a.Events(context.Background(), models.EventFilter{AfterID: 5})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.EventAccessGranted, got[0].Type)
}

func TestLedgerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestLedgerAdapter(t, url)
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}
