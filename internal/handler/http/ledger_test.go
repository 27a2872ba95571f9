package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func TestOwnership(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().OwnershipOf(gomock.Any(), int64(2), int64(5)).
		Return(models.Ownership{AccountID: 2, AssetID: 5, Units: 1}, nil)

	resp, raw := f.do(t, http.MethodGet, "/api/accounts/2/assets/5", nil, false)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"account_id":2,"asset_id":5,"units":1}`, string(raw))
}

func TestPending(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().PendingWithdrawals(gomock.Any(), int64(1)).Return(models.OneUnit, nil)

	resp, raw := f.do(t, http.MethodGet, "/api/accounts/1/pending", nil, false)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body models.PendingPayout
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, models.PendingPayout{AccountID: 1, Amount: models.OneUnit}, body)
}

func TestWithdraw(t *testing.T) {
	t.Run("pays out the caller", func(t *testing.T) {
		f := newFixture(t)
		f.authorize()
		f.ledger.EXPECT().Withdraw(gomock.Any(), testAccount).
			Return(models.Withdrawal{TransferID: 1, AccountID: testAccount, Amount: models.OneUnit}, nil)

		resp, raw := f.do(t, http.MethodPost, "/api/payouts/withdraw", nil, true)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body models.Withdrawal
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, models.OneUnit, body.Amount)
	})

	t.Run("nothing owed", func(t *testing.T) {
		f := newFixture(t)
		f.authorize()
		f.ledger.EXPECT().Withdraw(gomock.Any(), testAccount).Return(models.Withdrawal{}, models.ErrNothingToWithdraw)

		resp, raw := f.do(t, http.MethodPost, "/api/payouts/withdraw", nil, true)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, models.CodeNothingToWithdraw, decodeErrorBody(t, raw).Code)
	})
}

func TestBalance(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().LedgerBalance(gomock.Any()).Return(models.LedgerBalance{}, fmt.Errorf("sum: %w", store.ErrTransient))

	resp, raw := f.do(t, http.MethodGet, "/api/ledger/balance", nil, false)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, models.CodeUnavailable, decodeErrorBody(t, raw).Code)
}

func TestEvents(t *testing.T) {
	t.Run("filter from query", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().
			Events(gomock.Any(), models.EventFilter{AfterID: 10, AccountID: 2, Limit: 5}).
			Return([]models.LedgerEvent{{ID: 11, Type: models.EventAccessGranted, AssetID: 1, AccountID: 2}}, nil)

		resp, raw := f.do(t, http.MethodGet, "/api/events?after=10&account=2&limit=5", nil, false)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body []models.LedgerEvent
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body, 1)
		assert.Equal(t, models.EventAccessGranted, body[0].Type)
	})

	t.Run("no events", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().Events(gomock.Any(), models.EventFilter{}).Return(nil, nil)

		_, raw := f.do(t, http.MethodGet, "/api/events", nil, false)

		assert.JSONEq(t, `[]`, string(raw))
	})

	t.Run("bad after", func(t *testing.T) {
		f := newFixture(t)

		resp, _ := f.do(t, http.MethodGet, "/api/events?after=x", nil, false)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
