package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/mock"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func newTestMarket(t *testing.T) (MarketService, *mock.MockLedgerAdapter, *mock.MockContentResolver, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedgerAdapter(ctrl)
	resolver := mock.NewMockContentResolver(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	return NewMarketService(ledger, resolver, sessions, logger.Nop()), ledger, resolver, sessions
}

func TestMarketService_Purchase_DefaultsToPrice(t *testing.T) {
	svc, ledger, _, _ := newTestMarket(t)
	ctx := context.Background()

	price := 3 * models.OneUnit / 2
	gomock.InOrder(
		ledger.EXPECT().GetAssetPublicInfo(ctx, testAssetID).Return(models.AssetPublicInfo{ID: testAssetID, Price: price}, nil),
		ledger.EXPECT().PurchaseAccess(ctx, testAssetID, price).Return(models.PurchaseReceipt{Units: 1, Paid: price}, nil),
	)

	receipt, err := svc.Purchase(ctx, testAssetID, nil)

	require.NoError(t, err)
	assert.Equal(t, price, receipt.Paid)
}

func TestMarketService_Purchase_ExplicitPayment(t *testing.T) {
	svc, ledger, _, _ := newTestMarket(t)
	ctx := context.Background()

	payment := models.Amount(1)
	ledger.EXPECT().PurchaseAccess(ctx, testAssetID, payment).Return(models.PurchaseReceipt{}, models.ErrInsufficientPayment)

	_, err := svc.Purchase(ctx, testAssetID, &payment)
	assert.ErrorIs(t, err, models.ErrInsufficientPayment)
}

func TestMarketService_Pending_UsesSession(t *testing.T) {
	svc, ledger, _, sessions := newTestMarket(t)
	ctx := context.Background()

	sessions.EXPECT().GetSession(ctx).Return(models.Session{AccountID: 4}, nil)
	ledger.EXPECT().PendingWithdrawals(ctx, int64(4)).Return(2*models.OneUnit, nil)

	got, err := svc.Pending(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, models.PendingPayout{AccountID: 4, Amount: 2 * models.OneUnit}, got)
}

func TestMarketService_Pending_NotLoggedIn(t *testing.T) {
	svc, _, _, sessions := newTestMarket(t)
	ctx := context.Background()

	sessions.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrNoSession)

	_, err := svc.Pending(ctx, 0)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestMarketService_Info(t *testing.T) {
	svc, ledger, resolver, sessions := newTestMarket(t)
	ctx := context.Background()

	metaJSON, err := json.Marshal(models.AssetMetadata{Name: "Song", Description: "demo"})
	require.NoError(t, err)
	metaID := contentID(t, metaJSON)

	ledger.EXPECT().GetAssetPublicInfo(ctx, testAssetID).Return(models.AssetPublicInfo{ID: testAssetID, MetadataPointer: metaID.URI()}, nil)
	resolver.EXPECT().ResolveParsed(ctx, metaID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ adapter.ContentID, target any) (adapter.ParsedContent, error) {
			return adapter.ParsedContent{Raw: metaJSON, JSON: true}, json.Unmarshal(metaJSON, target)
		},
	)
	sessions.EXPECT().GetSession(ctx).Return(models.Session{AccountID: 2}, nil)
	ledger.EXPECT().OwnershipOf(ctx, int64(2), testAssetID).Return(models.Ownership{AccountID: 2, AssetID: testAssetID, Units: 1}, nil)

	info, err := svc.Info(ctx, testAssetID)

	require.NoError(t, err)
	assert.Equal(t, "Song", info.Metadata.Name)
	assert.True(t, info.Owned.Authorized())
}

func TestMarketService_Info_MetadataUnavailable(t *testing.T) {
	svc, ledger, resolver, sessions := newTestMarket(t)
	ctx := context.Background()

	metaID := contentID(t, []byte("m"))
	ledger.EXPECT().GetAssetPublicInfo(ctx, testAssetID).Return(models.AssetPublicInfo{ID: testAssetID, MetadataPointer: metaID.URI()}, nil)
	resolver.EXPECT().ResolveParsed(ctx, metaID, gomock.Any()).Return(adapter.ParsedContent{}, adapter.ErrResolve)
	sessions.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrNoSession)

	info, err := svc.Info(ctx, testAssetID)

	require.NoError(t, err)
	assert.Empty(t, info.Metadata.Name)
	assert.Zero(t, info.Owned.Units)
}
