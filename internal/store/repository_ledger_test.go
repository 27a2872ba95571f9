package store

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock handle as a PostgreSQL DB.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestLedgerRepo(t *testing.T) (LedgerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewLedgerRepository(newDBFromSQL(db), logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var testAsset = models.Asset{
	ID:              1,
	Price:           models.OneUnit,
	MetadataPointer: "ipfs://bafymeta",
	Creator:         10,
	EncryptedKey:    []byte("0x00"),
}

func TestCreateAsset(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO assets`).
			WithArgs(testAsset.Price, testAsset.MetadataPointer, testAsset.Creator, testAsset.EncryptedKey).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
		mock.ExpectExec(`INSERT INTO ledger_events`).
			WithArgs(string(models.EventAssetCreated), int64(1), testAsset.Creator, testAsset.Price).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		asset := testAsset
		asset.ID = 0
		created, err := repo.CreateAsset(testContext(), asset)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("event insert fails rolls back", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
		mock.ExpectExec(`INSERT INTO ledger_events`).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		_, err := repo.CreateAsset(testContext(), testAsset)
		require.ErrorIs(t, err, ErrExecutingQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAsset(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectQuery(`SELECT id, price, metadata_pointer, creator, encrypted_key, created_at FROM assets WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(assetColumns).
				AddRow(int64(1), int64(testAsset.Price), testAsset.MetadataPointer, testAsset.Creator, testAsset.EncryptedKey, now))

		asset, err := repo.GetAsset(testContext(), 1)
		require.NoError(t, err)
		assert.Equal(t, testAsset.Price, asset.Price)
		assert.Equal(t, testAsset.EncryptedKey, asset.EncryptedKey)
		assert.Equal(t, now, asset.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectQuery(`FROM assets`).WillReturnRows(sqlmock.NewRows(assetColumns))

		_, err := repo.GetAsset(testContext(), 99)
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})

	t.Run("serialization failure is transient", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectQuery(`FROM assets`).WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

		_, err := repo.GetAsset(testContext(), 1)
		assert.ErrorIs(t, err, ErrTransient)
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestListAssets(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM assets WHERE id < \$1 ORDER BY id DESC LIMIT 2`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(assetColumns).
			AddRow(int64(4), int64(1), "ipfs://a", int64(1), []byte("k"), now).
			AddRow(int64(3), int64(2), "ipfs://b", int64(1), []byte("k"), now))

	assets, err := repo.ListAssets(testContext(), models.AssetFilter{BeforeID: 5, Limit: 2})
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, int64(4), assets[0].ID)
	assert.Equal(t, int64(3), assets[1].ID)
}

// expectCreditCheck expects the locked reads of the creator's pending payout
// and the ledger balance that open every purchase.
func expectCreditCheck(mock sqlmock.Sqlmock, creator int64, pending, balance int64) {
	mock.ExpectQuery(`SELECT amount FROM pending_payouts WHERE account_id = \$1 FOR UPDATE`).
		WithArgs(creator).
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(pending))
	mock.ExpectQuery(`SELECT balance FROM ledger_state WHERE id = \$1 FOR UPDATE`).
		WithArgs(ledgerStateID).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(balance))
}

func TestRecordPurchase(t *testing.T) {
	const buyer = int64(20)

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		expectCreditCheck(mock, testAsset.Creator, 0, 0)
		mock.ExpectQuery(`INSERT INTO ownerships`).
			WithArgs(buyer, testAsset.ID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"units"}).AddRow(int64(1)))
		mock.ExpectExec(`INSERT INTO pending_payouts`).
			WithArgs(testAsset.Creator, testAsset.Price).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE ledger_state SET balance = balance \+ \$1 WHERE id = \$2`).
			WithArgs(int64(testAsset.Price), ledgerStateID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO ledger_events`).
			WithArgs(string(models.EventAccessGranted), testAsset.ID, buyer, testAsset.Price).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		receipt, err := repo.RecordPurchase(testContext(), testAsset, buyer)
		require.NoError(t, err)
		assert.Equal(t, models.PurchaseReceipt{
			AssetID:   testAsset.ID,
			AccountID: buyer,
			Units:     1,
			Paid:      testAsset.Price,
			Creator:   testAsset.Creator,
		}, receipt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first credit to creator", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM pending_payouts`).WillReturnRows(sqlmock.NewRows([]string{"amount"}))
		mock.ExpectQuery(`FROM ledger_state`).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(7)))
		mock.ExpectQuery(`INSERT INTO ownerships`).
			WillReturnRows(sqlmock.NewRows([]string{"units"}).AddRow(int64(1)))
		mock.ExpectExec(`INSERT INTO pending_payouts`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE ledger_state`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO ledger_events`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		_, err := repo.RecordPurchase(testContext(), testAsset, buyer)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pending payout would overflow", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		expectCreditCheck(mock, testAsset.Creator, math.MaxInt64-int64(testAsset.Price)+1, 0)
		mock.ExpectRollback()

		_, err := repo.RecordPurchase(testContext(), testAsset, buyer)
		require.ErrorIs(t, err, models.ErrAmountOverflow)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ledger balance would overflow", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		expectCreditCheck(mock, testAsset.Creator, 0, math.MaxInt64)
		mock.ExpectRollback()

		_, err := repo.RecordPurchase(testContext(), testAsset, buyer)
		require.ErrorIs(t, err, models.ErrAmountOverflow)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("payout credit fails", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		expectCreditCheck(mock, testAsset.Creator, 0, 0)
		mock.ExpectQuery(`INSERT INTO ownerships`).
			WillReturnRows(sqlmock.NewRows([]string{"units"}).AddRow(int64(1)))
		mock.ExpectExec(`INSERT INTO pending_payouts`).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.RecordPurchase(testContext(), testAsset, buyer)
		require.ErrorIs(t, err, ErrExecutingQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("conn closed"))

		_, err := repo.RecordPurchase(testContext(), testAsset, buyer)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})
}

func TestOwnershipOf(t *testing.T) {
	t.Run("never bought", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectQuery(`SELECT units FROM ownerships`).
			WithArgs(int64(2), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"units"}))

		ownership, err := repo.OwnershipOf(testContext(), 2, 1)
		require.NoError(t, err)
		assert.False(t, ownership.Authorized())
		assert.Equal(t, uint64(0), ownership.Units)
	})

	t.Run("owner", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectQuery(`SELECT units FROM ownerships`).
			WillReturnRows(sqlmock.NewRows([]string{"units"}).AddRow(int64(3)))

		ownership, err := repo.OwnershipOf(testContext(), 2, 1)
		require.NoError(t, err)
		assert.True(t, ownership.Authorized())
		assert.Equal(t, uint64(3), ownership.Units)
	})
}

func TestPendingPayout_NoRowIsZero(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	mock.ExpectQuery(`SELECT amount FROM pending_payouts WHERE account_id = \$1$`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"amount"}))

	payout, err := repo.PendingPayout(testContext(), 10)
	require.NoError(t, err)
	assert.Equal(t, models.PendingPayout{AccountID: 10}, payout)
}

func TestWithdraw(t *testing.T) {
	const account = int64(10)
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("success zeroes before transfer", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT amount FROM pending_payouts WHERE account_id = \$1 FOR UPDATE`).
			WithArgs(account).
			WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(int64(30)))
		mock.ExpectExec(`UPDATE pending_payouts SET amount = \$1 WHERE account_id = \$2`).
			WithArgs(0, account).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO transfers`).
			WithArgs(account, models.Amount(30)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
		mock.ExpectExec(`UPDATE ledger_state`).
			WithArgs(int64(-30), ledgerStateID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO ledger_events`).
			WithArgs(string(models.EventFundsWithdrawn), int64(0), account, models.Amount(30)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		withdrawal, err := repo.Withdraw(testContext(), account)
		require.NoError(t, err)
		assert.Equal(t, models.Withdrawal{TransferID: 5, AccountID: account, Amount: 30, CreatedAt: now}, withdrawal)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero pending", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM pending_payouts`).
			WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(int64(0)))
		mock.ExpectRollback()

		_, err := repo.Withdraw(testContext(), account)
		require.ErrorIs(t, err, ErrNoPendingPayout)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("never credited", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM pending_payouts`).WillReturnRows(sqlmock.NewRows([]string{"amount"}))
		mock.ExpectRollback()

		_, err := repo.Withdraw(testContext(), account)
		require.ErrorIs(t, err, ErrNoPendingPayout)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit fails", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM pending_payouts`).
			WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(int64(30)))
		mock.ExpectExec(`UPDATE pending_payouts`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO transfers`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
		mock.ExpectExec(`UPDATE ledger_state`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO ledger_events`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

		_, err := repo.Withdraw(testContext(), account)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
		assert.ErrorIs(t, err, ErrTransient)
	})
}

func TestBalanceAndEvents(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(`SELECT balance FROM ledger_state`).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(42)))

	balance, err := repo.Balance(testContext())
	require.NoError(t, err)
	assert.Equal(t, models.Amount(42), balance.Amount)

	mock.ExpectQuery(`FROM ledger_events WHERE id > \$1 ORDER BY id ASC LIMIT 10`).
		WithArgs(int64(0)).
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow(int64(1), "asset_created", int64(1), int64(10), int64(42), now).
			AddRow(int64(2), "access_granted", int64(1), int64(20), int64(42), now))

	events, err := repo.Events(testContext(), models.EventFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventAssetCreated, events[0].Type)
	assert.Equal(t, models.EventAccessGranted, events[1].Type)
	assert.Equal(t, int64(20), events[1].AccountID)
}
