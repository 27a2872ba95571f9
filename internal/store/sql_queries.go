package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

var (
	accountColumns = []string{"account_id", "login", "name", "auth_hash", "encryption_salt", "created_at"}
	assetColumns   = []string{"id", "price", "metadata_pointer", "creator", "encrypted_key", "created_at"}
	eventColumns   = []string{"id", "type", "asset_id", "account_id", "amount", "created_at"}
)

const ledgerStateID = 1

func (db *DB) buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return db.builder().
		Insert(models.Account{}.TableName()).
		Columns("login", "name", "auth_hash", "encryption_salt").
		Values(account.Login, account.Name, account.AuthHash, account.EncryptionSalt).
		Suffix("RETURNING account_id, created_at").
		ToSql()
}

func (db *DB) buildFindAccountByLoginQuery(login string) (string, []any, error) {
	return db.builder().
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func (db *DB) buildInsertAssetQuery(asset models.Asset) (string, []any, error) {
	return db.builder().
		Insert(models.Asset{}.TableName()).
		Columns("price", "metadata_pointer", "creator", "encrypted_key").
		Values(asset.Price, asset.MetadataPointer, asset.Creator, asset.EncryptedKey).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func (db *DB) buildGetAssetQuery(assetID int64) (string, []any, error) {
	return db.builder().
		Select(assetColumns...).
		From(models.Asset{}.TableName()).
		Where(sq.Eq{"id": assetID}).
		ToSql()
}

// buildListAssetsQuery returns the newest assets first. BeforeID pages
// backwards through the catalog.
func (db *DB) buildListAssetsQuery(filter models.AssetFilter) (string, []any, error) {
	q := db.builder().
		Select(assetColumns...).
		From(models.Asset{}.TableName()).
		OrderBy("id DESC").
		Limit(filter.Limit)
	if filter.BeforeID > 0 {
		q = q.Where(sq.Lt{"id": filter.BeforeID})
	}
	return q.ToSql()
}

func (db *DB) buildCountAssetsQuery() (string, []any, error) {
	return db.builder().
		Select("COUNT(*)").
		From(models.Asset{}.TableName()).
		ToSql()
}

func (db *DB) buildIncrementOwnershipQuery(accountID, assetID int64) (string, []any, error) {
	table := models.Ownership{}.TableName()
	return db.builder().
		Insert(table).
		Columns("account_id", "asset_id", "units").
		Values(accountID, assetID, 1).
		Suffix(fmt.Sprintf("ON CONFLICT (account_id, asset_id) DO UPDATE SET units = %s.units + 1 RETURNING units", table)).
		ToSql()
}

func (db *DB) buildGetOwnershipQuery(accountID, assetID int64) (string, []any, error) {
	return db.builder().
		Select("units").
		From(models.Ownership{}.TableName()).
		Where(sq.Eq{"account_id": accountID, "asset_id": assetID}).
		ToSql()
}

func (db *DB) buildCreditPayoutQuery(accountID int64, amount models.Amount) (string, []any, error) {
	table := models.PendingPayout{}.TableName()
	return db.builder().
		Insert(table).
		Columns("account_id", "amount").
		Values(accountID, amount).
		Suffix(fmt.Sprintf("ON CONFLICT (account_id) DO UPDATE SET amount = %s.amount + excluded.amount", table)).
		ToSql()
}

func (db *DB) buildGetPayoutQuery(accountID int64, lock bool) (string, []any, error) {
	q := db.builder().
		Select("amount").
		From(models.PendingPayout{}.TableName()).
		Where(sq.Eq{"account_id": accountID})
	if lock {
		q = db.lockRows(q)
	}
	return q.ToSql()
}

func (db *DB) buildZeroPayoutQuery(accountID int64) (string, []any, error) {
	return db.builder().
		Update(models.PendingPayout{}.TableName()).
		Set("amount", 0).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func (db *DB) buildInsertTransferQuery(accountID int64, amount models.Amount) (string, []any, error) {
	return db.builder().
		Insert(models.Withdrawal{}.TableName()).
		Columns("account_id", "amount").
		Values(accountID, amount).
		Suffix("RETURNING id, created_at").
		ToSql()
}

// buildAdjustBalanceQuery adds delta to the ledger balance; a negative delta
// withdraws. The CHECK constraint keeps the balance non-negative.
func (db *DB) buildAdjustBalanceQuery(delta int64) (string, []any, error) {
	return db.builder().
		Update("ledger_state").
		Set("balance", sq.Expr("balance + ?", delta)).
		Where(sq.Eq{"id": ledgerStateID}).
		ToSql()
}

func (db *DB) buildGetBalanceQuery(lock bool) (string, []any, error) {
	q := db.builder().
		Select("balance").
		From("ledger_state").
		Where(sq.Eq{"id": ledgerStateID})
	if lock {
		q = db.lockRows(q)
	}
	return q.ToSql()
}

func (db *DB) buildInsertEventQuery(event models.LedgerEvent) (string, []any, error) {
	return db.builder().
		Insert(models.LedgerEvent{}.TableName()).
		Columns("type", "asset_id", "account_id", "amount").
		Values(string(event.Type), event.AssetID, event.AccountID, event.Amount).
		ToSql()
}

func (db *DB) buildListEventsQuery(filter models.EventFilter) (string, []any, error) {
	q := db.builder().
		Select(eventColumns...).
		From(models.LedgerEvent{}.TableName()).
		Where(sq.Gt{"id": filter.AfterID}).
		OrderBy("id ASC").
		Limit(filter.Limit)
	if filter.AccountID > 0 {
		q = q.Where(sq.Eq{"account_id": filter.AccountID})
	}
	return q.ToSql()
}

func (db *DB) buildSaveSessionQuery(session models.Session) (string, []any, error) {
	return db.builder().
		Insert(models.Session{}.TableName()).
		Columns("id", "login", "account_id", "token", "ledger_url", "updated_at").
		Values(1, session.Login, session.AccountID, session.Token, session.LedgerURL, session.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET login = excluded.login, account_id = excluded.account_id, " +
			"token = excluded.token, ledger_url = excluded.ledger_url, updated_at = excluded.updated_at").
		ToSql()
}

func (db *DB) buildGetSessionQuery() (string, []any, error) {
	return db.builder().
		Select("login", "account_id", "token", "ledger_url", "updated_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func (db *DB) buildClearSessionQuery() (string, []any, error) {
	return db.builder().
		Delete(models.Session{}.TableName()).
		ToSql()
}
