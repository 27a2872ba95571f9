// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Ownership is the number of access units an account holds for an asset.
// Units > 0 means the account may read the asset key.
type Ownership struct {
	AccountID int64  `json:"account_id"`
	AssetID   int64  `json:"asset_id"`
	Units     uint64 `json:"units"`
}

// TableName returns the name of the ownership table.
func (o Ownership) TableName() string {
	return "ownerships"
}

// Authorized reports whether the holder may read the asset key.
func (o Ownership) Authorized() bool {
	return o.Units > 0
}

// PendingPayout is value owed to an account and not yet withdrawn.
type PendingPayout struct {
	AccountID int64  `json:"account_id"`
	Amount    Amount `json:"amount"`
}

// TableName returns the name of the pending payouts table.
func (p PendingPayout) TableName() string {
	return "pending_payouts"
}

// LedgerBalance is the value the ledger currently holds. The sum of all
// pending payouts never exceeds it.
type LedgerBalance struct {
	Amount Amount `json:"amount"`
}

// PurchaseRequest is the body of a purchase. Payment must equal the price.
type PurchaseRequest struct {
	Payment Amount `json:"payment"`
}

// PurchaseReceipt is returned after a successful purchase.
type PurchaseReceipt struct {
	AssetID   int64  `json:"asset_id"`
	AccountID int64  `json:"account_id"`
	Units     uint64 `json:"units"`
	Paid      Amount `json:"paid"`
	Creator   int64  `json:"creator"`
}

// Withdrawal is the transfer record written when pending value is paid out.
type Withdrawal struct {
	TransferID int64     `json:"transfer_id"`
	AccountID  int64     `json:"account_id"`
	Amount     Amount    `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the transfers table.
func (w Withdrawal) TableName() string {
	return "transfers"
}

// EventType names a ledger state change.
type EventType string

const (
	EventAssetCreated   EventType = "asset_created"
	EventAccessGranted  EventType = "access_granted"
	EventFundsWithdrawn EventType = "funds_withdrawn"
)

// LedgerEvent is an append-only notification of a state change. AssetID is
// zero for withdrawals.
type LedgerEvent struct {
	ID        int64     `json:"id"`
	Type      EventType `json:"type"`
	AssetID   int64     `json:"asset_id,omitempty"`
	AccountID int64     `json:"account_id"`
	Amount    Amount    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the events table.
func (e LedgerEvent) TableName() string {
	return "ledger_events"
}

// EventFilter pages through events in id order.
type EventFilter struct {
	AfterID   int64
	AccountID int64
	Limit     uint64
}

// AssetFilter pages through the catalog newest first.
type AssetFilter struct {
	BeforeID int64
	Limit    uint64
}
