// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the client side of every remote collaborator: the
// ledger HTTP API, the pinning service that publishes content and the read
// gateways that resolve it.
//
// Errors coming back from the ledger are mapped to the sentinels in
// models/errors.go, so callers match them with [errors.Is] exactly as the
// server-side code does. Content failures are wrapped in [ErrPublish] and
// [ErrResolve].
package adapter

import (
	"context"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerAdapter talks to the ledger API. Register and Login store the
// returned bearer token; authenticated calls send the stored token.
type LedgerAdapter interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Params(ctx context.Context, req models.ParamsRequest) (models.ParamsResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Version(ctx context.Context) (string, error)

	CreateAsset(ctx context.Context, req models.CreateAssetRequest) (models.Asset, error)
	PurchaseAccess(ctx context.Context, assetID int64, payment models.Amount) (models.PurchaseReceipt, error)
	GetEncryptedKey(ctx context.Context, assetID int64) ([]byte, error)
	GetAssetPublicInfo(ctx context.Context, assetID int64) (models.AssetPublicInfo, error)
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error)
	AssetCount(ctx context.Context) (int64, error)
	OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error)

	PendingWithdrawals(ctx context.Context, accountID int64) (models.Amount, error)
	Withdraw(ctx context.Context) (models.Withdrawal, error)
	LedgerBalance(ctx context.Context) (models.LedgerBalance, error)
	Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error)
}

// ContentPublisher stores bytes in content-addressed storage. It never
// retries.
type ContentPublisher interface {
	Publish(ctx context.Context, name string, data []byte, contentType string) (ContentID, error)
	PublishJSON(ctx context.Context, name string, v any) (ContentID, error)
}

// ContentResolver fetches content by id through an ordered list of
// gateways. A failing gateway is skipped; only when every gateway fails is
// an error returned.
type ContentResolver interface {
	Resolve(ctx context.Context, id ContentID) ([]byte, error)
	// ResolveParsed decodes the content as JSON into target. Content that
	// is not JSON is returned as raw text without an error.
	ResolveParsed(ctx context.Context, id ContentID, target any) (ParsedContent, error)
}

// ParsedContent is the outcome of [ContentResolver.ResolveParsed].
type ParsedContent struct {
	Raw  []byte
	JSON bool
}
