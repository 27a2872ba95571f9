// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/content"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type retrievalService struct {
	ledger   adapter.LedgerAdapter
	resolver adapter.ContentResolver
	codec    crypto.EnvelopeCodec
	kdf      crypto.KDFParams
	logger   *logger.Logger
}

func NewRetrievalService(ledger adapter.LedgerAdapter, resolver adapter.ContentResolver, codec crypto.EnvelopeCodec, kdf crypto.KDFParams, logger *logger.Logger) RetrievalService {
	return &retrievalService{
		ledger:   ledger,
		resolver: resolver,
		codec:    codec,
		kdf:      kdf,
		logger:   logger,
	}
}

// Retrieve runs the pipeline:
//
//	public info -> metadata -> key (ownership checked by the ledger)
//	            -> ciphertext -> decrypt -> classify
//
// The key is requested before the ciphertext is fetched, so a caller
// without access learns nothing beyond the public metadata.
func (r *retrievalService) Retrieve(ctx context.Context, assetID int64, shape crypto.Shape) (RetrievedContent, error) {
	log := r.logger.With().Str("func", "retrievalService.Retrieve").Int64("asset_id", assetID).Logger()

	fail := func(step RetrievalStep, err error) (RetrievedContent, error) {
		log.Error().Err(err).Str("step", string(step)).Msg("retrieval failed")
		return RetrievedContent{}, &RetrievalError{AssetID: assetID, Step: step, Err: err}
	}

	info, err := r.ledger.GetAssetPublicInfo(ctx, assetID)
	if err != nil {
		return fail(StepAssetInfo, err)
	}

	metadata, contentID, err := r.metadata(ctx, info.MetadataPointer)
	if err != nil {
		return fail(StepMetadata, err)
	}

	keyMaterial, err := r.ledger.GetEncryptedKey(ctx, assetID)
	if err != nil {
		return fail(StepKey, err)
	}

	envelope, err := r.resolver.Resolve(ctx, contentID)
	if err != nil {
		return fail(StepContent, err)
	}

	plaintext, err := r.decrypt(envelope, keyMaterial, shape)
	if err != nil {
		return fail(StepDecrypt, err)
	}

	kind := content.Classify(plaintext)
	log.Info().Str("kind", string(kind)).Int("size", len(plaintext)).Msg("asset retrieved")

	return RetrievedContent{
		AssetID:  assetID,
		Metadata: metadata,
		Data:     plaintext,
		Kind:     kind,
	}, nil
}

func (r *retrievalService) metadata(ctx context.Context, pointer string) (models.AssetMetadata, adapter.ContentID, error) {
	metaID, err := adapter.ParseContentID(pointer)
	if err != nil {
		return models.AssetMetadata{}, adapter.ContentID{}, err
	}

	var metadata models.AssetMetadata
	parsed, err := r.resolver.ResolveParsed(ctx, metaID, &metadata)
	if err != nil {
		return models.AssetMetadata{}, adapter.ContentID{}, err
	}
	if !parsed.JSON || metadata.EncryptedContent == "" {
		return models.AssetMetadata{}, adapter.ContentID{}, ErrInvalidMetadata
	}

	contentID, err := adapter.ParseContentID(metadata.EncryptedContent)
	if err != nil {
		return models.AssetMetadata{}, adapter.ContentID{}, err
	}
	return metadata, contentID, nil
}

func (r *retrievalService) decrypt(envelope, keyMaterial []byte, shape crypto.Shape) ([]byte, error) {
	switch shape {
	case crypto.ShapeCombined:
		key, err := crypto.KeyFromMaterial(keyMaterial)
		if err != nil {
			// callers only ever see the one decryption failure
			r.logger.Debug().Err(err).Str("func", "retrievalService.decrypt").Msg("unusable key material")
			return nil, crypto.ErrDecryption
		}
		return r.codec.Decrypt(envelope, key, shape)
	case crypto.ShapeDetachedTag:
		return r.codec.DecryptWithPassword(envelope, keyMaterial, r.kdf)
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnknownShape, shape)
	}
}
