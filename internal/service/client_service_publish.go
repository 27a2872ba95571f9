package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// File names under which the two published objects are pinned.
const (
	EncryptedAssetName = "encrypted_asset.bin"
	MetadataName       = "metadata.json"
)

type publishService struct {
	codec     crypto.EnvelopeCodec
	publisher adapter.ContentPublisher
	ledger    adapter.LedgerAdapter
	kdf       crypto.KDFParams
	logger    *logger.Logger
}

func NewPublishService(codec crypto.EnvelopeCodec, publisher adapter.ContentPublisher, ledger adapter.LedgerAdapter, kdf crypto.KDFParams, logger *logger.Logger) PublishService {
	return &publishService{
		codec:     codec,
		publisher: publisher,
		ledger:    ledger,
		kdf:       kdf,
		logger:    logger,
	}
}

// PublishAsset encrypts req.Contents locally, publishes the envelope and
// the metadata document, then lists the asset. The ledger receives the
// key material: hex of the random key, or the password for the detached
// shape.
func (p *publishService) PublishAsset(ctx context.Context, req PublishRequest) (PublishResult, error) {
	log := p.logger.With().Str("func", "publishService.PublishAsset").Str("name", req.Name).Logger()

	if len(req.Contents) == 0 {
		return PublishResult{}, ErrEmptyAssetContents
	}
	if strings.TrimSpace(req.Name) == "" {
		return PublishResult{}, fmt.Errorf("%w: empty asset name", ErrInvalidDataProvided)
	}

	var (
		result      PublishResult
		envelope    crypto.Envelope
		keyMaterial []byte
		err         error
	)

	switch req.Shape {
	case crypto.ShapeCombined:
		key := p.codec.GenerateKey()
		envelope, err = p.codec.Encrypt(req.Contents, key)
		keyMaterial = crypto.EncodeKeyMaterial(key)
		result.Key = &key
	case crypto.ShapeDetachedTag:
		if req.Password == "" {
			return PublishResult{}, ErrPasswordRequired
		}
		envelope, err = p.codec.EncryptWithPassword(req.Contents, []byte(req.Password), p.kdf)
		keyMaterial = []byte(req.Password)
	default:
		return PublishResult{}, fmt.Errorf("%w: %s", crypto.ErrUnknownShape, req.Shape)
	}
	if err != nil {
		return PublishResult{}, fmt.Errorf("encrypt asset: %w", err)
	}

	result.ContentID, err = p.publisher.Publish(ctx, EncryptedAssetName, envelope, "application/octet-stream")
	if err != nil {
		return PublishResult{}, fmt.Errorf("publish encrypted asset: %w", err)
	}
	log.Debug().Str("cid", result.ContentID.String()).Msg("encrypted asset published")

	metadata := models.AssetMetadata{
		Name:             req.Name,
		Description:      req.Description,
		EncryptedContent: result.ContentID.URI(),
		Image:            req.Image,
	}
	result.MetadataID, err = p.publisher.PublishJSON(ctx, MetadataName, metadata)
	if err != nil {
		return PublishResult{}, fmt.Errorf("publish metadata: %w", err)
	}

	result.Asset, err = p.ledger.CreateAsset(ctx, models.CreateAssetRequest{
		Price:           req.Price,
		MetadataPointer: result.MetadataID.URI(),
		EncryptedKey:    keyMaterial,
	})
	if err != nil {
		return PublishResult{}, fmt.Errorf("list asset: %w", err)
	}

	log.Info().Int64("asset_id", result.Asset.ID).Str("price", req.Price.String()).Msg("asset listed")
	return result, nil
}
