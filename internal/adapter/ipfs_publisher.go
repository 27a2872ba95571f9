package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

const pinFilePath = "/pinning/pinFileToIPFS"

type ipfsPublisher struct {
	client *utils.HTTPClient
	jwt    string
	logger *logger.Logger
}

// NewIPFSPublisher returns a [ContentPublisher] that uploads files to a
// Pinata-compatible pinning endpoint. A missing credential is not an error
// here; every Publish call then fails with [ErrPublish].
func NewIPFSPublisher(cfg config.IPFS, logger *logger.Logger) ContentPublisher {
	return &ipfsPublisher{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.PublishURL, "/"), cfg.RequestTimeout),
		jwt:    strings.TrimSpace(cfg.PublishJWT),
		logger: logger,
	}
}

func (p *ipfsPublisher) Publish(ctx context.Context, name string, data []byte, contentType string) (ContentID, error) {
	log := p.logger.With().Str("func", "ipfsPublisher.Publish").Str("name", name).Logger()

	if p.jwt == "" {
		return ContentID{}, fmt.Errorf("%w: publish credential is not configured", ErrPublish)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	pinMetadata, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return ContentID{}, fmt.Errorf("%w: %w", ErrPublish, err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.jwt).
		SetMultipartField("file", name, contentType, bytes.NewReader(data)).
		SetMultipartFormData(map[string]string{
			"pinataOptions":  `{"cidVersion":1}`,
			"pinataMetadata": string(pinMetadata),
		}).
		Post(pinFilePath)
	if err != nil {
		log.Err(err).Msg("upload failed")
		return ContentID{}, fmt.Errorf("%w: %w", ErrPublish, err)
	}
	if !resp.IsSuccess() {
		log.Error().Int("status", resp.StatusCode()).Msg("pinning endpoint rejected upload")
		return ContentID{}, fmt.Errorf("%w: http %d: %s", ErrPublish, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	// some pinning services answer without a JSON content type
	var pinned models.PinResponse
	if err = json.Unmarshal(resp.Body(), &pinned); err != nil {
		log.Err(err).Msg("unreadable pin response")
		return ContentID{}, fmt.Errorf("%w: decode pin response: %w", ErrPublish, err)
	}

	id, err := ParseContentID(pinned.IpfsHash)
	if err != nil {
		return ContentID{}, fmt.Errorf("%w: %w", ErrPublish, err)
	}

	log.Debug().Str("cid", id.String()).Int("size", len(data)).Msg("content published")
	return id, nil
}

func (p *ipfsPublisher) PublishJSON(ctx context.Context, name string, v any) (ContentID, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return ContentID{}, fmt.Errorf("%w: marshal %s: %w", ErrPublish, name, err)
	}
	return p.Publish(ctx, name, data, "application/json")
}
