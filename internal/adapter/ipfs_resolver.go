package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
)

type gatewayResolver struct {
	client   *utils.HTTPClient
	gateways []string
	maxSize  int
	logger   *logger.Logger
}

// NewGatewayResolver returns a [ContentResolver] over cfg.Gateways, tried
// in the configured order. A response larger than cfg.MaxContentSize counts
// as a failed gateway; zero means no cap.
func NewGatewayResolver(cfg config.IPFS, logger *logger.Logger) ContentResolver {
	gateways := make([]string, 0, len(cfg.Gateways))
	for _, gw := range cfg.Gateways {
		if gw = strings.TrimRight(strings.TrimSpace(gw), "/"); gw != "" {
			gateways = append(gateways, gw)
		}
	}

	return &gatewayResolver{
		client:   utils.NewHTTPClient("", cfg.RequestTimeout),
		gateways: gateways,
		maxSize:  cfg.MaxContentSize,
		logger:   logger,
	}
}

func (r *gatewayResolver) Resolve(ctx context.Context, id ContentID) ([]byte, error) {
	log := r.logger.With().Str("func", "gatewayResolver.Resolve").Str("cid", id.String()).Logger()

	if id.IsZero() {
		return nil, fmt.Errorf("%w: %w", ErrResolve, ErrInvalidContentID)
	}
	if len(r.gateways) == 0 {
		return nil, fmt.Errorf("%w: no gateways configured", ErrResolve)
	}

	failures := make([]error, 0, len(r.gateways))
	for _, gw := range r.gateways {
		data, err := r.fetch(ctx, gw, id)
		if err == nil {
			log.Debug().Str("gateway", gw).Int("size", len(data)).Msg("content resolved")
			return data, nil
		}

		log.Warn().Err(err).Str("gateway", gw).Msg("gateway failed, trying next")
		failures = append(failures, err)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrResolve, errors.Join(failures...))
}

func (r *gatewayResolver) fetch(ctx context.Context, gateway string, id ContentID) ([]byte, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetResponseBodyLimit(r.maxSize).
		Get(gateway + "/ipfs/" + id.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gateway, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%s: http %d", gateway, resp.StatusCode())
	}
	return resp.Body(), nil
}

func (r *gatewayResolver) ResolveParsed(ctx context.Context, id ContentID, target any) (ParsedContent, error) {
	data, err := r.Resolve(ctx, id)
	if err != nil {
		return ParsedContent{}, err
	}

	if target == nil || json.Unmarshal(data, target) != nil {
		return ParsedContent{Raw: data}, nil
	}
	return ParsedContent{Raw: data, JSON: true}, nil
}
