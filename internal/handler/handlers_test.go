package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/blobstore"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
)

// http.NewHandler only stores the services pointer, so an empty
// *service.Services is enough for construction tests.
func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.Gateway)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewGatewayHandlers(t *testing.T) {
	store, err := blobstore.Open("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	h, err := NewGatewayHandlers(store, config.Gateway{HTTPAddress: ":5001", PinToken: "t"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.Gateway)
	assert.Nil(t, h.HTTP)

	_, err = NewGatewayHandlers(store, config.Gateway{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
