package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/blobstore"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

const testPinToken = "pin-secret"

func newTestGateway(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := blobstore.Open("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	h := NewHandler(store, config.Gateway{PinToken: testPinToken}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestPinFile(t *testing.T) {
	srv := newTestGateway(t)
	data := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}

	body, contentType := multipartUpload(t, "file", "img.png", data)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/pinning/pinFileToIPFS", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testPinToken)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pinned models.PinResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pinned))

	want, err := adapter.NewRawContentID(data)
	require.NoError(t, err)
	assert.Equal(t, want.String(), pinned.IpfsHash)
	assert.Equal(t, int64(len(data)), pinned.PinSize)
	assert.NotEmpty(t, pinned.Timestamp)

	get, err := srv.Client().Get(srv.URL + "/ipfs/" + pinned.IpfsHash)
	require.NoError(t, err)
	defer get.Body.Close()
	got, err := io.ReadAll(get.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get.StatusCode)
	assert.Equal(t, "image/png", get.Header.Get("Content-Type"))
	assert.Equal(t, data, got)
}

func TestPinFile_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		field      string
		wantStatus int
	}{
		{name: "no token", field: "file", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", auth: "Bearer nope", field: "file", wantStatus: http.StatusUnauthorized},
		{name: "missing file part", auth: "Bearer " + testPinToken, field: "other", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestGateway(t)
			body, contentType := multipartUpload(t, tt.field, "a.bin", []byte("abc"))

			req, err := http.NewRequest(http.MethodPost, srv.URL+"/pinning/pinFileToIPFS", body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", contentType)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetContent_Errors(t *testing.T) {
	srv := newTestGateway(t)
	missing, err := adapter.NewRawContentID([]byte("missing"))
	require.NoError(t, err)

	resp, err := srv.Client().Get(srv.URL + "/ipfs/" + missing.String())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/ipfs/not-a-cid")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// The adapter's publisher and resolver speak to the gateway unchanged.
func TestGateway_PublisherAndResolverRoundTrip(t *testing.T) {
	srv := newTestGateway(t)
	ctx := context.Background()

	cfg := config.IPFS{
		PublishURL: srv.URL,
		PublishJWT: testPinToken,
		Gateways:   []string{"http://127.0.0.1:1", srv.URL},
	}
	publisher := adapter.NewIPFSPublisher(cfg, logger.Nop())
	resolver := adapter.NewGatewayResolver(cfg, logger.Nop())

	blob := []byte{0x01, 0x02, 0xfe, 0xff}
	blobID, err := publisher.Publish(ctx, "encrypted_asset.bin", blob, "")
	require.NoError(t, err)

	metaID, err := publisher.PublishJSON(ctx, "metadata.json", models.AssetMetadata{
		Name:             "doc",
		EncryptedContent: blobID.URI(),
	})
	require.NoError(t, err)

	got, err := resolver.Resolve(ctx, blobID)
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	var meta models.AssetMetadata
	parsed, err := resolver.ResolveParsed(ctx, metaID, &meta)
	require.NoError(t, err)
	assert.True(t, parsed.JSON)
	assert.Equal(t, blobID.URI(), meta.EncryptedContent)
}
