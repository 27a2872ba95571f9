package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func mustContentID(t *testing.T, data []byte) ContentID {
	t.Helper()
	id, err := NewRawContentID(data)
	require.NoError(t, err)
	return id
}

func TestParseContentID(t *testing.T) {
	id := mustContentID(t, []byte("hello"))

	for _, in := range []string{id.String(), id.URI(), "/ipfs/" + id.String(), " " + id.URI() + " "} {
		got, err := ParseContentID(in)
		require.NoError(t, err, in)
		assert.Equal(t, id.String(), got.String())
	}

	_, err := ParseContentID("ipfs://not-a-cid")
	assert.ErrorIs(t, err, ErrInvalidContentID)

	assert.True(t, ContentID{}.IsZero())
	assert.Equal(t, "ipfs://"+id.String(), id.URI())
}

func TestNewRawContentID_Deterministic(t *testing.T) {
	a := mustContentID(t, []byte("same"))
	b := mustContentID(t, []byte("same"))
	c := mustContentID(t, []byte("other"))

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
	assert.Equal(t, uint64(1), a.Cid().Version())
}

func TestPublish_MultipartUpload(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xFF, 0xFE}
	want := mustContentID(t, payload)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer pin-jwt", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.JSONEq(t, `{"cidVersion":1}`, r.FormValue("pinataOptions"))
		assert.JSONEq(t, `{"name":"encrypted_asset.bin"}`, r.FormValue("pinataMetadata"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "encrypted_asset.bin", header.Filename)

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PinResponse{IpfsHash: want.String(), PinSize: int64(len(got))})
	}))
	defer srv.Close()

	p := NewIPFSPublisher(config.IPFS{PublishURL: srv.URL, PublishJWT: "pin-jwt"}, logger.Nop())
	got, err := p.Publish(context.Background(), "encrypted_asset.bin", payload, "")

	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String())
}

func TestPublish_Failures(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		p := NewIPFSPublisher(config.IPFS{PublishURL: "http://unused"}, logger.Nop())
		_, err := p.Publish(context.Background(), "a", []byte("x"), "")
		assert.ErrorIs(t, err, ErrPublish)
	})

	t.Run("non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		p := NewIPFSPublisher(config.IPFS{PublishURL: srv.URL, PublishJWT: "bad"}, logger.Nop())
		_, err := p.Publish(context.Background(), "a", []byte("x"), "")
		assert.ErrorIs(t, err, ErrPublish)
	})

	t.Run("malformed cid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(models.PinResponse{IpfsHash: "garbage"})
		}))
		defer srv.Close()

		p := NewIPFSPublisher(config.IPFS{PublishURL: srv.URL, PublishJWT: "jwt"}, logger.Nop())
		_, err := p.Publish(context.Background(), "a", []byte("x"), "")
		assert.ErrorIs(t, err, ErrPublish)
		assert.ErrorIs(t, err, ErrInvalidContentID)
	})
}

func TestPublishJSON_ContentType(t *testing.T) {
	id := mustContentID(t, []byte("meta"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "application/json", header.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(models.PinResponse{IpfsHash: id.String()})
	}))
	defer srv.Close()

	p := NewIPFSPublisher(config.IPFS{PublishURL: srv.URL, PublishJWT: "jwt"}, logger.Nop())
	got, err := p.PublishJSON(context.Background(), "metadata.json", models.AssetMetadata{Name: "n"})
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.String())
}

func TestPublish_ResponseWithoutContentType(t *testing.T) {
	id := mustContentID(t, []byte("payload"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte(`{"IpfsHash":"` + id.String() + `","PinSize":7}`))
	}))
	defer srv.Close()

	p := NewIPFSPublisher(config.IPFS{PublishURL: srv.URL, PublishJWT: "jwt"}, logger.Nop())
	got, err := p.Publish(context.Background(), "payload.bin", []byte("payload"), "")
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.String())
}

func TestPublish_UnreadableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pinned!"))
	}))
	defer srv.Close()

	p := NewIPFSPublisher(config.IPFS{PublishURL: srv.URL, PublishJWT: "jwt"}, logger.Nop())
	_, err := p.Publish(context.Background(), "payload.bin", []byte("payload"), "")
	assert.ErrorIs(t, err, ErrPublish)
}

func failingGateway(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve_FallsBackAcrossGateways(t *testing.T) {
	body := []byte{0x89, 'P', 'N', 'G', 0x00, 0xFF}
	id := mustContentID(t, body)

	var firstHits, secondHits atomic.Int32
	first := failingGateway(t, &firstHits)
	second := failingGateway(t, &secondHits)
	third := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ipfs/"+id.String(), r.URL.Path)
		_, _ = w.Write(body)
	}))
	defer third.Close()

	r := NewGatewayResolver(config.IPFS{Gateways: []string{first.URL, second.URL + "/", third.URL}}, logger.Nop())
	got, err := r.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, int32(1), firstHits.Load())
	assert.Equal(t, int32(1), secondHits.Load())
}

func TestResolve_AllGatewaysFail(t *testing.T) {
	var hits atomic.Int32
	a := failingGateway(t, &hits)
	b := failingGateway(t, &hits)

	r := NewGatewayResolver(config.IPFS{Gateways: []string{a.URL, b.URL}}, logger.Nop())
	_, err := r.Resolve(context.Background(), mustContentID(t, []byte("x")))

	require.ErrorIs(t, err, ErrResolve)
	assert.Contains(t, err.Error(), a.URL)
	assert.Contains(t, err.Error(), b.URL)
	assert.Equal(t, int32(2), hits.Load())
}

func TestResolve_OversizedResponseSkipsGateway(t *testing.T) {
	body := []byte("small enough")
	id := mustContentID(t, body)

	huge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 4096))
	}))
	defer huge.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer good.Close()

	cfg := config.IPFS{Gateways: []string{huge.URL, good.URL}, MaxContentSize: 1024}
	got, err := NewGatewayResolver(cfg, logger.Nop()).Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	cfg.Gateways = []string{huge.URL}
	_, err = NewGatewayResolver(cfg, logger.Nop()).Resolve(context.Background(), id)
	assert.ErrorIs(t, err, ErrResolve)
}

func TestResolve_NoGateways(t *testing.T) {
	r := NewGatewayResolver(config.IPFS{}, logger.Nop())
	_, err := r.Resolve(context.Background(), mustContentID(t, []byte("x")))
	assert.ErrorIs(t, err, ErrResolve)
}

func TestResolveParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ipfs/"+mustContentID(t, []byte("json")).String() {
			_, _ = w.Write([]byte(`{"name":"Song","encrypted_content":"ipfs://x"}`))
			return
		}
		_, _ = w.Write([]byte("plain text"))
	}))
	defer srv.Close()

	r := NewGatewayResolver(config.IPFS{Gateways: []string{srv.URL}}, logger.Nop())

	var meta models.AssetMetadata
	parsed, err := r.ResolveParsed(context.Background(), mustContentID(t, []byte("json")), &meta)
	require.NoError(t, err)
	assert.True(t, parsed.JSON)
	assert.Equal(t, "Song", meta.Name)
	assert.Equal(t, "ipfs://x", meta.EncryptedContent)

	parsed, err = r.ResolveParsed(context.Background(), mustContentID(t, []byte("text")), &meta)
	require.NoError(t, err)
	assert.False(t, parsed.JSON)
	assert.Equal(t, "plain text", string(parsed.Raw))
}
