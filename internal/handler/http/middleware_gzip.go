package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

func hasEncoding(h http.Header, key string) bool {
	return strings.Contains(h.Get(key), "gzip")
}

// withGZip decodes gzip request bodies and compresses responses for
// clients that advertise gzip support. HEAD requests pass through.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if hasEncoding(req.Header, "Content-Encoding") && req.Body != nil {
			body, err := gunzipBody(req.Body)
			if err != nil {
				utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, "invalid gzip data")
				return
			}
			req.Body = body
			req.Header.Del("Content-Encoding")
		}

		if req.Method == http.MethodHead || !hasEncoding(req.Header, "Accept-Encoding") {
			next.ServeHTTP(w, req)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}

		next.ServeHTTP(gw, req)

		gw.finish()
		gzipWriters.Put(zw)
	})
}

func gunzipBody(src io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &pooledReader{Reader: zr, release: func() {
		_ = zr.Close()
		_ = src.Close()
		gzipReaders.Put(zr)
	}}, nil
}

type pooledReader struct {
	io.Reader
	once    sync.Once
	release func()
}

func (r *pooledReader) Close() error {
	r.once.Do(r.release)
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	// handler-set length describes the uncompressed body
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	return w.zw.Write(data)
}

// finish flushes the gzip trailer, sending a 200 header first when the
// handler wrote nothing.
func (w *gzipResponseWriter) finish() {
	w.WriteHeader(http.StatusOK)
	_ = w.zw.Close()
}
