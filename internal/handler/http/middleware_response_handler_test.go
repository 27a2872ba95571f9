// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w *responseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name:       "nothing written",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(w *responseWriter) { w.WriteHeader(http.StatusPaymentRequired) },
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name: "second WriteHeader ignored",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "write implies 200 and sizes accumulate",
			write: func(w *responseWriter) {
				w.Write([]byte("abc"))
				w.Write([]byte("de"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name: "write after error status",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"code":"unauthorized"}`))
			},
			wantStatus: http.StatusForbidden,
			wantSize:   len(`{"code":"unauthorized"}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestResponseWriter_HeadersReachUnderlyingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("X-Trace-ID", "t-1")
	w.WriteHeader(http.StatusNoContent)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "t-1", rr.Header().Get("X-Trace-ID"))
}
