package gateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/blobstore"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/content"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
)

// getContent serves stored bytes unchanged. Content never changes for a
// given CID, so responses are cacheable forever.
func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	id, err := adapter.ParseContentID(chi.URLParam(r, "cid"))
	if err != nil {
		http.Error(w, "invalid cid", http.StatusBadRequest)
		return
	}

	data, err := h.store.Get(r.Context(), id)
	if errors.Is(err, blobstore.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Str("cid", id.String()).Msg("reading blob failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", content.Classify(data).MIMEType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=29030400, immutable")
	w.Header().Set("Etag", `"`+id.String()+`"`)
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		w.Write(data)
	}
}
