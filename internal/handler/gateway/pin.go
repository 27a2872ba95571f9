package gateway

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

const (
	maxUploadSize = 256 << 20
	// multipart parts above this size are spooled to disk by net/http
	maxMemory = 32 << 20
)

// requirePinToken accepts only the configured bearer token.
func (h *Handler) requirePinToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(h.pinToken)) != 1 {
			logger.FromRequest(r).Warn().Msg("pin request with a bad token")
			utils.WriteError(w, http.StatusUnauthorized, models.CodeUnauthenticated, "invalid pin token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type pinMetadata struct {
	Name string `json:"name"`
}

// pinFile stores the multipart "file" part and answers with its CID. The
// CID is always v1 raw sha2-256, whatever pinataOptions asks for.
func (h *Handler) pinFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, http.StatusRequestEntityTooLarge, models.CodeInvalidRequest, "file is too large")
			return
		}
		log.Err(err).Msg("invalid multipart form")
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, "missing \"file\" part")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading uploaded file failed")
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, "unreadable file")
		return
	}

	name := header.Filename
	if raw := r.FormValue("pinataMetadata"); raw != "" {
		var meta pinMetadata
		if err := json.Unmarshal([]byte(raw), &meta); err == nil && meta.Name != "" {
			name = meta.Name
		}
	}

	pin, err := h.store.Put(r.Context(), name, data)
	if err != nil {
		log.Err(err).Msg("storing blob failed")
		utils.WriteError(w, http.StatusInternalServerError, models.CodeInternal, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Info().Str("cid", pin.ID).Int64("size", pin.Size).Str("name", name).Msg("file pinned")

	utils.WriteJSON(w, models.PinResponse{
		IpfsHash:  pin.ID,
		PinSize:   pin.Size,
		Timestamp: pin.PinnedAt.Format(time.RFC3339),
	}, http.StatusOK)
}
