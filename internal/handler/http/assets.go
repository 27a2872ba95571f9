// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// createAsset lists a new asset. The creator is the authenticated account,
// never a field of the body.
func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creator, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeUnauthenticated(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeInvalidJSON(w)
		return
	}

	asset, err := h.services.LedgerService.CreateAsset(ctx, creator, req.Price, req.MetadataPointer, req.EncryptedKey)
	if err != nil {
		h.writeServiceError(w, r, err, "asset creation failed")
		return
	}

	utils.WriteJSON(w, asset, http.StatusCreated)
}

func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	buyer, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeUnauthenticated(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	assetID, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeInvalidJSON(w)
		return
	}

	receipt, err := h.services.LedgerService.PurchaseAccess(ctx, assetID, req.Payment, buyer)
	if err != nil {
		h.writeServiceError(w, r, err, "purchase failed")
		return
	}

	utils.WriteJSON(w, receipt, http.StatusOK)
}

// encryptedKey releases key material to an owner. Everyone else gets 403
// with the "unauthorized" code.
func (h *Handler) encryptedKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeUnauthenticated(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	assetID, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	key, err := h.services.LedgerService.GetEncryptedKey(ctx, assetID, requester)
	if err != nil {
		h.writeServiceError(w, r, err, "key request rejected")
		return
	}

	utils.WriteJSON(w, models.EncryptedKeyResponse{AssetID: assetID, EncryptedKey: key}, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	info, err := h.services.LedgerService.GetAssetPublicInfo(r.Context(), assetID)
	if err != nil {
		h.writeServiceError(w, r, err, "asset lookup failed")
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// listAssets pages the catalog newest first: ?limit=N&before=ID.
func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint64(r, "limit")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	before, err := queryInt64(r, "before")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	assets, err := h.services.LedgerService.ListAssets(r.Context(), models.AssetFilter{BeforeID: before, Limit: limit})
	if err != nil {
		h.writeServiceError(w, r, err, "asset listing failed")
		return
	}
	if assets == nil {
		assets = []models.AssetPublicInfo{}
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) assetCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.LedgerService.AssetCount(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "asset count failed")
		return
	}

	utils.WriteJSON(w, models.AssetCount{Count: count}, http.StatusOK)
}
