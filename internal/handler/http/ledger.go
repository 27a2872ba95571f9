package http

import (
	"net/http"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func (h *Handler) ownership(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	assetID, err := pathID(r, "assetID")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	ownership, err := h.services.LedgerService.OwnershipOf(r.Context(), accountID, assetID)
	if err != nil {
		h.writeServiceError(w, r, err, "ownership lookup failed")
		return
	}

	utils.WriteJSON(w, ownership, http.StatusOK)
}

// pending is public: anyone may ask how much an account is owed.
func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	amount, err := h.services.LedgerService.PendingWithdrawals(r.Context(), accountID)
	if err != nil {
		h.writeServiceError(w, r, err, "pending lookup failed")
		return
	}

	utils.WriteJSON(w, models.PendingPayout{AccountID: accountID, Amount: amount}, http.StatusOK)
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeUnauthenticated(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	withdrawal, err := h.services.LedgerService.Withdraw(ctx, accountID)
	if err != nil {
		h.writeServiceError(w, r, err, "withdrawal failed")
		return
	}

	utils.WriteJSON(w, withdrawal, http.StatusOK)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.services.LedgerService.LedgerBalance(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "balance lookup failed")
		return
	}

	utils.WriteJSON(w, balance, http.StatusOK)
}

// events streams the append-only log in id order:
// ?after=ID&account=ID&limit=N.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	var filter models.EventFilter
	var err error

	if filter.AfterID, err = queryInt64(r, "after"); err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	if filter.AccountID, err = queryInt64(r, "account"); err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	if filter.Limit, err = queryUint64(r, "limit"); err != nil {
		utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	events, err := h.services.LedgerService.Events(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err, "events query failed")
		return
	}
	if events == nil {
		events = []models.LedgerEvent{}
	}

	utils.WriteJSON(w, events, http.StatusOK)
}
