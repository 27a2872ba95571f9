package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/app"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		writeInvalidJSON(w)
		return
	}

	account, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err, "account registration failed")
		return
	}

	h.issueToken(w, r, account)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		writeInvalidJSON(w)
		return
	}

	account, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err, "login failed")
		return
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account successfully logged in")

	h.issueToken(w, r, account)
}

func (h *Handler) params(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ParamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		writeInvalidJSON(w)
		return
	}

	params, err := h.services.AuthService.Params(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err, "params lookup failed")
		return
	}

	utils.WriteJSON(w, params, http.StatusOK)
}

// issueToken signs a token for account, puts it in the Authorization
// header and writes the account summary.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, account models.Account) {
	token, err := h.services.AuthService.CreateToken(r.Context(), account)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusInternalServerError, models.CodeInternal, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{AccountID: account.AccountID, Login: account.Login}, http.StatusOK)
}

func writeInvalidJSON(w http.ResponseWriter) {
	utils.WriteError(w, http.StatusBadRequest, models.CodeInvalidRequest, app.MsgInvalidJSON)
}
