package http

import (
	"errors"
	"net/http"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/app"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type errorStatus struct {
	target error
	status int
	code   string
	// message overrides the sentinel text in the response body
	message string
	// detailed sends the whole wrapped error text, e.g. validation failures
	detailed bool
}

// errorStatusTable is checked in order; the first errors.Is match wins.
var errorStatusTable = []errorStatus{
	{target: models.ErrUnknownAsset, status: http.StatusNotFound, code: models.CodeUnknownAsset},
	{target: models.ErrInsufficientPayment, status: http.StatusPaymentRequired, code: models.CodeInsufficientPayment},
	{target: models.ErrExcessPayment, status: http.StatusBadRequest, code: models.CodeExcessPayment},
	{target: models.ErrUnauthorized, status: http.StatusForbidden, code: models.CodeUnauthorized},
	{target: models.ErrNothingToWithdraw, status: http.StatusConflict, code: models.CodeNothingToWithdraw},
	{target: models.ErrAmountOverflow, status: http.StatusConflict, code: models.CodeAmountOverflow},

	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, code: models.CodeInvalidRequest, detailed: true},
	{target: service.ErrWrongPassword, status: http.StatusUnauthorized, code: models.CodeUnauthenticated, message: app.MsgInvalidLoginPassword},
	{target: store.ErrAccountNotFound, status: http.StatusUnauthorized, code: models.CodeUnauthenticated, message: app.MsgInvalidLoginPassword},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, code: models.CodeUnauthenticated},
	{target: store.ErrLoginAlreadyExists, status: http.StatusConflict, code: models.CodeLoginExists},

	{target: store.ErrTransient, status: http.StatusServiceUnavailable, code: models.CodeUnavailable, message: app.MsgLedgerUnavailable},
}

// statusFromError returns the HTTP status, the wire code and the message
// for err. Anything unknown is an internal error and its text is not
// exposed.
func statusFromError(err error) (int, string, string) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			message := entry.message
			if entry.detailed {
				message = err.Error()
			}
			if message == "" {
				message = entry.target.Error()
			}
			return entry.status, entry.code, message
		}
	}
	return http.StatusInternalServerError, models.CodeInternal, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err and writes the mapped error document.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, code, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, status, code, message)
}
