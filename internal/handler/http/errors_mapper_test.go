package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{models.ErrUnknownAsset, http.StatusNotFound, models.CodeUnknownAsset},
		{fmt.Errorf("purchase: %w", models.ErrInsufficientPayment), http.StatusPaymentRequired, models.CodeInsufficientPayment},
		{models.ErrExcessPayment, http.StatusBadRequest, models.CodeExcessPayment},
		{models.ErrUnauthorized, http.StatusForbidden, models.CodeUnauthorized},
		{models.ErrNothingToWithdraw, http.StatusConflict, models.CodeNothingToWithdraw},
		{fmt.Errorf("error recording purchase: %w", models.ErrAmountOverflow), http.StatusConflict, models.CodeAmountOverflow},
		{service.ErrInvalidDataProvided, http.StatusBadRequest, models.CodeInvalidRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized, models.CodeUnauthenticated},
		{store.ErrAccountNotFound, http.StatusUnauthorized, models.CodeUnauthenticated},
		{store.ErrLoginAlreadyExists, http.StatusConflict, models.CodeLoginExists},
		{fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrTransient), http.StatusServiceUnavailable, models.CodeUnavailable},
		{store.ErrExecutingQuery, http.StatusInternalServerError, models.CodeInternal},
		{errors.New("anything"), http.StatusInternalServerError, models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, message)
		})
	}
}

func TestStatusFromError_InternalMessageIsGeneric(t *testing.T) {
	_, _, message := statusFromError(errors.New("dial tcp 10.0.0.3:5432: refused"))

	assert.Equal(t, http.StatusText(http.StatusInternalServerError), message)
}
