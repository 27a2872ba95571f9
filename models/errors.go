package models

import "errors"

// Ledger errors. The server returns them as codes and the client maps the
// codes back, so errors.Is works on both sides of the wire.
var (
	ErrUnknownAsset        = errors.New("unknown asset")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrExcessPayment       = errors.New("payment exceeds price")
	ErrUnauthorized        = errors.New("Not authorized: Purchase NFT first")
	ErrNothingToWithdraw   = errors.New("no funds to withdraw")
	ErrAmountOverflow      = errors.New("ledger amount out of range")
)

// Error codes carried in [ErrorResponse.Code].
const (
	CodeUnknownAsset        = "unknown_asset"
	CodeInsufficientPayment = "insufficient_payment"
	CodeExcessPayment       = "excess_payment"
	CodeUnauthorized        = "unauthorized"
	CodeNothingToWithdraw   = "nothing_to_withdraw"
	CodeAmountOverflow      = "amount_overflow"
	CodeInvalidRequest      = "invalid_request"
	CodeUnauthenticated     = "unauthenticated"
	CodeLoginExists         = "login_exists"
	CodeInternal            = "internal"
	CodeUnavailable         = "unavailable"
)

var codeErrors = map[string]error{
	CodeUnknownAsset:        ErrUnknownAsset,
	CodeInsufficientPayment: ErrInsufficientPayment,
	CodeExcessPayment:       ErrExcessPayment,
	CodeUnauthorized:        ErrUnauthorized,
	CodeNothingToWithdraw:   ErrNothingToWithdraw,
	CodeAmountOverflow:      ErrAmountOverflow,
}

// ErrorResponse is the JSON body of every failed ledger API call.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LedgerError returns the sentinel for a ledger error code, or nil when the
// code is not one of the ledger's own errors.
func LedgerError(code string) error {
	return codeErrors[code]
}
