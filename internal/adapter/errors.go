package adapter

import "errors"

var (
	// ErrPublish wraps every failure to store content.
	ErrPublish = errors.New("content publish failed")
	// ErrResolve is returned when no gateway could serve the content.
	ErrResolve = errors.New("content unavailable from every gateway")
	// ErrInvalidContentID is returned for a pointer that is not a CID.
	ErrInvalidContentID = errors.New("invalid content id")

	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrLoginExists       = errors.New("login already exists")
	ErrBadRequest        = errors.New("bad request")
)
