package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNotLoggedIn        = errors.New("not logged in: run login first")
	ErrRegisterOnServer   = errors.New("registration on ledger failed")
	ErrLoginOnServer      = errors.New("login on ledger failed")
	ErrInvalidMetadata    = errors.New("metadata document has no encrypted_content pointer")
	ErrPasswordRequired   = errors.New("password is required for the detached envelope shape")
	ErrEmptyAssetContents = errors.New("asset file is empty")
)
