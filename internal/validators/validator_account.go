package validators

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// AccountValidator checks register and login requests.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ParamsRequest:
		return validateLogin(value.Login)
	case *models.ParamsRequest:
		return validateLogin(value.Login)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldAuthHash, FieldEncryptionSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(req.Login); err != nil {
				return err
			}
		case FieldAuthHash:
			if !isHex(req.AuthHash) {
				return ErrInvalidAuthHash
			}
		case FieldEncryptionSalt:
			if !isHex(req.EncryptionSalt) {
				return ErrInvalidEncryptionSalt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldAuthHash}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(req.Login); err != nil {
				return err
			}
		case FieldAuthHash:
			if !isHex(req.AuthHash) {
				return ErrInvalidAuthHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLogin(login string) error {
	if login == "" {
		return ErrEmptyLogin
	}
	if len(login) > MaxLoginLen || strings.ContainsAny(login, " \t\r\n") {
		return ErrInvalidLogin
	}
	return nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
