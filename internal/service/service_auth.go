package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/utils"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/validators"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// authService registers accounts, checks login proofs and issues bearer
// tokens. The client never sends its password: it sends an auth hash
// derived from it, and the ledger stores only an HMAC of that hash.
type authService struct {
	accountRepository store.AccountRepository
	validator         validators.Validator

	// hashKey is the HMAC secret applied to auth hashes before they are
	// stored or compared.
	hashKey string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		validator:         validators.NewAccountValidator(),
		hashKey:           cfg.PasswordHashKey,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates an account. A taken login yields an error matching
// store.ErrLoginAlreadyExists.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("login", req.Login).Msg("invalid register request")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Login:          req.Login,
		Name:           req.Name,
		AuthHash:       utils.HashString(req.AuthHash, a.hashKey),
		EncryptionSalt: req.EncryptionSalt,
	})
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("account_id", account.AccountID).Str("login", account.Login).Msg("account registered")
	return account, nil
}

// Params returns the public salt the client needs to derive its auth hash.
func (a *authService) Params(ctx context.Context, req models.ParamsRequest) (models.ParamsResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.ParamsResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindAccountByLogin(ctx, req.Login)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("account search by login failed")
		return models.ParamsResponse{}, fmt.Errorf("account search by login failed: %w", err)
	}

	return models.ParamsResponse{EncryptionSalt: account.EncryptionSalt}, nil
}

// Login checks the auth hash. An unknown login and a wrong hash both yield
// ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindAccountByLogin(ctx, req.Login)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Warn().Str("login", req.Login).Msg("login for unknown account")
		return models.Account{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("account search by login failed")
		return models.Account{}, fmt.Errorf("account search by login failed: %w", err)
	}

	if !utils.EqualHashes(utils.HashString(req.AuthHash, a.hashKey), account.AuthHash) {
		log.Warn().Int64("account_id", account.AccountID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

// CreateToken issues a signed JWT whose subject is the account id.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Every failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
