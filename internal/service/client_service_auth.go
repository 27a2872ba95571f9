package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.LedgerAdapter
	crypto    crypto.KeyChainService
	ledgerURL string
	logger    *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, ledgerAdapter adapter.LedgerAdapter, keyChain crypto.KeyChainService, ledgerURL string, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   ledgerAdapter,
		crypto:    keyChain,
		ledgerURL: ledgerURL,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, login, password, name string) (models.Session, error) {
	if strings.TrimSpace(password) == "" {
		return models.Session{}, fmt.Errorf("%w: empty password", ErrInvalidDataProvided)
	}

	salt, err := a.crypto.GenerateSalt()
	if err != nil {
		return models.Session{}, fmt.Errorf("error generating salt: %w", err)
	}

	accountKey := a.crypto.DeriveAccountKey(password, salt)
	authHash := a.crypto.AuthHash(accountKey, crypto.AuthDomain)

	auth, err := a.adapter.Register(ctx, models.RegisterRequest{
		Login:          login,
		Name:           name,
		AuthHash:       hex.EncodeToString(authHash),
		EncryptionSalt: hex.EncodeToString(salt),
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return a.saveSession(ctx, auth)
}

// Login fetches the account salt, re-derives the auth hash and proves it
// to the ledger. A rejected proof is reported as ErrWrongPassword.
func (a *clientAuthService) Login(ctx context.Context, login, password string) (models.Session, error) {
	params, err := a.adapter.Params(ctx, models.ParamsRequest{Login: login})
	if err != nil {
		return models.Session{}, a.loginError(err)
	}

	salt, err := hex.DecodeString(params.EncryptionSalt)
	if err != nil {
		return models.Session{}, fmt.Errorf("decode encryption salt: %w", err)
	}

	accountKey := a.crypto.DeriveAccountKey(password, salt)
	authHash := a.crypto.AuthHash(accountKey, crypto.AuthDomain)

	auth, err := a.adapter.Login(ctx, models.LoginRequest{
		Login:    login,
		AuthHash: hex.EncodeToString(authHash),
	})
	if err != nil {
		return models.Session{}, a.loginError(err)
	}

	return a.saveSession(ctx, auth)
}

func (a *clientAuthService) loginError(err error) error {
	if errors.Is(err, adapter.ErrUnauthenticated) {
		return ErrWrongPassword
	}
	return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
}

func (a *clientAuthService) saveSession(ctx context.Context, auth models.AuthResponse) (models.Session, error) {
	session := models.Session{
		Login:     auth.Login,
		AccountID: auth.AccountID,
		Token:     a.adapter.Token(),
		LedgerURL: a.ledgerURL,
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Str("login", session.Login).Int64("account_id", session.AccountID).Msg("session saved")
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if a.ledgerURL != "" && session.LedgerURL != "" && session.LedgerURL != a.ledgerURL {
		a.logger.Warn().Str("saved", session.LedgerURL).Str("configured", a.ledgerURL).Msg("session belongs to another ledger")
		return models.Session{}, ErrNotLoggedIn
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}
