package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/mock"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

const testLedgerURL = "localhost:8080"

// newTestClientAuth создаёт clientAuthService с моками
func newTestClientAuth(t *testing.T) (
	ClientAuthService,
	*mock.MockLedgerAdapter,
	*mock.MockKeyChainService,
	*mock.MockSessionRepository,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedgerAdapter(ctrl)
	keyChain := mock.NewMockKeyChainService(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	return NewClientAuthService(sessions, ledger, keyChain, testLedgerURL, logger.Nop()), ledger, keyChain, sessions
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, ledger, keyChain, sessions := newTestClientAuth(t)
	ctx := context.Background()

	salt := []byte("random-salt-16bb")
	accountKey := []byte("derived-account-key")
	authHash := []byte("auth-hash-bytes")

	gomock.InOrder(
		keyChain.EXPECT().GenerateSalt().Return(salt, nil),
		keyChain.EXPECT().DeriveAccountKey("s3cret", salt).Return(accountKey),
		keyChain.EXPECT().AuthHash(accountKey, crypto.AuthDomain).Return(authHash),
		ledger.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
				assert.Equal(t, "alice", req.Login)
				assert.Equal(t, hex.EncodeToString(salt), req.EncryptionSalt)
				assert.Equal(t, hex.EncodeToString(authHash), req.AuthHash)
				return models.AuthResponse{AccountID: 5, Login: "alice"}, nil
			},
		),
		ledger.EXPECT().Token().Return("jwt"),
		sessions.EXPECT().SaveSession(ctx, models.Session{Login: "alice", AccountID: 5, Token: "jwt", LedgerURL: testLedgerURL}).Return(nil),
	)

	session, err := svc.Register(ctx, "alice", "s3cret", "Alice")

	require.NoError(t, err)
	assert.Equal(t, int64(5), session.AccountID)
}

func TestClientAuthService_Register_EmptyPassword(t *testing.T) {
	svc, _, _, _ := newTestClientAuth(t)

	_, err := svc.Register(context.Background(), "alice", " ", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Register_LoginExists(t *testing.T) {
	svc, ledger, keyChain, _ := newTestClientAuth(t)
	ctx := context.Background()

	keyChain.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	keyChain.EXPECT().DeriveAccountKey(gomock.Any(), gomock.Any()).Return([]byte("k"))
	keyChain.EXPECT().AuthHash(gomock.Any(), gomock.Any()).Return([]byte("h"))
	ledger.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{}, adapter.ErrLoginExists)

	_, err := svc.Register(ctx, "alice", "pw", "")

	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, adapter.ErrLoginExists)
}

func TestClientAuthService_Register_SaltError(t *testing.T) {
	svc, _, keyChain, _ := newTestClientAuth(t)

	keyChain.EXPECT().GenerateSalt().Return(nil, errors.New("entropy exhausted"))

	_, err := svc.Register(context.Background(), "alice", "pw", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error generating salt")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, ledger, keyChain, sessions := newTestClientAuth(t)
	ctx := context.Background()

	salt := []byte{0x01, 0x02, 0x03}
	gomock.InOrder(
		ledger.EXPECT().Params(ctx, models.ParamsRequest{Login: "alice"}).Return(models.ParamsResponse{EncryptionSalt: "010203"}, nil),
		keyChain.EXPECT().DeriveAccountKey("pw", salt).Return([]byte("k")),
		keyChain.EXPECT().AuthHash([]byte("k"), crypto.AuthDomain).Return([]byte{0xab}),
		ledger.EXPECT().Login(ctx, models.LoginRequest{Login: "alice", AuthHash: "ab"}).Return(models.AuthResponse{AccountID: 5, Login: "alice"}, nil),
		ledger.EXPECT().Token().Return("jwt"),
		sessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
	)

	session, err := svc.Login(ctx, "alice", "pw")

	require.NoError(t, err)
	assert.Equal(t, "jwt", session.Token)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, ledger, keyChain, _ := newTestClientAuth(t)
	ctx := context.Background()

	ledger.EXPECT().Params(ctx, gomock.Any()).Return(models.ParamsResponse{EncryptionSalt: "00"}, nil)
	keyChain.EXPECT().DeriveAccountKey(gomock.Any(), gomock.Any()).Return([]byte("k"))
	keyChain.EXPECT().AuthHash(gomock.Any(), gomock.Any()).Return([]byte("h"))
	ledger.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{}, adapter.ErrUnauthenticated)

	_, err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_LedgerDown(t *testing.T) {
	svc, ledger, _, _ := newTestClientAuth(t)
	ctx := context.Background()

	ledger.EXPECT().Params(ctx, gomock.Any()).Return(models.ParamsResponse{}, adapter.ErrLedgerUnavailable)

	_, err := svc.Login(ctx, "alice", "pw")

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrLedgerUnavailable)
}

func TestClientAuthService_Login_BadSalt(t *testing.T) {
	svc, ledger, _, _ := newTestClientAuth(t)
	ctx := context.Background()

	ledger.EXPECT().Params(ctx, gomock.Any()).Return(models.ParamsResponse{EncryptionSalt: "zz"}, nil)

	_, err := svc.Login(ctx, "alice", "pw")
	assert.Error(t, err)
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore(t *testing.T) {
	svc, ledger, _, sessions := newTestClientAuth(t)
	ctx := context.Background()

	saved := models.Session{Login: "alice", AccountID: 5, Token: "jwt", LedgerURL: testLedgerURL}
	sessions.EXPECT().GetSession(ctx).Return(saved, nil)
	ledger.EXPECT().SetToken("jwt")

	got, err := svc.Restore(ctx)

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestClientAuthService_Restore_NoSession(t *testing.T) {
	svc, _, _, sessions := newTestClientAuth(t)
	ctx := context.Background()

	sessions.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrNoSession)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Restore_OtherLedger(t *testing.T) {
	svc, _, _, sessions := newTestClientAuth(t)
	ctx := context.Background()

	sessions.EXPECT().GetSession(ctx).Return(models.Session{Token: "jwt", LedgerURL: "elsewhere:9000"}, nil)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, ledger, _, sessions := newTestClientAuth(t)
	ctx := context.Background()

	ledger.EXPECT().SetToken("")
	sessions.EXPECT().ClearSession(ctx).Return(nil)

	assert.NoError(t, svc.Logout(ctx))
}
