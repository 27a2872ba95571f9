package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func TestSessionRepository(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}
	storages, err := NewClientStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	repo := storages.SessionRepository
	ctx := testContext()

	_, err = repo.GetSession(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	first := models.Session{Login: "alice", AccountID: 1, Token: "t1", LedgerURL: "http://localhost:8080", UpdatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.SaveSession(ctx, first))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Login, got.Login)
	assert.Equal(t, first.Token, got.Token)
	assert.True(t, first.UpdatedAt.Equal(got.UpdatedAt))

	second := models.Session{Login: "bob", AccountID: 2, Token: "t2", LedgerURL: "http://localhost:8080"}
	require.NoError(t, repo.SaveSession(ctx, second))

	got, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Login)
	assert.Equal(t, int64(2), got.AccountID)

	require.NoError(t, repo.ClearSession(ctx))
	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}
