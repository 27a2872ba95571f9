package store

import (
	"context"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/store_client_mock.go -package=mock

// SessionRepository keeps the CLI's single logged-in session.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
