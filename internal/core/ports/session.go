package ports

import (
	"context"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// SessionStore keeps session state keyed by handle.
type SessionStore interface {
	Put(ctx context.Context, s domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired handles.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is a no-op for unknown handles.
	Delete(ctx context.Context, id string) error
}

// SessionService manages per-client authentication state.
type SessionService interface {
	Create(ctx context.Context, email string) (*domain.Session, error)
	Status(ctx context.Context, handle string) domain.SessionStatus
	Destroy(ctx context.Context, handle string) error
}
