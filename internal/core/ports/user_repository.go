package ports

import (
	"context"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// UserRepository defines keyed access to user records.
type UserRepository interface {
	// All returns every record in insertion order.
	All(ctx context.Context) ([]domain.UserRecord, error)
	// FindByEmail returns domain.ErrUserNotFound when no record matches exactly.
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	// Create inserts the record if its email is absent, otherwise it returns
	// domain.ErrDuplicateEmail without modifying the store.
	Create(ctx context.Context, user *domain.UserRecord) error
}
