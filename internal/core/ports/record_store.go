package ports

import (
	"context"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// RecordStore persists the whole user collection as a single unit.
type RecordStore interface {
	// Load returns every persisted record, or an empty collection when nothing
	// has been saved yet. Unparseable data yields an error wrapping
	// domain.ErrStorageCorrupt.
	Load(ctx context.Context) (domain.RecordCollection, error)
	// Save atomically replaces the persisted collection.
	Save(ctx context.Context, records domain.RecordCollection) error
}
