package ports

import (
	"context"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// DirectoryService serves the public advocate listing.
type DirectoryService interface {
	ListAdvocates(ctx context.Context) ([]domain.AdvocateSummary, error)
}
