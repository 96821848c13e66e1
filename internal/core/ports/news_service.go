package ports

import (
	"context"
	"encoding/json"
)

// NewsService relays third-party headlines verbatim.
type NewsService interface {
	TopHeadlines(ctx context.Context) (json.RawMessage, error)
}
