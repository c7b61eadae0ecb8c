package repositories

import (
	"context"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
)

// AccountDefaultReader defines read operations for account default mappings.
// The resolver caches results; implementations do not.
type AccountDefaultReader interface {
	// FindAccountDefaults retrieves every configured account default,
	// active or not. Filtering is the resolver's job.
	FindAccountDefaults(ctx context.Context) ([]domain.AccountDefault, error)
}
