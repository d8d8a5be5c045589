package operations

import (
	"context"

	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

// Repository defines persistence operations for field operations.
type Repository interface {
	// Insert stores op unless a row with the same idempotency key exists, and
	// returns the stored row either way. created reports whether op was new.
	Insert(ctx context.Context, op *models.Operation) (stored *models.Operation, created bool, err error)
	GetByIdempotencyKey(ctx context.Context, key string) (*models.Operation, error)
}
