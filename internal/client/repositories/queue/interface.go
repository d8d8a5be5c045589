package queue

import (
	"context"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
)

type Repository interface {
	Enqueue(ctx context.Context, in *models.QueuedOperationInput) (int64, error)
	ListAll(ctx context.Context) ([]*models.QueuedOperation, error)
	Get(ctx context.Context, localID int64) (*models.QueuedOperation, error)
	UpdateStatus(ctx context.Context, localID int64, patch models.StatusPatch) error
	Remove(ctx context.Context, localID int64) error
	Purge(ctx context.Context, localID int64) error
	Count(ctx context.Context) (int, error)
	ResetFailed(ctx context.Context) (int, error)
}
