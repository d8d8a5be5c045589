// Package remote talks to the remote sink over gRPC.
package remote

import (
	"context"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
)

// Sink is the remote side of the operation pipeline.
type Sink interface {
	// UploadAttachment stores data under bucket/key and returns its public URL.
	UploadAttachment(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
	// InsertOperation writes rec; a repeated idempotency key returns the stored row.
	InsertOperation(ctx context.Context, rec *models.OperationRecord) (*models.Operation, error)
	ListPlots(ctx context.Context) ([]*models.Plot, error)
	Probe(ctx context.Context) error
	Close() error
}
