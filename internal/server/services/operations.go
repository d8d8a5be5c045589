// Package services holds the remote sink's business logic: validating and
// storing operations, keeping images and serving the plot catalog.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
	"github.com/dmitrijs2005/farmsync/internal/server/models"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/repomanager"
)

const (
	MaxNotesLength     = 4096
	MaxAttachmentBytes = common.MaxAttachmentSize
)

// ObjectStore keeps attachment bytes and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}

type OperationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	objects     ObjectStore
	log         logging.Logger
	newID       func() string
}

func NewOperationService(db *sql.DB, rm repomanager.RepositoryManager, objects ObjectStore, log logging.Logger) *OperationService {
	return &OperationService{
		db:          db,
		repomanager: rm,
		objects:     objects,
		log:         log.With("module", "operations"),
		newID:       uuid.NewString,
	}
}

// Insert stores op. A repeated idempotency key returns the row stored by the
// first delivery instead of creating a duplicate.
func (s *OperationService) Insert(ctx context.Context, op *models.Operation) (*models.Operation, error) {
	if err := validateOperation(op); err != nil {
		return nil, err
	}

	row := *op
	row.ID = s.newID()
	row.OccurredAt = op.OccurredAt.UTC()

	stored, created, err := s.repomanager.Operations(s.db).Insert(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("insert operation: %w", err)
	}
	if created {
		s.log.Info(ctx, "operation stored", "id", stored.ID, "plot_id", stored.PlotID, "type", stored.Type)
	} else {
		s.log.Info(ctx, "duplicate delivery", "id", stored.ID, "idempotency_key", stored.IdempotencyKey)
	}
	return stored, nil
}

// UploadAttachment stores an image and returns its public URL.
func (s *OperationService) UploadAttachment(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	if err := validateObject(bucket, key, data); err != nil {
		return "", err
	}
	url, err := s.objects.Put(ctx, bucket, key, data, contentType)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "attachment stored", "bucket", bucket, "key", key, "size", len(data))
	return url, nil
}

func validateOperation(op *models.Operation) error {
	switch {
	case strings.TrimSpace(op.IdempotencyKey) == "":
		return fmt.Errorf("%w: idempotency key is required", common.ErrValidation)
	case strings.TrimSpace(op.PlotID) == "":
		return fmt.Errorf("%w: plot id is required", common.ErrValidation)
	case op.OccurredAt.IsZero():
		return fmt.Errorf("%w: occurred_at is required", common.ErrValidation)
	case len(op.Notes) > MaxNotesLength:
		return fmt.Errorf("%w: notes exceed %d bytes", common.ErrValidation, MaxNotesLength)
	}
	if _, ok := models.OperationTypes[op.Type]; !ok {
		return fmt.Errorf("%w: %w: %q", common.ErrValidation, common.ErrInvalidOperationType, op.Type)
	}
	if op.OccurredAt.After(time.Now().Add(24 * time.Hour)) {
		return fmt.Errorf("%w: occurred_at is in the future", common.ErrValidation)
	}
	return nil
}

func validateObject(bucket, key string, data []byte) error {
	switch {
	case bucket == "":
		return fmt.Errorf("%w: bucket is required", common.ErrValidation)
	case key == "" || strings.HasPrefix(key, "/"):
		return fmt.Errorf("%w: invalid object key %q", common.ErrValidation, key)
	case len(data) == 0:
		return fmt.Errorf("%w: attachment is empty", common.ErrValidation)
	case len(data) > MaxAttachmentBytes:
		return fmt.Errorf("%w: attachment exceeds %d bytes", common.ErrValidation, MaxAttachmentBytes)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: invalid object key %q", common.ErrValidation, key)
		}
	}
	return nil
}
