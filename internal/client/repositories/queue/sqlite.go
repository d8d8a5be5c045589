package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/dbx"
	"github.com/google/uuid"
)

const timeLayout = time.RFC3339Nano

const selectColumns = `local_id, idempotency_key, plot_id, operation_type, notes, occurred_at,
	has_attachment, attachment, attachment_content_type, attachment_file_name,
	status, error, retry_count, retry_base, next_attempt_at, created_at`

// SQLiteRepository implements Repository over the operations_queue table.
type SQLiteRepository struct {
	db     dbx.DBTX
	now    func() time.Time
	newKey func() string
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now, newKey: uuid.NewString}
}

// Enqueue persists in as a pending entry and returns the assigned local id.
// A zero OccurredAt is replaced by the capture time.
func (r *SQLiteRepository) Enqueue(ctx context.Context, in *models.QueuedOperationInput) (int64, error) {
	now := r.now().UTC()
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	key := in.IdempotencyKey
	if key == "" {
		key = r.newKey()
	}

	var (
		hasAttachment bool
		data          any
		contentType   string
		fileName      string
	)
	if in.Attachment != nil {
		hasAttachment = true
		data = in.Attachment.Data
		contentType = in.Attachment.ContentType
		fileName = in.Attachment.FileName
	}

	query := `INSERT INTO operations_queue (idempotency_key, plot_id, operation_type, notes, occurred_at,
			has_attachment, attachment, attachment_content_type, attachment_file_name,
			status, retry_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`

	res, err := r.db.ExecContext(ctx, query,
		key, in.PlotID, string(in.Type), in.Notes, formatTime(occurredAt.UTC()),
		hasAttachment, data, contentType, fileName,
		string(models.QueueStatusPending), formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read local id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]*models.QueuedOperation, error) {
	query := `SELECT ` + selectColumns + ` FROM operations_queue ORDER BY local_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select queued operations: %w", err)
	}
	defer rows.Close()

	var result []*models.QueuedOperation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, localID int64) (*models.QueuedOperation, error) {
	query := `SELECT ` + selectColumns + ` FROM operations_queue WHERE local_id = ?`
	op, err := scanOperation(r.db.QueryRowContext(ctx, query, localID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("queued operation %d: %w", localID, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

// UpdateStatus merges patch into the entry. Unset patch fields are kept.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, localID int64, patch models.StatusPatch) error {
	var (
		sets []string
		args []any
	)

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return fmt.Errorf("%w: unknown queue status %q", common.ErrValidation, *patch.Status)
		}
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Error != nil {
		sets = append(sets, "error = ?")
		args = append(args, *patch.Error)
	}
	if patch.RetryCount != nil {
		sets = append(sets, "retry_count = MAX(retry_count, ?)")
		args = append(args, *patch.RetryCount)
	}
	if patch.NextAttemptAt != nil {
		sets = append(sets, "next_attempt_at = ?")
		args = append(args, formatTime(*patch.NextAttemptAt))
	}

	if len(sets) == 0 {
		_, err := r.Get(ctx, localID)
		return err
	}

	query := `UPDATE operations_queue SET ` + strings.Join(sets, ", ") + ` WHERE local_id = ?`
	args = append(args, localID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update queued operation %d: %w", localID, err)
	}
	n, err := dbx.AffectedRows(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("queued operation %d: %w", localID, common.ErrNotFound)
	}
	return nil
}

// Remove deletes the entry; removing an absent id is not an error.
func (r *SQLiteRepository) Remove(ctx context.Context, localID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM operations_queue WHERE local_id = ?`, localID); err != nil {
		return fmt.Errorf("failed to remove queued operation %d: %w", localID, err)
	}
	return nil
}

// Purge drops an entry the user gave up on. Same effect as Remove.
func (r *SQLiteRepository) Purge(ctx context.Context, localID int64) error {
	return r.Remove(ctx, localID)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operations_queue`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count queued operations: %w", err)
	}
	return n, nil
}

// ResetFailed returns failed entries to pending with a fresh retry budget.
// retry_count is kept; retry_base moves up to it.
func (r *SQLiteRepository) ResetFailed(ctx context.Context) (int, error) {
	query := `UPDATE operations_queue
		SET status = ?, error = '', retry_base = retry_count, next_attempt_at = ''
		WHERE status = ?`
	res, err := r.db.ExecContext(ctx, query, string(models.QueueStatusPending), string(models.QueueStatusFailed))
	if err != nil {
		return 0, fmt.Errorf("failed to reset failed operations: %w", err)
	}
	n, err := dbx.AffectedRows(res)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOperation(s scanner) (*models.QueuedOperation, error) {
	var (
		op            models.QueuedOperation
		opType        string
		status        string
		occurredAt    string
		nextAttemptAt string
		createdAt     string
		hasAttachment bool
		data          []byte
		contentType   string
		fileName      string
	)

	err := s.Scan(&op.LocalID, &op.IdempotencyKey, &op.PlotID, &opType, &op.Notes, &occurredAt,
		&hasAttachment, &data, &contentType, &fileName,
		&status, &op.Error, &op.RetryCount, &op.RetryBase, &nextAttemptAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan queued operation: %w", err)
	}

	op.Type = models.OperationType(opType)
	op.Status = models.QueueStatus(status)

	if hasAttachment {
		if data == nil {
			data = []byte{}
		}
		op.Attachment = &models.Attachment{Data: data, ContentType: contentType, FileName: fileName}
	}

	if op.OccurredAt, err = parseTime(occurredAt); err != nil {
		return nil, fmt.Errorf("queued operation %d occurred_at: %w", op.LocalID, err)
	}
	if op.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("queued operation %d created_at: %w", op.LocalID, err)
	}
	if op.NextAttemptAt, err = parseTime(nextAttemptAt); err != nil {
		return nil, fmt.Errorf("queued operation %d next_attempt_at: %w", op.LocalID, err)
	}

	return &op, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, s)
}
