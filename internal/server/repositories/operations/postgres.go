// Package operations provides the PostgreSQL-backed repository for
// operations delivered by field clients.
package operations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/dbx"
	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

// PostgresRepository implements operation storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, op *models.Operation) (*models.Operation, bool, error) {
	query := `
		INSERT INTO operations (id, idempotency_key, plot_id, type, notes, occurred_at, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (idempotency_key) DO NOTHING;
	`
	res, err := r.db.ExecContext(ctx, query,
		op.ID, op.IdempotencyKey, op.PlotID, op.Type, op.Notes, op.OccurredAt, op.ImageURL)
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	n, err := dbx.AffectedRows(res)
	if err != nil {
		return nil, false, err
	}

	stored, err := r.GetByIdempotencyKey(ctx, op.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	return stored, n == 1, nil
}

func (r *PostgresRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.Operation, error) {
	query := `SELECT id, idempotency_key, plot_id, type, notes, occurred_at, image_url, created_at
		FROM operations WHERE idempotency_key = $1`

	var op models.Operation
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&op.ID, &op.IdempotencyKey, &op.PlotID, &op.Type, &op.Notes, &op.OccurredAt, &op.ImageURL, &op.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("operation %q: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select operation: %w", err)
	}
	return &op, nil
}
