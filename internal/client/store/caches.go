package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/client/repositories/kv"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/dbx"
)

// AppState holds singleton client values.
type AppState struct {
	repo kv.Repository
}

// LastSyncTime returns the zero time when no drain pass has finished yet.
func (a *AppState) LastSyncTime(ctx context.Context) (time.Time, error) {
	raw, err := a.repo.Get(ctx, common.LastSyncTimeKey)
	if err != nil {
		return time.Time{}, err
	}
	if raw == nil {
		return time.Time{}, nil
	}

	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", common.LastSyncTimeKey, err)
	}
	return t, nil
}

func (a *AppState) SetLastSyncTime(ctx context.Context, t time.Time) error {
	raw, err := json.Marshal(t.UTC())
	if err != nil {
		return err
	}
	return a.repo.Put(ctx, common.LastSyncTimeKey, raw)
}

// PlotCache is the offline copy of the remote plot catalog.
type PlotCache struct {
	db *sql.DB
}

// ReplaceAll swaps the cached catalog in one transaction.
func (c *PlotCache) ReplaceAll(ctx context.Context, plots []*models.Plot) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx, string(PlotsCache))
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for _, p := range plots {
			raw, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("encode plot %s: %w", p.ID, err)
			}
			if err := repo.Put(ctx, p.ID, raw); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *PlotCache) Get(ctx context.Context, id string) (*models.Plot, error) {
	raw, err := kv.NewSQLiteRepository(c.db, string(PlotsCache)).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("plot %s: %w", id, common.ErrNotFound)
	}
	var p models.Plot
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode plot %s: %w", id, err)
	}
	return &p, nil
}

// List returns cached plots sorted by name.
func (c *PlotCache) List(ctx context.Context) ([]*models.Plot, error) {
	all, err := kv.NewSQLiteRepository(c.db, string(PlotsCache)).GetAll(ctx)
	if err != nil {
		return nil, err
	}

	plots := make([]*models.Plot, 0, len(all))
	for id, raw := range all {
		var p models.Plot
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode plot %s: %w", id, err)
		}
		plots = append(plots, &p)
	}
	sort.Slice(plots, func(i, j int) bool {
		if plots[i].Name == plots[j].Name {
			return plots[i].ID < plots[j].ID
		}
		return plots[i].Name < plots[j].Name
	})
	return plots, nil
}

// OperationCache keeps remote operation rows seen by this client.
type OperationCache struct {
	repo kv.Repository
}

func (c *OperationCache) Put(ctx context.Context, op *models.Operation) error {
	raw, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("encode operation %s: %w", op.ID, err)
	}
	return c.repo.Put(ctx, op.ID, raw)
}

// List returns cached operations, most recent occurrence first.
func (c *OperationCache) List(ctx context.Context) ([]*models.Operation, error) {
	all, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ops := make([]*models.Operation, 0, len(all))
	for id, raw := range all {
		var op models.Operation
		if err := json.Unmarshal(raw, &op); err != nil {
			return nil, fmt.Errorf("decode operation %s: %w", id, err)
		}
		ops = append(ops, &op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].OccurredAt.Equal(ops[j].OccurredAt) {
			return ops[i].ID < ops[j].ID
		}
		return ops[i].OccurredAt.After(ops[j].OccurredAt)
	})
	return ops, nil
}
