// Package plots provides the PostgreSQL-backed plot catalog.
package plots

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmsync/internal/dbx"
	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every plot ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Plot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, crop, area_ha, updated_at FROM plots ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select plots: %w", err)
	}
	defer rows.Close()

	var result []*models.Plot
	for rows.Next() {
		var p models.Plot
		if err := rows.Scan(&p.ID, &p.Name, &p.Crop, &p.AreaHa, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Plot) error {
	query := `
		INSERT INTO plots (id, name, crop, area_ha, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, crop = EXCLUDED.crop, area_ha = EXCLUDED.area_ha, updated_at = now();
	`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Crop, p.AreaHa); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
