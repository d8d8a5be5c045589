package plots

import (
	"context"

	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

// Repository defines read access to the plot catalog.
type Repository interface {
	List(ctx context.Context) ([]*models.Plot, error)
	Upsert(ctx context.Context, p *models.Plot) error
}
