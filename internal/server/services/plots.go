package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/dbx"
	"github.com/dmitrijs2005/farmsync/internal/logging"
	"github.com/dmitrijs2005/farmsync/internal/server/models"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/repomanager"
)

type PlotService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewPlotService(db *sql.DB, rm repomanager.RepositoryManager, log logging.Logger) *PlotService {
	return &PlotService{db: db, repomanager: rm, log: log.With("module", "plots")}
}

func (s *PlotService) List(ctx context.Context) ([]*models.Plot, error) {
	plots, err := s.repomanager.Plots(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plots: %w", err)
	}
	return plots, nil
}

// Import upserts plots in one transaction.
func (s *PlotService) Import(ctx context.Context, plots []*models.Plot) error {
	for _, p := range plots {
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: plot id and name are required", common.ErrValidation)
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Plots(tx)
		for _, p := range plots {
			if err := repo.Upsert(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import plots: %w", err)
	}

	s.log.Info(ctx, "plots imported", "count", len(plots))
	return nil
}
