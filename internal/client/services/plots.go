package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/client/remote"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
)

type PlotCache interface {
	ReplaceAll(ctx context.Context, plots []*models.Plot) error
	Get(ctx context.Context, id string) (*models.Plot, error)
	List(ctx context.Context) ([]*models.Plot, error)
}

// PlotService serves the plot catalog from the local cache and refreshes it
// from the remote sink when online.
type PlotService struct {
	sink    remote.Sink
	cache   PlotCache
	online  OnlineChecker
	timeout time.Duration
	log     logging.Logger
}

func NewPlotService(sink remote.Sink, cache PlotCache, online OnlineChecker, timeout time.Duration, log logging.Logger) *PlotService {
	return &PlotService{sink: sink, cache: cache, online: online, timeout: timeout, log: log.With("module", "plots")}
}

// Refresh replaces the cache with the remote catalog and returns its size.
func (s *PlotService) Refresh(ctx context.Context) (int, error) {
	if !s.online.IsOnline() {
		return 0, common.ErrOffline
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	plots, err := s.sink.ListPlots(ctx)
	if err != nil {
		return 0, fmt.Errorf("list plots: %w", err)
	}
	if err := s.cache.ReplaceAll(ctx, plots); err != nil {
		return 0, fmt.Errorf("cache plots: %w", err)
	}

	s.log.Info(ctx, "plot catalog refreshed", "count", len(plots))
	return len(plots), nil
}

func (s *PlotService) List(ctx context.Context) ([]*models.Plot, error) {
	return s.cache.List(ctx)
}

func (s *PlotService) Get(ctx context.Context, id string) (*models.Plot, error) {
	return s.cache.Get(ctx, id)
}
