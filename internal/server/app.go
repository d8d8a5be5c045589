// Package server wires the remote sink: PostgreSQL for operation records,
// S3-compatible storage for images, and the gRPC endpoint the field clients
// deliver to.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/farmsync/internal/logging"
	"github.com/dmitrijs2005/farmsync/internal/server/config"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/farmsync/internal/server/services"
	"github.com/dmitrijs2005/farmsync/internal/server/shared/db"
	"github.com/dmitrijs2005/farmsync/internal/server/storage"

	gs "github.com/dmitrijs2005/farmsync/internal/server/grpc"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	operationService *services.OperationService
	plotService      *services.PlotService
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	conn, err := db.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	objects, err := storage.NewS3Store(ctx, c)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("object storage init error: %w", err)
	}
	if err := objects.EnsureBucket(ctx, c.S3Bucket); err != nil {
		logger.Warn(ctx, "bucket check failed, uploads may fail", "bucket", c.S3Bucket, "error", err)
	}

	ps := services.NewPlotService(conn, rm, logger)
	if c.PlotsFile != "" {
		plots, err := services.LoadCatalog(c.PlotsFile)
		if err == nil {
			err = ps.Import(ctx, plots)
		}
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return &App{
		config:           c,
		logger:           logger,
		db:               conn,
		operationService: services.NewOperationService(conn, rm, objects, logger),
		plotService:      ps,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.operationService, app.plotService, app.config.S3Bucket)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
