package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/farmsync/internal/client/config"
	"github.com/dmitrijs2005/farmsync/internal/client/connectivity"
	"github.com/dmitrijs2005/farmsync/internal/client/remote"
	"github.com/dmitrijs2005/farmsync/internal/client/services"
	"github.com/dmitrijs2005/farmsync/internal/client/store"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *store.Store
	sink    remote.Sink
	monitor *connectivity.Monitor
	sync    *services.SyncCoordinator
	ops     *services.OperationService
	plots   *services.PlotService

	scanner *bufio.Scanner
	out     io.Writer
	styles  styles

	bannerMu    sync.Mutex
	showSuccess bool
	wasOnline   bool
}

// NewApp opens the local store and prepares the remote sink. When the store
// cannot be opened the client keeps working on an in-memory store, so queued
// operations do not survive a restart.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		if !errors.Is(err, common.ErrStorageUnavailable) {
			return nil, err
		}
		log.Warn(ctx, "local storage unavailable, queued operations will not survive a restart", "error", err)
		if st, err = store.Open(ctx, ":memory:"); err != nil {
			return nil, err
		}
	}

	sink, err := remote.NewGRPCSink(cfg.ServerEndpointAddr)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	app, err := newApp(ctx, cfg, log, st, sink, os.Stdin, os.Stdout)
	if err != nil {
		_ = sink.Close()
		_ = st.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.Config, log logging.Logger, st *store.Store, sink remote.Sink,
	in io.Reader, out io.Writer) (*App, error) {

	monitor := connectivity.NewMonitor(sink, cfg.OnlineCheckInterval, cfg.ProbeTimeout, log)

	opts := services.SyncOptions{
		AttachmentBucket:   cfg.AttachmentBucket,
		RemoteCallTimeout:  cfg.RemoteCallTimeout,
		SyncSuccessDisplay: cfg.SyncSuccessDisplay,
		Retry: services.RetryPolicy{
			MaxRetries: cfg.MaxRetries,
			Base:       cfg.BackoffBase,
			Max:        cfg.BackoffMax,
		},
	}

	coordinator, err := services.NewSyncCoordinator(ctx, st.Queue(), sink, st.AppState(), st.Operations(), monitor, opts, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		log:     log.With("module", "cli"),
		store:   st,
		sink:    sink,
		monitor: monitor,
		sync:    coordinator,
		ops:     services.NewOperationService(st.Queue(), sink, st.Operations(), monitor, coordinator, opts, log),
		plots:   services.NewPlotService(sink, st.Plots(), monitor, cfg.RemoteCallTimeout, log),
		scanner: bufio.NewScanner(in),
		out:     &lockedWriter{w: out},
		styles:  newStyles(out),
	}, nil
}

// Run starts connectivity polling and the sync coordinator, then blocks in
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer a.close(cancel)

	unsubscribe := a.sync.Subscribe(a.onSyncState)
	defer unsubscribe()

	a.monitor.Check(ctx)
	go a.monitor.Start(ctx)
	a.sync.Start(ctx)

	fmt.Fprintln(a.out, a.styles.title.Render("farmsync field log")+" (type 'help' for commands)")
	if !a.monitor.IsOnline() {
		fmt.Fprintln(a.out, a.offlineBanner())
	}

	runREPL(ctx, a, a.status, a.scanner)
}

func (a *App) close(cancel context.CancelFunc) {
	cancel()
	a.sync.Close()
	if err := a.sink.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close remote sink", "error", err)
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close local store", "error", err)
	}
}

func (a *App) status() string {
	s := a.sync.State()
	if !s.IsOnline {
		if s.Pending > 0 {
			return fmt.Sprintf("(offline, %d pending)", s.Pending)
		}
		return "(offline)"
	}
	if s.IsSyncing {
		return "(online, syncing)"
	}
	if s.Pending > 0 {
		return fmt.Sprintf("(online, %d pending)", s.Pending)
	}
	return "(online)"
}

// onSyncState prints banners on the edges of the transient success flag and
// when connectivity drops with operations still queued.
func (a *App) onSyncState(s services.SyncState) {
	a.bannerMu.Lock()
	defer a.bannerMu.Unlock()

	if s.SyncSuccess && !a.showSuccess {
		fmt.Fprintln(a.out, a.successBanner(s))
	}
	if a.wasOnline && !s.IsOnline && s.Pending > 0 {
		fmt.Fprintln(a.out, a.offlineBanner())
	}
	a.showSuccess = s.SyncSuccess
	a.wasOnline = s.IsOnline
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
