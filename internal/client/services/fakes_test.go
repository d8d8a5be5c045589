package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/farmsync/internal/client/connectivity"
	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/client/store"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
)

type upload struct {
	bucket, key, contentType string
	data                     []byte
}

type fakeSink struct {
	mu      sync.Mutex
	inserts []*models.OperationRecord
	uploads []upload

	rejectPlot string
	insertErr  error
	uploadErr  error
	plots      []*models.Plot
	listErr    error

	// block makes InsertOperation wait until closed or the call context ends.
	block   chan struct{}
	started chan struct{}
}

func (f *fakeSink) UploadAttachment(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, upload{bucket: bucket, key: key, contentType: contentType, data: data})
	return "http://objects/" + bucket + "/" + key, nil
}

func (f *fakeSink) InsertOperation(ctx context.Context, rec *models.OperationRecord) (*models.Operation, error) {
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if f.rejectPlot != "" && rec.PlotID == f.rejectPlot {
		return nil, errors.New("plot does not exist")
	}
	f.inserts = append(f.inserts, rec)
	return &models.Operation{
		ID:             "op-" + rec.IdempotencyKey,
		PlotID:         rec.PlotID,
		Type:           rec.Type,
		Notes:          rec.Notes,
		OccurredAt:     rec.OccurredAt,
		ImageURL:       rec.ImageURL,
		IdempotencyKey: rec.IdempotencyKey,
		CreatedAt:      rec.OccurredAt,
	}, nil
}

func (f *fakeSink) ListPlots(ctx context.Context) ([]*models.Plot, error) {
	return f.plots, f.listErr
}

func (f *fakeSink) Probe(ctx context.Context) error { return nil }
func (f *fakeSink) Close() error                    { return nil }

func (f *fakeSink) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserts)
}

func (f *fakeSink) setInsertErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertErr = err
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type env struct {
	path  string
	store *store.Store
	sink  *fakeSink
	mon   *connectivity.Monitor
	clock *fakeClock
	opts  SyncOptions
}

func defaultOptions() SyncOptions {
	return SyncOptions{
		AttachmentBucket:   "operation-images",
		RemoteCallTimeout:  5 * time.Second,
		SyncSuccessDisplay: time.Minute,
	}
}

func newEnv(t *testing.T, opts SyncOptions) *env {
	t.Helper()
	path := filepath.Join(t.TempDir(), "farmsync.db")
	s, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	sink := &fakeSink{}
	return &env{
		path:  path,
		store: s,
		sink:  sink,
		mon:   connectivity.NewMonitor(sink, time.Hour, time.Second, logging.NewDiscardLogger()),
		clock: &fakeClock{t: time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)},
		opts:  opts,
	}
}

func (e *env) coordinator(t *testing.T) *SyncCoordinator {
	t.Helper()
	c, err := NewSyncCoordinator(context.Background(), e.store.Queue(), e.sink, e.store.AppState(),
		e.store.Operations(), e.mon, e.opts, logging.NewDiscardLogger())
	require.NoError(t, err)
	c.now = e.clock.Now
	t.Cleanup(c.Close)
	return c
}

func (e *env) operations(c PendingRefresher) *OperationService {
	s := NewOperationService(e.store.Queue(), e.sink, e.store.Operations(), e.mon, c, e.opts, logging.NewDiscardLogger())
	s.now = e.clock.Now
	return s
}

func (e *env) enqueue(t *testing.T, plotID string, typ models.OperationType, notes string) int64 {
	t.Helper()
	id, err := e.store.Queue().Enqueue(context.Background(), &models.QueuedOperationInput{
		PlotID: plotID, Type: typ, Notes: notes, OccurredAt: e.clock.Now(),
	})
	require.NoError(t, err)
	return id
}

func (e *env) queued(t *testing.T) []*models.QueuedOperation {
	t.Helper()
	all, err := e.store.Queue().ListAll(context.Background())
	require.NoError(t, err)
	return all
}

var errRejected = errors.Join(common.ErrRemoteWriteFailed, errors.New("rejected"))
