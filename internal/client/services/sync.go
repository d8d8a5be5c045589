package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/client/remote"
	"github.com/dmitrijs2005/farmsync/internal/client/repositories/queue"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
)

// SyncState is the coordinator's view of the sync pipeline. Only the
// coordinator writes it; observers get copies.
type SyncState struct {
	IsOnline  bool
	IsSyncing bool
	// SyncSuccess is a transient UI flag raised after a drain pass finishes.
	SyncSuccess  bool
	LastSyncTime time.Time
	Pending      int
	LastReport   *SyncReport
}

// SyncReport summarizes one drain pass.
type SyncReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Attempted  int
	Succeeded  int
	Failed     int
	Skipped    int
}

type StateStore interface {
	LastSyncTime(ctx context.Context) (time.Time, error)
	SetLastSyncTime(ctx context.Context, t time.Time) error
}

type OperationCache interface {
	Put(ctx context.Context, op *models.Operation) error
	List(ctx context.Context) ([]*models.Operation, error)
}

// Connectivity is the subset of connectivity.Monitor the coordinator needs.
type Connectivity interface {
	IsOnline() bool
	Subscribe(fn func(online bool)) (unsubscribe func())
}

type SyncOptions struct {
	AttachmentBucket   string
	RemoteCallTimeout  time.Duration
	SyncSuccessDisplay time.Duration
	Retry              RetryPolicy
}

type SyncCoordinator struct {
	queue queue.Repository
	sink  remote.Sink
	state StateStore
	cache OperationCache
	conn  Connectivity
	opts  SyncOptions
	log   logging.Logger
	now   func() time.Time

	// drainMu is held for the whole drain pass.
	drainMu sync.Mutex

	mu           sync.Mutex
	st           SyncState
	subs         map[int]func(SyncState)
	nextSubID    int
	successTimer *time.Timer
	unsubscribe  func()

	wg sync.WaitGroup
}

// NewSyncCoordinator restores the persisted lastSyncTime and the current
// queue size. Call Start to react to connectivity edges.
func NewSyncCoordinator(ctx context.Context, q queue.Repository, sink remote.Sink, state StateStore,
	cache OperationCache, conn Connectivity, opts SyncOptions, log logging.Logger) (*SyncCoordinator, error) {

	last, err := state.LastSyncTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last sync time: %w", err)
	}
	pending, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count queue: %w", err)
	}

	return &SyncCoordinator{
		queue: q,
		sink:  sink,
		state: state,
		cache: cache,
		conn:  conn,
		opts:  opts,
		log:   log.With("module", "sync"),
		now:   time.Now,
		st:    SyncState{IsOnline: conn.IsOnline(), LastSyncTime: last, Pending: pending},
		subs:  map[int]func(SyncState){},
	}, nil
}

// Start subscribes to connectivity edges. Online edges trigger a drain pass
// in the background using ctx; if the client is already online a pass is
// started right away.
func (c *SyncCoordinator) Start(ctx context.Context) {
	unsubscribe := c.conn.Subscribe(func(online bool) { c.onConnectivity(ctx, online) })

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	if c.conn.IsOnline() {
		c.onConnectivity(ctx, true)
	}
}

// Close detaches from the monitor and waits for background passes.
func (c *SyncCoordinator) Close() {
	c.mu.Lock()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.successTimer != nil {
		c.successTimer.Stop()
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *SyncCoordinator) onConnectivity(ctx context.Context, online bool) {
	if !online {
		c.update(func(s *SyncState) {
			s.IsOnline = false
			s.SyncSuccess = false
		}, true)
		return
	}

	// Read the monitor under the state lock: an offline edge racing this
	// call has either already flipped the monitor or will run after us.
	var stillOnline bool
	c.update(func(s *SyncState) {
		s.IsOnline = c.conn.IsOnline()
		stillOnline = s.IsOnline
	}, false)
	if !stillOnline {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if _, err := c.TriggerSync(ctx); err != nil {
			c.log.Error(ctx, "drain pass failed", "error", err)
		}
	}()
}

// State returns a copy of the current sync state.
func (c *SyncCoordinator) State() SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyStateLocked()
}

// Subscribe registers fn for every state change.
func (c *SyncCoordinator) Subscribe(fn func(SyncState)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// RefreshPending re-reads the queue size, e.g. after an enqueue.
func (c *SyncCoordinator) RefreshPending(ctx context.Context) error {
	n, err := c.queue.Count(ctx)
	if err != nil {
		return err
	}
	c.update(func(s *SyncState) { s.Pending = n }, false)
	return nil
}

// TriggerSync runs one drain pass. It returns (nil, nil) without doing
// anything when offline, when another pass is running, or when the queue is
// empty. Per-entry failures are recorded on the entry and never returned.
func (c *SyncCoordinator) TriggerSync(ctx context.Context) (*SyncReport, error) {
	if !c.State().IsOnline {
		return nil, nil
	}
	if !c.drainMu.TryLock() {
		return nil, nil
	}
	defer c.drainMu.Unlock()

	entries, err := c.queue.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot queue: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	report := &SyncReport{StartedAt: c.now()}
	c.update(func(s *SyncState) { s.IsSyncing = true }, false)
	c.log.Info(ctx, "drain pass started", "entries", len(entries))

	for _, e := range entries {
		if !c.State().IsOnline || ctx.Err() != nil {
			report.Skipped++
			continue
		}
		if c.opts.Retry.Exhausted(e.Attempts()) {
			report.Skipped++
			continue
		}
		if !e.NextAttemptAt.IsZero() && e.NextAttemptAt.After(c.now()) {
			report.Skipped++
			continue
		}

		report.Attempted++
		if err := c.deliver(ctx, e); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// removed by someone else since the snapshot
				report.Attempted--
				report.Skipped++
				continue
			}
			report.Failed++
			c.markFailed(ctx, e, err)
			continue
		}
		report.Succeeded++
	}

	c.finalize(ctx, report)
	return report, nil
}

func (c *SyncCoordinator) deliver(ctx context.Context, e *models.QueuedOperation) error {
	syncing := models.QueueStatusSyncing
	noError := ""
	if err := c.queue.UpdateStatus(ctx, e.LocalID, models.StatusPatch{Status: &syncing, Error: &noError}); err != nil {
		return err
	}

	var imageURL string
	if e.Attachment != nil {
		callCtx, cancel := c.callContext(ctx)
		url, err := c.sink.UploadAttachment(callCtx, c.opts.AttachmentBucket, AttachmentKey(e), e.Attachment.Data, e.Attachment.ContentType)
		cancel()
		if err != nil {
			return remoteFailure("upload attachment", err)
		}
		imageURL = url
	}

	callCtx, cancel := c.callContext(ctx)
	op, err := c.sink.InsertOperation(callCtx, e.Record(imageURL))
	cancel()
	if err != nil {
		return remoteFailure("insert operation", err)
	}

	if err := c.queue.Remove(ctx, e.LocalID); err != nil {
		return fmt.Errorf("remove delivered entry: %w", err)
	}

	if err := c.cache.Put(ctx, op); err != nil {
		c.log.Warn(ctx, "failed to cache delivered operation", "local_id", e.LocalID, "error", err)
	}
	return nil
}

func (c *SyncCoordinator) markFailed(ctx context.Context, e *models.QueuedOperation, cause error) {
	// The entry must be recorded even if the pass context was cancelled.
	ctx = context.WithoutCancel(ctx)

	retryCount := e.RetryCount + 1
	msg := cause.Error()
	failed := models.QueueStatusFailed
	var next time.Time
	if d := c.opts.Retry.Delay(e.Attempts() + 1); d > 0 {
		next = c.now().Add(d)
	}

	c.log.Warn(ctx, "queued operation failed",
		"local_id", e.LocalID, "retry_count", retryCount, "error", msg)

	err := c.queue.UpdateStatus(ctx, e.LocalID, models.StatusPatch{
		Status:        &failed,
		Error:         &msg,
		RetryCount:    &retryCount,
		NextAttemptAt: &next,
	})
	if err != nil {
		c.log.Error(ctx, "failed to record delivery failure", "local_id", e.LocalID, "error", err)
	}
}

// finalize ends a pass. A pass that attempted nothing (every entry backing
// off, parked or cut short) leaves lastSyncTime and syncSuccess alone.
func (c *SyncCoordinator) finalize(ctx context.Context, report *SyncReport) {
	ctx = context.WithoutCancel(ctx)
	finished := c.now()
	report.FinishedAt = finished
	completed := report.Attempted > 0

	if completed {
		if err := c.state.SetLastSyncTime(ctx, finished); err != nil {
			c.log.Error(ctx, "failed to persist last sync time", "error", err)
		}
	}

	pending, err := c.queue.Count(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to count queue", "error", err)
		pending = c.State().Pending
	}

	c.update(func(s *SyncState) {
		s.IsSyncing = false
		s.Pending = pending
		s.LastReport = report
		if completed {
			s.SyncSuccess = true
			s.LastSyncTime = finished
		}
	}, false)

	if completed {
		c.scheduleSuccessClear()
	}

	c.log.Info(ctx, "drain pass finished",
		"attempted", report.Attempted, "succeeded", report.Succeeded,
		"failed", report.Failed, "skipped", report.Skipped, "pending", pending)
}

func (c *SyncCoordinator) scheduleSuccessClear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.successTimer != nil {
		c.successTimer.Stop()
	}
	if c.opts.SyncSuccessDisplay <= 0 {
		return
	}
	c.successTimer = time.AfterFunc(c.opts.SyncSuccessDisplay, func() {
		c.update(func(s *SyncState) { s.SyncSuccess = false }, false)
	})
}

func (c *SyncCoordinator) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.RemoteCallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opts.RemoteCallTimeout)
}

// update applies fn under the state lock and notifies subscribers.
func (c *SyncCoordinator) update(fn func(s *SyncState), stopSuccessTimer bool) {
	c.mu.Lock()
	fn(&c.st)
	if stopSuccessTimer && c.successTimer != nil {
		c.successTimer.Stop()
		c.successTimer = nil
	}
	snapshot := c.copyStateLocked()
	subs := make([]func(SyncState), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (c *SyncCoordinator) copyStateLocked() SyncState {
	s := c.st
	if s.LastReport != nil {
		r := *s.LastReport
		s.LastReport = &r
	}
	return s
}

// AttachmentKey is the object key of an entry's image. It derives from the
// idempotency key so a redelivered upload overwrites the same object.
func AttachmentKey(e *models.QueuedOperation) string {
	return attachmentKey(e.PlotID, e.IdempotencyKey, e.Attachment)
}

func attachmentKey(plotID, idempotencyKey string, a *models.Attachment) string {
	key := path.Join("plots", plotID, idempotencyKey)
	if a != nil {
		if ext := path.Ext(a.FileName); ext != "" {
			key += ext
		}
	}
	return key
}

func remoteFailure(step string, err error) error {
	if errors.Is(err, common.ErrRemoteWriteFailed) {
		return fmt.Errorf("%s: %w", step, err)
	}
	return fmt.Errorf("%s: %w: %w", step, common.ErrRemoteWriteFailed, err)
}
