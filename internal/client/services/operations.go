package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/client/remote"
	"github.com/dmitrijs2005/farmsync/internal/client/repositories/queue"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/filex"
	"github.com/dmitrijs2005/farmsync/internal/logging"
)

type RecordInput struct {
	PlotID     string
	Type       models.OperationType
	Notes      string
	OccurredAt time.Time
	Attachment *models.Attachment
}

// RecordResult tells the caller where the operation went. Exactly one of
// Operation (written remotely) or LocalID (queued) is set.
type RecordResult struct {
	Queued    bool
	LocalID   int64
	Operation *models.Operation
	// Reason is the remote error that caused a fallback to the queue.
	Reason error
}

type OnlineChecker interface {
	IsOnline() bool
}

type PendingRefresher interface {
	RefreshPending(ctx context.Context) error
}

type OperationService struct {
	queue   queue.Repository
	sink    remote.Sink
	cache   OperationCache
	online  OnlineChecker
	pending PendingRefresher
	opts    SyncOptions
	log     logging.Logger
	now     func() time.Time
	newKey  func() string
}

func NewOperationService(q queue.Repository, sink remote.Sink, cache OperationCache, online OnlineChecker,
	pending PendingRefresher, opts SyncOptions, log logging.Logger) *OperationService {
	return &OperationService{
		queue:   q,
		sink:    sink,
		cache:   cache,
		online:  online,
		pending: pending,
		opts:    opts,
		log:     log.With("module", "operations"),
		now:     time.Now,
		newKey:  uuid.NewString,
	}
}

// Record captures a field operation. Online it is written to the remote
// sink directly; offline, or when the remote write fails, it is queued.
// Only validation and local storage errors are returned.
func (s *OperationService) Record(ctx context.Context, in RecordInput) (*RecordResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.OccurredAt.IsZero() {
		in.OccurredAt = s.now()
	}
	in.OccurredAt = in.OccurredAt.UTC()
	key := s.newKey()

	var reason error
	if s.online.IsOnline() {
		op, err := s.writeDirect(ctx, key, in)
		if err == nil {
			if err := s.cache.Put(ctx, op); err != nil {
				s.log.Warn(ctx, "failed to cache operation", "id", op.ID, "error", err)
			}
			return &RecordResult{Operation: op}, nil
		}
		s.log.Warn(ctx, "direct write failed, queueing", "plot_id", in.PlotID, "error", err)
		reason = err
	} else {
		reason = common.ErrOffline
	}

	id, err := s.queue.Enqueue(ctx, &models.QueuedOperationInput{
		IdempotencyKey: key,
		PlotID:         in.PlotID,
		Type:           in.Type,
		Notes:          in.Notes,
		OccurredAt:     in.OccurredAt,
		Attachment:     in.Attachment,
	})
	if err != nil {
		return nil, fmt.Errorf("queue operation: %w", err)
	}

	if s.pending != nil {
		if err := s.pending.RefreshPending(ctx); err != nil {
			s.log.Warn(ctx, "failed to refresh pending count", "error", err)
		}
	}

	s.log.Info(ctx, "operation queued", "local_id", id, "plot_id", in.PlotID, "type", in.Type)
	return &RecordResult{Queued: true, LocalID: id, Reason: reason}, nil
}

func (s *OperationService) writeDirect(ctx context.Context, key string, in RecordInput) (*models.Operation, error) {
	var imageURL string
	if in.Attachment != nil {
		callCtx, cancel := s.callContext(ctx)
		url, err := s.sink.UploadAttachment(callCtx, s.opts.AttachmentBucket,
			attachmentKey(in.PlotID, key, in.Attachment), in.Attachment.Data, in.Attachment.ContentType)
		cancel()
		if err != nil {
			return nil, remoteFailure("upload attachment", err)
		}
		imageURL = url
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	op, err := s.sink.InsertOperation(callCtx, &models.OperationRecord{
		IdempotencyKey: key,
		PlotID:         in.PlotID,
		Type:           in.Type,
		Notes:          in.Notes,
		OccurredAt:     in.OccurredAt,
		ImageURL:       imageURL,
	})
	if err != nil {
		return nil, remoteFailure("insert operation", err)
	}
	return op, nil
}

func (s *OperationService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.RemoteCallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.RemoteCallTimeout)
}

// History lists operations known to have reached the remote sink.
func (s *OperationService) History(ctx context.Context) ([]*models.Operation, error) {
	return s.cache.List(ctx)
}

// Pending lists every queued entry regardless of status.
func (s *OperationService) Pending(ctx context.Context) ([]*models.QueuedOperation, error) {
	return s.queue.ListAll(ctx)
}

// RetryFailed gives parked entries a fresh retry budget.
func (s *OperationService) RetryFailed(ctx context.Context) (int, error) {
	n, err := s.queue.ResetFailed(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info(ctx, "failed operations reset", "count", n)
	return n, nil
}

// Purge drops a queued entry without delivering it.
func (s *OperationService) Purge(ctx context.Context, localID int64) error {
	if _, err := s.queue.Get(ctx, localID); err != nil {
		return err
	}
	if err := s.queue.Purge(ctx, localID); err != nil {
		return err
	}
	if s.pending != nil {
		if err := s.pending.RefreshPending(ctx); err != nil {
			s.log.Warn(ctx, "failed to refresh pending count", "error", err)
		}
	}
	return nil
}

func validate(in RecordInput) error {
	if in.PlotID == "" {
		return fmt.Errorf("%w: plot id is required", common.ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidOperationType, in.Type)
	}
	if in.Attachment != nil && len(in.Attachment.Data) > common.MaxAttachmentSize {
		return fmt.Errorf("%w: %w", common.ErrValidation, filex.ErrAttachmentTooLarge)
	}
	return nil
}

// IsQueuedBecauseOffline reports whether a result was queued without trying the sink.
func (r *RecordResult) IsQueuedBecauseOffline() bool {
	return r.Queued && errors.Is(r.Reason, common.ErrOffline)
}
