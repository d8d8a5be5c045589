package models

import "time"

// QueueStatus is the sync state of a queued operation.
//
// Transitions: pending -> syncing -> (removed | failed), failed -> syncing.
type QueueStatus string

const (
	QueueStatusPending QueueStatus = "pending"
	QueueStatusSyncing QueueStatus = "syncing"
	QueueStatusFailed  QueueStatus = "failed"
)

func (s QueueStatus) Valid() bool {
	switch s {
	case QueueStatusPending, QueueStatusSyncing, QueueStatusFailed:
		return true
	}
	return false
}

// QueuedOperationInput is what callers hand to the queue. An empty
// IdempotencyKey is generated on enqueue.
type QueuedOperationInput struct {
	IdempotencyKey string

	PlotID     string
	Type       OperationType
	Notes      string
	OccurredAt time.Time
	Attachment *Attachment
}

// QueuedOperation is a durable write awaiting remote application.
type QueuedOperation struct {
	// LocalID is assigned by the store on insert and never reused.
	LocalID int64

	// IdempotencyKey travels with the remote insert so a redelivered entry
	// does not produce a second remote row.
	IdempotencyKey string

	PlotID     string
	Type       OperationType
	Notes      string
	OccurredAt time.Time
	Attachment *Attachment

	Status     QueueStatus
	Error      string
	RetryCount int
	// RetryBase is RetryCount at the last manual reset. Failures since then
	// are RetryCount-RetryBase.
	RetryBase int

	// NextAttemptAt is zero for entries that may be attempted right away.
	NextAttemptAt time.Time
	CreatedAt     time.Time
}

// Attempts is the number of failures since the entry was last re-armed.
func (q *QueuedOperation) Attempts() int {
	return q.RetryCount - q.RetryBase
}

// Record builds the remote row for this entry; imageURL comes from the upload.
func (q *QueuedOperation) Record(imageURL string) *OperationRecord {
	return &OperationRecord{
		IdempotencyKey: q.IdempotencyKey,
		PlotID:         q.PlotID,
		Type:           q.Type,
		Notes:          q.Notes,
		OccurredAt:     q.OccurredAt,
		ImageURL:       imageURL,
	}
}

// StatusPatch carries the fields UpdateStatus should overwrite; nil means keep.
type StatusPatch struct {
	Status        *QueueStatus
	Error         *string
	RetryCount    *int
	NextAttemptAt *time.Time
}
