package queue

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/farmsync/internal/client/migrations"
	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/common"

	_ "modernc.org/sqlite"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	p, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	require.NoError(t, err)
	_, err = p.Up(context.Background())
	require.NoError(t, err)

	r := NewSQLiteRepository(db)
	r.now = func() time.Time { return fixedNow }
	n := 0
	r.newKey = func() string {
		n++
		return fmt.Sprintf("key-%d", n)
	}
	return r
}

func ptr[T any](v T) *T { return &v }

func TestEnqueue_AssignsDefaults(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{
		PlotID: "p1",
		Type:   models.OperationIrrigation,
		Notes:  "north rows",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	op, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, op.LocalID)
	assert.Equal(t, "key-1", op.IdempotencyKey)
	assert.Equal(t, "p1", op.PlotID)
	assert.Equal(t, models.OperationIrrigation, op.Type)
	assert.Equal(t, "north rows", op.Notes)
	assert.Equal(t, models.QueueStatusPending, op.Status)
	assert.Equal(t, 0, op.RetryCount)
	assert.Equal(t, 0, op.RetryBase)
	assert.Empty(t, op.Error)
	assert.Nil(t, op.Attachment)
	assert.True(t, op.OccurredAt.Equal(fixedNow))
	assert.True(t, op.CreatedAt.Equal(fixedNow))
	assert.True(t, op.NextAttemptAt.IsZero())
}

func TestEnqueue_AttachmentBytesRoundTrip(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	img := []byte{0x89, 'P', 'N', 'G', 0x00, 0x0d, 0x0a, 0xff}
	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{
		PlotID:     "p1",
		Type:       models.OperationObservation,
		Attachment: &models.Attachment{Data: img, ContentType: "image/png", FileName: "leaf.png"},
	})
	require.NoError(t, err)

	op, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, op.Attachment)
	assert.Equal(t, img, op.Attachment.Data)
	assert.Equal(t, "image/png", op.Attachment.ContentType)
	assert.Equal(t, "leaf.png", op.Attachment.FileName)
}

func TestEnqueue_KeepsGivenIdempotencyKey(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{
		IdempotencyKey: "direct-write-key",
		PlotID:         "p1",
		Type:           models.OperationPruning,
	})
	require.NoError(t, err)

	op, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "direct-write-key", op.IdempotencyKey)
}

func TestListAll_OrderedByLocalID(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	var ids []int64
	for _, plot := range []string{"a", "b", "c"} {
		id, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: plot, Type: models.OperationHarvest})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, op := range all {
		assert.Equal(t, ids[i], op.LocalID)
	}
}

func TestListAll_Empty(t *testing.T) {
	r := setupRepo(t)

	all, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLocalIDsAreNotReused(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	first, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationFertilization})
	require.NoError(t, err)
	require.NoError(t, r.Remove(ctx, first))

	second, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationFertilization})
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestUpdateStatus_MergesPatch(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationPestControl})
	require.NoError(t, err)

	next := fixedNow.Add(time.Minute)
	require.NoError(t, r.UpdateStatus(ctx, id, models.StatusPatch{
		Status:        ptr(models.QueueStatusFailed),
		Error:         ptr("boom"),
		RetryCount:    ptr(1),
		NextAttemptAt: &next,
	}))

	require.NoError(t, r.UpdateStatus(ctx, id, models.StatusPatch{Status: ptr(models.QueueStatusSyncing)}))

	op, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusSyncing, op.Status)
	assert.Equal(t, "boom", op.Error)
	assert.Equal(t, 1, op.RetryCount)
	assert.True(t, op.NextAttemptAt.Equal(next))
	assert.Equal(t, "p", op.PlotID)
}

func TestUpdateStatus_RetryCountNeverDecreases(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationPestControl})
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus(ctx, id, models.StatusPatch{RetryCount: ptr(3)}))
	require.NoError(t, r.UpdateStatus(ctx, id, models.StatusPatch{RetryCount: ptr(1)}))

	op, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, op.RetryCount)
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	err := r.UpdateStatus(ctx, 999, models.StatusPatch{Status: ptr(models.QueueStatusFailed)})
	require.ErrorIs(t, err, common.ErrNotFound)

	err = r.UpdateStatus(ctx, 999, models.StatusPatch{})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationPestControl})
	require.NoError(t, err)

	err = r.UpdateStatus(ctx, id, models.StatusPatch{Status: ptr(models.QueueStatus("done"))})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestRemove_Idempotent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationPlanting})
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, id))
	require.NoError(t, r.Remove(ctx, id))
	require.NoError(t, r.Remove(ctx, 12345))

	_, err = r.Get(ctx, id)
	require.ErrorIs(t, err, common.ErrNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestResetFailed(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	failedID, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "p", Type: models.OperationPlanting})
	require.NoError(t, err)
	pendingID, err := r.Enqueue(ctx, &models.QueuedOperationInput{PlotID: "q", Type: models.OperationPlanting})
	require.NoError(t, err)

	next := fixedNow.Add(time.Hour)
	require.NoError(t, r.UpdateStatus(ctx, failedID, models.StatusPatch{
		Status:        ptr(models.QueueStatusFailed),
		Error:         ptr("unavailable"),
		RetryCount:    ptr(10),
		NextAttemptAt: &next,
	}))

	n, err := r.ResetFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	op, err := r.Get(ctx, failedID)
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusPending, op.Status)
	assert.Equal(t, 10, op.RetryCount, "reset must not lower retry_count")
	assert.Equal(t, 10, op.RetryBase)
	assert.Equal(t, 0, op.Attempts())
	assert.Empty(t, op.Error)
	assert.True(t, op.NextAttemptAt.IsZero())

	other, err := r.Get(ctx, pendingID)
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusPending, other.Status)
}
