package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE app_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestPutAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "app_state")
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, "k1", []byte{0x00, 0xff, 0x10}))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0x10}, v)
}

func TestGet_Absent_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "app_state")

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestPut_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "app_state")
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, "k", []byte("old")))
	require.NoError(t, r.Put(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestGetAll_DeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "app_state")
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Put(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": {0xAA}, "b": {0xBB, 0xCC}}, m)

	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"), "delete must be idempotent")

	m, err = r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 1)

	require.NoError(t, r.Clear(ctx))
	m, err = r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestErrorsAreWrappedWithPartitionName(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, "app_state")
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get app_state[k]")

	err = r.Put(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to put app_state[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete app_state[k]")

	err = r.Clear(ctx)
	require.ErrorContains(t, err, "failed to clear app_state")

	_, err = r.GetAll(ctx)
	require.ErrorContains(t, err, "failed to list app_state")
}
