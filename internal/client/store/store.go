package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/farmsync/internal/client/migrations"
	"github.com/dmitrijs2005/farmsync/internal/client/repositories/kv"
	"github.com/dmitrijs2005/farmsync/internal/client/repositories/queue"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/filex"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Partition names a keyed partition of the store.
type Partition string

const (
	PlotsCache      Partition = "plots_cache"
	OperationsCache Partition = "operations_cache"
	AppStateTable   Partition = "app_state"
)

// QueueTable is the typed partition behind the pending-operation queue.
const QueueTable = "operations_queue"

const dsnPragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

type Store struct {
	db       *sql.DB
	provider *goose.Provider
	queue    *queue.SQLiteRepository
}

// Open opens (or creates) the database at path and migrates it to the
// current schema version. Every failure is wrapped in
// common.ErrStorageUnavailable.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
		}
		dsn = path + dsnPragmas
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", common.ErrStorageUnavailable, path, err)
	}
	// SQLite allows one writer; serialize through a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", common.ErrStorageUnavailable, path, err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration provider: %w", common.ErrStorageUnavailable, err)
	}

	if _, err := provider.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %w", common.ErrStorageUnavailable, path, err)
	}

	return &Store{
		db:       db,
		provider: provider,
		queue:    queue.NewSQLiteRepository(db),
	}, nil
}

// KV returns the repository of a keyed partition.
func (s *Store) KV(p Partition) kv.Repository {
	return kv.NewSQLiteRepository(s.db, string(p))
}

func (s *Store) Queue() queue.Repository {
	return s.queue
}

func (s *Store) AppState() *AppState {
	return &AppState{repo: s.KV(AppStateTable)}
}

func (s *Store) Plots() *PlotCache {
	return &PlotCache{db: s.db}
}

func (s *Store) Operations() *OperationCache {
	return &OperationCache{repo: s.KV(OperationsCache)}
}

// SchemaVersion reports the applied goose version.
func (s *Store) SchemaVersion(ctx context.Context) (int64, error) {
	return s.provider.GetDBVersion(ctx)
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
