// Package store is the durable local store of the field client.
//
// A Store is a single SQLite file with four partitions:
//
//	plots_cache       plot id        -> JSON models.Plot
//	operations_cache  operation id   -> JSON models.Operation
//	operations_queue  local id       -> typed row (see repositories/queue)
//	app_state         singleton keys -> JSON values (lastSyncTime)
//
// The schema is versioned with embedded goose migrations applied on Open.
// Reopening an existing file keeps every partition's content.
package store
