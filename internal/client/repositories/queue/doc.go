// Package queue is the pending-operation queue: the durable staging area
// for field operations that could not be written to the remote sink yet.
//
// # Data Model
//
// Each entry lives in the operations_queue partition of the local store.
// The store assigns LocalID (AUTOINCREMENT, never reused); the queue adds an
// idempotency key, status=pending and retry_count=0. Attachments are kept in
// a native BLOB column so image bytes round-trip unchanged.
//
// # Semantics
//
//   - ListAll returns entries in ascending LocalID order; callers must not
//     depend on it.
//   - UpdateStatus merges a patch and returns common.ErrNotFound for an
//     unknown id. retry_count never decreases.
//   - Remove is idempotent.
//   - ResetFailed hands parked failed entries back to the coordinator by
//     raising retry_base to retry_count. The retry budget counts failures
//     above retry_base.
package queue
