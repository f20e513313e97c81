// Package store provides the SQLite catalogue of canonical models.
//
// Two tables make up the catalogue:
//   - models: one row per distinct structure presentation, keyed by its
//     content-addressed ID (variant, symbol order and indexed tables)
//   - sightings: one row per (model, label, batch), recording every time
//     an input produced that model
//
// Writes are idempotent. Re-importing the same reply with the same batch
// token inserts nothing.
//
// All ordering uses the seq column (a logical clock), never timestamps,
// and every list query ends with ORDER BY seq ASC, id COLLATE BINARY ASC.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
