// Package store records solved puzzle runs in SQLite.
//
// Every answer the CLI computes can be appended to the runs table together
// with a digest of the input it was computed from. The history command reads
// it back, and LatestAnswer lets a caller compare a fresh answer with the
// last one recorded for the same input.
//
// # Ordering
//
// Runs are ordered by seq, an autoincrement column. Nothing orders by wall
// clock time, so two histories built from the same sequence of solves list
// identically.
//
// # Database Configuration
//
//   - WAL mode: readers do not block the writer
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
//
// Schema changes are applied by numbered migrations tracked in
// PRAGMA user_version.
package store
