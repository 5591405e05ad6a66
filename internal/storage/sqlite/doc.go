// Package sqlite persists daily pages in an embedded SQLite file.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
//
// Every exported operation takes or resolves the database path itself and
// holds a connection only for the duration of the call.
package sqlite
