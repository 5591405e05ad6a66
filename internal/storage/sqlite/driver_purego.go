//go:build !cgo_sqlite

package sqlite

import (
	"errors"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	driverName = "sqlite"
	driverType = "purego"
)

// isConstraintViolation reports whether err carries the SQLITE_CONSTRAINT primary result code
func isConstraintViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
