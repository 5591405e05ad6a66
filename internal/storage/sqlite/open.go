package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/errors"
)

// DriverType returns "purego" for modernc.org/sqlite and "cgo" for mattn/go-sqlite3.
func DriverType() string {
	return driverType
}

// open returns a handle pinned to a single connection. The file is created
// if it does not exist. Callers must Close the handle.
func open(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConnection, fmt.Sprintf("failed to open %s", path), err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; this is the first statement to touch the file
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", constants.BusyTimeoutMs)); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.ErrConnection, fmt.Sprintf("failed to open %s", path), err)
	}
	return db, nil
}
