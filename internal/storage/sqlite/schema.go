package sqlite

import (
	_ "embed"

	"github.com/julianstephens/growthbook/internal/errors"
	"github.com/julianstephens/growthbook/internal/logger"
)

//go:embed schema.sql
var schema string

// PagesTable is the single table owned by this package
const PagesTable = "daily_pages"

// EnsureSchema creates the daily_pages table in the file at path if it is
// missing. It runs on every startup and never touches existing rows.
func EnsureSchema(path string) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(errors.ErrSchema, "failed to create "+PagesTable, err)
	}

	logger.Debug("Schema ready", "path", path, "driver", driverType)
	return nil
}
