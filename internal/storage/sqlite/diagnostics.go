package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/errors"
)

// Audit summarises stored pages for health checks
type Audit struct {
	Pages               int
	InvalidDates        []string
	HappinessOutOfRange []string // dates whose happiness lies outside 1-10
}

// TableExists checks if a table exists in the database at path.
// The check is case-insensitive to match SQLite's behavior.
func TableExists(path, tableName string) (bool, error) {
	db, err := open(path)
	if err != nil {
		return false, err
	}
	defer db.Close()

	var count int
	row := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, errors.Wrap(errors.ErrQuery, "failed to inspect sqlite_master", err)
	}
	return count > 0, nil
}

// IntegrityCheck runs PRAGMA integrity_check and fails unless SQLite reports "ok".
func IntegrityCheck(path string) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	var result string
	if err := db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return errors.Wrap(errors.ErrQuery, "failed to run integrity check", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check reported: %s", result)
	}
	return nil
}

// AuditPages scans every page for keys that are not YYYY-MM-DD and for
// happiness values the input surfaces would have rejected. Read-only.
func AuditPages(path string) (Audit, error) {
	db, err := open(path)
	if err != nil {
		return Audit{}, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT date, happiness FROM daily_pages ORDER BY date")
	if err != nil {
		return Audit{}, errors.Wrap(errors.ErrQuery, "failed to scan pages", err)
	}
	defer rows.Close()

	var audit Audit
	for rows.Next() {
		var date string
		var happiness int64
		if err := rows.Scan(&date, &happiness); err != nil {
			return Audit{}, errors.Wrap(errors.ErrQuery, "failed to scan pages", err)
		}
		audit.Pages++

		if parsed, err := time.Parse(constants.DateFormat, date); err != nil || parsed.Format(constants.DateFormat) != date {
			audit.InvalidDates = append(audit.InvalidDates, date)
		}
		if happiness < constants.MinHappiness || happiness > constants.MaxHappiness {
			audit.HappinessOutOfRange = append(audit.HappinessOutOfRange, date)
		}
	}
	if err := rows.Err(); err != nil {
		return Audit{}, errors.Wrap(errors.ErrQuery, "failed to scan pages", err)
	}

	return audit, nil
}
