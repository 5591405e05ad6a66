package storage

import "github.com/julianstephens/growthbook/internal/models"

// Provider is the persistence contract the command boundary depends on.
// Implementations open a fresh connection per call and keep nothing between calls.
type Provider interface {
	// Lifecycle
	Init() error

	// Pages
	// GetPage returns nil with a nil error when no page exists for date.
	GetPage(date string) (*models.Page, error)
	// SavePage inserts the page or overwrites every non-key field of the
	// existing row for page.Date.
	SavePage(models.Page) error

	// Utils
	Location() (string, error)
}
