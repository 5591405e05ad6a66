// Package app is the command boundary between a calling shell and page storage.
// Errors leaving it are plain messages; callers cannot match on error kinds.
package app

import (
	stderrors "errors"

	"github.com/julianstephens/growthbook/internal/errors"
	"github.com/julianstephens/growthbook/internal/logger"
	"github.com/julianstephens/growthbook/internal/models"
	"github.com/julianstephens/growthbook/internal/storage"
)

type App struct {
	store storage.Provider
}

func New(store storage.Provider) *App {
	return &App{store: store}
}

// Startup creates the schema. Callers must not serve requests if it fails.
func (a *App) Startup() error {
	if err := a.store.Init(); err != nil {
		logger.Error("Startup failed", "error", err)
		return flatten(err)
	}
	return nil
}

// FetchPage returns the page for date, or nil when nothing is stored for it.
func (a *App) FetchPage(date string) (*models.Page, error) {
	page, err := a.store.GetPage(date)
	if err != nil {
		logger.Error("Fetch failed", "date", date, "error", err)
		return nil, flatten(err)
	}
	return page, nil
}

// SavePage stores all seven fields of page, replacing whatever was there.
func (a *App) SavePage(page models.Page) error {
	if err := a.store.SavePage(page); err != nil {
		logger.Error("Save failed", "date", page.Date, "error", err)
		return flatten(err)
	}
	return nil
}

// GetStorageLocation returns the absolute database path for display.
func (a *App) GetStorageLocation() (string, error) {
	path, err := a.store.Location()
	if err != nil {
		logger.Error("Resolving storage location failed", "error", err)
		return "", flatten(err)
	}
	return path, nil
}

func flatten(err error) error {
	return stderrors.New(errors.Message(err))
}
