package sqlite

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/julianstephens/growthbook/internal/errors"
	"github.com/julianstephens/growthbook/internal/logger"
	"github.com/julianstephens/growthbook/internal/models"
	"github.com/julianstephens/growthbook/internal/storage"
)

var _ storage.Provider = (*PageStore)(nil)

// Locator resolves the database file path. paths.Resolver satisfies it.
type Locator interface {
	Resolve() (string, error)
}

// PageStore reads and writes daily pages. It holds no connection: each call
// resolves the path, opens the file and closes it before returning.
type PageStore struct {
	locator Locator
}

func NewPageStore(locator Locator) *PageStore {
	return &PageStore{locator: locator}
}

// Init ensures the schema exists at the resolved location.
func (s *PageStore) Init() error {
	path, err := s.locator.Resolve()
	if err != nil {
		return err
	}
	return EnsureSchema(path)
}

// Location returns the absolute database path.
func (s *PageStore) Location() (string, error) {
	return s.locator.Resolve()
}

func (s *PageStore) connect() (*sql.DB, error) {
	path, err := s.locator.Resolve()
	if err != nil {
		return nil, err
	}
	return open(path)
}

// GetPage looks up the page stored under date (exact match). A missing row
// yields nil, nil.
func (s *PageStore) GetPage(date string) (*models.Page, error) {
	db, err := s.connect()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var p models.Page
	err = db.QueryRow(`
		SELECT date, schedule, todo, goals, motivation, happiness, journal
		FROM daily_pages
		WHERE date = ?`, date).Scan(
		&p.Date, &p.Schedule, &p.Todo, &p.Goals, &p.Motivation, &p.Happiness, &p.Journal,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		logger.Debug("Page not found", "date", date)
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrQuery, fmt.Sprintf("failed to read page %s", date), err)
	}

	return &p, nil
}

// SavePage writes page in a single statement: a new date inserts a row, an
// existing date has all non-key columns replaced by the incoming values.
func (s *PageStore) SavePage(page models.Page) error {
	db, err := s.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO daily_pages (date, schedule, todo, goals, motivation, happiness, journal)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			schedule = excluded.schedule,
			todo = excluded.todo,
			goals = excluded.goals,
			motivation = excluded.motivation,
			happiness = excluded.happiness,
			journal = excluded.journal`,
		page.Date, page.Schedule, page.Todo, page.Goals, page.Motivation, page.Happiness, page.Journal,
	)
	if err != nil {
		what := fmt.Sprintf("failed to save page %s", page.Date)
		if isConstraintViolation(err) {
			return errors.Wrap(errors.ErrConstraint, what, err)
		}
		return errors.Wrap(errors.ErrQuery, what, err)
	}

	logger.Debug("Page saved", "date", page.Date)
	return nil
}
