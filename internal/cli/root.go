package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julianstephens/growthbook/internal/app"
	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/paths"
)

type Context struct {
	App      *app.App
	Resolver paths.Resolver
	In       io.Reader
	Out      io.Writer
}

// ResolveDate turns a DATE argument into a page key. It accepts "today",
// "yesterday", "tomorrow" (relative to now) or a literal YYYY-MM-DD.
func ResolveDate(arg string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return now.Format(constants.DateFormat), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(constants.DateFormat), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(constants.DateFormat), nil
	}

	parsed, err := time.Parse(constants.DateFormat, arg)
	if err != nil || parsed.Format(constants.DateFormat) != arg {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')", arg)
	}
	return arg, nil
}

// ValidateHappiness enforces the 1-10 scale on interactive and flag input.
// Storage itself accepts any integer.
func ValidateHappiness(h int64) error {
	if h < constants.MinHappiness || h > constants.MaxHappiness {
		return fmt.Errorf("happiness must be between %d and %d", constants.MinHappiness, constants.MaxHappiness)
	}
	return nil
}
