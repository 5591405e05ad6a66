package pages

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/growthbook/internal/cli"
	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/models"
)

type EditCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Date of the page (YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')."`
}

// NewPageForm binds every editable field of page to a form. Happiness outside
// the scale is pulled to the nearest end so the select has a valid choice.
func NewPageForm(page *models.Page) *huh.Form {
	page.Happiness = min(max(page.Happiness, constants.MinHappiness), constants.MaxHappiness)

	scale := make([]int64, 0, constants.MaxHappiness)
	for i := int64(constants.MinHappiness); i <= constants.MaxHappiness; i++ {
		scale = append(scale, i)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Today's Schedule").
				Placeholder("09:00 - Morning meditation\n10:00 - Team meeting\n14:00 - Project work").
				CharLimit(0).
				Value(&page.Schedule),
			huh.NewText().
				Title("To-Do").
				Placeholder("☐ Review quarterly goals\n☐ Finish presentation\n☐ Call a friend").
				CharLimit(0).
				Value(&page.Todo),
			huh.NewText().
				Title("Goals").
				Placeholder("• Exercise 4x per week\n• Read 2 books this month\n• Ship my side project").
				CharLimit(0).
				Value(&page.Goals),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Motivation").
				Placeholder("You are capable of amazing things.").
				CharLimit(0).
				Value(&page.Motivation),
			huh.NewSelect[int64]().
				Title("Happiness").
				Description(fmt.Sprintf("%d (low) to %d (high)", constants.MinHappiness, constants.MaxHappiness)).
				Options(huh.NewOptions(scale...)...).
				Value(&page.Happiness),
			huh.NewText().
				Title("Daily Journal").
				Placeholder("Write about your day, thoughts, reflections, or anything on your mind...").
				CharLimit(0).
				Lines(8).
				Value(&page.Journal),
		),
	).WithProgramOptions(tea.WithAltScreen())
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date, time.Now())
	if err != nil {
		return err
	}

	existing, err := ctx.App.FetchPage(date)
	if err != nil {
		return err
	}
	page := models.EmptyPage(date)
	if existing != nil {
		page = *existing
	}

	if err := NewPageForm(&page).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(ctx.Out, "Edit cancelled")
			return nil
		}
		return fmt.Errorf("form error: %w", err)
	}

	if err := ctx.App.SavePage(page); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Saved page for %s\n", date)
	return nil
}
