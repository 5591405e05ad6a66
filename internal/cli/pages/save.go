package pages

import (
	"fmt"
	"time"

	"github.com/julianstephens/growthbook/internal/cli"
	"github.com/julianstephens/growthbook/internal/models"
)

// SaveCmd writes a whole page. Fields left out are stored empty, not kept.
type SaveCmd struct {
	Date       string `arg:"" help:"Date of the page (YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')."`
	Schedule   string `short:"s" help:"Today's schedule."`
	Todo       string `short:"t" help:"To-do list."`
	Goals      string `short:"g" help:"Goals."`
	Motivation string `short:"m" help:"Motivation."`
	Happiness  int64  `short:"H" help:"Happiness from 1 to 10." default:"5"`
	Journal    string `short:"j" help:"Journal entry."`
}

func (c *SaveCmd) Validate() error {
	return cli.ValidateHappiness(c.Happiness)
}

func (c *SaveCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date, time.Now())
	if err != nil {
		return err
	}

	page := models.Page{
		Date:       date,
		Schedule:   c.Schedule,
		Todo:       c.Todo,
		Goals:      c.Goals,
		Motivation: c.Motivation,
		Happiness:  c.Happiness,
		Journal:    c.Journal,
	}
	if err := ctx.App.SavePage(page); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Saved page for %s\n", date)
	return nil
}
