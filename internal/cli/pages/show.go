package pages

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/growthbook/internal/cli"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Date of the page (YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')."`
	JSON bool   `help:"Print the page as JSON (null when absent)."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date, time.Now())
	if err != nil {
		return err
	}

	page, err := ctx.App.FetchPage(date)
	if err != nil {
		return err
	}

	if c.JSON {
		jsonBytes, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal page: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(jsonBytes))
		return nil
	}

	if page == nil {
		fmt.Fprintf(ctx.Out, "No page for %s\n", date)
		return nil
	}

	fmt.Fprintln(ctx.Out, RenderPage(*page))
	return nil
}
