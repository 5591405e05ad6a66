package system

import (
	"fmt"

	"github.com/julianstephens/growthbook/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.App.Startup(); err != nil {
		return err
	}

	path, err := ctx.App.GetStorageLocation()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Initialized growthbook storage at: %s\n", path)
	return nil
}
