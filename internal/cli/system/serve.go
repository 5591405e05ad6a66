package system

import (
	"github.com/julianstephens/growthbook/internal/cli"
	"github.com/julianstephens/growthbook/internal/logger"
)

// ServeCmd answers get_daily_page, save_daily_page and get_db_path requests,
// one JSON object per line, until stdin closes.
type ServeCmd struct{}

func (cmd *ServeCmd) Run(ctx *cli.Context) error {
	logger.Info("Command bridge started")
	defer logger.Info("Command bridge stopped")

	return ctx.App.Serve(ctx.In, ctx.Out)
}
