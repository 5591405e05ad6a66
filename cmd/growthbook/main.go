package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/growthbook/internal/app"
	"github.com/julianstephens/growthbook/internal/cli"
	"github.com/julianstephens/growthbook/internal/cli/pages"
	"github.com/julianstephens/growthbook/internal/cli/system"
	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/errors"
	"github.com/julianstephens/growthbook/internal/logger"
	"github.com/julianstephens/growthbook/internal/paths"
	"github.com/julianstephens/growthbook/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	DataDir string `help:"Directory holding the page database and logs." type:"path" env:"GROWTHBOOK_DATA_DIR"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"GROWTHBOOK_DEBUG"`

	Init   system.InitCmd   `cmd:"" help:"Initialize growthbook storage."`
	Show   pages.ShowCmd    `cmd:"" help:"Show the page for a day." default:"withargs"`
	Save   pages.SaveCmd    `cmd:"" help:"Save the page for a day, replacing every field."`
	Edit   pages.EditCmd    `cmd:"" help:"Edit the page for a day interactively."`
	Path   system.PathCmd   `cmd:"" help:"Print the database location as JSON."`
	Serve  system.ServeCmd  `cmd:"" help:"Answer page commands as line-delimited JSON on stdin/stdout."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
}

// Commands that manage storage themselves and must not create it first.
var skipStartup = map[string]bool{
	"init":   true,
	"path":   true,
	"doctor": true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Growth Book: one journaling page per day, stored locally"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	resolver := paths.Resolver{BaseDir: CLI.DataDir}
	dataDir, err := resolver.Dir()
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	a := app.New(sqlite.NewPageStore(resolver))

	// Schema creation is fatal at startup
	if ctx.Selected() == nil || !skipStartup[ctx.Selected().Name] {
		if err := a.Startup(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(&cli.Context{
		App:      a,
		Resolver: resolver,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	errors.Fatal(err)
}
