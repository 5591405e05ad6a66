package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/growthbook/internal/cli"
)

type PathCmd struct{}

func (cmd *PathCmd) Run(ctx *cli.Context) error {
	path, err := ctx.App.GetStorageLocation()
	if err != nil {
		return err
	}

	// Output in machine-readable format
	output := map[string]string{
		"path": path,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(ctx.Out, string(jsonBytes))
	return nil
}
