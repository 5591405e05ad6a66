package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/growthbook/internal/cli"
	"github.com/julianstephens/growthbook/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Out
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	report := func(name string, err error) bool {
		if err != nil {
			fmt.Fprintf(out, "❌ %s: FAIL\n", name)
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
			return false
		}
		fmt.Fprintf(out, "✓ %s: OK\n", name)
		return true
	}
	skip := func(name string) {
		fmt.Fprintf(out, "⊘ %s: SKIPPED (database not reachable)\n", name)
	}

	// Check 1: data directory writable
	report("Data directory writable", checkDataDirWritable(ctx))

	// Check 2: database reachable (does not create the file)
	path, err := checkDBReachable(ctx)
	dbReachable := report("Database reachable", err)

	// Check 3: schema present
	schemaPresent := false
	if dbReachable {
		schemaPresent = report("Schema present", checkSchemaPresent(path))
	} else {
		skip("Schema present")
	}

	// Check 4: integrity
	if dbReachable {
		report("Integrity check", sqlite.IntegrityCheck(path))
	} else {
		skip("Integrity check")
	}

	// Check 5: stored pages (warning only)
	if schemaPresent {
		audit, err := sqlite.AuditPages(path)
		switch {
		case err != nil:
			report("Page audit", err)
		case len(audit.InvalidDates) > 0 || len(audit.HappinessOutOfRange) > 0:
			fmt.Fprintf(out, "⚠ Page audit: WARNING (%d pages)\n", audit.Pages)
			if len(audit.InvalidDates) > 0 {
				fmt.Fprintf(out, "   Dates not in YYYY-MM-DD form: %s\n", strings.Join(audit.InvalidDates, ", "))
			}
			if len(audit.HappinessOutOfRange) > 0 {
				fmt.Fprintf(out, "   Happiness outside 1-10 on: %s\n", strings.Join(audit.HappinessOutOfRange, ", "))
			}
		default:
			fmt.Fprintf(out, "✓ Page audit: OK (%d pages)\n", audit.Pages)
		}
	} else {
		fmt.Fprintln(out, "⊘ Page audit: SKIPPED (schema missing)")
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkDataDirWritable(ctx *cli.Context) error {
	dir, err := ctx.Resolver.Dir()
	if err != nil {
		return err
	}

	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

func checkDBReachable(ctx *cli.Context) (string, error) {
	path, err := ctx.App.GetStorageLocation()
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("no database at %s, run 'growthbook init' first", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to access database: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return path, nil
}

func checkSchemaPresent(path string) error {
	exists, err := sqlite.TableExists(path, sqlite.PagesTable)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("table %s is missing, run 'growthbook init'", sqlite.PagesTable)
	}
	return nil
}
