package system

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/growthbook/internal/app"
	"github.com/julianstephens/growthbook/internal/cli"
	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/models"
	"github.com/julianstephens/growthbook/internal/paths"
	"github.com/julianstephens/growthbook/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()

	resolver := paths.Resolver{BaseDir: t.TempDir()}
	out := &bytes.Buffer{}
	return &cli.Context{
		App:      app.New(sqlite.NewPageStore(resolver)),
		Resolver: resolver,
		Out:      out,
	}, out
}

func TestInitCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	dbPath := filepath.Join(ctx.Resolver.BaseDir, constants.DBFileName)
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
	if !strings.Contains(out.String(), dbPath) {
		t.Errorf("output %q does not mention %s", out.String(), dbPath)
	}

	exists, err := sqlite.TableExists(dbPath, sqlite.PagesTable)
	if err != nil {
		t.Fatalf("TableExists() failed: %v", err)
	}
	if !exists {
		t.Error("init did not create the pages table")
	}
}

func TestPathCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&PathCmd{}).Run(ctx); err != nil {
		t.Fatalf("path command failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	want := filepath.Join(ctx.Resolver.BaseDir, constants.DBFileName)
	if result["path"] != want {
		t.Errorf("path = %q, want %q", result["path"], want)
	}

	// path must not create the database
	if _, err := os.Stat(want); !os.IsNotExist(err) {
		t.Errorf("path command created the database file (stat err = %v)", err)
	}
}

func TestServeCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := ctx.App.Startup(); err != nil {
		t.Fatalf("Startup() failed: %v", err)
	}

	ctx.In = strings.NewReader(
		`{"id":1,"cmd":"save_daily_page","args":{"payload":{"date":"2024-05-01","schedule":"","todo":"","goals":"","motivation":"","happiness":6,"journal":"hi"}}}` + "\n" +
			`{"id":2,"cmd":"get_daily_page","args":{"date":"2024-05-01"}}` + "\n",
	)

	if err := (&ServeCmd{}).Run(ctx); err != nil {
		t.Fatalf("serve command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d responses, want 2: %q", len(lines), out.String())
	}

	var resp struct {
		OK     bool        `json:"ok"`
		Result models.Page `json:"result"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.OK || resp.Result.Journal != "hi" || resp.Result.Happiness != 6 {
		t.Errorf("unexpected response: %s", lines[1])
	}
}

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := ctx.App.Startup(); err != nil {
		t.Fatalf("Startup() failed: %v", err)
	}
	if err := ctx.App.SavePage(models.EmptyPage("2024-05-01")); err != nil {
		t.Fatalf("SavePage() failed: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on a healthy database: %v\n%s", err, out.String())
	}

	output := out.String()
	for _, want := range []string{
		"✓ Data directory writable: OK",
		"✓ Database reachable: OK",
		"✓ Schema present: OK",
		"✓ Integrity check: OK",
		"✓ Page audit: OK (1 pages)",
		"All diagnostics passed!",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestDoctorCmd_NoDatabase(t *testing.T) {
	ctx, out := setupTestContext(t)

	err := (&DoctorCmd{}).Run(ctx)
	if err == nil {
		t.Fatal("expected doctor to fail without a database")
	}

	output := out.String()
	if !strings.Contains(output, "❌ Database reachable: FAIL") {
		t.Errorf("output missing reachability failure:\n%s", output)
	}
	if !strings.Contains(output, "⊘ Schema present: SKIPPED") {
		t.Errorf("output missing skipped schema check:\n%s", output)
	}

	// doctor must not create the database
	dbPath := filepath.Join(ctx.Resolver.BaseDir, constants.DBFileName)
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("doctor created the database file (stat err = %v)", err)
	}
}

func TestDoctorCmd_AuditWarnings(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := ctx.App.Startup(); err != nil {
		t.Fatalf("Startup() failed: %v", err)
	}

	page := models.EmptyPage("2024-05-01")
	page.Happiness = 11
	if err := ctx.App.SavePage(page); err != nil {
		t.Fatalf("SavePage() failed: %v", err)
	}

	// Audit findings are warnings, not failures
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on audit warnings: %v\n%s", err, out.String())
	}

	output := out.String()
	if !strings.Contains(output, "⚠ Page audit: WARNING (1 pages)") {
		t.Errorf("output missing audit warning:\n%s", output)
	}
	if !strings.Contains(output, "Happiness outside 1-10 on: 2024-05-01") {
		t.Errorf("output missing out-of-range date:\n%s", output)
	}
}
