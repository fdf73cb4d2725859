package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"drivefind/internal/services"
	"drivefind/internal/testsupport"
)

func seedResolvableFile(t *testing.T, env *cliTestEnv) string {
	t.Helper()

	dbPath := testsupport.SeedAccount(t, env.cfg.Paths.DriveFSDir, "100000001")
	testsupport.InsertItems(t, dbPath,
		testsupport.Item{StableID: 1, Title: "My Drive", Folder: true},
		testsupport.Item{StableID: 2, CloudID: "TARGETFILE01", Title: "report.pdf", Parent: 1},
	)

	mount := testsupport.NewMount(t, env.cfg.Paths.CloudStorageDir, "user@example.com")
	return testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "report.pdf"))
}

func TestResolvePrintsDatabaseHit(t *testing.T) {
	env := setupCLITestEnv(t)
	want := seedResolvableFile(t, env)

	out, _, err := runCLI(t, []string{"resolve", "TARGETFILE01"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := strings.TrimSpace(out); got != want {
		t.Fatalf("resolve printed %q, want %q", got, want)
	}
}

func TestResolveJSONReportsStrategy(t *testing.T) {
	env := setupCLITestEnv(t)
	want := seedResolvableFile(t, env)

	out, _, err := runCLI(t, []string{"resolve", "--json", "TARGETFILE01"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve --json: %v", err)
	}

	var payload struct {
		Path     string `json:"path"`
		Strategy string `json:"strategy"`
		Account  string `json:"account"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if payload.Path != want {
		t.Fatalf("path = %q, want %q", payload.Path, want)
	}
	if payload.Strategy != "database" {
		t.Fatalf("strategy = %q, want database", payload.Strategy)
	}
	if payload.Account != "100000001" {
		t.Fatalf("account = %q, want 100000001", payload.Account)
	}
}

func TestResolveReadsIDFromStdin(t *testing.T) {
	env := setupCLITestEnv(t)
	want := seedResolvableFile(t, env)

	out, _, err := runCLIWithStdin(t, []string{"resolve"}, env.configPath, strings.NewReader("  TARGETFILE01\n"))
	if err != nil {
		t.Fatalf("resolve from stdin: %v", err)
	}
	if got := strings.TrimSpace(out); got != want {
		t.Fatalf("resolve printed %q, want %q", got, want)
	}
}

func TestResolveUnknownIDIsNotFound(t *testing.T) {
	env := setupCLITestEnv(t)
	seedResolvableFile(t, env)

	_, _, err := runCLI(t, []string{"resolve", "NOSUCHID9999"}, env.configPath)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveRejectsMalformedID(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"resolve", "not a file id!"}, env.configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "malformed file ID")
}

func TestResolveWithoutIDFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"resolve"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing ID")
	}
	requireContains(t, err.Error(), "no file ID")
}
