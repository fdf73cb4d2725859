package main

import (
	"encoding/json"
	"testing"

	"drivefind/internal/testsupport"
)

func TestAccountsListsSeededAccounts(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedAccount(t, env.cfg.Paths.DriveFSDir, "100000001")
	testsupport.SeedAccount(t, env.cfg.Paths.DriveFSDir, "100000002")

	out, _, err := runCLI(t, []string{"accounts"}, env.configPath)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	requireContains(t, out, "100000001")
	requireContains(t, out, "100000002")
}

func TestAccountsJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	dbPath := testsupport.SeedAccount(t, env.cfg.Paths.DriveFSDir, "100000001")

	out, _, err := runCLI(t, []string{"accounts", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("accounts --json: %v", err)
	}

	var views []accountView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 account, got %d", len(views))
	}
	if views[0].ID != "100000001" {
		t.Fatalf("id = %q", views[0].ID)
	}
	if views[0].StorePath != dbPath {
		t.Fatalf("store path = %q, want %q", views[0].StorePath, dbPath)
	}
	if views[0].SizeBytes <= 0 {
		t.Fatalf("size = %d, want > 0", views[0].SizeBytes)
	}
}

func TestAccountsEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"accounts"}, env.configPath)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	requireContains(t, out, "No accounts found")
}
