package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"langcache/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
}

func TestConfigShowRedactsToken(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.API.Token = "super-secret"
	path := testsupport.WriteConfigFile(t, env.cfg)

	out, _, err := runCLI(t, []string{"config", "show"}, path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if strings.Contains(out, "super-secret") {
		t.Fatalf("token leaked in output:\n%s", out)
	}
	requireContains(t, out, "********")
	requireContains(t, out, "[[translated_applications]]")
}
