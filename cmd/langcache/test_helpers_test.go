package main

import (
	"bytes"
	"strings"
	"testing"

	"langcache/internal/config"
	"langcache/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	api        *testsupport.APIServer
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	for _, key := range []string{"LANGCACHE_ROOT", "LANGCACHE_API_URL", "LANGCACHE_API_TOKEN", "LANGCACHE_REDIS_URL"} {
		t.Setenv(key, "")
	}

	api := testsupport.NewAPIServer(t)
	opts = append([]testsupport.ConfigOption{
		testsupport.WithAPIBaseURL(api.URL),
		testsupport.WithApplications(config.Application{ID: "blog", Languages: []string{"en", "de"}}),
	}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	t.Setenv("HOME", testsupport.BaseDir(cfg))

	return &cliTestEnv{
		cfg:        cfg,
		api:        api,
		configPath: testsupport.WriteConfigFile(t, cfg),
		baseDir:    testsupport.BaseDir(cfg),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--log-level", "error"}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
