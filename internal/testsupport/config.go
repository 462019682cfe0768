package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"langcache/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Root = filepath.Join(base, "root")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Manifest.Path = filepath.Join(base, "logs", "manifest.db")
	cfgVal.API.BaseURL = "http://127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAPIBaseURL points the config at a test API server.
func WithAPIBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.BaseURL = url
	}
}

// WithApplications replaces the translated applications.
func WithApplications(apps ...config.Application) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.TranslatedApplications = apps
	}
}

// WithApplets replaces the applet list.
func WithApplets(applets ...config.Applet) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Applets = applets
	}
}

// WithoutManifest disables the sqlite manifest.
func WithoutManifest() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Manifest.Enabled = false
	}
}

// WithDirectories creates the cache and log directories up front.
func WithDirectories() ConfigOption {
	return func(b *configBuilder) {
		if err := b.cfg.EnsureDirectories(); err != nil {
			b.t.Fatalf("ensure directories: %v", err)
		}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Root)
}

// WriteConfigFile writes cfg as TOML into the base directory and returns its
// path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := config.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "langcache.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
