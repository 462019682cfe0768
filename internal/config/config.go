package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Lookup keys understood by Config.Lookup.
const (
	KeyTranslatedApplications = "system.translated_applications"
	KeyRootPath               = "system.paths.root"
	KeyApplets                = "system.applets"
)

// Paths contains directory configuration.
type Paths struct {
	Root   string `toml:"root"`
	LogDir string `toml:"log_dir"`
}

// API contains configuration for the remote language API.
type API struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	Client         string `toml:"client"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Application is a consumer of translations and the languages it needs.
type Application struct {
	ID        string   `toml:"id"`
	Languages []string `toml:"languages"`
}

// Applet is a legacy embedded client whose languages are discovered remotely.
type Applet struct {
	ID        string `toml:"id"`
	Directory string `toml:"directory"`
}

// Manifest contains configuration for the sqlite cache manifest.
type Manifest struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Mirror contains configuration for the optional redis copy of cache entries.
type Mirror struct {
	Enabled    bool   `toml:"enabled"`
	RedisURL   string `toml:"redis_url"`
	KeyPrefix  string `toml:"key_prefix"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for langcache.
//
// Configuration sections:
//   - Paths: cache root and log directory
//   - API: language API endpoint and client selection
//   - TranslatedApplications: applications and their languages, in run order
//   - Applets: applets whose languages are discovered remotely
//   - Manifest: sqlite index of written cache entries
//   - Mirror: optional redis copy of cache entries
//   - Logging: log format and level
type Config struct {
	Paths                  Paths         `toml:"paths"`
	API                    API           `toml:"api"`
	TranslatedApplications []Application `toml:"translated_applications"`
	Applets                []Applet      `toml:"applets"`
	Manifest               Manifest      `toml:"manifest"`
	Mirror                 Mirror        `toml:"mirror"`
	Logging                Logging       `toml:"logging"`
}

// CacheDir returns the directory under which all cache entries are written.
func (c *Config) CacheDir() string {
	return filepath.Join(c.Paths.Root, "cache")
}

// ManifestPath returns the sqlite manifest location.
func (c *Config) ManifestPath() string {
	if strings.TrimSpace(c.Manifest.Path) != "" {
		return c.Manifest.Path
	}
	return filepath.Join(c.Paths.LogDir, "manifest.db")
}

// EnsureDirectories creates the directories a run writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.CacheDir(), c.Paths.LogDir}
	if c.Manifest.Enabled {
		dirs = append(dirs, filepath.Dir(c.ManifestPath()))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure %s: %w", dir, err)
		}
	}
	return nil
}

// Lookup resolves a dotted configuration key. It backs the key-value view the
// language pipelines read their inputs through.
func (c *Config) Lookup(key string) (any, bool) {
	switch strings.TrimSpace(key) {
	case KeyTranslatedApplications:
		apps := make([]Application, len(c.TranslatedApplications))
		for i, app := range c.TranslatedApplications {
			apps[i] = Application{ID: app.ID, Languages: append([]string(nil), app.Languages...)}
		}
		return apps, true
	case KeyRootPath:
		return c.Paths.Root, true
	case KeyApplets:
		return append([]Applet(nil), c.Applets...), true
	default:
		return nil, false
	}
}

// Marshal encodes cfg as TOML in the same layout Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Redacted returns a copy of c with secrets masked for display.
func (c *Config) Redacted() Config {
	out := *c
	if strings.TrimSpace(out.API.Token) != "" {
		out.API.Token = "********"
	}
	out.TranslatedApplications = make([]Application, len(c.TranslatedApplications))
	for i, app := range c.TranslatedApplications {
		out.TranslatedApplications[i] = Application{ID: app.ID, Languages: append([]string(nil), app.Languages...)}
	}
	out.Applets = append([]Applet(nil), c.Applets...)
	return out
}
