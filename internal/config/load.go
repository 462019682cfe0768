package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// projectConfigName is looked up in the working directory when the per-user
// config file does not exist.
const projectConfigName = "langcache.toml"

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads the configuration at path, or the first existing file among the
// per-user and project locations when path is empty, on top of Default. It
// returns the normalized config, the file it resolved to and whether that
// file existed.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := locate(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	// A file that lists applets replaces the built-in list instead of
	// appending to it.
	cfg.Applets = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func locate(explicit string) (string, bool, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		p, err := expandPath(explicit)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return p, false, nil
		case err != nil:
			return "", false, fmt.Errorf("stat config %s: %w", p, err)
		case info.IsDir():
			return "", false, fmt.Errorf("config %s is a directory", p)
		}
		return p, true, nil
	}

	userPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := expandPath(projectConfigName)
	if err != nil {
		return "", false, err
	}
	for _, p := range []string{userPath, projectPath} {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true, nil
		}
	}
	return userPath, false, nil
}

// ExpandPath resolves a leading ~ and makes p absolute.
func ExpandPath(p string) (string, error) {
	return expandPath(p)
}

func expandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home directory: %w", err)
		}
		p = home + strings.TrimPrefix(p, "~")
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("absolute path for %q: %w", p, err)
	}
	return abs, nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config %s: %w", path, err)
	}
	return nil
}
