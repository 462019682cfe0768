package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAPI()
	c.normalizeApplications()
	c.normalizeApplets()
	if err := c.normalizeManifest(); err != nil {
		return err
	}
	c.normalizeMirror()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("LANGCACHE_ROOT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Root = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.Root) == "" {
		c.Paths.Root = defaultRoot
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	var err error
	if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAPI() {
	if value, ok := os.LookupEnv("LANGCACHE_API_URL"); ok && strings.TrimSpace(value) != "" {
		c.API.BaseURL = value
	}
	if c.API.Token == "" {
		if value, ok := os.LookupEnv("LANGCACHE_API_TOKEN"); ok {
			c.API.Token = value
		}
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	c.API.Token = strings.TrimSpace(c.API.Token)
	c.API.Client = strings.ToLower(strings.TrimSpace(c.API.Client))
	if c.API.Client == "" {
		c.API.Client = defaultAPIClient
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultAPITimeout
	}
}

// normalizeApplications trims identifiers and drops blank or repeated
// languages while keeping configuration order.
func (c *Config) normalizeApplications() {
	for i := range c.TranslatedApplications {
		app := &c.TranslatedApplications[i]
		app.ID = strings.TrimSpace(app.ID)
		langs := make([]string, 0, len(app.Languages))
		seen := make(map[string]struct{}, len(app.Languages))
		for _, lang := range app.Languages {
			trimmed := strings.TrimSpace(lang)
			if trimmed == "" {
				continue
			}
			if _, exists := seen[trimmed]; exists {
				continue
			}
			seen[trimmed] = struct{}{}
			langs = append(langs, trimmed)
		}
		app.Languages = langs
	}
}

func (c *Config) normalizeApplets() {
	if len(c.Applets) == 0 {
		c.Applets = DefaultApplets()
		return
	}
	for i := range c.Applets {
		c.Applets[i].ID = strings.TrimSpace(c.Applets[i].ID)
		c.Applets[i].Directory = strings.TrimSpace(c.Applets[i].Directory)
	}
}

func (c *Config) normalizeManifest() error {
	if strings.TrimSpace(c.Manifest.Path) == "" {
		c.Manifest.Path = ""
		return nil
	}
	var err error
	if c.Manifest.Path, err = expandPath(c.Manifest.Path); err != nil {
		return fmt.Errorf("manifest.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeMirror() {
	if c.Mirror.RedisURL == "" {
		if value, ok := os.LookupEnv("LANGCACHE_REDIS_URL"); ok {
			c.Mirror.RedisURL = value
		}
	}
	c.Mirror.RedisURL = strings.TrimSpace(c.Mirror.RedisURL)
	if strings.TrimSpace(c.Mirror.KeyPrefix) == "" {
		c.Mirror.KeyPrefix = defaultMirrorKeyPrefix
	}
	if c.Mirror.TTLSeconds < 0 {
		c.Mirror.TTLSeconds = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
