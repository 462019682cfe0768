package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateApplications(); err != nil {
		return err
	}
	if err := c.validateApplets(); err != nil {
		return err
	}
	if err := c.validateMirror(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// ValidateAPI reports whether the remote API is configured well enough to run
// a pipeline. It is separate from Validate so offline commands (cache list,
// config init) work without credentials.
func (c *Config) ValidateAPI() error {
	if c.API.Client == defaultAPIClient && c.API.BaseURL == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("api.base_url is required. Set LANGCACHE_API_URL env var or edit %s (create with 'langcache config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateApplications() error {
	seen := make(map[string]struct{}, len(c.TranslatedApplications))
	for i, app := range c.TranslatedApplications {
		if app.ID == "" {
			return fmt.Errorf("translated_applications[%d].id must be set", i)
		}
		if strings.ContainsAny(app.ID, `/\`) || app.ID == "." || app.ID == ".." {
			return fmt.Errorf("translated_applications[%d].id %q must be a single path segment", i, app.ID)
		}
		if _, dup := seen[app.ID]; dup {
			return fmt.Errorf("translated_applications: duplicate application %q", app.ID)
		}
		seen[app.ID] = struct{}{}
	}
	return nil
}

func (c *Config) validateApplets() error {
	for i, applet := range c.Applets {
		if applet.ID == "" {
			return fmt.Errorf("applets[%d].id must be set", i)
		}
	}
	return nil
}

func (c *Config) validateMirror() error {
	if !c.Mirror.Enabled {
		return nil
	}
	if c.Mirror.RedisURL == "" {
		return errors.New("mirror.redis_url must be set when mirror.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
