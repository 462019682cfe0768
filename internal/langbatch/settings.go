package langbatch

import (
	"fmt"
	"strings"

	"langcache/internal/config"
)

// Settings is the key-value view of configuration the pipelines read from.
// *config.Config satisfies it.
type Settings interface {
	Lookup(key string) (any, bool)
}

// StaticSettings is a map-backed Settings.
type StaticSettings map[string]any

// Lookup implements Settings.
func (s StaticSettings) Lookup(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

var _ Settings = (*config.Config)(nil)

func lookupApplications(s Settings) ([]config.Application, error) {
	raw, ok := s.Lookup(config.KeyTranslatedApplications)
	if !ok || raw == nil {
		return nil, nil
	}
	apps, ok := raw.([]config.Application)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected type %T", config.KeyTranslatedApplications, raw)
	}
	return apps, nil
}

func lookupApplets(s Settings) ([]config.Applet, error) {
	raw, ok := s.Lookup(config.KeyApplets)
	if !ok || raw == nil {
		return config.DefaultApplets(), nil
	}
	applets, ok := raw.([]config.Applet)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected type %T", config.KeyApplets, raw)
	}
	return applets, nil
}

func lookupRoot(s Settings) (string, error) {
	raw, ok := s.Lookup(config.KeyRootPath)
	if !ok {
		return "", fmt.Errorf("%s not configured", config.KeyRootPath)
	}
	root, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected type %T", config.KeyRootPath, raw)
	}
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("%s is empty", config.KeyRootPath)
	}
	return root, nil
}
