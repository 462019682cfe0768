package preflight

import (
	"context"

	"langcache/internal/config"
	"langcache/internal/languageapi"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks relevant to cfg in display order.
func RunAll(ctx context.Context, cfg *config.Config, registry *languageapi.Registry) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Cache directory", cfg.CacheDir()),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckAPI(ctx, cfg.API, registry),
	}
	if cfg.Mirror.Enabled {
		results = append(results, CheckMirror(ctx, cfg.Mirror))
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
