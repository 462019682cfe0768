package testsupport

import (
	"context"
	"testing"

	"langcache/internal/config"
	"langcache/internal/manifest"
)

// MustOpenManifest opens the manifest configured in cfg and registers cleanup.
func MustOpenManifest(t testing.TB, cfg *config.Config) *manifest.Store {
	t.Helper()

	store, err := manifest.Open(context.Background(), cfg.ManifestPath())
	if err != nil {
		t.Fatalf("manifest.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
