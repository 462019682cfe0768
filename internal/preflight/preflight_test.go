package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"langcache/internal/config"
	"langcache/internal/languageapi"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckAPI_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/system_api/language_api" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer srv.Close()

	result := CheckAPI(context.Background(), config.API{Client: "http", BaseURL: srv.URL}, languageapi.NewRegistry())
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckAPI_AuthFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	result := CheckAPI(context.Background(), config.API{Client: "http", BaseURL: srv.URL, Token: "bad"}, languageapi.NewRegistry())
	if result.Passed {
		t.Fatal("expected failure for 401")
	}
	if !strings.Contains(result.Detail, "auth failed") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckAPI_MissingURLAndUnknownClient(t *testing.T) {
	registry := languageapi.NewRegistry()
	if result := CheckAPI(context.Background(), config.API{Client: "http"}, registry); result.Passed {
		t.Fatal("expected failure without base url")
	}
	if result := CheckAPI(context.Background(), config.API{Client: "grpc"}, registry); result.Passed {
		t.Fatal("expected failure for unknown client")
	}

	registry.Register("static", func(config.API) (languageapi.Caller, error) { return languageapi.NewStaticCaller(), nil })
	if result := CheckAPI(context.Background(), config.API{Client: "static"}, registry); !result.Passed {
		t.Fatalf("expected registered non-http client to pass, got %s", result.Detail)
	}
}

func TestRunAllSkipsDisabledMirror(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = base
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.API.Client = "http"
	cfg.Mirror.Enabled = false
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	results := RunAll(context.Background(), &cfg, languageapi.NewRegistry())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Passed || !results[1].Passed {
		t.Fatalf("expected directory checks to pass: %+v", results)
	}
	if Passed(results) {
		t.Fatal("expected overall failure without api base url")
	}
}
