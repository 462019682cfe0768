package preflight

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"langcache/internal/config"
	"langcache/internal/languageapi"
	"langcache/internal/mirror"
)

// CheckDirectoryAccess reports whether path is a directory the current user
// can list and write into.
func CheckDirectoryAccess(name, path string) Result {
	fail := func(format string, args ...any) Result {
		return Result{Name: name, Detail: path + " (" + fmt.Sprintf(format, args...) + ")"}
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail("does not exist")
	case err != nil:
		return fail("stat failed: %v", err)
	case !info.IsDir():
		return fail("not a directory")
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fail("access denied: %v", err)
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckAPI verifies that the configured client implementation exists and,
// for the HTTP client, that the endpoint answers.
func CheckAPI(ctx context.Context, cfg config.API, registry *languageapi.Registry) Result {
	const name = "Language API"

	client := strings.ToLower(strings.TrimSpace(cfg.Client))
	if registry == nil || !registry.Has(client) {
		return Result{Name: name, Detail: fmt.Sprintf("unknown client %q", cfg.Client)}
	}
	if client != "http" {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("client %s", client)}
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing base url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, base+"/"+languageapi.Target+"/"+languageapi.Mode, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("request failed (%v)", err)}
	}
	if token := strings.TrimSpace(cfg.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpClient := &http.Client{Timeout: 5 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unreachable (%v)", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Result{Name: name, Detail: fmt.Sprintf("auth failed (%d)", resp.StatusCode)}
	case resp.StatusCode >= http.StatusInternalServerError:
		return Result{Name: name, Detail: fmt.Sprintf("server error (%d)", resp.StatusCode)}
	default:
		return Result{Name: name, Passed: true, Detail: "Reachable"}
	}
}

// CheckMirror verifies the redis mirror connection when mirroring is enabled.
func CheckMirror(ctx context.Context, cfg config.Mirror) Result {
	const name = "Redis mirror"

	if !cfg.Enabled {
		return Result{Name: name, Passed: true, Detail: "Disabled"}
	}
	m, err := mirror.NewRedis(ctx, cfg)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	_ = m.Close()
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}
