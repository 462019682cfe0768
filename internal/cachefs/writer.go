package cachefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DirMode is the permission used for directories created under the cache root.
const DirMode os.FileMode = 0o755

// FileMode is the permission used for cache entries.
const FileMode os.FileMode = 0o644

// ErrOutsideRoot reports a sub path that would resolve outside the cache root.
var ErrOutsideRoot = errors.New("cache path escapes root")

// Path returns the deterministic location of subPath under root.
func Path(root, subPath string) (string, error) {
	root = filepath.Clean(root)
	cleaned := filepath.Clean(filepath.FromSlash(subPath))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, subPath)
	}
	return filepath.Join(root, cleaned), nil
}

// Write stores data at root/subPath, creating missing parent directories and
// replacing any existing file. It reports true only when every byte of data
// reached the file.
func Write(root, subPath string, data []byte) (bool, error) {
	dest, err := Path(root, subPath)
	if err != nil {
		return false, err
	}
	if err := ensureDir(filepath.Dir(dest)); err != nil {
		return false, err
	}

	file, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileMode)
	if err != nil {
		return false, fmt.Errorf("open cache file %q: %w", dest, err)
	}
	complete, writeErr := writePayload(file, data)
	closeErr := file.Close()
	if writeErr != nil {
		return false, fmt.Errorf("write cache file %q: %w", dest, writeErr)
	}
	if closeErr != nil {
		return false, fmt.Errorf("close cache file %q: %w", dest, closeErr)
	}
	return complete, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("cache directory %q is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat cache directory %q: %w", dir, err)
	}
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("create cache directory %q: %w", dir, err)
	}
	return nil
}

// writePayload reports whether all of data was written. A short write is a
// failed write, not an error.
func writePayload(w io.Writer, data []byte) (bool, error) {
	n, err := w.Write(data)
	if err != nil && !errors.Is(err, io.ErrShortWrite) {
		return false, err
	}
	return n == len(data), nil
}
