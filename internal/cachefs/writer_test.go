package cachefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"langcache/internal/cachefs"
)

func TestWriteCreatesMissingAncestors(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")

	ok, err := cachefs.Write(root, "blog/nested/en.php", []byte("<?php return [];"))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected write to report success")
	}

	dir := filepath.Join(root, "blog", "nested")
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected directory %q: %v", dir, err)
	}
	if perm := info.Mode().Perm(); perm&^cachefs.DirMode != 0 {
		t.Fatalf("unexpected directory permissions %v", perm)
	}
	content, err := os.ReadFile(filepath.Join(dir, "en.php"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(content) != "<?php return [];" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	root := t.TempDir()

	if _, err := cachefs.Write(root, "blog/en.php", []byte("first version, longer")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	ok, err := cachefs.Write(root, "blog/en.php", []byte("second"))
	if err != nil || !ok {
		t.Fatalf("second write: %v %v", ok, err)
	}
	content, err := os.ReadFile(filepath.Join(root, "blog", "en.php"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "second" {
		t.Fatalf("expected overwrite without merge, got %q", content)
	}
}

func TestWriteLengthMatchesPayload(t *testing.T) {
	root := t.TempDir()
	payloads := [][]byte{nil, []byte(""), []byte("x"), make([]byte, 128*1024)}
	for i, payload := range payloads {
		ok, err := cachefs.Write(root, filepath.ToSlash(filepath.Join("sizes", string(rune('a'+i))+".bin")), payload)
		if err != nil || !ok {
			t.Fatalf("payload %d: %v %v", i, ok, err)
		}
		info, err := os.Stat(filepath.Join(root, "sizes", string(rune('a'+i))+".bin"))
		if err != nil {
			t.Fatalf("stat payload %d: %v", i, err)
		}
		if info.Size() != int64(len(payload)) {
			t.Fatalf("payload %d: size %d want %d", i, info.Size(), len(payload))
		}
	}
}

func TestWriteRejectsEscapes(t *testing.T) {
	root := t.TempDir()
	for _, sub := range []string{"../evil.php", "/abs/path", ".", "a/../../b"} {
		_, err := cachefs.Write(root, sub, []byte("x"))
		if !errors.Is(err, cachefs.ErrOutsideRoot) {
			t.Fatalf("expected ErrOutsideRoot for %q, got %v", sub, err)
		}
	}
}

func TestWriteFailsWhenParentIsFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "blog"), []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ok, err := cachefs.Write(root, "blog/en.php", []byte("x"))
	if err == nil || ok {
		t.Fatalf("expected directory error, got %v %v", ok, err)
	}
}

func TestPathIsDeterministic(t *testing.T) {
	a, err := cachefs.Path("/srv/cache", "flash/lang_en.xml")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	b, _ := cachefs.Path("/srv/cache/", "flash//lang_en.xml")
	if a != b || a != filepath.Join("/srv/cache", "flash", "lang_en.xml") {
		t.Fatalf("expected identical paths, got %q and %q", a, b)
	}
}
