package preview

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mdflex/internal/logger"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.md")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logger.Nop{})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.md")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logger.Nop{})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	other := filepath.Join(dir, "other.md")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("sibling file write triggered the watcher")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherSurvivesReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.md")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logger.Nop{})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Save the way editors do: temp file then rename over the target.
	tmp := filepath.Join(dir, ".tmp-save")
	if err := os.WriteFile(tmp, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no notification after replace-by-rename")
	}
}
