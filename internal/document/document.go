package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"
)

// Sentinel errors for document operations.
var (
	ErrNoPath = errors.New("document has no file path")
)

// MarkdownExtension is appended to save paths that lack one.
const MarkdownExtension = ".md"

// Stats holds counts derived from the buffer.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// Document is the in-memory text buffer plus its file binding.
// The GUI mutates it from the event loop; the preview server and the
// file watcher read it from their own goroutines, hence the lock.
type Document struct {
	mu       sync.RWMutex
	content  string
	path     string
	modified bool
}

func New() *Document {
	return &Document{}
}

// SetContent replaces the buffer and marks the document modified.
func (d *Document) SetContent(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if content == d.content {
		return
	}
	d.content = content
	d.modified = true
}

func (d *Document) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

func (d *Document) Modified() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modified
}

// Reset clears the buffer and file binding. Used by File > New.
func (d *Document) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.content = ""
	d.path = ""
	d.modified = false
}

// Load reads a UTF-8 file into the buffer and binds the document to it.
// The modified flag is cleared on success.
func (d *Document) Load(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the file dialog or CLI
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.content = string(data)
	d.path = path
	d.modified = false
	return nil
}

// Save writes the buffer to the bound path. Fails with ErrNoPath for
// unsaved documents; callers fall back to SaveAs.
func (d *Document) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == "" {
		return ErrNoPath
	}
	return d.writeLocked(d.path)
}

// SaveAs writes the buffer to path and rebinds the document to it.
// A missing markdown extension is appended.
func (d *Document) SaveAs(path string) error {
	path = EnsureExtension(path, MarkdownExtension)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.writeLocked(path); err != nil {
		return err
	}
	d.path = path
	return nil
}

// writeLocked performs an atomic write: temp file in the target
// directory, then rename. CreateTemp makes the file 0600, so the mode is
// reset to the target's existing permissions before the rename replaces
// it. Callers hold d.mu.
func (d *Document) writeLocked(path string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mdflex-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(d.content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	d.modified = false
	return nil
}

// MarkSaved clears the modified flag without touching the buffer.
// Used after programmatic SetText calls that echo loaded content.
func (d *Document) MarkSaved() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modified = false
}

// Stats computes word, character and line counts for the buffer.
func (d *Document) Stats() Stats {
	d.mu.RLock()
	content := d.content
	d.mu.RUnlock()

	s := Stats{Chars: utf8.RuneCountInString(content)}
	if strings.TrimSpace(content) != "" {
		s.Words = len(strings.Fields(content))
	}
	if content != "" {
		s.Lines = strings.Count(content, "\n") + 1
	}
	return s
}

// Title returns the display name: the base file name, or "Untitled"
// for unsaved documents.
func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.path == "" {
		return "Untitled"
	}
	return filepath.Base(d.path)
}

// Dir returns the directory of the bound file, or empty for unsaved
// documents. Relative image paths resolve against it.
func (d *Document) Dir() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.path == "" {
		return ""
	}
	return filepath.Dir(d.path)
}

// EnsureExtension appends ext when path has no extension at all.
func EnsureExtension(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}
