// Package export produces standalone HTML files from markdown documents.
// The generated page embeds the theme stylesheet and the copy-button
// script, so it renders identically in a browser without the application.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mdflex/internal/render"
)

// ErrEmptyDocument is returned when there is nothing to export.
var ErrEmptyDocument = errors.New("document is empty")

// HTMLExtension is enforced on export targets.
const HTMLExtension = ".html"

// Build renders the markdown content into a complete HTML page styled for
// the given palette. Relative image paths are resolved against baseDir.
func Build(content, title, baseDir string, palette render.Palette) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyDocument
	}

	r := render.NewRenderer(palette)
	page, err := r.RenderDocument(content, title, baseDir, render.PageOptions{CopyButtons: true})
	if err != nil {
		return "", fmt.Errorf("exporting %q: %w", title, err)
	}
	return page, nil
}

// WriteFile builds the page and writes it to path, appending the .html
// extension when the target has none. Returns the path actually written.
func WriteFile(path, content, title string, palette render.Palette) (string, error) {
	if filepath.Ext(path) == "" {
		path += HTMLExtension
	}

	if title == "" {
		title = filepath.Base(path)
	}
	page, err := Build(content, title, filepath.Dir(path), palette)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("writing export %s: %w", path, err)
	}
	return path, nil
}
