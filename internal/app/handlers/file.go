// Package handlers implements the application's user-facing operations,
// mediating between the document model and the GUI manager.
package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"mdflex/internal/config"
	"mdflex/internal/document"
	"mdflex/internal/export"
	"mdflex/internal/gui"
	"mdflex/internal/logger"
	"mdflex/internal/render"
)

// FileHandler drives new/open/save/export and the unsaved-changes flow.
type FileHandler struct {
	doc *document.Document
	gui *gui.Manager
	cfg *config.Store
	log logger.Logger
}

func NewFileHandler(doc *document.Document, g *gui.Manager, cfg *config.Store, log logger.Logger) *FileHandler {
	return &FileHandler{doc: doc, gui: g, cfg: cfg, log: log}
}

// New clears the document, confirming first when changes would be lost.
func (h *FileHandler) New() {
	h.ConfirmUnsaved(func() {
		h.doc.Reset()
		h.gui.SetEditorText("", 0)
		h.doc.MarkSaved()
		h.refreshTitle()
		h.gui.StatusBar().SetMessage("New document")
	})
}

// Open prompts for a file and loads it.
func (h *FileHandler) Open() {
	h.ConfirmUnsaved(func() {
		h.gui.ShowOpenDialog(h.cfg.LastDir(), h.OpenPath)
	})
}

// OpenPath loads the given file without confirmation. Used by the open
// dialog and by the command line.
func (h *FileHandler) OpenPath(path string) {
	// File IO off the event goroutine, UI updates back on it.
	go func() {
		if err := h.doc.Load(path); err != nil {
			h.gui.RunOnMain(func() {
				h.gui.ShowError(fmt.Errorf("opening %s: %w", filepath.Base(path), err))
			})
			return
		}

		h.rememberDir(path)
		h.log.Info("file", "document opened", map[string]interface{}{
			"path": path,
		})

		h.gui.RunOnMain(func() {
			h.gui.SetEditorText(h.doc.Content(), 0)
			h.doc.MarkSaved()
			h.refreshTitle()
			h.gui.StatusBar().SetMessage("Opened " + filepath.Base(path))
		})
	}()
}

// Save writes to the document's path, falling back to Save As for
// untitled documents. onDone, if non-nil, runs after a successful save.
func (h *FileHandler) Save(onDone func()) {
	if h.doc.Path() == "" {
		h.saveAs(onDone)
		return
	}

	go func() {
		if err := h.doc.Save(); err != nil {
			h.gui.RunOnMain(func() {
				h.gui.ShowError(fmt.Errorf("saving %s: %w", h.doc.Title(), err))
			})
			return
		}
		h.afterSave(onDone)
	}()
}

// SaveAs always prompts for a target path.
func (h *FileHandler) SaveAs() {
	h.saveAs(nil)
}

func (h *FileHandler) saveAs(onDone func()) {
	suggested := h.doc.Title()
	if filepath.Ext(suggested) == "" {
		suggested += document.MarkdownExtension
	}

	h.gui.ShowSaveDialog(h.cfg.LastDir(), suggested, func(path string) {
		go func() {
			if err := h.doc.SaveAs(path); err != nil {
				h.gui.RunOnMain(func() {
					h.gui.ShowError(fmt.Errorf("saving %s: %w", filepath.Base(path), err))
				})
				return
			}
			h.rememberDir(path)
			h.afterSave(onDone)
		}()
	})
}

func (h *FileHandler) afterSave(onDone func()) {
	h.log.Info("file", "document saved", map[string]interface{}{
		"path": h.doc.Path(),
	})

	h.gui.RunOnMain(func() {
		h.refreshTitle()
		h.gui.StatusBar().SetMessage("Saved " + h.doc.Title())
		if onDone != nil {
			onDone()
		}
	})
}

// Export writes a standalone HTML page styled with the active theme.
func (h *FileHandler) Export() {
	if strings.TrimSpace(h.doc.Content()) == "" {
		h.gui.ShowInfo("Export HTML", "Nothing to export: the document is empty.")
		return
	}

	suggested := h.doc.Title()
	if ext := filepath.Ext(suggested); ext != "" {
		suggested = suggested[:len(suggested)-len(ext)]
	}
	suggested += export.HTMLExtension

	h.gui.ShowExportDialog(h.cfg.LastDir(), suggested, func(path string) {
		content := h.doc.Content()
		title := h.doc.Title()
		palette := render.PaletteFor(h.cfg.Theme())

		go func() {
			written, err := export.WriteFile(path, content, title, palette)
			if err != nil {
				h.gui.RunOnMain(func() {
					h.gui.ShowError(err)
				})
				return
			}

			h.log.Info("file", "document exported", map[string]interface{}{
				"path": written,
			})
			h.gui.RunOnMain(func() {
				h.gui.StatusBar().SetMessage("Exported " + filepath.Base(written))
			})
		}()
	})
}

// ConfirmUnsaved runs next immediately when the document is clean,
// otherwise asks whether to save, discard or cancel. Cancel drops next.
func (h *FileHandler) ConfirmUnsaved(next func()) {
	if !h.doc.Modified() {
		next()
		return
	}

	h.gui.ShowUnsavedDialog(h.doc.Title(),
		func() { h.Save(next) },
		next,
	)
}

func (h *FileHandler) refreshTitle() {
	h.gui.SetTitle(h.doc.Title(), h.doc.Modified())
}

func (h *FileHandler) rememberDir(path string) {
	h.cfg.SetLastDir(filepath.Dir(path))
	if err := h.cfg.Save(); err != nil {
		h.log.Warning("file", "config save failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
