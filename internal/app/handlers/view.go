package handlers

import (
	"fmt"

	"mdflex/internal/config"
	"mdflex/internal/document"
	"mdflex/internal/editor"
	"mdflex/internal/gui"
	"mdflex/internal/logger"
)

// ViewHandler covers the mode toggle, theme, zoom, search and the guide.
type ViewHandler struct {
	doc *document.Document
	gui *gui.Manager
	cfg *config.Store
	log logger.Logger

	lastSearch string
}

func NewViewHandler(doc *document.Document, g *gui.Manager, cfg *config.Store, log logger.Logger) *ViewHandler {
	return &ViewHandler{doc: doc, gui: g, cfg: cfg, log: log}
}

// TogglePreview flips between the editor and the rendered preview.
func (h *ViewHandler) TogglePreview() {
	if h.gui.PreviewActive() {
		h.gui.ShowEditor()
		h.gui.StatusBar().SetMessage("Edit mode")
		return
	}
	h.gui.ShowPreview(h.doc.Content())
	h.gui.StatusBar().SetMessage("Preview mode")
}

// ToggleTheme switches between dark and light, persisting the choice.
func (h *ViewHandler) ToggleTheme() {
	theme := config.ThemeDark
	if h.cfg.Theme() == config.ThemeDark {
		theme = config.ThemeLight
	}
	h.cfg.SetTheme(theme)
	h.applyAndSave()
	h.gui.StatusBar().SetMessage("Theme: " + theme)
}

// ZoomIn raises the zoom by one step up to the maximum.
func (h *ViewHandler) ZoomIn() {
	h.setZoom(h.cfg.Zoom() + config.ZoomStep)
}

// ZoomOut lowers the zoom by one step down to the minimum.
func (h *ViewHandler) ZoomOut() {
	h.setZoom(h.cfg.Zoom() - config.ZoomStep)
}

// ZoomReset restores the default zoom.
func (h *ViewHandler) ZoomReset() {
	h.setZoom(config.DefaultZoom)
}

func (h *ViewHandler) setZoom(zoom int) {
	if zoom < config.MinZoom {
		zoom = config.MinZoom
	}
	if zoom > config.MaxZoom {
		zoom = config.MaxZoom
	}
	if zoom == h.cfg.Zoom() {
		return
	}

	h.cfg.SetZoom(zoom)
	h.applyAndSave()
	h.gui.StatusBar().SetMessage(fmt.Sprintf("Zoom: %d%%", zoom))
}

func (h *ViewHandler) applyAndSave() {
	h.gui.ApplyTheme(h.cfg.Theme(), h.cfg.Zoom())
	if err := h.cfg.Save(); err != nil {
		h.log.Warning("view", "config save failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// ToggleFullScreen flips full screen mode.
func (h *ViewHandler) ToggleFullScreen() {
	h.gui.ToggleFullScreen()
}

// Search prompts for a term and jumps to the next match, wrapping at the
// end of the document.
func (h *ViewHandler) Search() {
	h.gui.ShowSearchDialog(func(term string) {
		h.lastSearch = term
		h.FindNext()
	})
}

// FindNext repeats the last search from the cursor position.
func (h *ViewHandler) FindNext() {
	if h.lastSearch == "" {
		h.Search()
		return
	}

	text := h.gui.EditorText()
	from := h.gui.CursorOffset()
	idx := editor.Find(text, h.lastSearch, from)
	if idx < 0 {
		h.gui.StatusBar().SetMessage("Not found: " + h.lastSearch)
		return
	}

	h.gui.SelectRange(editor.Span{
		Start: idx,
		End:   idx + len([]rune(h.lastSearch)),
	})
	h.gui.StatusBar().SetMessage("Found: " + h.lastSearch)
}

// Guide opens the built-in markdown reference.
func (h *ViewHandler) Guide() {
	h.gui.ShowGuide()
}

// About shows the version and current document statistics.
func (h *ViewHandler) About() {
	s := h.doc.Stats()
	h.gui.ShowInfo("About "+gui.AppName, fmt.Sprintf(
		"%s %s\nA markdown reader and editor.\n\n%s: %d words, %d characters, %d lines",
		gui.AppName, gui.Version, h.doc.Title(), s.Words, s.Chars, s.Lines))
}
