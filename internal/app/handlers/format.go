package handlers

import (
	"mdflex/internal/editor"
	"mdflex/internal/gui"
	"mdflex/internal/logger"
)

// FormatHandler maps toolbar and shortcut actions onto the editor
// package's text operations.
type FormatHandler struct {
	gui *gui.Manager
	log logger.Logger
}

func NewFormatHandler(g *gui.Manager, log logger.Logger) *FormatHandler {
	return &FormatHandler{gui: g, log: log}
}

// apply runs a text operation against the current buffer and selection,
// then writes the result back. Formatting only applies in edit mode.
func (h *FormatHandler) apply(op func(text string, sel editor.Span) editor.Result) {
	if h.gui.PreviewActive() {
		return
	}

	text := h.gui.EditorText()
	sel := h.gui.Selection()
	res := op(text, sel)
	h.gui.SetEditorText(res.Text, res.Cursor)
}

func (h *FormatHandler) Bold() {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.Surround(text, sel, "**", "**")
	})
}

func (h *FormatHandler) Italic() {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.Surround(text, sel, "*", "*")
	})
}

// Underline has no markdown syntax; a raw <u> tag survives both goldmark
// and the HTML export.
func (h *FormatHandler) Underline() {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.Surround(text, sel, "<u>", "</u>")
	})
}

func (h *FormatHandler) Strikethrough() {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.Surround(text, sel, "~~", "~~")
	})
}

func (h *FormatHandler) InlineCode() {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.Surround(text, sel, "`", "`")
	})
}

func (h *FormatHandler) CodeBlock() {
	h.apply(editor.CodeBlock)
}

func (h *FormatHandler) Link() {
	h.apply(editor.Link)
}

func (h *FormatHandler) Heading(level int) {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.Heading(text, sel.Start, level)
	})
}

func (h *FormatHandler) Quote() {
	h.apply(editor.Quote)
}

func (h *FormatHandler) BulletList() {
	h.prefixLine("- ")
}

func (h *FormatHandler) NumberedList() {
	h.prefixLine("1. ")
}

func (h *FormatHandler) TaskList() {
	h.prefixLine("- [ ] ")
}

func (h *FormatHandler) prefixLine(prefix string) {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.PrefixLine(text, sel.Start, prefix)
	})
}

func (h *FormatHandler) Image() {
	h.insert(editor.ImageTemplate)
}

func (h *FormatHandler) Table() {
	h.insert(editor.TableTemplate)
}

func (h *FormatHandler) HorizontalRule() {
	h.insert(editor.HorizontalRule)
}

func (h *FormatHandler) insert(snippet string) {
	h.apply(func(text string, sel editor.Span) editor.Result {
		return editor.InsertSnippet(text, sel.Start, snippet)
	})
}
