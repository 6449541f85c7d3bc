// Package gui owns the window, widgets and every direct interaction with
// the Fyne toolkit. Application logic lives in the handlers and talks to
// the toolkit only through this manager.
package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"mdflex/internal/editor"
	"mdflex/internal/gui/components"
	"mdflex/internal/logger"
)

// AppName is used in window titles.
const AppName = "MDFlex"

// Version is shown in the about dialog.
const Version = "1.0.0"

var markdownFilter = storage.NewExtensionFileFilter([]string{".md", ".markdown", ".txt"})

var htmlFilter = storage.NewExtensionFileFilter([]string{".html"})

// Manager builds and drives the main window. All mutating methods must be
// called on the Fyne goroutine; RunOnMain hops there from anywhere else.
type Manager struct {
	app    fyne.App
	window fyne.Window
	log    logger.Logger

	entry      *widget.Entry
	preview    *widget.RichText
	editorPane fyne.CanvasObject
	prevPane   fyne.CanvasObject
	body       *fyne.Container

	toolbar   *components.Toolbar
	statusBar *components.StatusBar

	previewActive bool
	guideWindow   fyne.Window

	onContentChanged func(text string)
	onCloseRequested func()
}

func NewManager(app fyne.App, log logger.Logger) *Manager {
	m := &Manager{
		app:    app,
		window: app.NewWindow(AppName),
		log:    log,
	}
	m.buildLayout()
	return m
}

func (m *Manager) buildLayout() {
	m.entry = widget.NewMultiLineEntry()
	m.entry.TextStyle = fyne.TextStyle{Monospace: true}
	m.entry.Wrapping = fyne.TextWrapWord
	m.entry.OnChanged = func(text string) {
		if m.onContentChanged != nil {
			m.onContentChanged(text)
		}
	}

	m.preview = widget.NewRichText()
	m.preview.Wrapping = fyne.TextWrapWord

	m.editorPane = container.NewScroll(m.entry)
	m.prevPane = container.NewScroll(m.preview)
	m.prevPane.Hide()

	m.toolbar = components.NewToolbar()
	m.statusBar = components.NewStatusBar()

	m.body = container.NewStack(m.editorPane, m.prevPane)

	m.window.SetContent(container.NewBorder(
		m.toolbar.Container(),
		m.statusBar.Container(),
		nil, nil,
		m.body,
	))
	m.window.Resize(fyne.NewSize(1000, 700))
	m.window.CenterOnScreen()

	m.window.SetCloseIntercept(func() {
		if m.onCloseRequested != nil {
			m.onCloseRequested()
			return
		}
		m.window.Close()
	})
}

// Window exposes the main window for dialog parenting.
func (m *Manager) Window() fyne.Window { return m.window }

// Toolbar exposes the toolbar for handler wiring.
func (m *Manager) Toolbar() *components.Toolbar { return m.toolbar }

// StatusBar exposes the status bar.
func (m *Manager) StatusBar() *components.StatusBar { return m.statusBar }

func (m *Manager) SetContentChangedHandler(h func(text string)) { m.onContentChanged = h }
func (m *Manager) SetCloseRequestedHandler(h func())            { m.onCloseRequested = h }

// RunOnMain executes fn on the Fyne event goroutine.
func (m *Manager) RunOnMain(fn func()) {
	fyne.Do(fn)
}

// Show makes the window visible. ShowAndRun on the app drives the loop.
func (m *Manager) Show() {
	m.window.Show()
}

// Close tears the window down, skipping the close intercept.
func (m *Manager) Close() {
	m.window.Close()
}

// SetTitle updates the window title, prefixing a bullet when the
// document has unsaved changes.
func (m *Manager) SetTitle(docTitle string, modified bool) {
	title := docTitle + " - " + AppName
	if modified {
		title = "• " + title
	}
	m.window.SetTitle(title)
}

// ApplyTheme switches the toolkit theme variant and zoom factor.
func (m *Manager) ApplyTheme(themeName string, zoom int) {
	m.app.Settings().SetTheme(newAppTheme(themeName, zoom))
}

// EditorText returns the current buffer.
func (m *Manager) EditorText() string {
	return m.entry.Text
}

// SetEditorText replaces the buffer and positions the cursor at the given
// rune offset. The OnChanged callback fires as it does for typed input.
func (m *Manager) SetEditorText(text string, cursor int) {
	m.entry.SetText(text)
	m.setCursorOffset(cursor)
}

// Selection reconstructs the selection span from the entry's selected
// text and cursor position.
func (m *Manager) Selection() editor.Span {
	return editor.SpanOf(m.entry.Text, m.cursorOffset(), m.entry.SelectedText())
}

// CursorOffset returns the cursor position as a rune offset.
func (m *Manager) CursorOffset() int {
	return m.cursorOffset()
}

// SelectRange moves the cursor to span.End. The entry widget cannot set a
// selection programmatically, so found text is indicated by cursor
// placement.
func (m *Manager) SelectRange(span editor.Span) {
	m.setCursorOffset(span.End)
}

func (m *Manager) cursorOffset() int {
	lines := strings.Split(m.entry.Text, "\n")
	row, col := m.entry.CursorRow, m.entry.CursorColumn

	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}
	return offset + col
}

func (m *Manager) setCursorOffset(offset int) {
	runes := []rune(m.entry.Text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	row, col := 0, 0
	for _, r := range runes[:offset] {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}

	m.entry.CursorRow = row
	m.entry.CursorColumn = col
	m.entry.Refresh()
	m.window.Canvas().Focus(m.entry)
}

// ShowPreview renders the markdown into the in-window preview pane and
// brings it to the front.
func (m *Manager) ShowPreview(markdown string) {
	m.preview.ParseMarkdown(markdown)
	m.editorPane.Hide()
	m.prevPane.Show()
	m.previewActive = true
	m.toolbar.SetPreviewActive(true)
	m.toolbar.SetFormattingVisible(false)
}

// ShowEditor returns to the editor pane.
func (m *Manager) ShowEditor() {
	m.prevPane.Hide()
	m.editorPane.Show()
	m.previewActive = false
	m.toolbar.SetPreviewActive(false)
	m.toolbar.SetFormattingVisible(true)
	m.window.Canvas().Focus(m.entry)
}

// SetReadOnly disables editing. Used by the file-watching read mode.
func (m *Manager) SetReadOnly(readOnly bool) {
	if readOnly {
		m.entry.Disable()
	} else {
		m.entry.Enable()
	}
}

// PreviewActive reports whether the preview pane is in front.
func (m *Manager) PreviewActive() bool {
	return m.previewActive
}

// RefreshPreview re-renders the preview pane if it is visible.
func (m *Manager) RefreshPreview(markdown string) {
	if m.previewActive {
		m.preview.ParseMarkdown(markdown)
	}
}

// ToggleFullScreen flips the window's full screen state.
func (m *Manager) ToggleFullScreen() {
	m.window.SetFullScreen(!m.window.FullScreen())
}

// ShowError surfaces an error dialog and logs it.
func (m *Manager) ShowError(err error) {
	m.log.Error("gui", err, nil)
	dialog.ShowError(err, m.window)
}

// ShowInfo surfaces an information dialog.
func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

// ShowOpenDialog asks for a markdown file and reports the chosen path.
func (m *Manager) ShowOpenDialog(startDir string, callback func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path)
	}, m.window)
	d.SetFilter(markdownFilter)
	m.setStartLocation(d.SetLocation, startDir)
	d.Show()
}

// ShowSaveDialog asks for a save target and reports the chosen path.
func (m *Manager) ShowSaveDialog(startDir, suggested string, callback func(path string)) {
	m.showSaveDialog(startDir, suggested, markdownFilter, callback)
}

// ShowExportDialog asks for an HTML export target.
func (m *Manager) ShowExportDialog(startDir, suggested string, callback func(path string)) {
	m.showSaveDialog(startDir, suggested, htmlFilter, callback)
}

func (m *Manager) showSaveDialog(startDir, suggested string, filter storage.FileFilter, callback func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			m.ShowError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		callback(path)
	}, m.window)
	d.SetFilter(filter)
	d.SetFileName(suggested)
	m.setStartLocation(d.SetLocation, startDir)
	d.Show()
}

func (m *Manager) setStartLocation(set func(fyne.ListableURI), dir string) {
	if dir == "" {
		return
	}
	uri, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		m.log.Debug("gui", "start directory unavailable", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		return
	}
	set(uri)
}

// ShowUnsavedDialog presents the three-way save/discard/cancel choice
// used before any action that would drop unsaved changes.
func (m *Manager) ShowUnsavedDialog(docTitle string, onSave, onDiscard func()) {
	label := widget.NewLabel("\"" + docTitle + "\" has unsaved changes.\nSave them before continuing?")
	label.Alignment = fyne.TextAlignCenter

	d := dialog.NewCustomWithoutButtons("Unsaved Changes", label, m.window)

	saveBtn := widget.NewButton("Save", func() {
		d.Hide()
		onSave()
	})
	saveBtn.Importance = widget.HighImportance
	discardBtn := widget.NewButton("Discard", func() {
		d.Hide()
		onDiscard()
	})
	cancelBtn := widget.NewButton("Cancel", d.Hide)

	d.SetButtons([]fyne.CanvasObject{saveBtn, discardBtn, cancelBtn})
	d.Show()
}

// ShowSearchDialog prompts for a search term.
func (m *Manager) ShowSearchDialog(callback func(term string)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Search text")

	items := []*widget.FormItem{widget.NewFormItem("Find", entry)}
	d := dialog.NewForm("Find", "Find", "Cancel", items, func(ok bool) {
		if ok && entry.Text != "" {
			callback(entry.Text)
		}
	}, m.window)
	d.Resize(fyne.NewSize(320, 0))
	entry.OnSubmitted = func(term string) {
		d.Hide()
		if term != "" {
			callback(term)
		}
	}
	d.Show()
}

// ShowGuide opens the syntax guide in its own window, reusing it if it
// is already open.
func (m *Manager) ShowGuide() {
	if m.guideWindow != nil {
		m.guideWindow.RequestFocus()
		return
	}

	rich := widget.NewRichTextFromMarkdown(GuideMarkdown)
	rich.Wrapping = fyne.TextWrapWord

	w := m.app.NewWindow(GuideTitle + " - " + AppName)
	w.SetContent(container.NewScroll(rich))
	w.Resize(fyne.NewSize(600, 700))
	w.SetOnClosed(func() {
		m.guideWindow = nil
	})
	m.guideWindow = w
	w.Show()
}

// MenuActions names the callbacks behind the main menu entries.
type MenuActions struct {
	New    func()
	Open   func()
	Save   func()
	SaveAs func()
	Export func()
	Quit   func()
	Guide  func()
	About  func()
}

// BuildMainMenu installs the File and Help menus.
func (m *Manager) BuildMainMenu(actions MenuActions) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", actions.New),
		fyne.NewMenuItem("Open...", actions.Open),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", actions.Save),
		fyne.NewMenuItem("Save As...", actions.SaveAs),
		fyne.NewMenuItem("Export HTML...", actions.Export),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", actions.Quit),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem(GuideTitle, actions.Guide),
		fyne.NewMenuItem("About", actions.About),
	)

	m.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// Shortcut binds a Ctrl (or Ctrl+Shift) key combination to an action.
type Shortcut struct {
	Key    fyne.KeyName
	Shift  bool
	Action func()
}

// RegisterShortcuts installs the keyboard shortcuts on the window canvas.
func (m *Manager) RegisterShortcuts(shortcuts []Shortcut) {
	for _, sc := range shortcuts {
		action := sc.Action
		mod := fyne.KeyModifierControl
		if sc.Shift {
			mod |= fyne.KeyModifierShift
		}
		m.window.Canvas().AddShortcut(&desktop.CustomShortcut{
			KeyName:  sc.Key,
			Modifier: mod,
		}, func(fyne.Shortcut) {
			action()
		})
	}
}
