// Package app wires the document model, renderer, GUI and preview server
// into a running application.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"mdflex/internal/app/handlers"
	"mdflex/internal/config"
	"mdflex/internal/document"
	"mdflex/internal/gui"
	"mdflex/internal/logger"
	"mdflex/internal/preview"
	"mdflex/internal/render"
	"mdflex/internal/shutdown"
)

const appID = "com.mdflex.app"

// Options control startup behavior.
type Options struct {
	Config      *config.Config
	ConfigPath  string // explicit config file target, empty for the standard location
	InitialFile string
	ReadMode    bool // follow the file on disk instead of editing it
	Serve       bool // run the browser preview server
}

// Application owns the top-level object graph.
type Application struct {
	opts Options
	cfg  *config.Store
	log  logger.Logger

	fyneApp  fyne.App
	gui      *gui.Manager
	doc      *document.Document
	shutdown *shutdown.Manager
	server   *preview.Server
	watcher  *preview.Watcher
	redraw   *preview.Debouncer

	fileHandler   *handlers.FileHandler
	formatHandler *handlers.FormatHandler
	viewHandler   *handlers.ViewHandler
}

func NewApplication(opts Options, log logger.Logger) *Application {
	a := &Application{
		opts:     opts,
		cfg:      config.NewStore(opts.Config, opts.ConfigPath),
		log:      log,
		fyneApp:  fyneapp.NewWithID(appID),
		doc:      document.New(),
		shutdown: shutdown.NewManager(log),
	}

	a.gui = gui.NewManager(a.fyneApp, log)
	a.gui.ApplyTheme(a.cfg.Theme(), a.cfg.Zoom())

	a.fileHandler = handlers.NewFileHandler(a.doc, a.gui, a.cfg, log)
	a.formatHandler = handlers.NewFormatHandler(a.gui, log)
	a.viewHandler = handlers.NewViewHandler(a.doc, a.gui, a.cfg, log)

	a.setupHandlers()
	a.setupShortcuts()

	a.redraw = preview.NewDebouncer(preview.DefaultDebounce, func() {
		content := a.doc.Content()
		a.gui.RunOnMain(func() {
			a.gui.RefreshPreview(content)
		})
	})

	if opts.Serve {
		a.server = preview.NewServer(a.cfg.PreviewPort(), a.renderPage, log)
	}

	return a
}

func (a *Application) setupHandlers() {
	t := a.gui.Toolbar()

	t.SetNewHandler(a.fileHandler.New)
	t.SetOpenHandler(a.fileHandler.Open)
	t.SetSaveHandler(func() { a.fileHandler.Save(nil) })
	t.SetExportHandler(a.fileHandler.Export)

	t.SetHeadingHandler(a.formatHandler.Heading)
	t.SetBoldHandler(a.formatHandler.Bold)
	t.SetItalicHandler(a.formatHandler.Italic)
	t.SetUnderlineHandler(a.formatHandler.Underline)
	t.SetStrikethroughHandler(a.formatHandler.Strikethrough)
	t.SetInlineCodeHandler(a.formatHandler.InlineCode)
	t.SetCodeBlockHandler(a.formatHandler.CodeBlock)
	t.SetLinkHandler(a.formatHandler.Link)
	t.SetImageHandler(a.formatHandler.Image)
	t.SetTableHandler(a.formatHandler.Table)
	t.SetQuoteHandler(a.formatHandler.Quote)
	t.SetBulletListHandler(a.formatHandler.BulletList)
	t.SetNumberedListHandler(a.formatHandler.NumberedList)
	t.SetTaskListHandler(a.formatHandler.TaskList)
	t.SetRuleHandler(a.formatHandler.HorizontalRule)

	t.SetTogglePreviewHandler(a.viewHandler.TogglePreview)
	t.SetToggleThemeHandler(a.viewHandler.ToggleTheme)
	t.SetSearchHandler(a.viewHandler.Search)
	t.SetGuideHandler(a.viewHandler.Guide)

	a.gui.SetContentChangedHandler(a.handleContentChanged)
	a.gui.SetCloseRequestedHandler(a.handleCloseRequested)

	a.gui.BuildMainMenu(gui.MenuActions{
		New:    a.fileHandler.New,
		Open:   a.fileHandler.Open,
		Save:   func() { a.fileHandler.Save(nil) },
		SaveAs: a.fileHandler.SaveAs,
		Export: a.fileHandler.Export,
		Quit:   a.handleCloseRequested,
		Guide:  a.viewHandler.Guide,
		About:  a.viewHandler.About,
	})
}

func (a *Application) setupShortcuts() {
	a.gui.RegisterShortcuts([]gui.Shortcut{
		{Key: fyne.KeyN, Action: a.fileHandler.New},
		{Key: fyne.KeyO, Action: a.fileHandler.Open},
		{Key: fyne.KeyS, Action: func() { a.fileHandler.Save(nil) }},
		{Key: fyne.KeyS, Shift: true, Action: a.fileHandler.SaveAs},
		{Key: fyne.KeyE, Action: a.fileHandler.Export},

		{Key: fyne.KeyB, Action: a.formatHandler.Bold},
		{Key: fyne.KeyI, Action: a.formatHandler.Italic},
		{Key: fyne.KeyU, Action: a.formatHandler.Underline},
		{Key: fyne.KeyK, Action: a.formatHandler.Link},

		{Key: fyne.KeyP, Action: a.viewHandler.TogglePreview},
		{Key: fyne.KeyT, Action: a.viewHandler.ToggleTheme},
		{Key: fyne.KeyF, Action: a.viewHandler.Search},
		{Key: fyne.KeyG, Action: a.viewHandler.FindNext},
		{Key: fyne.KeyEqual, Action: a.viewHandler.ZoomIn},
		{Key: fyne.KeyMinus, Action: a.viewHandler.ZoomOut},
		{Key: fyne.Key0, Action: a.viewHandler.ZoomReset},
		{Key: fyne.KeyF11, Action: a.viewHandler.ToggleFullScreen},
	})
}

// handleContentChanged tracks every edit: document state, title, counts
// and the browser preview all follow the buffer.
func (a *Application) handleContentChanged(text string) {
	a.doc.SetContent(text)
	a.gui.SetTitle(a.doc.Title(), a.doc.Modified())
	a.gui.StatusBar().SetStats(a.doc.Stats())
	a.redraw.Trigger()

	if a.server != nil {
		a.server.Publish()
	}
}

func (a *Application) handleCloseRequested() {
	a.fileHandler.ConfirmUnsaved(func() {
		a.quit()
	})
}

func (a *Application) quit() {
	a.redraw.Stop()
	a.shutdown.Shutdown()
	a.gui.Close()
}

// renderPage builds the full themed HTML page for the browser preview.
func (a *Application) renderPage() (string, string, error) {
	title := a.doc.Title()
	r := render.NewRenderer(render.PaletteFor(a.cfg.Theme()))
	page, err := r.RenderDocument(a.doc.Content(), title, a.doc.Dir(), render.PageOptions{CopyButtons: true})
	if err != nil {
		return title, "", err
	}
	return title, page, nil
}

// Run starts the application and blocks until the window closes.
func (a *Application) Run() error {
	a.log.Info("app", "starting", map[string]interface{}{
		"theme": a.cfg.Theme(),
		"zoom":  a.cfg.Zoom(),
	})

	if a.server != nil {
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("starting preview server: %w", err)
		}
		a.shutdown.Register(a.server)
		a.gui.StatusBar().SetServerURL(a.server.URL())
	}

	a.shutdown.Listen(func() {
		a.gui.RunOnMain(a.quit)
	})

	a.gui.SetTitle(a.doc.Title(), false)
	a.gui.StatusBar().SetStats(a.doc.Stats())

	if a.opts.InitialFile != "" {
		a.fileHandler.OpenPath(a.opts.InitialFile)
	}

	if a.opts.ReadMode {
		if err := a.startReadMode(); err != nil {
			return err
		}
	}

	a.gui.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.log.Info("app", "stopped", nil)
	return nil
}

// startReadMode locks the editor and follows the file on disk, rendering
// each change into the preview pane.
func (a *Application) startReadMode() error {
	if a.opts.InitialFile == "" {
		return fmt.Errorf("read mode requires a file argument")
	}

	a.gui.SetReadOnly(true)
	a.gui.ShowPreview(a.doc.Content())

	w, err := preview.NewWatcher(a.opts.InitialFile, a.reloadFromDisk, a.log)
	if err != nil {
		return err
	}
	a.watcher = w
	a.shutdown.Register(shutdown.CloserFunc("file-watcher", w.Close))
	return nil
}

func (a *Application) reloadFromDisk() {
	if err := a.doc.Load(a.opts.InitialFile); err != nil {
		a.log.Error("app", err, map[string]interface{}{
			"path": a.opts.InitialFile,
		})
		return
	}

	content := a.doc.Content()
	a.gui.RunOnMain(func() {
		a.gui.SetEditorText(content, 0)
		a.doc.MarkSaved()
		a.gui.ShowPreview(content)
		a.gui.SetTitle(a.doc.Title(), false)
		a.gui.StatusBar().SetStats(a.doc.Stats())
	})

	if a.server != nil {
		a.server.Publish()
	}
}
