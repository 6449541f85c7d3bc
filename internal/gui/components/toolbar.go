// Package components holds the reusable widgets of the main window.
package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// headingOptions feed the heading selector. The placeholder entry resets
// the selector after each use so the same level can be applied twice.
var headingOptions = []string{"Heading", "H1", "H2", "H3", "H4", "H5", "H6"}

// Toolbar is the row of file and formatting actions above the editor.
// Handlers are injected by the application layer after construction.
type Toolbar struct {
	container *fyne.Container

	headingSelect *widget.Select
	previewButton *widget.Button
	formatGroup   []fyne.CanvasObject

	onNew    func()
	onOpen   func()
	onSave   func()
	onExport func()

	onHeading       func(level int)
	onBold          func()
	onItalic        func()
	onUnderline     func()
	onStrikethrough func()
	onInlineCode    func()
	onCodeBlock     func()
	onLink          func()
	onImage         func()
	onTable         func()
	onQuote         func()
	onBulletList    func()
	onNumberedList  func()
	onTaskList      func()
	onRule          func()

	onTogglePreview func()
	onToggleTheme   func()
	onSearch        func()
	onGuide         func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}

	newBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), t.handleNew)
	openBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), t.handleOpen)
	saveBtn := widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), t.handleSave)
	exportBtn := widget.NewButtonWithIcon("", theme.MailForwardIcon(), t.handleExport)

	t.headingSelect = widget.NewSelect(headingOptions, t.handleHeading)
	t.headingSelect.PlaceHolder = "Heading"

	boldBtn := widget.NewButton("B", t.handleBold)
	boldBtn.Importance = widget.LowImportance
	italicBtn := widget.NewButton("I", t.handleItalic)
	italicBtn.Importance = widget.LowImportance
	underlineBtn := widget.NewButton("U", t.handleUnderline)
	underlineBtn.Importance = widget.LowImportance
	strikeBtn := widget.NewButton("S", t.handleStrikethrough)
	strikeBtn.Importance = widget.LowImportance
	codeBtn := widget.NewButton("`code`", t.handleInlineCode)
	codeBtn.Importance = widget.LowImportance
	blockBtn := widget.NewButton("```", t.handleCodeBlock)
	blockBtn.Importance = widget.LowImportance

	linkBtn := widget.NewButton("Link", t.handleLink)
	linkBtn.Importance = widget.LowImportance
	imageBtn := widget.NewButton("Image", t.handleImage)
	imageBtn.Importance = widget.LowImportance
	tableBtn := widget.NewButton("Table", t.handleTable)
	tableBtn.Importance = widget.LowImportance
	quoteBtn := widget.NewButton("Quote", t.handleQuote)
	quoteBtn.Importance = widget.LowImportance

	bulletBtn := widget.NewButton("• List", t.handleBulletList)
	bulletBtn.Importance = widget.LowImportance
	numberedBtn := widget.NewButton("1. List", t.handleNumberedList)
	numberedBtn.Importance = widget.LowImportance
	taskBtn := widget.NewButton("☐ Task", t.handleTaskList)
	taskBtn.Importance = widget.LowImportance
	ruleBtn := widget.NewButton("―", t.handleRule)
	ruleBtn.Importance = widget.LowImportance

	t.previewButton = widget.NewButtonWithIcon("Preview", theme.VisibilityIcon(), t.handleTogglePreview)
	themeBtn := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.handleToggleTheme)
	searchBtn := widget.NewButtonWithIcon("", theme.SearchIcon(), t.handleSearch)
	guideBtn := widget.NewButtonWithIcon("", theme.HelpIcon(), t.handleGuide)

	t.formatGroup = []fyne.CanvasObject{
		t.headingSelect,
		boldBtn, italicBtn, underlineBtn, strikeBtn, codeBtn, blockBtn,
		widget.NewSeparator(),
		linkBtn, imageBtn, tableBtn, quoteBtn,
		widget.NewSeparator(),
		bulletBtn, numberedBtn, taskBtn, ruleBtn,
	}

	objects := []fyne.CanvasObject{
		newBtn, openBtn, saveBtn, exportBtn,
		widget.NewSeparator(),
	}
	objects = append(objects, t.formatGroup...)
	objects = append(objects,
		widget.NewSeparator(),
		t.previewButton, themeBtn, searchBtn, guideBtn,
	)

	t.container = container.NewHBox(objects...)
	return t
}

// SetFormattingVisible hides the formatting controls while the preview
// pane is in front.
func (t *Toolbar) SetFormattingVisible(visible bool) {
	for _, o := range t.formatGroup {
		if visible {
			o.Show()
		} else {
			o.Hide()
		}
	}
}

// Container returns the toolbar's root object.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetPreviewActive updates the preview toggle label to reflect the mode.
func (t *Toolbar) SetPreviewActive(active bool) {
	if active {
		t.previewButton.SetText("Edit")
		t.previewButton.SetIcon(theme.DocumentIcon())
	} else {
		t.previewButton.SetText("Preview")
		t.previewButton.SetIcon(theme.VisibilityIcon())
	}
}

func (t *Toolbar) SetNewHandler(h func())    { t.onNew = h }
func (t *Toolbar) SetOpenHandler(h func())   { t.onOpen = h }
func (t *Toolbar) SetSaveHandler(h func())   { t.onSave = h }
func (t *Toolbar) SetExportHandler(h func()) { t.onExport = h }

func (t *Toolbar) SetHeadingHandler(h func(level int)) { t.onHeading = h }
func (t *Toolbar) SetBoldHandler(h func())             { t.onBold = h }
func (t *Toolbar) SetItalicHandler(h func())           { t.onItalic = h }
func (t *Toolbar) SetUnderlineHandler(h func())        { t.onUnderline = h }
func (t *Toolbar) SetStrikethroughHandler(h func())    { t.onStrikethrough = h }
func (t *Toolbar) SetInlineCodeHandler(h func())       { t.onInlineCode = h }
func (t *Toolbar) SetCodeBlockHandler(h func())        { t.onCodeBlock = h }
func (t *Toolbar) SetLinkHandler(h func())             { t.onLink = h }
func (t *Toolbar) SetImageHandler(h func())            { t.onImage = h }
func (t *Toolbar) SetTableHandler(h func())            { t.onTable = h }
func (t *Toolbar) SetQuoteHandler(h func())            { t.onQuote = h }
func (t *Toolbar) SetBulletListHandler(h func())       { t.onBulletList = h }
func (t *Toolbar) SetNumberedListHandler(h func())     { t.onNumberedList = h }
func (t *Toolbar) SetTaskListHandler(h func())         { t.onTaskList = h }
func (t *Toolbar) SetRuleHandler(h func())             { t.onRule = h }

func (t *Toolbar) SetTogglePreviewHandler(h func()) { t.onTogglePreview = h }
func (t *Toolbar) SetToggleThemeHandler(h func())   { t.onToggleTheme = h }
func (t *Toolbar) SetSearchHandler(h func())        { t.onSearch = h }
func (t *Toolbar) SetGuideHandler(h func())         { t.onGuide = h }

func (t *Toolbar) handleNew() {
	if t.onNew != nil {
		t.onNew()
	}
}

func (t *Toolbar) handleOpen() {
	if t.onOpen != nil {
		t.onOpen()
	}
}

func (t *Toolbar) handleSave() {
	if t.onSave != nil {
		t.onSave()
	}
}

func (t *Toolbar) handleExport() {
	if t.onExport != nil {
		t.onExport()
	}
}

func (t *Toolbar) handleHeading(choice string) {
	if choice == "" || choice == headingOptions[0] {
		return
	}
	level := int(choice[1] - '0')

	// Reset so selecting the same level again fires the handler.
	t.headingSelect.ClearSelected()

	if t.onHeading != nil {
		t.onHeading(level)
	}
}

func (t *Toolbar) handleBold() {
	if t.onBold != nil {
		t.onBold()
	}
}

func (t *Toolbar) handleItalic() {
	if t.onItalic != nil {
		t.onItalic()
	}
}

func (t *Toolbar) handleUnderline() {
	if t.onUnderline != nil {
		t.onUnderline()
	}
}

func (t *Toolbar) handleStrikethrough() {
	if t.onStrikethrough != nil {
		t.onStrikethrough()
	}
}

func (t *Toolbar) handleInlineCode() {
	if t.onInlineCode != nil {
		t.onInlineCode()
	}
}

func (t *Toolbar) handleCodeBlock() {
	if t.onCodeBlock != nil {
		t.onCodeBlock()
	}
}

func (t *Toolbar) handleLink() {
	if t.onLink != nil {
		t.onLink()
	}
}

func (t *Toolbar) handleImage() {
	if t.onImage != nil {
		t.onImage()
	}
}

func (t *Toolbar) handleTable() {
	if t.onTable != nil {
		t.onTable()
	}
}

func (t *Toolbar) handleQuote() {
	if t.onQuote != nil {
		t.onQuote()
	}
}

func (t *Toolbar) handleBulletList() {
	if t.onBulletList != nil {
		t.onBulletList()
	}
}

func (t *Toolbar) handleNumberedList() {
	if t.onNumberedList != nil {
		t.onNumberedList()
	}
}

func (t *Toolbar) handleTaskList() {
	if t.onTaskList != nil {
		t.onTaskList()
	}
}

func (t *Toolbar) handleRule() {
	if t.onRule != nil {
		t.onRule()
	}
}

func (t *Toolbar) handleTogglePreview() {
	if t.onTogglePreview != nil {
		t.onTogglePreview()
	}
}

func (t *Toolbar) handleToggleTheme() {
	if t.onToggleTheme != nil {
		t.onToggleTheme()
	}
}

func (t *Toolbar) handleSearch() {
	if t.onSearch != nil {
		t.onSearch()
	}
}

func (t *Toolbar) handleGuide() {
	if t.onGuide != nil {
		t.onGuide()
	}
}
