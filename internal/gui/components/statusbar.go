package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mdflex/internal/document"
)

// StatusBar shows document statistics and transient messages at the
// bottom of the window.
type StatusBar struct {
	container *fyne.Container

	statsLabel   *widget.Label
	messageLabel *widget.Label
	serverLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	s := &StatusBar{
		statsLabel:   widget.NewLabel(""),
		messageLabel: widget.NewLabel("Ready"),
		serverLabel:  widget.NewLabel(""),
	}

	s.container = container.NewBorder(nil, nil,
		s.messageLabel,
		container.NewHBox(s.serverLabel, s.statsLabel),
	)
	return s
}

// Container returns the status bar's root object.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStats refreshes the word, character and line counts.
func (s *StatusBar) SetStats(stats document.Stats) {
	s.statsLabel.SetText(fmt.Sprintf("%d words  %d chars  %d lines",
		stats.Words, stats.Chars, stats.Lines))
}

// SetMessage replaces the transient status message.
func (s *StatusBar) SetMessage(msg string) {
	s.messageLabel.SetText(msg)
}

// SetServerURL shows where the browser preview is being served, or hides
// the label when the server is off.
func (s *StatusBar) SetServerURL(url string) {
	if url == "" {
		s.serverLabel.SetText("")
		return
	}
	s.serverLabel.SetText("Preview: " + url)
}
