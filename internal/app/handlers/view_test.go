package handlers

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"mdflex/internal/config"
	"mdflex/internal/document"
	"mdflex/internal/gui"
	"mdflex/internal/logger"
)

func newTestViewHandler(t *testing.T) (*ViewHandler, *config.Store, *gui.Manager) {
	t.Helper()

	a := test.NewApp()
	m := gui.NewManager(a, logger.Nop{})
	store := config.NewStore(config.Default(), filepath.Join(t.TempDir(), "config.yaml"))
	h := NewViewHandler(document.New(), m, store, logger.Nop{})
	return h, store, m
}

func TestToggleThemeIsInvolution(t *testing.T) {
	h, store, _ := newTestViewHandler(t)
	original := store.Theme()

	h.ToggleTheme()
	assert.NotEqual(t, original, store.Theme(), "first toggle must change the theme")

	h.ToggleTheme()
	assert.Equal(t, original, store.Theme(), "second toggle must restore the theme")
}

func TestToggleThemeCoversBothDirections(t *testing.T) {
	h, store, _ := newTestViewHandler(t)

	store.SetTheme(config.ThemeLight)
	h.ToggleTheme()
	assert.Equal(t, config.ThemeDark, store.Theme())

	h.ToggleTheme()
	assert.Equal(t, config.ThemeLight, store.Theme())
}

func TestTogglePreviewIsInvolution(t *testing.T) {
	h, _, m := newTestViewHandler(t)
	assert.False(t, m.PreviewActive(), "starts in edit mode")

	h.TogglePreview()
	assert.True(t, m.PreviewActive(), "first toggle enters preview")

	h.TogglePreview()
	assert.False(t, m.PreviewActive(), "second toggle returns to edit mode")
}

func TestZoomClampsToBounds(t *testing.T) {
	h, store, _ := newTestViewHandler(t)

	store.SetZoom(config.MaxZoom)
	h.ZoomIn()
	assert.Equal(t, config.MaxZoom, store.Zoom(), "zoom in at the ceiling holds")

	store.SetZoom(config.MinZoom)
	h.ZoomOut()
	assert.Equal(t, config.MinZoom, store.Zoom(), "zoom out at the floor holds")

	h.ZoomReset()
	assert.Equal(t, config.DefaultZoom, store.Zoom())
}
