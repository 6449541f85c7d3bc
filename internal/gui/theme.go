package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"mdflex/internal/config"
)

// appTheme pins the variant (dark or light) regardless of the OS setting
// and applies the zoom factor by scaling every theme size. Fyne lays out
// from theme sizes, so scaling them zooms text and padding together.
type appTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	scale   float32
}

func newAppTheme(themeName string, zoom int) *appTheme {
	variant := theme.VariantDark
	if themeName == config.ThemeLight {
		variant = theme.VariantLight
	}
	return &appTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		scale:   float32(zoom) / 100,
	}
}

func (t *appTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name) * t.scale
}
