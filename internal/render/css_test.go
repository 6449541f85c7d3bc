package render

import (
	"strings"
	"testing"
)

func TestPaletteFor(t *testing.T) {
	if got := PaletteFor("light").Name; got != "light" {
		t.Errorf("PaletteFor(light).Name = %q", got)
	}
	if got := PaletteFor("dark").Name; got != "dark" {
		t.Errorf("PaletteFor(dark).Name = %q", got)
	}
	// Unknown themes fall back to dark.
	if got := PaletteFor("solarized").Name; got != "dark" {
		t.Errorf("PaletteFor(solarized).Name = %q", got)
	}
}

func TestBuildPreviewCSSContainsPaletteColors(t *testing.T) {
	for _, p := range []Palette{DarkPalette(), LightPalette()} {
		t.Run(p.Name, func(t *testing.T) {
			css := BuildPreviewCSS(p)

			for _, color := range []string{
				p.Background, p.Text, p.Heading, p.Link,
				p.CodeBackground, p.PreBackground, p.Border,
				p.QuoteBackground, p.Scrollbar, p.ScrollbarHover,
			} {
				if !strings.Contains(css, color) {
					t.Errorf("%s CSS missing color %s", p.Name, color)
				}
			}
		})
	}
}

func TestBuildPreviewCSSEscapesVerbs(t *testing.T) {
	css := BuildPreviewCSS(DarkPalette())

	if strings.Contains(css, "%!") {
		t.Errorf("CSS contains a formatting error: %s", css[strings.Index(css, "%!"):][:40])
	}
	if !strings.Contains(css, "width: 100%") {
		t.Error("CSS missing percentage width rule")
	}
}

func TestPalettesDiffer(t *testing.T) {
	d, l := DarkPalette(), LightPalette()

	if d.Background == l.Background {
		t.Error("dark and light backgrounds are identical")
	}
	if d.ChromaStyle == l.ChromaStyle {
		t.Error("dark and light syntax styles are identical")
	}
}
