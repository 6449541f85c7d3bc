package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrConversion wraps goldmark failures so callers can test for them.
var ErrConversion = errors.New("markdown conversion failed")

// Renderer converts markdown text to an HTML fragment. Each renderer is
// bound to a palette: fenced code highlighting follows the theme, so a
// theme toggle rebuilds the renderer.
type Renderer struct {
	md      goldmark.Markdown
	palette Palette
}

func NewRenderer(p Palette) *Renderer {
	if styles.Get(p.ChromaStyle) == styles.Fallback {
		p.ChromaStyle = DarkPalette().ChromaStyle
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // tables, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(p.ChromaStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // treat newlines as <br>
			html.WithUnsafe(),    // pass the preprocessed fragments through
		),
	)

	return &Renderer{md: md, palette: p}
}

func (r *Renderer) Palette() Palette {
	return r.palette
}

// Render runs the preprocessor and goldmark, returning an HTML fragment.
func (r *Renderer) Render(content string) (string, error) {
	pre := Preprocess(content)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(pre), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return buf.String(), nil
}

// RenderDocument renders content and wraps it in a complete HTML5 page
// styled for the renderer's palette. baseDir, when non-empty, anchors
// relative image paths.
func (r *Renderer) RenderDocument(content, title, baseDir string, opts PageOptions) (string, error) {
	body, err := r.Render(content)
	if err != nil {
		return "", err
	}

	if baseDir != "" {
		body, err = RewriteImagePaths(body, baseDir)
		if err != nil {
			return "", err
		}
	}

	return WrapDocument(title, BuildPreviewCSS(r.palette), body, opts), nil
}
