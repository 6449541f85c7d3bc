package render

import "fmt"

// Palette holds the colors the preview and export CSS are built from.
type Palette struct {
	Name            string
	Background      string
	Text            string
	Heading         string
	Link            string
	CodeBackground  string
	PreBackground   string
	Border          string
	QuoteBackground string
	Scrollbar       string
	ScrollbarHover  string
	ChromaStyle     string // syntax highlighting style for fenced code
}

// DarkPalette matches the application's dark theme.
func DarkPalette() Palette {
	return Palette{
		Name:            "dark",
		Background:      "#181818",
		Text:            "#e0e0e0",
		Heading:         "#ffffff",
		Link:            "#4a9eff",
		CodeBackground:  "#242424",
		PreBackground:   "#0d0d0d",
		Border:          "#333333",
		QuoteBackground: "#242424",
		Scrollbar:       "#333333",
		ScrollbarHover:  "#4a9eff",
		ChromaStyle:     "monokai",
	}
}

// LightPalette matches the application's light theme.
func LightPalette() Palette {
	return Palette{
		Name:            "light",
		Background:      "#ffffff",
		Text:            "#333333",
		Heading:         "#1a1a1a",
		Link:            "#0066cc",
		CodeBackground:  "#f5f5f5",
		PreBackground:   "#f8f8f8",
		Border:          "#e0e0e0",
		QuoteBackground: "#f9f9f9",
		Scrollbar:       "#cccccc",
		ScrollbarHover:  "#0066cc",
		ChromaStyle:     "github",
	}
}

// PaletteFor returns the palette for a theme name, defaulting to dark.
func PaletteFor(theme string) Palette {
	if theme == "light" {
		return LightPalette()
	}
	return DarkPalette()
}

// BuildPreviewCSS generates the stylesheet for the rendered document.
// The same CSS is used by the browser preview and the HTML export so the
// two stay visually identical.
func BuildPreviewCSS(p Palette) string {
	return fmt.Sprintf(`
* {
  scrollbar-width: thin;
  scrollbar-color: %[1]s %[2]s;
}
::-webkit-scrollbar {
  width: 8px;
  height: 8px;
}
::-webkit-scrollbar-track {
  background: %[2]s;
}
::-webkit-scrollbar-thumb {
  background-color: %[1]s;
  border-radius: 4px;
}
::-webkit-scrollbar-thumb:hover {
  background-color: %[10]s;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
  line-height: 1.7;
  color: %[3]s;
  background-color: %[2]s;
  padding: 30px 40px;
  max-width: 900px;
  margin: 0 auto;
}
h1, h2, h3, h4, h5, h6 {
  color: %[4]s;
  margin-top: 1.5em;
  margin-bottom: 0.5em;
  font-weight: 600;
}
h1 { font-size: 2.2em; border-bottom: 2px solid %[5]s; padding-bottom: 0.3em; }
h2 { font-size: 1.8em; border-bottom: 1px solid %[5]s; padding-bottom: 0.3em; }
h3 { font-size: 1.5em; }
h4 { font-size: 1.25em; }
h5 { font-size: 1.1em; }
h6 { font-size: 1em; color: #888; }
p { margin: 1em 0; }
a { color: %[6]s; text-decoration: none; }
a:hover { text-decoration: underline; }
code {
  font-family: 'JetBrains Mono', 'Fira Code', Consolas, monospace;
  background-color: %[7]s;
  padding: 2px 6px;
  border-radius: 4px;
  font-size: 0.9em;
}
pre {
  position: relative;
  background-color: %[8]s;
  padding: 16px 20px;
  border-radius: 6px;
  overflow-x: auto;
  border: 1px solid %[5]s;
}
pre code {
  background: none;
  padding: 0;
}
.copy-btn {
  position: absolute;
  top: 8px;
  right: 8px;
  background-color: %[7]s;
  color: %[3]s;
  border: 1px solid %[5]s;
  border-radius: 4px;
  padding: 4px 8px;
  font-size: 12px;
  cursor: pointer;
  opacity: 0;
  transition: opacity 0.2s;
}
pre:hover .copy-btn {
  opacity: 1;
}
.copy-btn:hover {
  background-color: %[6]s;
  color: white;
  border-color: %[6]s;
}
.copy-btn.copied {
  background-color: #28a745;
  border-color: #28a745;
  color: white;
}
blockquote {
  border-left: 4px solid %[6]s;
  margin: 1em 0;
  padding: 0.5em 1em;
  background-color: %[9]s;
  border-radius: 0 6px 6px 0;
  color: #888;
}
ul, ol { padding-left: 2em; margin: 1em 0; }
li { margin: 0.5em 0; }
li.task-list-item { list-style-type: none; margin-left: -1.5em; }
li.task-list-item input[type="checkbox"] {
  margin-right: 0.5em;
  accent-color: %[6]s;
}
del, s { text-decoration: line-through; color: #888; }
table {
  border-collapse: collapse;
  width: 100%%;
  margin: 1em 0;
}
th, td {
  border: 1px solid %[5]s;
  padding: 10px 14px;
  text-align: left;
}
th {
  background-color: %[7]s;
  font-weight: 600;
}
tr:nth-child(even) { background-color: %[9]s; }
hr { border: none; border-top: 2px solid %[5]s; margin: 2em 0; }
img { max-width: 100%%; height: auto; border-radius: 6px; }
`,
		p.Scrollbar,       // 1
		p.Background,      // 2
		p.Text,            // 3
		p.Heading,         // 4
		p.Border,          // 5
		p.Link,            // 6
		p.CodeBackground,  // 7
		p.PreBackground,   // 8
		p.QuoteBackground, // 9
		p.ScrollbarHover,  // 10
	)
}
