package render

import (
	"strings"
	"testing"
)

func TestRenderBasicMarkdown(t *testing.T) {
	r := NewRenderer(DarkPalette())

	tests := []struct {
		name  string
		input string
		wants []string
	}{
		{
			name:  "heading with auto id",
			input: "# My Heading",
			wants: []string{"<h1", `id="my-heading"`, "My Heading</h1>"},
		},
		{
			name:  "bold and italic",
			input: "**bold** and *italic*",
			wants: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:  "table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wants: []string{"<table>", "<th>A</th>", "<td>1</td>"},
		},
		{
			name:  "link",
			input: "[site](https://example.com)",
			wants: []string{`<a href="https://example.com"`, ">site</a>"},
		},
		{
			name:  "strikethrough via preprocessor",
			input: "~~removed~~",
			wants: []string{"<del>removed</del>"},
		},
		{
			name:  "unchecked task",
			input: "- [ ] open item",
			wants: []string{`type="checkbox" disabled`, "open item"},
		},
		{
			name:  "checked task",
			input: "- [x] closed item",
			wants: []string{`type="checkbox" checked disabled`, "closed item"},
		},
		{
			name:  "footnote",
			input: "text[^1]\n\n[^1]: the note\n",
			wants: []string{"fn:1", "the note"},
		},
		{
			name:  "hard wrap",
			input: "line one\nline two",
			wants: []string{"<br>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.input)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", tt.input, err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, missing %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestRenderHighlightsFencedCode(t *testing.T) {
	r := NewRenderer(DarkPalette())

	got, err := r.Render("```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	// Chroma emits inline-styled spans for the fenced block.
	if !strings.Contains(got, "<span") || !strings.Contains(got, "style=") {
		t.Errorf("fenced block not highlighted: %q", got)
	}
}

func TestNewRendererUnknownStyleFallsBack(t *testing.T) {
	p := DarkPalette()
	p.ChromaStyle = "no-such-style"

	r := NewRenderer(p)
	got, err := r.Render("```go\nvar x int\n```")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(got, "<span") {
		t.Errorf("fallback style produced no highlighting: %q", got)
	}
}

func TestRenderDocumentProducesFullPage(t *testing.T) {
	r := NewRenderer(LightPalette())

	got, err := r.RenderDocument("# Hello", "notes.md", "", PageOptions{CopyButtons: true})
	if err != nil {
		t.Fatalf("RenderDocument error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>notes.md</title>",
		LightPalette().Background,
		"<h1",
		"copy",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderDocumentEscapesTitle(t *testing.T) {
	r := NewRenderer(DarkPalette())

	got, err := r.RenderDocument("text", `<script>"x"</script>`, "", PageOptions{})
	if err != nil {
		t.Fatalf("RenderDocument error: %v", err)
	}

	if strings.Contains(got, "<title><script>") {
		t.Error("title not escaped")
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	r := NewRenderer(DarkPalette())

	got, err := r.Render("")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("empty input produced %q", got)
	}
}
