package editor

import "testing"

func TestSurround(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		sel        Span
		prefix     string
		suffix     string
		want       string
		wantCursor int
	}{
		{
			name: "bold selection",
			text: "make this bold",
			sel:  Span{Start: 5, End: 9},
			prefix: "**", suffix: "**",
			want:       "make **this** bold",
			wantCursor: 13,
		},
		{
			name: "empty selection inserts pair",
			text: "ab",
			sel:  Span{Start: 1, End: 1},
			prefix: "*", suffix: "*",
			want:       "a**b",
			wantCursor: 2,
		},
		{
			name: "cursor at end",
			text: "text",
			sel:  Span{Start: 4, End: 4},
			prefix: "`", suffix: "`",
			want:       "text``",
			wantCursor: 5,
		},
		{
			name: "multibyte runes",
			text: "héllo wörld",
			sel:  Span{Start: 6, End: 11},
			prefix: "**", suffix: "**",
			want:       "héllo **wörld**",
			wantCursor: 15,
		},
		{
			name: "out of range clamped",
			text: "ab",
			sel:  Span{Start: 5, End: 9},
			prefix: "*", suffix: "*",
			want:       "ab**",
			wantCursor: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Surround(tt.text, tt.sel, tt.prefix, tt.suffix)
			if got.Text != tt.want {
				t.Errorf("Surround() text = %q, want %q", got.Text, tt.want)
			}
			if got.Cursor != tt.wantCursor {
				t.Errorf("Surround() cursor = %d, want %d", got.Cursor, tt.wantCursor)
			}
		})
	}
}

func TestSurroundTwiceNests(t *testing.T) {
	first := Surround("word", Span{Start: 0, End: 4}, "**", "**")
	if first.Text != "**word**" {
		t.Fatalf("first pass = %q", first.Text)
	}

	second := Surround(first.Text, Span{Start: 0, End: 8}, "**", "**")
	if second.Text != "****word****" {
		t.Errorf("second pass = %q, want nested markers", second.Text)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		level  int
		want   string
	}{
		{"plain line", "title", 2, 1, "# title"},
		{"replaces existing level", "## title", 4, 3, "### title"},
		{"same level idempotent", "# title", 3, 1, "# title"},
		{"middle line", "a\nline\nb", 3, 2, "a\n## line\nb"},
		{"level six", "deep", 0, 6, "###### deep"},
		{"invalid level unchanged", "text", 0, 7, "text"},
		{"zero level unchanged", "text", 0, 0, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.text, tt.cursor, tt.level)
			if got.Text != tt.want {
				t.Errorf("Heading(%q, %d, %d) = %q, want %q",
					tt.text, tt.cursor, tt.level, got.Text, tt.want)
			}
		})
	}
}

func TestPrefixLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		prefix string
		want   string
	}{
		{"bullet", "item", 2, "- ", "- item"},
		{"task", "todo", 0, "- [ ] ", "- [ ] todo"},
		{"numbered middle line", "a\nitem\nb", 4, "1. ", "a\n1. item\nb"},
		{"empty buffer", "", 0, "- ", "- "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrefixLine(tt.text, tt.cursor, tt.prefix)
			if got.Text != tt.want {
				t.Errorf("PrefixLine(%q, %d, %q) = %q, want %q",
					tt.text, tt.cursor, tt.prefix, got.Text, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		text string
		sel  Span
		want string
	}{
		{"no selection quotes line", "line", Span{Start: 2, End: 2}, "> line"},
		{"single line selection", "quote me", Span{Start: 0, End: 8}, "> quote me"},
		{"multi line selection", "one\ntwo\nthree", Span{Start: 0, End: 13}, "> one\n> two\n> three"},
		{"partial lines", "aa\nbb\ncc", Span{Start: 3, End: 5}, "aa\n> bb\ncc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.text, tt.sel)
			if got.Text != tt.want {
				t.Errorf("Quote(%q, %+v) = %q, want %q", tt.text, tt.sel, got.Text, tt.want)
			}
		})
	}
}

func TestCodeBlock(t *testing.T) {
	sel := CodeBlock("x := 1", Span{Start: 0, End: 6})
	if sel.Text != "```\nx := 1\n```" {
		t.Errorf("CodeBlock selection = %q", sel.Text)
	}

	empty := CodeBlock("", Span{})
	if empty.Text != "```language\ncode here\n```" {
		t.Errorf("CodeBlock template = %q", empty.Text)
	}
}

func TestLink(t *testing.T) {
	sel := Link("click here now", Span{Start: 6, End: 10})
	if sel.Text != "click [here](url) now" {
		t.Errorf("Link selection = %q", sel.Text)
	}

	empty := Link("", Span{})
	if empty.Text != "[link text](url)" {
		t.Errorf("Link template = %q", empty.Text)
	}
}

func TestInsertSnippet(t *testing.T) {
	got := InsertSnippet("ab", 1, "XY")
	if got.Text != "aXYb" {
		t.Errorf("InsertSnippet text = %q", got.Text)
	}
	if got.Cursor != 3 {
		t.Errorf("InsertSnippet cursor = %d, want 3", got.Cursor)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		needle string
		from   int
		want   int
	}{
		{"forward match", "abcabc", "b", 0, 1},
		{"from cursor", "abcabc", "b", 2, 4},
		{"wraps around", "abcabc", "a", 5, 0},
		{"not found", "abc", "z", 0, -1},
		{"empty needle", "abc", "", 0, -1},
		{"multibyte offsets", "héllo héllo", "llo", 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.text, tt.needle, tt.from)
			if got != tt.want {
				t.Errorf("Find(%q, %q, %d) = %d, want %d",
					tt.text, tt.needle, tt.from, got, tt.want)
			}
		})
	}
}

func TestSpanOf(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		cursor   int
		selected string
		want     Span
	}{
		{"empty selection is cursor", "abc", 2, "", Span{Start: 2, End: 2}},
		{"single occurrence", "pick me", 4, "me", Span{Start: 5, End: 7}},
		{"occurrence at cursor wins", "go go go", 4, "go", Span{Start: 3, End: 5}},
		{"fallback to first", "go go", 0, "go", Span{Start: 0, End: 2}},
		{"missing text is cursor", "abc", 1, "zz", Span{Start: 1, End: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpanOf(tt.text, tt.cursor, tt.selected)
			if got != tt.want {
				t.Errorf("SpanOf(%q, %d, %q) = %+v, want %+v",
					tt.text, tt.cursor, tt.selected, got, tt.want)
			}
		})
	}
}
