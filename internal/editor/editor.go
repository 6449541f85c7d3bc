// Package editor implements the text-level formatting operations behind the
// toolbar buttons. Operations are pure functions over the buffer and a
// selection, so they are testable without any widget in the loop; the GUI
// layer maps widget state in and cursor positions back out. Offsets are in
// runes, matching how the entry widget addresses its content.
package editor

import "strings"

// Span is a half-open selection range in rune offsets. Start == End means
// no selection, just a cursor.
type Span struct {
	Start int
	End   int
}

func (s Span) Empty() bool { return s.Start >= s.End }

// Result is the outcome of an operation: the new buffer and where the
// cursor should land.
type Result struct {
	Text   string
	Cursor int
}

// Surround wraps the selection in prefix/suffix tokens (bold, italic,
// inline code, ...). With no selection the empty pair is inserted and the
// cursor placed between the tokens, ready for typing.
func Surround(text string, sel Span, prefix, suffix string) Result {
	r := []rune(text)
	sel = clamp(sel, len(r))

	p, q := []rune(prefix), []rune(suffix)

	if sel.Empty() {
		out := make([]rune, 0, len(r)+len(p)+len(q))
		out = append(out, r[:sel.Start]...)
		out = append(out, p...)
		out = append(out, q...)
		out = append(out, r[sel.Start:]...)
		return Result{Text: string(out), Cursor: sel.Start + len(p)}
	}

	out := make([]rune, 0, len(r)+len(p)+len(q))
	out = append(out, r[:sel.Start]...)
	out = append(out, p...)
	out = append(out, r[sel.Start:sel.End]...)
	out = append(out, q...)
	out = append(out, r[sel.End:]...)
	return Result{Text: string(out), Cursor: sel.End + len(p) + len(q)}
}

// Heading rewrites the line under the cursor as a level-N heading,
// stripping any existing heading markers first. Level must be 1-6.
func Heading(text string, cursor, level int) Result {
	if level < 1 || level > 6 {
		return Result{Text: text, Cursor: cursor}
	}

	r := []rune(text)
	cursor = clampPos(cursor, len(r))
	start, end := lineBounds(r, cursor)

	line := strings.TrimLeft(string(r[start:end]), "#")
	line = strings.TrimLeft(line, " ")
	heading := strings.Repeat("#", level) + " " + line

	out := string(r[:start]) + heading + string(r[end:])
	return Result{Text: out, Cursor: start + len([]rune(heading))}
}

// PrefixLine inserts a marker at the start of the cursor's line. Used for
// bullet ("- "), numbered ("1. ") and task ("- [ ] ") list items.
func PrefixLine(text string, cursor int, prefix string) Result {
	r := []rune(text)
	cursor = clampPos(cursor, len(r))
	start, _ := lineBounds(r, cursor)

	out := string(r[:start]) + prefix + string(r[start:])
	return Result{Text: out, Cursor: cursor + len([]rune(prefix))}
}

// Quote turns the selection into a blockquote, prefixing every selected
// line with "> ". With no selection the current line is prefixed.
func Quote(text string, sel Span) Result {
	if sel.Empty() {
		return PrefixLine(text, sel.Start, "> ")
	}

	r := []rune(text)
	sel = clamp(sel, len(r))

	lines := strings.Split(string(r[sel.Start:sel.End]), "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	quoted := strings.Join(lines, "\n")

	out := string(r[:sel.Start]) + quoted + string(r[sel.End:])
	return Result{Text: out, Cursor: sel.Start + len([]rune(quoted))}
}

// CodeBlock fences the selection, or inserts a fenced block template.
func CodeBlock(text string, sel Span) Result {
	if sel.Empty() {
		return InsertSnippet(text, sel.Start, "```language\ncode here\n```")
	}

	r := []rune(text)
	sel = clamp(sel, len(r))

	fenced := "```\n" + string(r[sel.Start:sel.End]) + "\n```"
	out := string(r[:sel.Start]) + fenced + string(r[sel.End:])
	return Result{Text: out, Cursor: sel.Start + len([]rune(fenced))}
}

// Link wraps the selection in a markdown link with a placeholder URL, or
// inserts a full link template.
func Link(text string, sel Span) Result {
	if sel.Empty() {
		return InsertSnippet(text, sel.Start, "[link text](url)")
	}

	r := []rune(text)
	sel = clamp(sel, len(r))

	linked := "[" + string(r[sel.Start:sel.End]) + "](url)"
	out := string(r[:sel.Start]) + linked + string(r[sel.End:])
	return Result{Text: out, Cursor: sel.Start + len([]rune(linked))}
}

// ImageTemplate is inserted by the image toolbar button.
const ImageTemplate = "![alt text](image_url)"

// TableTemplate is inserted by the table toolbar button.
const TableTemplate = `| Header 1 | Header 2 | Header 3 |
|----------|----------|----------|
| Cell 1   | Cell 2   | Cell 3   |
| Cell 4   | Cell 5   | Cell 6   |
`

// HorizontalRule is inserted by the hr toolbar button.
const HorizontalRule = "\n---\n"

// InsertSnippet inserts a snippet at the cursor, leaving the cursor after it.
func InsertSnippet(text string, cursor int, snippet string) Result {
	r := []rune(text)
	cursor = clampPos(cursor, len(r))

	out := string(r[:cursor]) + snippet + string(r[cursor:])
	return Result{Text: out, Cursor: cursor + len([]rune(snippet))}
}

// Find locates needle starting at from, wrapping to the top of the buffer
// when nothing follows the cursor. Returns the rune offset of the match,
// or -1 when the needle does not occur at all.
func Find(text, needle string, from int) int {
	if needle == "" {
		return -1
	}

	r := []rune(text)
	from = clampPos(from, len(r))

	if i := strings.Index(string(r[from:]), needle); i >= 0 {
		return from + len([]rune(string(r[from:])[:i]))
	}
	if i := strings.Index(text, needle); i >= 0 {
		return len([]rune(text[:i]))
	}
	return -1
}

// SpanOf locates the selection span for a selected substring near the
// cursor. The entry widget exposes the selected text but not its offsets;
// the occurrence overlapping the cursor is the one being edited, with the
// first occurrence as fallback.
func SpanOf(text string, cursor int, selected string) Span {
	if selected == "" {
		c := clampPos(cursor, len([]rune(text)))
		return Span{Start: c, End: c}
	}

	selLen := len([]rune(selected))
	best := -1
	from := 0
	for {
		i := Find(text[:], selected, from)
		if i < 0 || i < from {
			break
		}
		if best == -1 {
			best = i
		}
		// Prefer the occurrence the cursor touches.
		if cursor >= i && cursor <= i+selLen {
			best = i
			break
		}
		from = i + 1
	}

	if best < 0 {
		c := clampPos(cursor, len([]rune(text)))
		return Span{Start: c, End: c}
	}
	return Span{Start: best, End: best + selLen}
}

// lineBounds returns the rune offsets of the line containing pos.
func lineBounds(r []rune, pos int) (int, int) {
	start := pos
	for start > 0 && r[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(r) && r[end] != '\n' {
		end++
	}
	return start, end
}

func clamp(s Span, n int) Span {
	s.Start = clampPos(s.Start, n)
	s.End = clampPos(s.End, n)
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

func clampPos(p, n int) int {
	if p < 0 {
		return 0
	}
	if p > n {
		return n
	}
	return p
}
