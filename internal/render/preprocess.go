package render

import "regexp"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Task list markers, one list item per line
	uncheckedTask = regexp.MustCompile(`(?m)^(\s*)- \[ \] (.+)$`)
	checkedTask   = regexp.MustCompile(`(?m)^(\s*)- \[[xX]\] (.+)$`)

	// Strikethrough ~~text~~
	strikePattern = regexp.MustCompile(`~~(.+?)~~`)
)

// Preprocess prepares raw markdown for conversion. Task-list markers and
// strikethrough become HTML fragments before goldmark sees the text, so the
// preview and export carry the checkbox styling regardless of converter
// support. Order matters: normalize line endings first so the multiline
// anchors match.
func Preprocess(content string) string {
	content = NormalizeLineEndings(content)
	content = ConvertTaskLists(content)
	content = ConvertStrikethrough(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ConvertTaskLists rewrites "- [ ] task" and "- [x] task" lines into
// checkbox list items. Leading indentation is preserved for nesting.
func ConvertTaskLists(content string) string {
	content = uncheckedTask.ReplaceAllString(content,
		`$1<li class="task-list-item"><input type="checkbox" disabled> $2</li>`)
	content = checkedTask.ReplaceAllString(content,
		`$1<li class="task-list-item"><input type="checkbox" checked disabled> $2</li>`)
	return content
}

// ConvertStrikethrough transforms ~~text~~ to <del>text</del>.
func ConvertStrikethrough(content string) string {
	return strikePattern.ReplaceAllString(content, "<del>$1</del>")
}
