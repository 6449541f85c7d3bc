package gui

// GuideTitle names the built-in syntax guide document.
const GuideTitle = "Markdown Guide"

// GuideMarkdown is the built-in syntax reference, opened read-only from
// the help button.
const GuideMarkdown = `# Markdown Guide

A quick reference for the syntax supported by MDFlex.

## Headers

` + "```" + `
# Header 1
## Header 2
### Header 3
` + "```" + `

## Emphasis

` + "```" + `
**bold text**
*italic text*
~~strikethrough~~
` + "```" + `

## Lists

Unordered:

` + "```" + `
- Item one
- Item two
  - Nested item
` + "```" + `

Ordered:

` + "```" + `
1. First
2. Second
3. Third
` + "```" + `

Task lists:

` + "```" + `
- [ ] Open task
- [x] Done task
` + "```" + `

## Links and Images

` + "```" + `
[link text](https://example.com)
![alt text](image.png)
` + "```" + `

Relative image paths are resolved next to the saved document.

## Code

Inline code with backticks: ` + "`code`" + `

Fenced blocks with a language for syntax highlighting:

` + "```" + `
` + "```go" + `
func main() {
    fmt.Println("hello")
}
` + "```" + `
` + "```" + `

## Tables

` + "```" + `
| Header 1 | Header 2 |
|----------|----------|
| Cell 1   | Cell 2   |
` + "```" + `

## Blockquotes

` + "```" + `
> Quoted text.
> Spans multiple lines.
` + "```" + `

## Horizontal Rule

` + "```" + `
---
` + "```" + `

## Footnotes

` + "```" + `
Reference[^1] in text.

[^1]: The footnote body.
` + "```" + `
`
