package render

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteImagePaths converts relative img src paths in an HTML fragment to
// absolute file:// URLs anchored at baseDir, so previews of a saved document
// resolve images the same way a browser opening the file would. URLs, data
// URIs, anchors and absolute paths pass through untouched, as does any path
// that would escape baseDir.
func RewriteImagePaths(fragment, baseDir string) (string, error) {
	if baseDir == "" {
		return fragment, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	bodyCtx := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyCtx)
	if err != nil {
		return "", err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	rewriteNode(container, absBase)

	var buf strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, baseDir string) {
	if n.Type == html.ElementNode && n.Data == "img" {
		for i, attr := range n.Attr {
			if attr.Key != "src" || !isRelativePath(attr.Val) {
				continue
			}

			absPath := filepath.Join(baseDir, attr.Val)
			if !isPathUnderDir(absPath, baseDir) {
				continue // leave traversal attempts alone
			}

			n.Attr[i].Val = pathToFileURL(absPath)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, baseDir)
	}
}

// isRelativePath returns true if the src should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// Skip URLs (http, https, file, data, protocol-relative)
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "file://") ||
		strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "//") {
		return false
	}

	if strings.HasPrefix(path, "#") {
		return false
	}

	return !filepath.IsAbs(path)
}

// isPathUnderDir checks if absPath stays inside dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
