package render

import (
	"fmt"
	"html"
)

// PageOptions controls the chrome added around the rendered fragment.
type PageOptions struct {
	CopyButtons bool // inject the copy-to-clipboard script for code blocks
}

// copyScript adds a Copy button to every <pre> block. The execCommand
// fallback covers embedded browser views without clipboard API access.
const copyScript = `<script>
function copyToClipboard(text, btn) {
  if (navigator.clipboard && navigator.clipboard.writeText) {
    navigator.clipboard.writeText(text).then(function() {
      showCopied(btn);
    }).catch(function() {
      fallbackCopy(text, btn);
    });
  } else {
    fallbackCopy(text, btn);
  }
}

function fallbackCopy(text, btn) {
  var textarea = document.createElement('textarea');
  textarea.value = text;
  textarea.style.position = 'fixed';
  textarea.style.left = '-9999px';
  textarea.style.top = '0';
  document.body.appendChild(textarea);
  textarea.focus();
  textarea.select();
  try {
    document.execCommand('copy');
    showCopied(btn);
  } catch (err) {
    btn.textContent = 'Failed';
    setTimeout(function() { btn.textContent = 'Copy'; }, 2000);
  }
  document.body.removeChild(textarea);
}

function showCopied(btn) {
  btn.textContent = 'Copied!';
  btn.classList.add('copied');
  setTimeout(function() {
    btn.textContent = 'Copy';
    btn.classList.remove('copied');
  }, 2000);
}

document.addEventListener('DOMContentLoaded', function() {
  document.querySelectorAll('pre').forEach(function(pre) {
    var btn = document.createElement('button');
    btn.className = 'copy-btn';
    btn.textContent = 'Copy';
    btn.onclick = function(e) {
      e.preventDefault();
      var code = pre.querySelector('code') || pre;
      copyToClipboard(code.textContent, btn);
    };
    pre.appendChild(btn);
  });
});
</script>`

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>%s</style>
</head>
<body>
%s%s
</body>
</html>`

// WrapDocument builds a standalone HTML5 document from a rendered fragment.
func WrapDocument(title, css, body string, opts PageOptions) string {
	script := ""
	if opts.CopyButtons {
		script = "\n" + copyScript
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), css, body, script)
}
