package mdpress

import (
	"html"
	"regexp"
	"strings"

	"github.com/mdpress/mdpress/internal/fileutil"
)

// firstH1Pattern matches the first level-1 heading and captures its inner HTML.
var firstH1Pattern = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes HTML tags from a string and trims whitespace.
func stripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

// extractTitle returns the inner text of the first <h1> in htmlContent.
// When the document has no level-1 heading, it falls back to the input
// file's base name with the extension stripped.
func extractTitle(htmlContent, inputPath string) string {
	if m := firstH1Pattern.FindStringSubmatch(htmlContent); m != nil {
		if title := html.UnescapeString(stripHTMLTags(m[1])); title != "" {
			return title
		}
	}
	return fileutil.BaseName(inputPath)
}
