package mdpress

import (
	"context"
	"regexp"
	"strings"
)

// Placeholders use Unicode Private Use Area characters. These are
// guaranteed to not conflict with any standard characters and pass through
// Goldmark unchanged (no WithUnsafe needed). Post-processing converts them
// to their HTML form after conversion.
const (
	markStartPlaceholder = "\uE000" // ==highlight== open
	markEndPlaceholder   = "\uE001" // ==highlight== close

	admonitionOpenPlaceholder  = "\uE002" // followed by the admonition kind
	admonitionTitlePlaceholder = "\uE003" // separates kind from title
	admonitionHeadPlaceholder  = "\uE004" // ends the admonition head line
	admonitionClosePlaceholder = "\uE005" // closes the admonition body
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==(.*?)==`)

	// Admonition head: !!! kind "optional title"
	admonitionPattern = regexp.MustCompile(`^!!!\s+([A-Za-z]+)(?:\s+"([^"]*)")?\s*$`)
)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// commonMarkPreprocessor applies transformations before CommonMark conversion.
type commonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *commonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = convertAdmonitions(content)
	content = convertHighlights(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertHighlights transforms ==text== to placeholder markers.
// The placeholders become <mark> tags after Goldmark processing.
func convertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, markStartPlaceholder+"$1"+markEndPlaceholder)
}

// convertAdmonitions rewrites admonition blocks into placeholder paragraphs
// that survive Goldmark untouched. The block grammar is a head line
//
//	!!! note "Optional Title"
//
// followed by a body indented with four spaces (or one tab). The body is
// dedented so Goldmark renders it as regular markdown between the
// placeholder paragraphs.
func convertAdmonitions(content string) string {
	lines := strings.Split(content, "\n")
	var out []string

	i := 0
	for i < len(lines) {
		m := admonitionPattern.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			i++
			continue
		}

		kind := strings.ToLower(m[1])
		title := m[2]
		if title == "" {
			title = capitalize(kind)
		}

		out = append(out, "", admonitionOpenPlaceholder+kind+admonitionTitlePlaceholder+title+admonitionHeadPlaceholder, "")
		i++

		for i < len(lines) {
			line := lines[i]
			if strings.TrimSpace(line) == "" {
				out = append(out, "")
				i++
				continue
			}
			if strings.HasPrefix(line, "    ") {
				out = append(out, line[4:])
				i++
				continue
			}
			if strings.HasPrefix(line, "\t") {
				out = append(out, line[1:])
				i++
				continue
			}
			break
		}

		out = append(out, "", admonitionClosePlaceholder, "")
	}

	return strings.Join(out, "\n")
}

// capitalize upper-cases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
