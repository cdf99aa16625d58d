package mdpress

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// htmlPostprocessor finalizes Goldmark output: placeholder expansion and
// [TOC] marker replacement.
type htmlPostprocessor interface {
	PostprocessHTML(ctx context.Context, htmlContent string) string
}

// placeholderPostprocessor implements htmlPostprocessor.
type placeholderPostprocessor struct{}

// PostprocessHTML applies all post-conversion transformations.
func (p *placeholderPostprocessor) PostprocessHTML(ctx context.Context, htmlContent string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return htmlContent
	}

	htmlContent = convertMarkPlaceholders(htmlContent)
	htmlContent = convertAdmonitionPlaceholders(htmlContent)
	htmlContent = replaceTOCMarker(htmlContent)
	return htmlContent
}

// Admonition placeholder paragraphs as rendered by Goldmark.
var (
	admonitionHeadHTML  = regexp.MustCompile(`(?s)<p>\x{E002}([a-z]+)\x{E003}(.*?)\x{E004}</p>`)
	admonitionCloseHTML = regexp.MustCompile(`<p>\x{E005}</p>`)
)

// convertMarkPlaceholders converts highlight placeholders to <mark> tags.
// This is the second half of the ==highlight== feature, keeping Goldmark
// secure (no WithUnsafe) while still supporting inline HTML marks.
func convertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, markStartPlaceholder, "<mark>"),
		markEndPlaceholder, "</mark>",
	)
}

// convertAdmonitionPlaceholders converts admonition placeholder paragraphs
// into the <div class="admonition"> structure the stylesheet expects.
func convertAdmonitionPlaceholders(content string) string {
	content = admonitionHeadHTML.ReplaceAllString(content,
		`<div class="admonition $1"><p class="admonition-title">$2</p>`)
	return admonitionCloseHTML.ReplaceAllString(content, `</div>`)
}

// tocMarkerPattern matches a paragraph containing exactly the [TOC] marker.
var tocMarkerPattern = regexp.MustCompile(`<p>\[TOC\]</p>`)

// defaultTOCMaxDepth limits TOC entries to h1-h3.
const defaultTOCMaxDepth = 3

// replaceTOCMarker replaces a standalone [TOC] paragraph with a numbered
// table of contents generated from the document's headings. With no
// headings the marker is removed.
func replaceTOCMarker(content string) string {
	if !tocMarkerPattern.MatchString(content) {
		return content
	}
	headings := extractHeadings(content, defaultTOCMaxDepth)
	toc := generateNumberedTOC(headings)
	return tocMarkerPattern.ReplaceAllLiteralString(content, toc)
}

// headingInfo represents an extracted heading from HTML.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// headingPattern matches h1-h6 tags with id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// extractHeadings parses HTML and returns all headings up to maxDepth.
// Headings without IDs are skipped.
func extractHeadings(htmlContent string, maxDepth int) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level > maxDepth {
			continue
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// numberingState tracks hierarchical numbering for TOC entries.
// Supports normalization (first heading becomes level 1) and gap skipping.
type numberingState struct {
	counters     [6]int // counters[0] = level 1 count, etc.
	minLevelSeen int    // for normalization (0 = not set)
	lastLevel    int    // for tracking parent relationships
}

// next returns the next number string and effective depth for the given heading level.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	if n.minLevelSeen == 0 {
		n.minLevelSeen = level
	}

	effectiveDepth = level - n.minLevelSeen + 1
	if effectiveDepth < 1 {
		effectiveDepth = 1
	}

	// Gap skipping: H1 -> H3 becomes depth 1 -> depth 2, not depth 3
	if n.lastLevel > 0 && effectiveDepth > n.lastLevel+1 {
		effectiveDepth = n.lastLevel + 1
	}

	for i := effectiveDepth; i < 6; i++ {
		n.counters[i] = 0
	}

	n.counters[effectiveDepth-1]++
	n.lastLevel = effectiveDepth

	var parts []string
	for i := 0; i < effectiveDepth; i++ {
		parts = append(parts, strconv.Itoa(n.counters[i]))
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// generateNumberedTOC creates HTML for a numbered table of contents.
// Nesting relies on numberingState.next never increasing the effective
// depth by more than one step.
func generateNumberedTOC(headings []headingInfo) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc"><ol class="toc-list">`)

	numbering := &numberingState{}
	prevDepth := 0

	for _, h := range headings {
		num, effectiveDepth := numbering.next(h.Level)

		switch {
		case prevDepth == 0:
			// first entry, nothing to close
		case effectiveDepth > prevDepth:
			buf.WriteString(`<ol>`)
		default:
			for d := prevDepth; d > effectiveDepth; d-- {
				buf.WriteString(`</li></ol>`)
			}
			buf.WriteString(`</li>`)
		}

		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(num)
		buf.WriteString(` `)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a>`)

		prevDepth = effectiveDepth
	}

	for d := prevDepth; d > 1; d-- {
		buf.WriteString(`</li></ol>`)
	}
	buf.WriteString(`</li></ol></nav>`)
	return buf.String()
}
