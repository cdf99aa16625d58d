package mdpress

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
)

// defaultFontFamily is the font stack used for generated print footers.
const defaultFontFamily = "'Arial', sans-serif"

// documentData carries everything the document template needs.
type documentData struct {
	Title       string
	Charset     string
	Generator   string
	BaseCSS     template.CSS
	HeaderCSS   template.CSS
	FooterCSS   template.CSS
	PageSize    string
	PadTop      string
	PadRight    string
	PadBottom   string
	PadLeft     string
	Content     template.HTML
	GeneratedAt string
}

// documentTemplate wraps the rendered fragment in a complete printable
// document: injected styles, page geometry, a header carrying the title,
// and a footer with the generation timestamp. Print margins are zeroed at
// the @page level; the content wrapper carries them as padding.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="{{.Charset}}">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
{{if .Generator}}<meta name="generator" content="{{.Generator}}">
{{end}}<title>{{.Title}}</title>
<style>
{{.BaseCSS}}
{{.HeaderCSS}}
{{.FooterCSS}}
@page {
  size: {{.PageSize}};
  margin: 0;
}
.page-content {
  padding: {{.PadTop}} {{.PadRight}} {{.PadBottom}} {{.PadLeft}};
}
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
</header>
<div class="page-content">
{{.Content}}
</div>
<footer>
Generated on {{.GeneratedAt}}
</footer>
</body>
</html>
`

// documentTemplater defines the contract for building the final document.
type documentTemplater interface {
	RenderDocument(ctx context.Context, data *documentData) (string, error)
}

// htmlDocumentTemplater renders documentTemplate.
type htmlDocumentTemplater struct {
	tmpl *template.Template
}

// newHTMLDocumentTemplater parses the document template.
// Panics if the template cannot be parsed (programmer error).
func newHTMLDocumentTemplater() *htmlDocumentTemplater {
	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		panic("failed to parse document template: " + err.Error())
	}
	return &htmlDocumentTemplater{tmpl: tmpl}
}

// RenderDocument executes the document template.
func (t *htmlDocumentTemplater) RenderDocument(ctx context.Context, data *documentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// buildPrintFooter generates the HTML template for Chrome's native print
// footer: real page numbers plus the generation timestamp. Chrome resolves
// the pageNumber/totalPages classes during pagination.
func buildPrintFooter(generatedAt string) string {
	return fmt.Sprintf(
		`<div style="font-size: 8px; font-family: %s; color: #666; width: 100%%; text-align: center; padding: 0 0.5in;">Page <span class="pageNumber"></span> of <span class="totalPages"></span> | Generated on %s</div>`,
		defaultFontFamily,
		html.EscapeString(generatedAt),
	)
}
