package mdpress

import (
	"context"
	"html/template"
	"strings"
	"testing"
)

func testDocumentData() *documentData {
	return &documentData{
		Title:       "Test Document",
		Charset:     "UTF-8",
		Generator:   "mdpress",
		BaseCSS:     template.CSS("body { font-family: Arial; }"),
		HeaderCSS:   template.CSS("header { border-bottom: 1px solid; }"),
		FooterCSS:   template.CSS("footer { font-size: 8pt; }"),
		PageSize:    "A4",
		PadTop:      "20mm",
		PadRight:    "20mm",
		PadBottom:   "20mm",
		PadLeft:     "20mm",
		Content:     template.HTML("<p>Hello</p>"),
		GeneratedAt: "2026-08-23 10:00",
	}
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	tmpl := newHTMLDocumentTemplater()

	t.Run("complete document", func(t *testing.T) {
		t.Parallel()

		got, err := tmpl.RenderDocument(context.Background(), testDocumentData())
		if err != nil {
			t.Fatalf("RenderDocument() error = %v", err)
		}

		for _, want := range []string{
			"<!DOCTYPE html>",
			`<meta charset="UTF-8">`,
			`<meta name="generator" content="mdpress">`,
			"<title>Test Document</title>",
			"body { font-family: Arial; }",
			"size: A4;",
			"padding: 20mm 20mm 20mm 20mm;",
			"<h1>Test Document</h1>",
			"<p>Hello</p>",
			"Generated on 2026-08-23 10:00",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("title is escaped", func(t *testing.T) {
		t.Parallel()

		data := testDocumentData()
		data.Title = `<script>alert("x")</script>`

		got, err := tmpl.RenderDocument(context.Background(), data)
		if err != nil {
			t.Fatalf("RenderDocument() error = %v", err)
		}
		if strings.Contains(got, "<script>") {
			t.Error("title not escaped")
		}
	})

	t.Run("empty generator omits meta tag", func(t *testing.T) {
		t.Parallel()

		data := testDocumentData()
		data.Generator = ""

		got, err := tmpl.RenderDocument(context.Background(), data)
		if err != nil {
			t.Fatalf("RenderDocument() error = %v", err)
		}
		if strings.Contains(got, `name="generator"`) {
			t.Error("generator meta should be omitted when empty")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := tmpl.RenderDocument(ctx, testDocumentData()); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizeCSS(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildPrintFooter(t *testing.T) {
	t.Parallel()

	got := buildPrintFooter("2026-08-23 10:00")

	for _, want := range []string{
		`<span class="pageNumber"></span>`,
		`<span class="totalPages"></span>`,
		"Generated on 2026-08-23 10:00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("footer missing %q in %q", want, got)
		}
	}
}

func TestBuildPrintFooter_EscapesTimestamp(t *testing.T) {
	t.Parallel()

	got := buildPrintFooter(`<img src=x>`)
	if strings.Contains(got, "<img") {
		t.Errorf("timestamp not escaped: %q", got)
	}
}
