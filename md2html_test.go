package mdpress

import (
	"context"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	c := newGoldmarkConverter()

	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "basic heading and paragraph",
			markdown: "# Hello World\n\nSome text.",
			contains: []string{`<h1 id="hello-world">Hello World</h1>`, "<p>Some text.</p>"},
		},
		{
			name:     "gfm table",
			markdown: "| A | B |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<th>A</th>", "<td>1</td>"},
		},
		{
			name:     "gfm strikethrough",
			markdown: "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "footnote",
			markdown: "text[^1]\n\n[^1]: the note",
			contains: []string{"footnote-ref", "the note"},
		},
		{
			name:     "fenced code with chroma classes",
			markdown: "```go\npackage main\n```",
			contains: []string{"chroma", "package"},
		},
		{
			name:     "wikilink",
			markdown: "see [[OtherPage]]",
			contains: []string{"<a href=", "OtherPage"},
		},
		{
			name:     "typographer smart quotes",
			markdown: `"quoted"`,
			contains: []string{"&ldquo;quoted&rdquo;"},
		},
		{
			name:     "definition list",
			markdown: "Term\n: definition",
			contains: []string{"<dl>", "<dt>Term</dt>", "<dd>definition</dd>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestToHTML_FrontMatterStripped(t *testing.T) {
	t.Parallel()

	c := newGoldmarkConverter()
	got, err := c.ToHTML(context.Background(), "---\ntitle: secret\n---\n\n# Visible")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if strings.Contains(got, "secret") {
		t.Errorf("front matter leaked into output: %s", got)
	}
	if !strings.Contains(got, "Visible") {
		t.Errorf("body content missing: %s", got)
	}
}

func TestToHTML_RawHTMLNotRendered(t *testing.T) {
	t.Parallel()

	// WithUnsafe is intentionally off: raw HTML must come out escaped or
	// omitted, never live.
	c := newGoldmarkConverter()
	got, err := c.ToHTML(context.Background(), `<script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML rendered unescaped: %s", got)
	}
}

func TestToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	c := newGoldmarkConverter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.ToHTML(ctx, "# Hi"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestToHTML_PlaceholdersSurvive(t *testing.T) {
	t.Parallel()

	c := newGoldmarkConverter()
	input := markStartPlaceholder + "hot" + markEndPlaceholder
	got, err := c.ToHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, markStartPlaceholder) || !strings.Contains(got, markEndPlaceholder) {
		t.Errorf("placeholders did not survive conversion: %q", got)
	}
}
