package mdpress

import (
	"context"
	"strings"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"unix unchanged", "a\nb", "a\nb"},
		{"windows", "a\r\nb", "a\nb"},
		{"old mac", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no blanks", "a\nb", "a\nb"},
		{"one blank kept", "a\n\nb", "a\n\nb"},
		{"two blanks compressed", "a\n\n\nb", "a\n\nb"},
		{"many blanks compressed", "a\n\n\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := compressBlankLines(tt.input)
			if got != tt.expected {
				t.Errorf("compressBlankLines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConvertHighlights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple highlight",
			input:    "this is ==important== text",
			expected: "this is " + markStartPlaceholder + "important" + markEndPlaceholder + " text",
		},
		{
			name:     "no highlight",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name: "multiple highlights",
			input: "==one== and ==two==",
			expected: markStartPlaceholder + "one" + markEndPlaceholder +
				" and " + markStartPlaceholder + "two" + markEndPlaceholder,
		},
		{
			name:     "empty highlight",
			input:    "====",
			expected: markStartPlaceholder + markEndPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertHighlights(tt.input)
			if got != tt.expected {
				t.Errorf("convertHighlights(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConvertAdmonitions(t *testing.T) {
	t.Parallel()

	t.Run("block with title and body", func(t *testing.T) {
		t.Parallel()

		input := "before\n!!! note \"Heads Up\"\n    Body text.\nafter"
		got := convertAdmonitions(input)

		head := admonitionOpenPlaceholder + "note" + admonitionTitlePlaceholder + "Heads Up" + admonitionHeadPlaceholder
		if !strings.Contains(got, head) {
			t.Errorf("missing admonition head placeholder in %q", got)
		}
		if !strings.Contains(got, "\nBody text.\n") {
			t.Errorf("body not dedented in %q", got)
		}
		if !strings.Contains(got, admonitionClosePlaceholder) {
			t.Errorf("missing close placeholder in %q", got)
		}
		if !strings.Contains(got, "after") {
			t.Errorf("content after block lost in %q", got)
		}
	})

	t.Run("default title from kind", func(t *testing.T) {
		t.Parallel()

		got := convertAdmonitions("!!! warning\n    Careful.")
		head := admonitionOpenPlaceholder + "warning" + admonitionTitlePlaceholder + "Warning" + admonitionHeadPlaceholder
		if !strings.Contains(got, head) {
			t.Errorf("expected default title %q in %q", "Warning", got)
		}
	})

	t.Run("kind is lowercased", func(t *testing.T) {
		t.Parallel()

		got := convertAdmonitions("!!! NOTE\n    x")
		if !strings.Contains(got, admonitionOpenPlaceholder+"note"+admonitionTitlePlaceholder) {
			t.Errorf("kind not lowercased in %q", got)
		}
	})

	t.Run("tab indented body", func(t *testing.T) {
		t.Parallel()

		got := convertAdmonitions("!!! tip\n\tUse tabs.")
		if !strings.Contains(got, "\nUse tabs.\n") {
			t.Errorf("tab body not dedented in %q", got)
		}
	})

	t.Run("unindented line ends block", func(t *testing.T) {
		t.Parallel()

		got := convertAdmonitions("!!! note\n    inside\noutside")
		closeIdx := strings.Index(got, admonitionClosePlaceholder)
		outsideIdx := strings.Index(got, "outside")
		if closeIdx == -1 || outsideIdx < closeIdx {
			t.Errorf("block not closed before following content: %q", got)
		}
	})

	t.Run("no admonition unchanged", func(t *testing.T) {
		t.Parallel()

		input := "# Title\n\nplain paragraph"
		if got := convertAdmonitions(input); got != input {
			t.Errorf("convertAdmonitions(%q) = %q, want unchanged", input, got)
		}
	})
}

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &commonMarkPreprocessor{}

	t.Run("applies all transformations", func(t *testing.T) {
		t.Parallel()

		input := "# Title\r\n\r\n\r\n\r\n==hot==\r\n"
		got := p.PreprocessMarkdown(context.Background(), input)

		if strings.Contains(got, "\r") {
			t.Error("line endings not normalized")
		}
		if strings.Contains(got, "\n\n\n") {
			t.Error("blank lines not compressed")
		}
		if !strings.Contains(got, markStartPlaceholder+"hot"+markEndPlaceholder) {
			t.Error("highlight not converted")
		}
	})

	t.Run("cancelled context returns input unchanged", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		input := "==skip=="
		if got := p.PreprocessMarkdown(ctx, input); got != input {
			t.Errorf("got %q, want input unchanged", got)
		}
	})
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"note", "Note"},
		{"Note", "Note"},
		{"x", "X"},
	}

	for _, tt := range tests {
		if got := capitalize(tt.input); got != tt.expected {
			t.Errorf("capitalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
