// Package config holds the conversion settings: PDF rendering options,
// CSS style blocks, and document metadata. User-supplied YAML overrides are
// deep-merged over built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/mdpress/mdpress/internal/assets"
	"github.com/mdpress/mdpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigRead      = errors.New("failed to read config file")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Config holds all configuration for document generation.
type Config struct {
	PDF      PDFOptions `yaml:"pdf"`
	CSS      CSSStyles  `yaml:"css"`
	Metadata Metadata   `yaml:"metadata"`
}

// PDFOptions defines page geometry and rendering options.
type PDFOptions struct {
	PageSize     string `yaml:"pageSize"`     // "letter", "a4", "legal" (case-insensitive)
	MarginTop    string `yaml:"marginTop"`    // length with unit: "20mm", "2cm", "0.5in", "36pt"
	MarginRight  string `yaml:"marginRight"`
	MarginBottom string `yaml:"marginBottom"`
	MarginLeft   string `yaml:"marginLeft"`
	Encoding     string `yaml:"encoding"` // primary text encoding, "UTF-8"
	Quiet        bool   `yaml:"quiet"`    // suppress renderer progress logging
}

// CSSStyles defines the style blocks injected into the document.
type CSSStyles struct {
	Base   string `yaml:"base"`
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
}

// Metadata defines document metadata strings.
type Metadata struct {
	Creator  string `yaml:"creator"`
	Producer string `yaml:"producer"`
}

// Default returns the built-in configuration. CSS blocks come from the
// embedded stylesheets.
func Default() *Config {
	return &Config{
		PDF: PDFOptions{
			PageSize:     "a4",
			MarginTop:    "20mm",
			MarginRight:  "20mm",
			MarginBottom: "20mm",
			MarginLeft:   "20mm",
			Encoding:     "UTF-8",
			Quiet:        false,
		},
		CSS: CSSStyles{
			Base:   assets.BaseCSS(),
			Header: assets.HeaderCSS(),
			Footer: assets.FooterCSS(),
		},
		Metadata: Metadata{
			Creator:  "mdpress Markdown to PDF converter",
			Producer: "mdpress go-rod/chromium",
		},
	}
}

// Load reads a YAML override file and deep-merges it over base. Keys absent
// from the file keep their base values; nested sections merge key-by-key.
// An empty file yields a copy of base.
func Load(path string, base *Config) (*Config, error) {
	if base == nil {
		base = Default()
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	baseMap, err := yamlutil.ToMap(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	merged := baseMap
	if len(bytes.TrimSpace(data)) > 0 {
		var override map[string]any
		if err := yamlutil.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
		merged = DeepMerge(baseMap, override)
	}

	var cfg Config
	if err := yamlutil.FromMapStrict(merged, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the PDF options are usable before any rendering
// starts, so bad override files fail at load time.
func (c *Config) Validate() error {
	if _, _, err := PaperDimensions(c.PDF.PageSize); err != nil {
		return err
	}
	margins := map[string]string{
		"pdf.marginTop":    c.PDF.MarginTop,
		"pdf.marginRight":  c.PDF.MarginRight,
		"pdf.marginBottom": c.PDF.MarginBottom,
		"pdf.marginLeft":   c.PDF.MarginLeft,
	}
	for field, value := range margins {
		if _, err := MarginInches(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	if c.PDF.Encoding == "" {
		return fmt.Errorf("%w: pdf.encoding cannot be empty", ErrInvalidEncoding)
	}
	return nil
}
