// Package mdpress converts Markdown documents to styled PDF files using
// headless Chrome.
//
// # Quick Start
//
// Create a service, convert a file, and close when done:
//
//	svc := mdpress.New(nil)
//	defer svc.Close()
//
//	err := svc.Convert(ctx, mdpress.Request{
//	    InputPath:  "report.md",
//	    OutputPath: "report.pdf",
//	})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Input validation (paths, markdown extension warning)
//  2. File read with UTF-8 to ISO-8859-1 fallback
//  3. Markdown preprocessing (line normalization, ==highlight==, admonitions)
//  4. Markdown to HTML conversion via Goldmark (GFM, footnotes, smart
//     punctuation, metadata, wiki links, syntax highlighting)
//  5. HTML postprocessing (placeholder expansion, [TOC] replacement)
//  6. Document templating (CSS, header, footer, page geometry)
//  7. PDF rendering via headless Chrome (go-rod), with a reduced-option
//     retry when the first attempt fails
//
// # Configuration
//
// Pass a config from the internal config loader, or nil for defaults:
//
//	cfg, err := config.Load("mdpress.yaml", config.Default())
//	svc := mdpress.New(cfg,
//	    mdpress.WithTimeout(2*time.Minute),
//	    mdpress.WithLogger(logger),
//	)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
// Call Service.Verify once at startup to fail fast when no usable browser
// is available.
package mdpress
