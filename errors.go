package mdpress

import "errors"

// Sentinel errors for library operations. They fall into three of the four
// domain kinds the CLI recognizes; configuration errors live in
// internal/config.
var (
	// Dependency: the external PDF rendering engine is unusable.
	ErrRendererUnavailable = errors.New("PDF renderer unavailable")

	// Input validation.
	ErrInputNotFound     = errors.New("input file does not exist")
	ErrOutputDirNotFound = errors.New("output directory does not exist")

	// Conversion.
	ErrReadMarkdown   = errors.New("failed to read markdown file")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrTemplateRender = errors.New("document template rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF file")

	// ErrConversion wraps failures that are not one of the defined kinds
	// so callers still see a recognizable domain error.
	ErrConversion = errors.New("conversion failed")

	// Browser lifecycle errors, surfaced through ErrRendererUnavailable
	// (startup check) or ErrPDFGeneration (render path).
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// DomainErrors lists every sentinel of this package. The CLI uses it to map
// recognized failures to their exit code via errors.Is.
func DomainErrors() []error {
	return []error{
		ErrRendererUnavailable,
		ErrInputNotFound,
		ErrOutputDirNotFound,
		ErrReadMarkdown,
		ErrHTMLConversion,
		ErrTemplateRender,
		ErrPDFGeneration,
		ErrWritePDF,
		ErrConversion,
		ErrBrowserConnect,
		ErrPageCreate,
		ErrPageLoad,
	}
}
