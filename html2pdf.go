package mdpress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mdpress/mdpress/internal/fileutil"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *renderOptions) ([]byte, error)
	Verify(ctx context.Context) error
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// renderOptions holds the resolved option set for one PDF generation.
// All lengths are inches.
type renderOptions struct {
	PaperWidth   float64
	PaperHeight  float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	FooterHTML   string // native print footer template; empty disables it
	Quiet        bool   // suppress per-attempt progress logging
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it
// to PDF. Returns explicit errors instead of panicking when browser
// operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// fullPrintOptions constructs the complete option set for the first attempt:
// paper size, margins, background, and the native footer when configured.
func fullPrintOptions(opts *renderOptions) *proto.PagePrintToPDF {
	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(opts.PaperWidth),
		PaperHeight:     floatPtr(opts.PaperHeight),
		MarginTop:       floatPtr(opts.MarginTop),
		MarginRight:     floatPtr(opts.MarginRight),
		MarginBottom:    floatPtr(opts.MarginBottom),
		MarginLeft:      floatPtr(opts.MarginLeft),
		PrintBackground: true,
	}

	if opts.FooterHTML != "" {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>" // Empty header
		pdfOpts.FooterTemplate = opts.FooterHTML
	}

	return pdfOpts
}

// reducedPrintOptions constructs the simplified option set for the retry:
// paper size only, no custom margins, no header or footer.
func reducedPrintOptions(opts *renderOptions) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(opts.PaperWidth),
		PaperHeight:     floatPtr(opts.PaperHeight),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// verifyDocument is the trivial no-op render used by the startup
// dependency check.
const verifyDocument = "<html></html>"

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
// A failed first attempt is retried once with reduced options; the
// intermediate HTML lives in a scratch directory that is removed on every
// exit path.
type rodConverter struct {
	renderer pdfRenderer
	closer   io.Closer
	log      *slog.Logger
}

// newRodConverter creates a rodConverter with the production renderer.
func newRodConverter(timeout time.Duration, log *slog.Logger) *rodConverter {
	r := newRodRenderer(timeout)
	return &rodConverter{renderer: r, closer: closerFunc(r.Close), log: log}
}

// closerFunc adapts a plain close function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// ToPDF converts HTML content to PDF bytes using headless Chrome.
// The first attempt uses the full option set; any failure triggers a
// second attempt with reduced options before the operation is failed.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *renderOptions) ([]byte, error) {
	dir, cleanup, err := fileutil.ScratchDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	docPath := filepath.Join(dir, "document.html")
	if err := os.WriteFile(docPath, []byte(htmlContent), 0o600); err != nil {
		return nil, fmt.Errorf("%w: writing intermediate HTML: %v", ErrPDFGeneration, err)
	}

	pdfBytes, firstErr := c.renderer.RenderFromFile(ctx, docPath, fullPrintOptions(opts))
	if firstErr == nil {
		return pdfBytes, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if !opts.Quiet {
		c.log.Warn("first PDF generation attempt failed, retrying with reduced options", "error", firstErr)
	}

	pdfBytes, retryErr := c.renderer.RenderFromFile(ctx, docPath, reducedPrintOptions(opts))
	if retryErr != nil {
		return nil, fmt.Errorf("%w: %v (first attempt: %v)", ErrPDFGeneration, retryErr, firstErr)
	}
	return pdfBytes, nil
}

// Verify renders a trivial document to prove the external rendering engine
// is usable. Called once at startup, before any input file is touched.
func (c *rodConverter) Verify(ctx context.Context) error {
	dir, cleanup, err := fileutil.ScratchDir()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}
	defer cleanup()

	docPath := filepath.Join(dir, "probe.html")
	if err := os.WriteFile(docPath, []byte(verifyDocument), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}

	if _, err := c.renderer.RenderFromFile(ctx, docPath, &proto.PagePrintToPDF{}); err != nil {
		return fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}
	return nil
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
