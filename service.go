package mdpress

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"time"

	"github.com/mdpress/mdpress/internal/config"
)

// Request identifies one conversion: a markdown input and a PDF output path.
type Request struct {
	InputPath  string
	OutputPath string
}

// filePermissions for generated PDFs: rw-r--r--.
const filePermissions = 0o644

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpress: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithLogger sets the logger the service and its components report through.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithClock overrides the time source used for the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.cfg.now = now
	}
}

// Service orchestrates the markdown-to-PDF pipeline. Each Convert call is
// independent; the only shared resource is the lazily launched browser,
// released by Close.
type Service struct {
	cfg           serviceConfig
	conf          *config.Config
	log           *slog.Logger
	preprocessor  markdownPreprocessor
	htmlConverter htmlConverter
	postprocessor htmlPostprocessor
	templater     documentTemplater
	pdfConverter  pdfConverter
}

// New creates a Service using conf, or the built-in defaults when conf is
// nil. Use options to customize behavior (e.g., WithTimeout, WithLogger).
func New(conf *config.Config, opts ...Option) *Service {
	if conf == nil {
		conf = config.Default()
	}

	s := &Service{
		cfg:           serviceConfig{timeout: defaultTimeout, now: time.Now},
		conf:          conf,
		log:           slog.Default(),
		preprocessor:  &commonMarkPreprocessor{},
		htmlConverter: newGoldmarkConverter(),
		postprocessor: &placeholderPostprocessor{},
		templater:     newHTMLDocumentTemplater(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout, s.log)
	}

	return s
}

// Verify checks that the external PDF rendering engine is usable by
// performing a trivial no-op render. Call once at startup to fail fast
// before any input file is touched.
func (s *Service) Verify(ctx context.Context) error {
	return s.pdfConverter.Verify(ctx)
}

// Convert runs the full pipeline: validate, read, render to HTML, extract
// the title, template the document, and generate the PDF. Errors that are
// not one of the defined kinds are wrapped into ErrConversion.
func (s *Service) Convert(ctx context.Context, req Request) error {
	return wrapConversionErr(s.convert(ctx, req))
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

func (s *Service) convert(ctx context.Context, req Request) error {
	if err := s.validateRequest(req); err != nil {
		return err
	}

	s.log.Info("reading markdown file", "path", req.InputPath)
	content, usedFallback, err := readMarkdownFile(req.InputPath)
	if err != nil {
		return err
	}
	if usedFallback {
		s.log.Warn("input is not valid UTF-8, decoded as ISO-8859-1", "path", req.InputPath)
	}

	mdContent := s.preprocessor.PreprocessMarkdown(ctx, content)
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.Debug("converting markdown to HTML")
	fragment, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return fmt.Errorf("converting to HTML: %w", err)
	}

	fragment = s.postprocessor.PostprocessHTML(ctx, fragment)
	if err := ctx.Err(); err != nil {
		return err
	}

	title := extractTitle(fragment, req.InputPath)
	s.log.Debug("extracted document title", "title", title)

	generatedAt := s.cfg.now().Format("2006-01-02 15:04")

	doc, err := s.buildDocument(ctx, fragment, title, generatedAt)
	if err != nil {
		return err
	}

	renderOpts, err := s.buildRenderOptions(generatedAt)
	if err != nil {
		return err
	}

	s.log.Info("generating PDF", "path", req.OutputPath)
	pdfBytes, err := s.pdfConverter.ToPDF(ctx, doc, renderOpts)
	if err != nil {
		return err
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(req.OutputPath, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	s.log.Info("successfully created PDF", "path", req.OutputPath)
	return nil
}

// buildDocument assembles the template data from the configuration and
// renders the complete HTML document.
func (s *Service) buildDocument(ctx context.Context, fragment, title, generatedAt string) (string, error) {
	pdf := &s.conf.PDF

	pageSize, err := config.CanonicalPageSize(pdf.PageSize)
	if err != nil {
		return "", err
	}

	data := &documentData{
		Title:       title,
		Charset:     pdf.Encoding,
		Generator:   s.conf.Metadata.Creator,
		BaseCSS:     template.CSS(sanitizeCSS(s.conf.CSS.Base)),
		HeaderCSS:   template.CSS(sanitizeCSS(s.conf.CSS.Header)),
		FooterCSS:   template.CSS(sanitizeCSS(s.conf.CSS.Footer)),
		PageSize:    pageSize,
		PadTop:      pdf.MarginTop,
		PadRight:    pdf.MarginRight,
		PadBottom:   pdf.MarginBottom,
		PadLeft:     pdf.MarginLeft,
		Content:     template.HTML(fragment), // #nosec G203 -- fragment comes from goldmark without WithUnsafe
		GeneratedAt: generatedAt,
	}

	return s.templater.RenderDocument(ctx, data)
}

// buildRenderOptions resolves the configured page geometry into the option
// set handed to the PDF renderer.
func (s *Service) buildRenderOptions(generatedAt string) (*renderOptions, error) {
	pdf := &s.conf.PDF

	width, height, err := config.PaperDimensions(pdf.PageSize)
	if err != nil {
		return nil, err
	}

	margins := [4]float64{}
	for i, m := range []string{pdf.MarginTop, pdf.MarginRight, pdf.MarginBottom, pdf.MarginLeft} {
		v, err := config.MarginInches(m)
		if err != nil {
			return nil, err
		}
		margins[i] = v
	}

	return &renderOptions{
		PaperWidth:   width,
		PaperHeight:  height,
		MarginTop:    margins[0],
		MarginRight:  margins[1],
		MarginBottom: margins[2],
		MarginLeft:   margins[3],
		FooterHTML:   buildPrintFooter(generatedAt),
		Quiet:        pdf.Quiet,
	}, nil
}

// wrapConversionErr leaves defined error kinds and context errors intact
// and wraps everything else into ErrConversion.
func wrapConversionErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	for _, known := range DomainErrors() {
		if errors.Is(err, known) {
			return err
		}
	}
	for _, known := range []error{
		config.ErrInvalidPageSize,
		config.ErrInvalidMargin,
		config.ErrInvalidEncoding,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrConversion, err)
}
