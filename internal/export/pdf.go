package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/pkg/errors"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// PDFOptions contains configuration for PDF generation
type PDFOptions struct {
	// Paper dimensions in inches (A4: 8.27 x 11.69)
	PaperWidth  float64
	PaperHeight float64

	// Margins in inches
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	// Print background colors and images
	PrintBackground bool

	// Scale of the webpage rendering (1.0 = 100%)
	Scale float64

	// Timeout for PDF generation
	Timeout time.Duration
}

// DefaultPDFOptions returns default PDF options for A4 paper.
// Margins are slim because the report templates carry their own header and
// footer bands with the tenant branding.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		PaperWidth:  8.27,
		PaperHeight: 11.69,

		MarginTop:    0.39, // ~10mm
		MarginBottom: 0.39, // ~10mm
		MarginLeft:   0.39, // ~10mm
		MarginRight:  0.39, // ~10mm

		PrintBackground: true,
		Scale:           1.0,
		Timeout:         60 * time.Second,
	}
}

// PDFExporter exports reports to PDF format using Chrome headless
type PDFExporter struct {
	options PDFOptions
}

// NewPDFExporter creates a new PDF exporter with default options
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{
		options: DefaultPDFOptions(),
	}
}

// NewPDFExporterWithOptions creates a new PDF exporter with custom options
func NewPDFExporterWithOptions(opts PDFOptions) *PDFExporter {
	return &PDFExporter{
		options: opts,
	}
}

// Export exports a report to PDF and returns the binary data
func (e *PDFExporter) Export(report *model.Report) ([]byte, error) {
	if report.HTML == "" {
		return nil, errors.New(errors.ErrCodeExportFailed, "report has no rendered HTML")
	}

	startTime := time.Now()
	logger.Info("Starting PDF export",
		zap.String("report_id", report.ID),
		zap.String("title", report.Title),
		zap.Duration("timeout", e.options.Timeout),
	)

	// Write HTML to a temporary file. Navigating to a file URL avoids data
	// URL size limits for large reports.
	tmpFile, err := os.CreateTemp("", "trendyreports-pdf-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(report.HTML); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), e.options.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-software-rasterizer", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
		logger.Debug("Using custom Chrome path",
			zap.String("report_id", report.ID),
			zap.String("chrome_path", chromePath),
		)
	}

	// Default WebSocket URL timeout is 20s which may not be enough on slow systems
	opts = append(opts, chromedp.WSURLReadTimeout(60*time.Second))

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pdfData []byte
	fileURL := "file://" + tmpPath

	err = chromedp.Run(browserCtx,
		chromedp.Navigate(fileURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().
				WithPaperWidth(e.options.PaperWidth).
				WithPaperHeight(e.options.PaperHeight).
				WithMarginTop(e.options.MarginTop).
				WithMarginBottom(e.options.MarginBottom).
				WithMarginLeft(e.options.MarginLeft).
				WithMarginRight(e.options.MarginRight).
				WithPrintBackground(e.options.PrintBackground).
				WithScale(e.options.Scale).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		logger.Error("Failed to generate PDF",
			zap.String("report_id", report.ID),
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	logger.Info("PDF export completed",
		zap.String("report_id", report.ID),
		zap.Int("pdf_size_bytes", len(pdfData)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return pdfData, nil
}

// Name returns the exporter name
func (e *PDFExporter) Name() string {
	return "PDF"
}

// FileExtension returns the file extension
func (e *PDFExporter) FileExtension() string {
	return ".pdf"
}

// ContentType returns the MIME type
func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}
