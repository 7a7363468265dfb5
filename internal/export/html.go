package export

import (
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/pkg/errors"
)

// HTMLExporter exports a report as its rendered standalone HTML document.
// The render pipeline already produces a complete document, so this exporter
// only validates that the report has been rendered.
type HTMLExporter struct{}

// NewHTMLExporter creates a new HTML exporter
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Export returns the report's rendered HTML
func (e *HTMLExporter) Export(report *model.Report) ([]byte, error) {
	if report.HTML == "" {
		return nil, errors.New(errors.ErrCodeExportFailed, "report has no rendered HTML")
	}
	return []byte(report.HTML), nil
}

// Name returns the exporter name
func (e *HTMLExporter) Name() string {
	return "HTML"
}

// FileExtension returns the file extension
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// ContentType returns the MIME type
func (e *HTMLExporter) ContentType() string {
	return "text/html; charset=utf-8"
}
