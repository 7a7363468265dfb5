package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Level: "error", Format: "text"})
	defer logger.Sync()
	m.Run()
}

func renderedReport() *model.Report {
	return &model.Report{
		ID:         "cr3stw00dfallsreport",
		ReportType: consts.ReportTypeMarketSnapshot,
		Title:      "Crestwood Falls Market Snapshot",
		HTML:       "<html><body>Crestwood Falls</body></html>",
		Status:     model.ReportStatusRendered,
	}
}

func TestHTMLExporter(t *testing.T) {
	e := NewHTMLExporter()

	content, err := e.Export(renderedReport())
	require.NoError(t, err)
	assert.Equal(t, "<html><body>Crestwood Falls</body></html>", string(content))

	assert.Equal(t, "HTML", e.Name())
	assert.Equal(t, ".html", e.FileExtension())
	assert.Equal(t, "text/html; charset=utf-8", e.ContentType())
}

func TestHTMLExporter_NotRendered(t *testing.T) {
	_, err := NewHTMLExporter().Export(&model.Report{ID: "x"})
	assert.Error(t, err)
}

func TestManager_Export(t *testing.T) {
	m := NewManager()
	m.Register(FormatHTML, NewHTMLExporter())

	content, err := m.Export(renderedReport(), FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Crestwood Falls")

	_, err = m.Export(renderedReport(), FormatPDF)
	assert.Error(t, err)
}

func TestManager_ExportToFile(t *testing.T) {
	m := NewManager()
	m.Register(FormatHTML, NewHTMLExporter())

	// Nested directory is created on demand
	path := filepath.Join(t.TempDir(), "out", "report.html")
	require.NoError(t, m.ExportToFile(renderedReport(), path, FormatHTML))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Crestwood Falls")
}

func TestManager_GenerateFilename(t *testing.T) {
	m := NewManager()
	m.Register(FormatHTML, NewHTMLExporter())

	name := m.GenerateFilename(renderedReport(), FormatHTML)
	assert.Equal(t, "Crestwood-Falls-Market-Snapshot.html", name)

	// Untitled reports fall back to the report type
	name = m.GenerateFilename(&model.Report{ReportType: consts.ReportTypePriceBands}, FormatPDF)
	assert.Equal(t, "price_bands-report.pdf", name)
}

func TestManager_SupportedFormats(t *testing.T) {
	m := NewDefaultManager()
	formats := m.SupportedFormats()
	assert.Len(t, formats, 2)
	assert.Contains(t, formats, FormatHTML)
	assert.Contains(t, formats, FormatPDF)

	e, err := m.GetExporter(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "PDF", e.Name())
	assert.Equal(t, "application/pdf", e.ContentType())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("html")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a-b-c", sanitizeFilename("a/b:c"))
	assert.Equal(t, "report", sanitizeFilename(" report "))
	assert.Equal(t, "q2-2025", sanitizeFilename("q2 / 2025"))
}
