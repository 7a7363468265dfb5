// Package export provides report export functionality with pluggable exporters.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// Format represents the export format type
type Format string

const (
	// FormatHTML represents standalone HTML format
	FormatHTML Format = "html"
	// FormatPDF represents PDF format
	FormatPDF Format = "pdf"
)

// Exporter defines the interface for report exporters
type Exporter interface {
	// Export exports a rendered report to binary content
	Export(report *model.Report) ([]byte, error)
	// Name returns the human-readable name of the exporter (e.g., "HTML", "PDF")
	Name() string
	// FileExtension returns the file extension for this format (e.g., ".html", ".pdf")
	FileExtension() string
	// ContentType returns the MIME type of the exported content
	ContentType() string
}

// Manager manages all registered exporters
type Manager struct {
	exporters map[Format]Exporter
	mu        sync.RWMutex
}

// NewManager creates a new export manager
func NewManager() *Manager {
	return &Manager{
		exporters: make(map[Format]Exporter),
	}
}

// NewDefaultManager creates a manager with the HTML and PDF exporters registered
func NewDefaultManager() *Manager {
	m := NewManager()
	m.Register(FormatHTML, NewHTMLExporter())
	m.Register(FormatPDF, NewPDFExporter())
	return m
}

// Register registers an exporter for a specific format
func (m *Manager) Register(format Format, exporter Exporter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exporters[format] = exporter
	logger.Debug("Registered report exporter",
		zap.String("format", string(format)),
		zap.String("name", exporter.Name()),
	)
}

// Export exports a report using the specified format
func (m *Manager) Export(report *model.Report, format Format) ([]byte, error) {
	m.mu.RLock()
	exporter, ok := m.exporters[format]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	logger.Debug("Exporting report",
		zap.String("report_id", report.ID),
		zap.String("format", string(format)),
		zap.String("exporter", exporter.Name()),
	)

	content, err := exporter.Export(report)
	if err != nil {
		return nil, fmt.Errorf("failed to export report with %s exporter: %w", exporter.Name(), err)
	}

	return content, nil
}

// ExportToFile exports a report to a file
func (m *Manager) ExportToFile(report *model.Report, outputPath string, format Format) error {
	content, err := m.Export(report, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Info("Report exported to file",
		zap.String("report_id", report.ID),
		zap.String("format", string(format)),
		zap.String("path", outputPath),
	)

	return nil
}

// GenerateFilename generates a filename for the exported report
func (m *Manager) GenerateFilename(report *model.Report, format Format) string {
	m.mu.RLock()
	exporter, ok := m.exporters[format]
	m.mu.RUnlock()

	baseName := report.Title
	if baseName == "" {
		baseName = fmt.Sprintf("%s-report", report.ReportType)
	}

	baseName = sanitizeFilename(baseName)

	if ok {
		return baseName + exporter.FileExtension()
	}

	switch format {
	case FormatHTML:
		return baseName + ".html"
	case FormatPDF:
		return baseName + ".pdf"
	default:
		return baseName + ".txt"
	}
}

// SupportedFormats returns a list of all supported export formats
func (m *Manager) SupportedFormats() []Format {
	m.mu.RLock()
	defer m.mu.RUnlock()

	formats := make([]Format, 0, len(m.exporters))
	for format := range m.exporters {
		formats = append(formats, format)
	}
	return formats
}

// GetExporter returns the exporter for a specific format
func (m *Manager) GetExporter(format Format) (Exporter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	exporter, ok := m.exporters[format]
	if !ok {
		return nil, fmt.Errorf("no exporter registered for format: %s", format)
	}
	return exporter, nil
}

// ParseFormat validates a format string from an API request
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown export format: %s", s)
	}
}

// sanitizeFilename removes unsafe characters from filename
func sanitizeFilename(name string) string {
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " "}
	result := name
	for _, c := range unsafe {
		result = strings.ReplaceAll(result, c, "-")
	}
	// Collapse repeated separators
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	return strings.Trim(result, "-")
}
