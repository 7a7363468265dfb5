package check

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Report folds every wizard step into outcome buckets so the closing
// summary can be printed in one place after the run.
type Report struct {
	passed   int
	created  []string
	missing  []string
	warnings []string
	failures []string
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// AddFileResult records the outcome of a file or directory check
func (r *Report) AddFileResult(result FileCheckResult) {
	switch {
	case result.Error != nil:
		r.failures = append(r.failures, fmt.Sprintf("%s: %v", result.Path, result.Error))
	case result.Created:
		r.created = append(r.created, result.Path)
		r.passed++
	case result.Exists:
		r.passed++
	default:
		r.missing = append(r.missing, result.Path)
	}
}

// AddValidationResult records the outcome of a config validation
func (r *Report) AddValidationResult(result ValidationResult) {
	if result.Valid {
		r.passed++
	} else if result.Error != nil {
		r.failures = append(r.failures, fmt.Sprintf("%s: %v", result.Path, result.Error))
	}
	for _, warning := range result.Warnings {
		r.warnings = append(r.warnings, fmt.Sprintf("%s: %s", result.Path, warning))
	}
}

// AddWarning records a standalone warning not tied to a file or config
func (r *Report) AddWarning(message string) {
	r.warnings = append(r.warnings, message)
}

// Clean reports whether the run finished without failures or missing files
func (r *Report) Clean() bool {
	return len(r.failures) == 0 && len(r.missing) == 0
}

// Print renders the closing summary line plus one line per notable outcome
func (r *Report) Print() {
	separator := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	fmt.Println(separator.Render(strings.Repeat("─", 50)))

	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	switch {
	case len(r.failures) > 0:
		red.Println("✗ Environment check failed")
	case len(r.warnings) > 0 || len(r.missing) > 0:
		yellow.Println("⚠ Environment check completed with warnings")
	default:
		green.Printf("✓ Environment check passed (%d checks)\n", r.passed)
	}

	for _, path := range r.created {
		color.New(color.FgGreen).Printf("  created  %s\n", path)
	}
	for _, path := range r.missing {
		color.New(color.FgYellow).Printf("  missing  %s\n", path)
	}
	for _, message := range r.warnings {
		color.New(color.FgYellow).Printf("  warning  %s\n", message)
	}
	for _, message := range r.failures {
		color.New(color.FgRed).Printf("  error    %s\n", message)
	}
}
