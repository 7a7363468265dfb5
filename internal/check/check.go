// Package check provides interactive environment checking and initialization.
// It helps users set up their local TrendyReports configuration properly.
package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/trendyreports/trendyreports/internal/config"
)

// CheckResult represents the result of a non-interactive environment check
type CheckResult struct {
	// Success indicates whether all required checks passed
	Success bool
	// Errors contains critical errors that prevent server startup
	Errors []string
	// Warnings contains non-critical issues that don't block startup
	Warnings []string
	// Suggestions contains helpful tips for fixing issues
	Suggestions []string
}

// Checker handles environment checking and initialization
type Checker struct {
	// configDir is the base directory for configuration files
	configDir string
	// dataDir holds the SQLite database and exported documents
	dataDir string
	// report collects check results for final output
	report *Report
	// theme for consistent styling
	theme *huh.Theme
}

// NewChecker creates a new environment checker
func NewChecker() *Checker {
	return &Checker{
		configDir: "config",
		dataDir:   "data",
		report:    NewReport(),
		theme:     huh.ThemeCharm(),
	}
}

// Run executes the full environment check
func (c *Checker) Run() error {
	c.printHeader()

	// Step 1: Check and create the configuration file
	fmt.Println()
	printSection("Checking configuration files")
	if err := c.checkFiles(); err != nil {
		return fmt.Errorf("file check failed: %w", err)
	}

	// Step 2: Check the data directory
	fmt.Println()
	printSection("Checking data directory")
	if err := c.checkDataDir(); err != nil {
		return fmt.Errorf("data directory check failed: %w", err)
	}

	// Step 3: Validate configuration format and credentials
	fmt.Println()
	printSection("Validating configuration")
	if err := c.validateConfigs(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Step 4: Check the headless browser used for PDF export
	fmt.Println()
	printSection("Checking PDF export support")
	c.checkChrome()

	// Step 5: Print final report
	fmt.Println()
	c.report.Print()

	return nil
}

// printHeader prints the welcome header
func (c *Checker) printHeader() {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	fmt.Println(titleStyle.Render("🔍 TrendyReports Environment Check"))
}

// printSection prints a section header
func printSection(title string) {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15"))
	fmt.Println(style.Render(title + "..."))
}

// ConfigPath returns the path to the main configuration file
func (c *Checker) ConfigPath() string {
	return filepath.Join(c.configDir, "config.yaml")
}

// DataDir returns the path to the data directory
func (c *Checker) DataDir() string {
	return c.dataDir
}

// confirmCreate asks user to confirm file creation
func confirmCreate(path string) (bool, error) {
	var confirm bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Create %s from template?", path)).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()
	if err != nil {
		return false, err
	}
	return confirm, nil
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ensureDir creates the parent directory of path if it doesn't exist
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// RunNonInteractive performs a non-interactive environment check.
// Unlike Run(), this method does not prompt for user input and does not create
// files. It returns a CheckResult with errors, warnings, and suggestions.
func (c *Checker) RunNonInteractive() *CheckResult {
	result := &CheckResult{
		Success:     true,
		Errors:      make([]string, 0),
		Warnings:    make([]string, 0),
		Suggestions: make([]string, 0),
	}

	// Step 1: Check if the configuration file exists
	c.checkFilesNonInteractive(result)

	// If the config file is missing, return early with suggestions
	if !result.Success {
		result.Suggestions = append(result.Suggestions,
			"Run 'trendyreports serve --check' to interactively create configuration files",
		)
		return result
	}

	// Step 2: Validate configuration file format
	c.validateConfigsNonInteractive(result)

	// Step 3: Check credentials and PDF support (as warnings, not errors)
	c.checkCredentialsNonInteractive(result)
	c.checkChromeNonInteractive(result)

	return result
}

// checkFilesNonInteractive checks if the configuration file exists
func (c *Checker) checkFilesNonInteractive(result *CheckResult) {
	if !fileExists(c.ConfigPath()) {
		result.Success = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Configuration file not found: %s", c.ConfigPath()))
	}
}

// validateConfigsNonInteractive validates configuration file formats
func (c *Checker) validateConfigsNonInteractive(result *CheckResult) {
	cfgResult := c.validateConfigYaml()
	if !cfgResult.Valid {
		result.Success = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Invalid config.yaml: %v", cfgResult.Error))
	}
}

// checkCredentialsNonInteractive checks admin credentials as warnings
func (c *Checker) checkCredentialsNonInteractive(result *CheckResult) {
	cfg, err := config.Load(c.ConfigPath())
	if err != nil {
		// Format already validated, this shouldn't fail
		return
	}

	if cfg.Admin == nil || !cfg.Admin.Enabled {
		result.Warnings = append(result.Warnings,
			"Admin console is disabled; template, brand, and report management endpoints are unreachable")
		return
	}

	if appErr := config.ValidateAdminConfig(cfg.Admin); appErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Admin configuration: %s", appErr.Message))
	}
}

// checkChromeNonInteractive records a warning when no headless browser is found
func (c *Checker) checkChromeNonInteractive(result *CheckResult) {
	if _, err := findChrome(); err != nil {
		result.Warnings = append(result.Warnings,
			"No Chrome/Chromium binary found; PDF export will fail (set CHROME_PATH or install Chrome)")
	}
}

// PrintCheckResult prints the check result in a formatted way
func PrintCheckResult(result *CheckResult) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	if len(result.Errors) > 0 {
		fmt.Println()
		red.Println("[ERROR] Environment check failed")
		fmt.Println()
		for _, err := range result.Errors {
			red.Printf("  ✗ %s\n", err)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Println()
		yellow.Println("[WARNING] Configuration warnings:")
		fmt.Println()
		for _, warn := range result.Warnings {
			yellow.Printf("  ⚠ %s\n", warn)
		}
	}

	if len(result.Suggestions) > 0 {
		cyan.Println("\nTo fix these issues:")
		for _, suggestion := range result.Suggestions {
			fmt.Printf("  → %s\n", suggestion)
		}
	}

	fmt.Println()
}
