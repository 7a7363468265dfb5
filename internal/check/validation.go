package check

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/trendyreports/trendyreports/internal/config"
)

// ValidationResult represents the result of a config validation
type ValidationResult struct {
	Path     string
	Valid    bool
	Error    error
	Warnings []string
}

// validateConfigs validates the configuration file and admin credentials
func (c *Checker) validateConfigs() error {
	result := c.validateConfigYaml()
	c.report.AddValidationResult(result)
	printValidationResult(result)

	if !result.Valid {
		return fmt.Errorf("config.yaml validation failed: %w", result.Error)
	}

	return nil
}

// validateConfigYaml validates the main configuration file
func (c *Checker) validateConfigYaml() ValidationResult {
	path := c.ConfigPath()
	result := ValidationResult{Path: path}

	if !fileExists(path) {
		result.Valid = false
		result.Error = fmt.Errorf("file does not exist")
		return result
	}

	// Syntax probe first so a broken file reports the YAML error rather
	// than whatever config.Load wraps it in
	if err := validateYamlSyntax(path); err != nil {
		result.Valid = false
		result.Error = err
		return result
	}

	cfg, err := config.Load(path)
	if err != nil {
		result.Valid = false
		result.Error = fmt.Errorf("format error: %v", err)
		return result
	}

	result.Valid = true

	// Credential problems are warnings here; serve refuses to start on them
	if cfg.Admin != nil && cfg.Admin.Enabled {
		if appErr := config.ValidateAdminConfig(cfg.Admin); appErr != nil {
			result.Warnings = append(result.Warnings, appErr.Message)
		}
	} else {
		result.Warnings = append(result.Warnings,
			"Admin console disabled - management endpoints will be unreachable")
	}

	if cfg.Notifications.IsEnabled() && len(cfg.Notifications.Events) == 0 {
		result.Warnings = append(result.Warnings,
			"Notification channel configured but no events selected")
	}

	return result
}

// chromeCandidates are the binary names probed when CHROME_PATH is not set.
// Mirrors the lookup order of the headless export allocator.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

// findChrome locates a Chrome/Chromium binary for PDF export
func findChrome() (string, error) {
	if path := os.Getenv("CHROME_PATH"); path != "" {
		if fileExists(path) {
			return path, nil
		}
		return "", fmt.Errorf("CHROME_PATH is set but %s does not exist", path)
	}

	for _, name := range chromeCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no Chrome/Chromium binary found in PATH")
}

// checkChrome reports whether PDF export will work on this host
func (c *Checker) checkChrome() {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	path, err := findChrome()
	if err != nil {
		yellow.Printf("  ⚠ %v\n", err)
		yellow.Println("    └─ PDF export will fail; HTML export still works")
		yellow.Println("    └─ Install Chrome/Chromium or set CHROME_PATH")
		c.report.AddWarning(fmt.Sprintf("PDF export unavailable: %v", err))
		return
	}

	green.Printf("  ✓ Headless browser: %s\n", path)
}

// validateYamlSyntax validates YAML syntax
func validateYamlSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}

	var content interface{}
	if err := yaml.Unmarshal(data, &content); err != nil {
		return fmt.Errorf("YAML syntax error: %w", err)
	}

	return nil
}

// printValidationResult prints the validation result
func printValidationResult(result ValidationResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	if result.Valid {
		green.Printf("  ✓ %s\n", result.Path)
	} else if result.Error != nil {
		red.Printf("  ✗ %s: %v\n", result.Path, result.Error)
	} else {
		yellow.Printf("  ⚠ %s\n", result.Path)
	}

	for _, warning := range result.Warnings {
		yellow.Printf("    └─ %s\n", warning)
	}
}
