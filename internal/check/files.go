package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/pkg/idgen"
)

// FileCheckResult represents the result of a file check
type FileCheckResult struct {
	Path        string
	Exists      bool
	Created     bool
	Description string
	Error       error
}

// adminSetup holds the values collected by the interactive admin form
type adminSetup struct {
	Username string
	Password string
}

// checkFiles checks the main configuration file and offers to create it
func (c *Checker) checkFiles() error {
	result := c.checkConfigFile()
	c.report.AddFileResult(result)
	return result.Error
}

// checkConfigFile checks config.yaml and walks the user through creating it
func (c *Checker) checkConfigFile() FileCheckResult {
	path := c.ConfigPath()
	result := FileCheckResult{
		Path:        path,
		Description: "Main configuration file (server, admin, notifications)",
	}

	if fileExists(path) {
		result.Exists = true
		printFileStatus(path, true, false)
		return result
	}

	result.Exists = false
	printFileStatus(path, false, false)

	confirm, err := confirmCreate(path)
	if err != nil {
		result.Error = fmt.Errorf("failed to get user confirmation: %w", err)
		return result
	}
	if !confirm {
		return result
	}

	// Collect admin credentials so the generated config is immediately usable
	setup, err := c.promptAdminSetup()
	if err != nil {
		result.Error = fmt.Errorf("admin setup failed: %w", err)
		return result
	}

	content, err := renderConfigTemplate(setup)
	if err != nil {
		result.Error = err
		return result
	}

	if err := ensureDir(path); err != nil {
		result.Error = err
		return result
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		result.Error = fmt.Errorf("failed to create file %s: %w", path, err)
		return result
	}

	result.Created = true
	printFileCreated(path)

	return result
}

// promptAdminSetup collects admin console credentials interactively
func (c *Checker) promptAdminSetup() (*adminSetup, error) {
	setup := &adminSetup{Username: "admin"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Admin username").
				Value(&setup.Username).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("username must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Admin password").
				EchoMode(huh.EchoModePassword).
				Value(&setup.Password).
				Validate(func(s string) error {
					return config.ValidatePassword(s, config.DefaultPasswordRequirements())
				}),
		),
	).WithTheme(c.theme)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return setup, nil
}

// renderConfigTemplate produces the config.yaml content with a hashed admin
// password and a freshly generated JWT signing secret.
func renderConfigTemplate(setup *adminSetup) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(setup.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	jwtSecret := idgen.NewSecureSecret(48)

	content := fmt.Sprintf(configTemplate, setup.Username, string(hash), jwtSecret)
	return []byte(content), nil
}

// configTemplate is the starter config.yaml. Placeholders: admin username,
// bcrypt password hash, JWT secret.
const configTemplate = `# TrendyReports configuration
# Values may reference environment variables with ${VAR_NAME} or
# ${VAR_NAME:-default}. See the README for the full reference.

server:
  host: 0.0.0.0
  port: 8080
  debug: false
  cors_origins:
    - http://localhost:5173
    - http://localhost:8080

admin:
  enabled: true
  username: %s
  password_hash: "%s"
  jwt_secret: "%s"
  expiry_hours: 24

render:
  timeout_seconds: 30

export:
  output_dir: ./data/exports
  timeout_seconds: 60

leads:
  rate_per_minute: 10
  notify_email: ""

# Notification channel: "" (disabled), smtp, or sendgrid
notifications:
  channel: ""
  events:
    - report_failed
    - lead_created
  smtp:
    host: ""
    port: 587
    username: ""
    password: ""
    from: ""
    to: []
  sendgrid:
    api_key: "${SENDGRID_API_KEY}"
    from: ""
    from_name: TrendyReports
    to: []

logging:
  level: info
  format: text
  file: ""

telemetry:
  enabled: false
  otlp:
    enabled: false
    endpoint: localhost:4317
    insecure: true
  prometheus:
    enabled: false
    port: 9090
`

// printFileStatus prints the status of a file check
func printFileStatus(path string, exists bool, created bool) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if exists {
		green.Printf("  ✓ %s\n", path)
	} else if created {
		green.Printf("  ✓ %s (created)\n", path)
	} else {
		yellow.Printf("  ⚠ %s does not exist\n", path)
	}
}

// printFileCreated prints a message when a file is created
func printFileCreated(path string) {
	green := color.New(color.FgGreen)
	green.Printf("  ✓ Created %s\n", path)
}

// checkDataDir ensures the data directory (SQLite database, exports) exists
// and is writable.
func (c *Checker) checkDataDir() error {
	dataDir := c.DataDir()

	if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
		// Verify writability with a throwaway file
		probe := filepath.Join(dataDir, ".write-check")
		if err := os.WriteFile(probe, nil, 0644); err != nil {
			return fmt.Errorf("data directory %s is not writable: %w", dataDir, err)
		}
		os.Remove(probe)
		printFileStatus(dataDir, true, false)
		return nil
	}

	printFileStatus(dataDir, false, false)

	confirm, err := confirmCreate(dataDir + " (database and exports)")
	if err != nil {
		return fmt.Errorf("failed to get user confirmation: %w", err)
	}
	if !confirm {
		return nil
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "exports"), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("  ✓ Created %s\n", dataDir)

	return nil
}
