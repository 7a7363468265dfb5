// Package config provides configuration management for the application.
// It supports YAML configuration files with environment variable overrides.
package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/pkg/logger"
	"github.com/trendyreports/trendyreports/pkg/telemetry"
)

// Default configuration values
const (
	defaultExportDir          = "./data/exports"
	defaultExportTimeout      = 60
	defaultRenderTimeout      = 30
	defaultLeadRatePerMinute  = 10
	defaultOTLPEndpoint       = "localhost:4317"
	defaultPrometheusPort     = 9090
	defaultTokenExpiryHours   = 24
	defaultRememberDays       = 7
)

// DefaultConfigPath is the default path for the configuration file
const DefaultConfigPath = "config/config.yaml"

// Config represents the complete application configuration
type Config struct {
	Server        ServerConfig       `yaml:"server"`
	Database      DatabaseConfig     `yaml:"database"`
	Auth          AuthConfig         `yaml:"auth"`
	Admin         *AdminConfig       `yaml:"admin"`
	Render        RenderConfig       `yaml:"render"`
	Export        ExportConfig       `yaml:"export"`
	Leads         LeadsConfig        `yaml:"leads"`
	Notifications NotificationConfig `yaml:"notifications"`
	Logging       logger.Config      `yaml:"logging"`
	Telemetry     telemetry.Config   `yaml:"telemetry"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	Debug       bool     `yaml:"debug"`
	CORSOrigins []string `yaml:"cors_origins"` // Allowed CORS origins whitelist
}

// DatabaseConfig holds database configuration
// Note: Database path is hardcoded in the database package to prevent data
// loss from configuration errors.
type DatabaseConfig struct {
	// Reserved for future database configuration options
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret"`    // JWT signing secret key
	TokenExpiry  int    `yaml:"token_expiry"`  // Normal token expiry in hours (default: 24)
	RememberDays int    `yaml:"remember_days"` // Remember me token expiry in days (default: 7)
}

// AdminConfig holds admin console configuration
type AdminConfig struct {
	Enabled         bool   `yaml:"enabled"`       // Enable admin console
	Username        string `yaml:"username"`      // Admin username
	PasswordHash    string `yaml:"password_hash"` // Admin password (bcrypt hash)
	JWTSecret       string `yaml:"jwt_secret"`    // JWT signing secret
	TokenExpiration int    `yaml:"expiry_hours"`  // Token expiration in hours
}

// RenderConfig holds report rendering configuration
type RenderConfig struct {
	// TimeoutSeconds bounds a single render request (default: 30)
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ExportConfig holds PDF/HTML export configuration
type ExportConfig struct {
	// OutputDir is where exported files are written (default: ./data/exports)
	OutputDir string `yaml:"output_dir"`
	// TimeoutSeconds bounds a single headless-browser export (default: 60)
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LeadsConfig holds lead capture configuration
type LeadsConfig struct {
	// RatePerMinute limits lead submissions per client IP (default: 10)
	RatePerMinute int `yaml:"rate_per_minute"`
	// NotifyEmail receives new-lead notifications when set
	NotifyEmail string `yaml:"notify_email"`
}

// NotificationChannel represents the type of notification channel
type NotificationChannel string

const (
	NotificationChannelNone     NotificationChannel = ""         // Disabled
	NotificationChannelSMTP     NotificationChannel = "smtp"     // Email via SMTP
	NotificationChannelSendGrid NotificationChannel = "sendgrid" // Email via SendGrid API
)

// NotificationEvent represents the type of event to notify
type NotificationEvent string

const (
	NotificationEventReportRendered NotificationEvent = "report_rendered" // Report rendered successfully
	NotificationEventReportFailed   NotificationEvent = "report_failed"   // Report rendering failed
	NotificationEventLeadCreated    NotificationEvent = "lead_created"    // New lead captured
)

// NotificationConfig holds notification configuration
type NotificationConfig struct {
	// Channel specifies the notification channel type (single choice)
	// Empty string means notifications are disabled
	// Valid values: smtp, sendgrid
	Channel NotificationChannel `yaml:"channel"`

	// Events specifies which events trigger notifications (multiple choice)
	Events []NotificationEvent `yaml:"events"`

	// SMTP configuration (used when channel is "smtp")
	SMTP SMTPNotificationConfig `yaml:"smtp"`

	// SendGrid configuration (used when channel is "sendgrid")
	SendGrid SendGridNotificationConfig `yaml:"sendgrid"`
}

// SMTPNotificationConfig holds SMTP email settings
type SMTPNotificationConfig struct {
	// Host is the SMTP server hostname
	Host string `yaml:"host"`
	// Port is the SMTP server port (typically 25, 465, or 587)
	Port int `yaml:"port"`
	// Username is the SMTP authentication username
	Username string `yaml:"username"`
	// Password is the SMTP authentication password
	Password string `yaml:"password"`
	// From is the sender email address
	From string `yaml:"from"`
	// To is the list of recipient email addresses
	To []string `yaml:"to"`
}

// SendGridNotificationConfig holds SendGrid API settings
type SendGridNotificationConfig struct {
	// APIKey is the SendGrid API key
	APIKey string `yaml:"api_key"`
	// From is the sender email address
	From string `yaml:"from"`
	// FromName is the sender display name
	FromName string `yaml:"from_name"`
	// To is the list of recipient email addresses
	To []string `yaml:"to"`
}

// IsEnabled returns true if notifications are enabled
func (c *NotificationConfig) IsEnabled() bool {
	return c.Channel != "" && c.Channel != NotificationChannelNone
}

// HasEvent returns true if the specified event is in the events list
func (c *NotificationConfig) HasEvent(event NotificationEvent) bool {
	for _, e := range c.Events {
		if e == event {
			return true
		}
	}
	return false
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:  "0.0.0.0",
			Port:  8080,
			Debug: false,
			CORSOrigins: []string{
				"http://localhost:5173",
				"http://localhost:8080",
			},
		},
		Database: DatabaseConfig{},
		Auth: AuthConfig{
			JWTSecret:    "", // Should be set via config file or environment variable
			TokenExpiry:  defaultTokenExpiryHours,
			RememberDays: defaultRememberDays,
		},
		Admin: &AdminConfig{
			Enabled:         false,
			Username:        "admin",
			TokenExpiration: defaultTokenExpiryHours,
		},
		Render: RenderConfig{
			TimeoutSeconds: defaultRenderTimeout,
		},
		Export: ExportConfig{
			OutputDir:      defaultExportDir,
			TimeoutSeconds: defaultExportTimeout,
		},
		Leads: LeadsConfig{
			RatePerMinute: defaultLeadRatePerMinute,
		},
		Notifications: NotificationConfig{
			Channel: NotificationChannelNone,
			Events:  []NotificationEvent{},
		},
		Logging: logger.Config{
			Level:      "info",
			Format:     "text", // Human-readable text format instead of JSON
			File:       "",
			MaxSize:    100, // Max 100MB per log file
			MaxAge:     7,   // Retain logs for 7 days
			MaxBackups: 5,   // Keep 5 backup files
			Compress:   false,
		},
		Telemetry: telemetry.Config{
			Enabled:     false,
			ServiceName: consts.ServiceName,
			OTLP: telemetry.OTLPConfig{
				Enabled:  false,
				Endpoint: defaultOTLPEndpoint,
				Insecure: true,
			},
			Prometheus: telemetry.PrometheusConfig{
				Enabled: false,
				Port:    defaultPrometheusPort,
			},
		},
	}
}

// Load loads configuration from a YAML file with environment variable expansion
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables in the configuration
	expanded := expandEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadOrDefault loads configuration from path, falling back to defaults with
// environment overrides applied when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return Load(path)
}

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
// Only matches ${VAR_NAME} format (not $VAR_NAME) to avoid conflicts with
// special characters like bcrypt hashes.
func expandEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]

		// Support default values: ${VAR_NAME:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]

		if value := os.Getenv(varName); value != "" {
			return value
		}

		if len(parts) > 1 {
			return parts[1]
		}

		return ""
	})
}

// applyEnvOverrides applies TR_* environment variable overrides:
//   - TR_SERVER_HOST, TR_SERVER_PORT, TR_SERVER_DEBUG
//   - TR_AUTH_JWT_SECRET
//   - TR_ADMIN_USERNAME, TR_ADMIN_PASSWORD_HASH, TR_ADMIN_JWT_SECRET
//   - TR_LOG_LEVEL, TR_LOG_FORMAT, TR_LOG_FILE
//   - TR_TELEMETRY_ENABLED, TR_OTLP_ENDPOINT, TR_PROMETHEUS_PORT
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TR_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("TR_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("TR_SERVER_DEBUG"); v != "" {
		cfg.Server.Debug = parseBool(v)
	}

	if v := os.Getenv("TR_AUTH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if cfg.Admin != nil {
		if v := os.Getenv("TR_ADMIN_USERNAME"); v != "" {
			cfg.Admin.Username = v
		}
		if v := os.Getenv("TR_ADMIN_PASSWORD_HASH"); v != "" {
			cfg.Admin.PasswordHash = v
		}
		if v := os.Getenv("TR_ADMIN_JWT_SECRET"); v != "" {
			cfg.Admin.JWTSecret = v
		}
	}

	if v := os.Getenv("TR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TR_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}

	if v := os.Getenv("TR_TELEMETRY_ENABLED"); v != "" {
		cfg.Telemetry.Enabled = parseBool(v)
	}
	if v := os.Getenv("TR_OTLP_ENDPOINT"); v != "" {
		cfg.Telemetry.OTLP.Endpoint = v
	}
	if v := os.Getenv("TR_PROMETHEUS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Telemetry.Prometheus.Port = port
		}
	}
}

// parseBool parses a boolean string value
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
