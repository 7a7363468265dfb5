// Package main is the entry point for the TrendyReports application.
// TrendyReports renders branded real-estate market reports from backend
// analytics results and serves them over an HTTP API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/check"
	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/internal/database"
	"github.com/trendyreports/trendyreports/internal/export"
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/notification"
	"github.com/trendyreports/trendyreports/internal/render"
	"github.com/trendyreports/trendyreports/internal/server"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/errors"
	"github.com/trendyreports/trendyreports/pkg/idgen"
	"github.com/trendyreports/trendyreports/pkg/logger"
	"github.com/trendyreports/trendyreports/pkg/telemetry"
)

// Build information - set via ldflags during build
// These variables are linked to consts package for global access
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// init synchronizes build info to consts package for global access
func init() {
	consts.Version = Version
	consts.BuildTime = BuildTime
	consts.GitCommit = GitCommit
}

// configPath holds the path to the configuration file
var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trendyreports",
	Short: "TrendyReports - Branded Real-Estate Market Report Service",
	Long: `TrendyReports turns backend market analytics into branded, shareable
HTML and PDF reports: market snapshots, new listings, inventory,
closed sales, and price bands.`,
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TrendyReports server",
	Long: `Start the HTTP server handling render requests, report management,
and lead capture.

On first run, use --check flag to interactively set up your environment:
  trendyreports serve --check

This will guide you through:
  - Creating the configuration file with admin credentials
  - Validating configuration format
  - Checking headless-browser support for PDF export

After initial setup, simply run:
  trendyreports serve`,
	Run: runServe,
}

// renderCmd represents the one-shot render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single report from a result JSON file",
	Long: `Render a report document without starting the server.

The input file carries the backend result payload (either the bare result
document or a wrapper with result_json and brand). Examples:

  trendyreports render --type market_snapshot --input result.json --output report.html
  trendyreports render --type price_bands --input result.json --format pdf --output report.pdf
  trendyreports render --type new_listings --input result.json --template custom.html --output report.html`,
	RunE: runRender,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("TrendyReports %s\n", Version)
		fmt.Printf("  Build Time: %s\n", BuildTime)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
	},
}

func init() {
	// Disable auto-generated completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: config/config.yaml)")

	// Add commands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	// Serve command flags
	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", 0, "server port (overrides config)")
	serveCmd.Flags().Bool("debug", false, "enable debug mode")
	serveCmd.Flags().Bool("check", false, "run interactive environment check before starting server")

	// Render command flags
	renderCmd.Flags().String("type", "", "report type (required)")
	renderCmd.Flags().String("input", "", "result JSON file (required)")
	renderCmd.Flags().String("template", "", "template HTML file (default: built-in template)")
	renderCmd.Flags().String("output", "", "output file (default: stdout)")
	renderCmd.Flags().String("format", "html", "output format: html or pdf")
	renderCmd.MarkFlagRequired("type")
	renderCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runServe starts the TrendyReports server
func runServe(cmd *cobra.Command, args []string) {
	// Check if interactive check is enabled via --check flag
	interactiveCheck, _ := cmd.Flags().GetBool("check")

	if interactiveCheck {
		checker := check.NewChecker()
		if err := checker.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Environment check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n✓ Environment check completed successfully")
	} else {
		checker := check.NewChecker()
		result := checker.RunNonInteractive()

		// Missing config is not fatal: LoadOrDefault falls back to defaults
		// with environment overrides. Surface everything as warnings.
		if len(result.Errors)+len(result.Warnings) > 0 {
			check.PrintCheckResult(result)
		}
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Server.Debug = true
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "text"
	}

	// Auto-generate JWT secret if empty (session only, not persisted)
	if cfg.Admin != nil && cfg.Admin.Enabled && strings.TrimSpace(cfg.Admin.JWTSecret) == "" {
		cfg.Admin.JWTSecret = idgen.NewSecureSecret(32)
		fmt.Fprintf(os.Stderr, "[WARNING] Admin JWT secret was empty, auto-generated for this session only.\n")
		fmt.Fprintf(os.Stderr, "Add jwt_secret to your config file to keep tokens valid across restarts.\n\n")
	}

	// Validate admin configuration
	if validationErr := config.ValidateAdminConfig(cfg.Admin); validationErr != nil {
		fmt.Fprintf(os.Stderr, "\n[ERROR] Admin configuration validation failed\n")
		fmt.Fprintf(os.Stderr, "Error Code: %s\n", validationErr.Code)
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", validationErr)

		switch validationErr.Code {
		case errors.ErrCodeJWTSecretInvalid:
			fmt.Fprintf(os.Stderr, "JWT secret is invalid or too short.\n")
			fmt.Fprintf(os.Stderr, "Please configure JWT secret in your config file:\n")
			fmt.Fprintf(os.Stderr, "  admin:\n")
			fmt.Fprintf(os.Stderr, "    jwt_secret: \"%s\"\n\n", idgen.NewSecureSecret(32))
		case errors.ErrCodeAdminCredentialsEmpty:
			fmt.Fprintf(os.Stderr, "Please configure admin username in your config file:\n")
			fmt.Fprintf(os.Stderr, "  admin:\n")
			fmt.Fprintf(os.Stderr, "    username: \"admin\"\n\n")
		default:
			fmt.Fprintf(os.Stderr, "Please check admin configuration in your config file.\n\n")
		}

		os.Exit(errors.ExitCodeConfigValidation)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting TrendyReports",
		zap.String("version", Version),
	)

	// Initialize telemetry (OpenTelemetry traces and metrics)
	tel, err := telemetry.New(cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tel.Shutdown(ctx); err != nil {
			logger.Error("Failed to shutdown telemetry", zap.Error(err))
		}
	}()

	// Initialize database (migrations and built-in template seeding)
	if err := database.Init(); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	// Create store instance for dependency injection
	dataStore := store.NewStore(database.Get())

	// Initialize the notification manager
	notification.Init(&cfg.Notifications)

	// Create and configure server
	srv := server.New(cfg, dataStore)
	srv.SetupRoutes()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	logger.Info("TrendyReports server is running",
		zap.String("address", cfg.Server.Address()),
	)

	// Log access URLs for user convenience
	port := cfg.Server.Port
	logger.Info(fmt.Sprintf("  Local:   http://localhost:%d", port))
	if lanIP := getLocalIP(); lanIP != "" {
		logger.Info(fmt.Sprintf("  Network: http://%s:%d", lanIP, port))
	}

	// Wait for shutdown
	srv.WaitForShutdown()

	logger.Info("TrendyReports stopped")
}

// runRender renders a single report document without the server
func runRender(cmd *cobra.Command, args []string) error {
	reportType, _ := cmd.Flags().GetString("type")
	inputPath, _ := cmd.Flags().GetString("input")
	templatePath, _ := cmd.Flags().GetString("template")
	outputPath, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")

	if !consts.IsReportType(reportType) {
		return fmt.Errorf("unknown report type %q (valid: %s)", reportType, strings.Join(consts.ReportTypes, ", "))
	}

	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	// CLI renders are quiet unless something goes wrong
	if err := logger.Init(logger.Config{Level: "error", Format: "text"}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var payload render.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse result JSON: %w", err)
	}

	templateHTML := ""
	if templatePath != "" {
		tpl, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		templateHTML = string(tpl)
	}

	html, err := render.New().Build(reportType, templateHTML, &payload)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out := []byte(html)
	if format == export.FormatPDF {
		result := render.UnwrapResult(&payload)
		rpt := &model.Report{
			ReportType: reportType,
			City:       result.City,
			HTML:       html,
		}
		out, err = export.NewDefaultManager().Export(rpt, format)
		if err != nil {
			return fmt.Errorf("PDF export failed: %w", err)
		}
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", outputPath, len(out))

	return nil
}

// loadConfig loads configuration from the config file or defaults
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	return config.LoadOrDefault(configPath)
}

// getLocalIP returns the first non-loopback IPv4 address
func getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return ""
}
