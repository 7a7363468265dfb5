// Package consts defines cross-module constants used throughout the application.
package consts

// ServiceName is the application service name
const ServiceName = "trendyreports"

// ProjectName is the display name of the project
const ProjectName = "TrendyReports"

// Report type identifiers. These match the report_type values produced by the
// market-analysis backend and stored on templates and render records.
const (
	ReportTypeMarketSnapshot = "market_snapshot"
	ReportTypeNewListings    = "new_listings"
	ReportTypeInventory      = "inventory"
	ReportTypeClosedSales    = "closed_sales"
	ReportTypePriceBands     = "price_bands"
)

// ReportTypes lists every supported report type in display order.
var ReportTypes = []string{
	ReportTypeMarketSnapshot,
	ReportTypeNewListings,
	ReportTypeInventory,
	ReportTypeClosedSales,
	ReportTypePriceBands,
}

// IsReportType reports whether t names a supported report type.
func IsReportType(t string) bool {
	for _, rt := range ReportTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Build information - set via ldflags during build or programmatically
var (
	// Version is the application version
	Version = "dev"

	// BuildTime is the build timestamp
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)
