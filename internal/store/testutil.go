// Package store provides test utilities for database testing.
package store

import (
	"os"
	"testing"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/database"
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/pkg/idgen"
)

// SetupTestDB creates a temporary SQLite database for testing.
// It returns a Store instance and a cleanup function.
// The cleanup function should be called with defer in tests.
func SetupTestDB(t *testing.T) (Store, func()) {
	// Reset database state to allow re-initialization
	database.ResetForTesting()

	tmpFile, err := os.CreateTemp("", "test_*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()

	if err := database.InitWithPath(tmpPath); err != nil {
		os.Remove(tmpPath)
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	db := database.Get()
	store := NewStore(db)

	cleanup := func() {
		database.Close()
		database.ResetForTesting()
		os.Remove(tmpPath)
	}

	return store, cleanup
}

// CreateTestReport creates a test Report with default values.
// Fields can be overridden by passing a function that modifies the report.
func CreateTestReport(t *testing.T, store Store, overrides ...func(*model.Report)) *model.Report {
	report := &model.Report{
		ID:         idgen.NewReportID(),
		ReportType: consts.ReportTypeMarketSnapshot,
		City:       "Crestwood Falls",
		Title:      "Crestwood Falls Market Snapshot",
		Status:     model.ReportStatusPending,
		ResultJSON: model.JSONMap{
			"city":          "Crestwood Falls",
			"lookback_days": float64(30),
		},
	}

	for _, override := range overrides {
		override(report)
	}

	if err := store.Report().Create(report); err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}

	return report
}

// CreateTestBrand creates a test Brand with default values.
func CreateTestBrand(t *testing.T, store Store, overrides ...func(*model.Brand)) *model.Brand {
	brand := &model.Brand{
		ID:           idgen.NewBrandID(),
		DisplayName:  "ACME Title",
		PrimaryColor: "#123456",
		AccentColor:  "#FF8800",
	}

	for _, override := range overrides {
		override(brand)
	}

	if err := store.Brand().Create(brand); err != nil {
		t.Fatalf("Failed to create test brand: %v", err)
	}

	return brand
}

// CreateTestLead creates a test Lead with default values.
func CreateTestLead(t *testing.T, store Store, overrides ...func(*model.Lead)) *model.Lead {
	lead := &model.Lead{
		ID:     idgen.NewLeadID(),
		Name:   "Jordan Avery",
		Email:  "jordan.avery@example.com",
		Source: "crestwood-falls-landing",
	}

	for _, override := range overrides {
		override(lead)
	}

	if err := store.Lead().Create(lead); err != nil {
		t.Fatalf("Failed to create test lead: %v", err)
	}

	return lead
}
