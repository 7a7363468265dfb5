package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trendyreports/trendyreports/consts"
)

func TestBrandingPreviewDocument_DefaultBrand(t *testing.T) {
	out := NewWithClock(fixedClock).BrandingPreviewDocument(consts.ReportTypeMarketSnapshot, nil)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "TrendyReports")
	assert.Contains(t, out, "--primary: #7C3AED")
	assert.Contains(t, out, "--accent: #F26B2B")
	// No logo URL configured, the text logo stands in.
	assert.Contains(t, out, `<div class="logo-text">TrendyReports</div>`)
	assert.NotContains(t, out, `class="rep-photo"`)
}

func TestBrandingPreviewDocument_TenantBrand(t *testing.T) {
	cfg := &BrandConfig{
		DisplayName:  "ACME Title",
		LogoURL:      "https://x/logo.png",
		PrimaryColor: "123456",
		AccentColor:  "#FF8800",
		RepPhotoURL:  "https://x/rep.jpg",
		ContactLine1: "(555) 010-2030",
		WebsiteURL:   "acmetitle.example",
	}
	out := NewWithClock(fixedClock).BrandingPreviewDocument(consts.ReportTypeMarketSnapshot, cfg)
	assert.Contains(t, out, "ACME Title")
	assert.Contains(t, out, `src="https://x/logo.png"`)
	// Bare six-digit hex is normalized with a leading #.
	assert.Contains(t, out, "--primary: #123456")
	assert.Contains(t, out, "--accent: #FF8800")
	assert.Contains(t, out, `src="https://x/rep.jpg"`)
	assert.Contains(t, out, "(555) 010-2030")
	assert.NotContains(t, out, "#7C3AED")
}

func TestBrandingPreviewDocument_SectionPerType(t *testing.T) {
	r := NewWithClock(fixedClock)
	tests := []struct {
		reportType string
		marker     string
	}{
		{consts.ReportTypeMarketSnapshot, `class="metrics-grid"`},
		{consts.ReportTypeNewListings, `class="gallery"`},
		{consts.ReportTypeInventory, "<th>Status</th>"},
		{consts.ReportTypeClosedSales, "<th>Close Date</th>"},
		{consts.ReportTypePriceBands, `class="band-bar-fill"`},
	}
	for _, tt := range tests {
		out := r.BrandingPreviewDocument(tt.reportType, nil)
		assert.Contains(t, out, tt.marker, tt.reportType)
		assert.Contains(t, out, "Crestwood Falls "+reportTitle(tt.reportType), tt.reportType)
	}
}

func TestBrandingPreviewDocument_UnknownTypeFallsBackToSnapshot(t *testing.T) {
	out := NewWithClock(fixedClock).BrandingPreviewDocument("weekly_digest", nil)
	assert.Contains(t, out, `class="metrics-grid"`)
	assert.Contains(t, out, "Market Snapshot")
}

func TestBrandingPreviewDocument_SnapshotMetrics(t *testing.T) {
	out := NewWithClock(fixedClock).BrandingPreviewDocument(consts.ReportTypeMarketSnapshot, nil)
	// Sample fixture: median close 732000, closed 75, avg DOM 24, moi 2.0.
	assert.Contains(t, out, "$732,000")
	assert.Contains(t, out, ">75<")
	assert.Contains(t, out, ">24<")
	assert.Contains(t, out, ">2.0<")
}

func TestBrandingPreviewDocument_GalleryNewestFirst(t *testing.T) {
	out := NewWithClock(fixedClock).BrandingPreviewDocument(consts.ReportTypeNewListings, nil)
	aspen := strings.Index(out, "960 Aspen Gate Way")   // 2025-06-01
	meridian := strings.Index(out, "1501 Meridian Ct") // 2025-04-21
	assert.NotEqual(t, -1, aspen)
	assert.Less(t, aspen, meridian)
	// Photoless listings get a placeholder block.
	assert.Contains(t, out, `class="gallery-photo placeholder"`)
}

func TestBrandingPreviewDocument_InventoryLongestListedFirst(t *testing.T) {
	out := NewWithClock(fixedClock).BrandingPreviewDocument(consts.ReportTypeInventory, nil)
	meridian := strings.Index(out, "1501 Meridian Ct") // 61 DOM
	larkspur := strings.Index(out, "88 Larkspur Ln")   // 34 DOM
	assert.NotEqual(t, -1, meridian)
	assert.Less(t, meridian, larkspur)
	// Closed and pending listings are excluded from inventory.
	assert.NotContains(t, out, "27 Quarry Bend")
	assert.NotContains(t, out, "960 Aspen Gate Way")
}

func TestBrandingPreviewDocument_ClosedSalesPrefersClosePrice(t *testing.T) {
	out := NewWithClock(fixedClock).BrandingPreviewDocument(consts.ReportTypeClosedSales, nil)
	assert.Contains(t, out, "$812,500")
	assert.Contains(t, out, "$495,000")
	assert.NotContains(t, out, "88 Larkspur Ln")
}

func TestBrandingPreviewDocument_Deterministic(t *testing.T) {
	r := NewWithClock(fixedClock)
	for _, rt := range consts.ReportTypes {
		first := r.BrandingPreviewDocument(rt, nil)
		second := r.BrandingPreviewDocument(rt, nil)
		assert.Equal(t, first, second, rt)
	}
}
