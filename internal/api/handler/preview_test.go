package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/internal/render"
)

func TestBrandingPreview_Defaults(t *testing.T) {
	h := NewPreviewHandler(render.New())

	r := SetupTestRouter()
	r.GET("/preview/branding", h.BrandingPreview)

	w := PerformRequest(r, CreateTestRequest("GET", "/preview/branding", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	// Fallback branding when no overrides are supplied
	assert.Contains(t, body, "TrendyReports")
	assert.Contains(t, body, "#7C3AED")
}

func TestBrandingPreview_QueryOverrides(t *testing.T) {
	h := NewPreviewHandler(render.New())

	r := SetupTestRouter()
	r.GET("/preview/branding", h.BrandingPreview)

	url := "/preview/branding?brand_name=Summit+Realty&primary_color=1A2B3C&accent_color=%23F26B2B"
	w := PerformRequest(r, CreateTestRequest("GET", url, nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Summit Realty")
	assert.Contains(t, body, "#1A2B3C")
	assert.Contains(t, body, "#F26B2B")
	assert.NotContains(t, body, "{{")
}

func TestBrandingPreview_ReportType(t *testing.T) {
	h := NewPreviewHandler(render.New())

	r := SetupTestRouter()
	r.GET("/preview/branding", h.BrandingPreview)

	w := PerformRequest(r, CreateTestRequest("GET", "/preview/branding?report_type=price_bands", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Price Bands")
}
