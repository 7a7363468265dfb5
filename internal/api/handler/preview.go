package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/render"
)

// PreviewHandler serves the standalone branding preview page
type PreviewHandler struct {
	renderer *render.Renderer
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(r *render.Renderer) *PreviewHandler {
	return &PreviewHandler{renderer: r}
}

// BrandingPreview handles GET /preview/branding
// Branding comes from the query string so the page can be captured headless
// without any stored state. Unknown report types fall back to the snapshot.
func (h *PreviewHandler) BrandingPreview(c *gin.Context) {
	reportType := c.DefaultQuery("report_type", consts.ReportTypeMarketSnapshot)

	cfg := &render.BrandConfig{
		DisplayName:  c.Query("brand_name"),
		LogoURL:      c.Query("logo_url"),
		PrimaryColor: c.Query("primary_color"),
		AccentColor:  c.Query("accent_color"),
		RepPhotoURL:  c.Query("rep_photo_url"),
		ContactLine1: c.Query("contact_line1"),
		ContactLine2: c.Query("contact_line2"),
		WebsiteURL:   c.Query("website_url"),
	}

	doc := h.renderer.BrandingPreviewDocument(reportType, cfg)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
