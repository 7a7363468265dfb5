package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/export"
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/notification"
	"github.com/trendyreports/trendyreports/internal/render"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/errors"
	"github.com/trendyreports/trendyreports/pkg/idgen"
	"github.com/trendyreports/trendyreports/pkg/logger"
	"github.com/trendyreports/trendyreports/pkg/telemetry"
)

// ReportHandler handles render and report-record HTTP requests
type ReportHandler struct {
	renderer *render.Renderer
	exporter *export.Manager
	store    store.Store
}

// NewReportHandler creates a new report handler
func NewReportHandler(r *render.Renderer, e *export.Manager, s store.Store) *ReportHandler {
	return &ReportHandler{renderer: r, exporter: e, store: s}
}

// CreateRenderRequest represents the request body for rendering a report.
// Payload carries the backend result document (wrapper or bare shape); the
// template and brand may be referenced by ID or supplied inline.
type CreateRenderRequest struct {
	ReportType   string          `json:"report_type" binding:"required"`
	City         string          `json:"city"`
	Title        string          `json:"title"`
	TemplateID   string          `json:"template_id"`
	TemplateHTML string          `json:"template_html"`
	BrandID      string          `json:"brand_id"`
	Payload      json.RawMessage `json:"payload" binding:"required"`
}

// CreateRender handles POST /api/v1/renders
func (h *ReportHandler) CreateRender(c *gin.Context) {
	var req CreateRenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	if !consts.IsReportType(req.ReportType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeRenderReportType,
			"message": "Invalid report type: " + req.ReportType,
		})
		return
	}

	payload, err := payloadFromRaw(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeRenderInput,
			"message": "Invalid payload: " + err.Error(),
		})
		return
	}

	resultMap, err := jsonMapFromRaw(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeRenderInput,
			"message": "Invalid payload: " + err.Error(),
		})
		return
	}

	templateHTML, templateID, err := h.resolveTemplate(&req)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			c.JSON(appErr.HTTPStatus(), gin.H{"code": appErr.Code, "message": appErr.Message})
		} else {
			logger.Error("Failed to resolve template", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    errors.ErrCodeDBQuery,
				"message": "Failed to resolve template",
			})
		}
		return
	}

	// An inline brand in the payload wins over a stored brand reference
	if payload.Brand == nil && req.BrandID != "" {
		brand, err := h.store.Brand().GetByID(req.BrandID)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    errors.ErrCodeNotFound,
				"message": "Brand not found",
			})
			return
		} else if err != nil {
			logger.Error("Database error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    errors.ErrCodeDBQuery,
				"message": "Database error",
			})
			return
		}
		payload.Brand = brandConfigFromModel(brand)
	}

	result := render.UnwrapResult(payload)
	city := req.City
	if city == "" {
		city = result.City
	}

	rpt := &model.Report{
		ID:         idgen.NewReportID(),
		ReportType: req.ReportType,
		City:       city,
		Title:      req.Title,
		TemplateID: templateID,
		BrandID:    req.BrandID,
		ResultJSON: resultMap,
		Status:     model.ReportStatusPending,
	}

	if err := h.store.Report().Create(rpt); err != nil {
		logger.Error("Failed to create report record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to create report record",
		})
		return
	}

	start := time.Now()
	html, err := h.renderer.Build(req.ReportType, templateHTML, payload)
	duration := time.Since(start)

	if err != nil {
		if dbErr := h.store.Report().UpdateStatusWithError(rpt.ID, model.ReportStatusFailed, err.Error()); dbErr != nil {
			logger.Error("Failed to record render failure", zap.String("report_id", rpt.ID), zap.Error(dbErr))
		}
		go notification.NotifyReportFailed(context.Background(), rpt.ID, rpt.ReportType, rpt.City, err.Error(), nil)

		logger.Error("Render failed",
			zap.String("report_id", rpt.ID),
			zap.String("report_type", rpt.ReportType),
			zap.Error(err),
		)

		status := http.StatusInternalServerError
		code := errors.ErrCodeInternal
		if appErr, ok := errors.AsAppError(err); ok {
			status = appErr.HTTPStatus()
			code = appErr.Code
		}
		c.JSON(status, gin.H{
			"code":    code,
			"message": err.Error(),
		})
		return
	}

	renderedAt := time.Now()
	if err := h.store.Report().UpdateRendered(rpt.ID, html, renderedAt, duration.Milliseconds()); err != nil {
		logger.Error("Failed to persist rendered report", zap.String("report_id", rpt.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to persist rendered report",
		})
		return
	}

	telemetry.GetMetrics().RecordRender(c.Request.Context(), rpt.ReportType, len(html), duration.Seconds())
	go notification.NotifyReportRendered(context.Background(), rpt.ID, rpt.ReportType, rpt.City, map[string]interface{}{
		"duration_ms": duration.Milliseconds(),
		"html_bytes":  len(html),
	})

	logger.Info("Report rendered",
		zap.String("report_id", rpt.ID),
		zap.String("report_type", rpt.ReportType),
		zap.String("city", rpt.City),
		zap.Int("html_bytes", len(html)),
		zap.Duration("duration", duration),
	)

	// Optional format=pdf returns the document instead of the JSON envelope
	if format := c.Query("format"); format != "" {
		h.writeExport(c, rpt.ID, format)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          rpt.ID,
		"report_type": rpt.ReportType,
		"city":        rpt.City,
		"status":      model.ReportStatusRendered,
		"html":        html,
		"html_bytes":  len(html),
		"duration":    duration.Milliseconds(),
		"rendered_at": renderedAt,
	})
}

// resolveTemplate picks the template body for a render request: inline HTML,
// then a referenced template row, then the stored default for the type, then
// the built-in template.
func (h *ReportHandler) resolveTemplate(req *CreateRenderRequest) (html, templateID string, err error) {
	if req.TemplateHTML != "" {
		return req.TemplateHTML, "", nil
	}

	if req.TemplateID != "" {
		tpl, err := h.store.Template().GetByID(req.TemplateID)
		if err == gorm.ErrRecordNotFound {
			return "", "", errors.New(errors.ErrCodeTemplateNotFound, "Template not found: "+req.TemplateID)
		} else if err != nil {
			return "", "", err
		}
		return tpl.HTML, tpl.ID, nil
	}

	tpl, err := h.store.Template().GetDefaultByType(req.ReportType)
	if err == nil {
		return tpl.HTML, tpl.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", "", err
	}

	return render.DefaultTemplateHTML(req.ReportType), "", nil
}

// GetReport handles GET /api/v1/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")

	rpt, err := h.store.Report().GetByID(id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeNotFound,
			"message": "Report not found",
		})
		return
	} else if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, rpt)
}

// ListReports handles GET /api/v1/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	page, pageSize := parsePagination(c)
	status := c.Query("status")
	reportType := c.Query("report_type")

	reports, total, err := h.store.Report().List(status, reportType, page, pageSize)
	if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reports,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// DeleteReport handles DELETE /api/v1/reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.store.Report().GetByID(id); err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeNotFound,
			"message": "Report not found",
		})
		return
	} else if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	if err := h.store.Report().Delete(id); err != nil {
		logger.Error("Failed to delete report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Report deleted",
	})
}

// ExportReport handles GET /api/v1/reports/:id/export?format=html|pdf
func (h *ReportHandler) ExportReport(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", "html")
	h.writeExport(c, id, format)
}

// writeExport streams an exported document for an already rendered report
func (h *ReportHandler) writeExport(c *gin.Context, id, formatStr string) {
	format, err := export.ParseFormat(formatStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeExportFormat,
			"message": "Unsupported export format: " + formatStr,
		})
		return
	}

	rpt, err := h.store.Report().GetByID(id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeNotFound,
			"message": "Report not found",
		})
		return
	} else if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	if rpt.HTML == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Report has not been rendered yet",
		})
		return
	}

	start := time.Now()
	data, err := h.exporter.Export(rpt, format)
	telemetry.GetMetrics().RecordExport(c.Request.Context(), string(format), err == nil, time.Since(start).Seconds())
	if err != nil {
		logger.Error("Export failed",
			zap.String("report_id", id),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeExportFailed,
			"message": "Failed to export report: " + err.Error(),
		})
		return
	}

	exp, err := h.exporter.GetExporter(format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeExportFailed,
			"message": "Failed to export report",
		})
		return
	}

	filename := h.exporter.GenerateFilename(rpt, format)

	logger.Info("Report exported",
		zap.String("report_id", id),
		zap.String("format", string(format)),
		zap.String("filename", filename),
		zap.Int("size_bytes", len(data)),
	)

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, exp.ContentType(), data)
}

// reportTypeNames maps report type identifiers to display names for the UI
var reportTypeNames = map[string]string{
	consts.ReportTypeMarketSnapshot: "Market Snapshot",
	consts.ReportTypeNewListings:    "New Listings",
	consts.ReportTypeInventory:      "Inventory",
	consts.ReportTypeClosedSales:    "Closed Sales",
	consts.ReportTypePriceBands:     "Price Bands",
}

// GetReportTypes handles GET /api/v1/report-types
func (h *ReportHandler) GetReportTypes(c *gin.Context) {
	result := make([]gin.H, len(consts.ReportTypes))
	for i, t := range consts.ReportTypes {
		result[i] = gin.H{
			"id":   t,
			"name": reportTypeNames[t],
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result,
	})
}

// GetCities handles GET /api/v1/reports/cities
// Returns the distinct markets reports have been rendered for
func (h *ReportHandler) GetCities(c *gin.Context) {
	cities, err := h.store.Report().GetDistinctCities()
	if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cities,
	})
}
