package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/errors"
	"github.com/trendyreports/trendyreports/pkg/idgen"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// TemplateHandler handles template management HTTP requests
type TemplateHandler struct {
	store store.Store
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(s store.Store) *TemplateHandler {
	return &TemplateHandler{store: s}
}

// TemplateRequest represents the create/update request body
type TemplateRequest struct {
	ReportType string `json:"report_type" binding:"required"`
	Name       string `json:"name" binding:"required"`
	HTML       string `json:"html" binding:"required"`
}

// CreateTemplate handles POST /api/v1/templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	if !consts.IsReportType(req.ReportType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid report type: " + req.ReportType,
		})
		return
	}

	if strings.TrimSpace(req.HTML) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeTemplateInvalid,
			"message": "Template HTML must not be empty",
		})
		return
	}

	tpl := &model.Template{
		ID:         idgen.NewTemplateID(),
		ReportType: req.ReportType,
		Name:       req.Name,
		HTML:       req.HTML,
	}

	if err := h.store.Template().Create(tpl); err != nil {
		logger.Error("Failed to create template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to create template",
		})
		return
	}

	logger.Info("Template created",
		zap.String("template_id", tpl.ID),
		zap.String("report_type", tpl.ReportType),
		zap.String("name", tpl.Name),
	)

	c.JSON(http.StatusCreated, tpl)
}

// GetTemplate handles GET /api/v1/templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id := c.Param("id")

	tpl, err := h.store.Template().GetByID(id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeTemplateNotFound,
			"message": "Template not found",
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

	c.JSON(http.StatusOK, tpl)
}

// ListTemplates handles GET /api/v1/templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	page, pageSize := parsePagination(c)
	reportType := c.Query("report_type")

	templates, total, err := h.store.Template().List(reportType, page, pageSize)
	if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      templates,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateTemplate handles PUT /api/v1/templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id := c.Param("id")

	tpl, err := h.store.Template().GetByID(id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeTemplateNotFound,
			"message": "Template not found",
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

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	if !consts.IsReportType(req.ReportType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid report type: " + req.ReportType,
		})
		return
	}

	tpl.ReportType = req.ReportType
	tpl.Name = req.Name
	tpl.HTML = req.HTML

	if err := h.store.Template().Save(tpl); err != nil {
		logger.Error("Failed to update template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to update template",
		})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate handles DELETE /api/v1/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")

	tpl, err := h.store.Template().GetByID(id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeTemplateNotFound,
			"message": "Template not found",
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

	// The built-in default per type must stay available for renders
	if tpl.IsDefault {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Cannot delete the default template; set another default first",
		})
		return
	}

	if err := h.store.Template().Delete(id); err != nil {
		logger.Error("Failed to delete template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Template deleted",
	})
}

// SetDefaultTemplate handles POST /api/v1/templates/:id/default
func (h *TemplateHandler) SetDefaultTemplate(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Template().SetDefault(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    errors.ErrCodeTemplateNotFound,
				"message": "Template not found",
			})
			return
		}
		logger.Error("Failed to set default template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	logger.Info("Default template changed", zap.String("template_id", id))

	c.JSON(http.StatusOK, gin.H{
		"message": "Default template updated",
	})
}
