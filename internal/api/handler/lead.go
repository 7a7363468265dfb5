package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/notification"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/errors"
	"github.com/trendyreports/trendyreports/pkg/idgen"
	"github.com/trendyreports/trendyreports/pkg/logger"
	"github.com/trendyreports/trendyreports/pkg/telemetry"
)

// LeadHandler handles landing-page lead capture HTTP requests
type LeadHandler struct {
	store store.Store
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(s store.Store) *LeadHandler {
	return &LeadHandler{store: s}
}

// CreateLeadRequest represents the public lead capture body. Website is a
// honeypot: real visitors never see the field, bots fill it in.
type CreateLeadRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	PropertyAddress string `json:"property_address"`
	Source          string `json:"source"`
	Website         string `json:"website"`
}

// CreateLead handles POST /api/v1/leads (public, rate limited)
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	// Honeypot tripped: pretend success so the bot learns nothing
	if strings.TrimSpace(req.Website) != "" {
		logger.Warn("Lead honeypot triggered",
			zap.String("ip", c.ClientIP()),
			zap.String("source", req.Source),
		)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Thank you, we will be in touch shortly",
		})
		return
	}

	lead := &model.Lead{
		ID:              idgen.NewLeadID(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		PropertyAddress: req.PropertyAddress,
		Source:          req.Source,
	}

	if err := h.store.Lead().Create(lead); err != nil {
		logger.Error("Failed to create lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to save contact request",
		})
		return
	}

	telemetry.GetMetrics().RecordLead(c.Request.Context(), lead.Source)
	go notification.NotifyLeadCreated(context.Background(), lead.ID, "", map[string]interface{}{
		"name":   lead.Name,
		"email":  lead.Email,
		"source": lead.Source,
	})

	logger.Info("Lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("source", lead.Source),
	)

	c.JSON(http.StatusCreated, gin.H{
		"id":      lead.ID,
		"message": "Thank you, we will be in touch shortly",
	})
}

// GetLead handles GET /api/v1/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id := c.Param("id")

	lead, err := h.store.Lead().GetByID(id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeNotFound,
			"message": "Lead not found",
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

	c.JSON(http.StatusOK, lead)
}

// ListLeads handles GET /api/v1/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, pageSize := parsePagination(c)
	source := c.Query("source")

	leads, total, err := h.store.Lead().List(source, page, pageSize)
	if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      leads,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// DeleteLead handles DELETE /api/v1/leads/:id
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.store.Lead().GetByID(id); err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    errors.ErrCodeNotFound,
			"message": "Lead not found",
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

	if err := h.store.Lead().Delete(id); err != nil {
		logger.Error("Failed to delete lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lead deleted",
	})
}
