package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/render"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/errors"
	"github.com/trendyreports/trendyreports/pkg/idgen"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// BrandHandler handles tenant branding HTTP requests
type BrandHandler struct {
	store store.Store
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(s store.Store) *BrandHandler {
	return &BrandHandler{store: s}
}

// BrandRequest represents the create/update request body.
// Every field is optional; absent values fall back at render time.
type BrandRequest struct {
	DisplayName  string `json:"display_name"`
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
	AccentColor  string `json:"accent_color"`
	RepPhotoURL  string `json:"rep_photo_url"`
	ContactLine1 string `json:"contact_line1"`
	ContactLine2 string `json:"contact_line2"`
	WebsiteURL   string `json:"website_url"`
}

// apply copies the request onto a brand row, normalizing bare hex colors
func (r *BrandRequest) apply(b *model.Brand) {
	b.DisplayName = r.DisplayName
	b.LogoURL = r.LogoURL
	b.PrimaryColor = render.NormalizeHexColor(r.PrimaryColor)
	b.AccentColor = render.NormalizeHexColor(r.AccentColor)
	b.RepPhotoURL = r.RepPhotoURL
	b.ContactLine1 = r.ContactLine1
	b.ContactLine2 = r.ContactLine2
	b.WebsiteURL = r.WebsiteURL
}

// CreateBrand handles POST /api/v1/brands
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	brand := &model.Brand{ID: idgen.NewBrandID()}
	req.apply(brand)

	if err := h.store.Brand().Create(brand); err != nil {
		logger.Error("Failed to create brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to create brand",
		})
		return
	}

	logger.Info("Brand created",
		zap.String("brand_id", brand.ID),
		zap.String("display_name", brand.DisplayName),
	)

	c.JSON(http.StatusCreated, brand)
}

// GetBrand handles GET /api/v1/brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id := c.Param("id")

	brand, err := h.store.Brand().GetByID(id)
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

	c.JSON(http.StatusOK, brand)
}

// ListBrands handles GET /api/v1/brands
func (h *BrandHandler) ListBrands(c *gin.Context) {
	page, pageSize := parsePagination(c)

	brands, total, err := h.store.Brand().List(page, pageSize)
	if err != nil {
		logger.Error("Database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      brands,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateBrand handles PUT /api/v1/brands/:id
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id := c.Param("id")

	brand, err := h.store.Brand().GetByID(id)
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

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.ErrCodeValidation,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	req.apply(brand)

	if err := h.store.Brand().Save(brand); err != nil {
		logger.Error("Failed to update brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Failed to update brand",
		})
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DeleteBrand handles DELETE /api/v1/brands/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.store.Brand().GetByID(id); err == gorm.ErrRecordNotFound {
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

	if err := h.store.Brand().Delete(id); err != nil {
		logger.Error("Failed to delete brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    errors.ErrCodeDBQuery,
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Brand deleted",
	})
}
