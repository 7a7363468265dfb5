// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/render"
)

// parsePagination reads page/page_size query parameters with sane bounds
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	// Allow small page sizes for dashboard widgets (min 1)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// brandConfigFromModel converts a stored brand row into render-layer theming
func brandConfigFromModel(b *model.Brand) *render.BrandConfig {
	if b == nil {
		return nil
	}
	return &render.BrandConfig{
		DisplayName:  b.DisplayName,
		LogoURL:      b.LogoURL,
		PrimaryColor: b.PrimaryColor,
		AccentColor:  b.AccentColor,
		RepPhotoURL:  b.RepPhotoURL,
		ContactLine1: b.ContactLine1,
		ContactLine2: b.ContactLine2,
		WebsiteURL:   b.WebsiteURL,
	}
}

// payloadFromRaw decodes the raw result document into the render payload.
// The payload keeps its dual shape (wrapper or bare result) for UnwrapResult.
func payloadFromRaw(raw json.RawMessage) (*render.Payload, error) {
	var p render.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// jsonMapFromRaw decodes the raw result document into the storage column type
func jsonMapFromRaw(raw json.RawMessage) (model.JSONMap, error) {
	var m model.JSONMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
