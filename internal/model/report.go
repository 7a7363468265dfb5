// Package model defines the data models for the application.
package model

import (
	"time"

	"gorm.io/gorm"
)

// ReportStatus represents the status of a report render record
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusRendered  ReportStatus = "rendered"
	ReportStatusExported  ReportStatus = "exported"
	ReportStatusDelivered ReportStatus = "delivered"
	ReportStatusFailed    ReportStatus = "failed"
)

// Report represents one rendered market report. The raw result JSON comes from
// the external market-analysis backend; the rendered HTML is produced by the
// render package from the stored template and brand.
type Report struct {
	ID        string         `gorm:"primarykey;size:20" json:"id"` // xid
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Report type and market
	ReportType string `gorm:"size:50;not null;index" json:"report_type"`
	City       string `gorm:"size:255" json:"city"`
	Title      string `gorm:"size:512" json:"title"`

	// References
	TemplateID string `gorm:"size:20;index" json:"template_id"`
	BrandID    string `gorm:"size:20;index" json:"brand_id,omitempty"`

	// Raw result payload as delivered by the analysis backend.
	// May be the bare result or wrapped as {result_json: ...}.
	ResultJSON JSONMap `gorm:"type:json" json:"result_json,omitempty"`

	// Rendered output
	HTML      string `gorm:"type:text" json:"html,omitempty"`
	HTMLBytes int    `gorm:"default:0" json:"html_bytes"`

	// Status and timing
	Status     ReportStatus `gorm:"size:50;not null;default:pending;index" json:"status"`
	RenderedAt *time.Time   `json:"rendered_at,omitempty"`
	Duration   int64        `json:"duration,omitempty"` // milliseconds

	// Error handling
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`
}

// Template stores one report HTML template. Templates carry {{token}}
// placeholders and at most one comment slot marker per report type.
type Template struct {
	ID        string         `gorm:"primarykey;size:20" json:"id"` // xid
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReportType string `gorm:"size:50;not null;index" json:"report_type"`
	Name       string `gorm:"size:255;not null" json:"name"`
	HTML       string `gorm:"type:text;not null" json:"html"`

	// IsDefault marks the template used when a render request names no template.
	IsDefault bool `gorm:"default:false;index" json:"is_default"`
}

// Brand stores tenant-level theming. Any field may be empty; the render
// package substitutes fixed defaults for missing values.
type Brand struct {
	ID        string         `gorm:"primarykey;size:20" json:"id"` // xid
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DisplayName  string `gorm:"size:255" json:"display_name"`
	LogoURL      string `gorm:"size:1024" json:"logo_url"`
	PrimaryColor string `gorm:"size:20" json:"primary_color"`
	AccentColor  string `gorm:"size:20" json:"accent_color"`

	// Agent contact details shown on landing pages and report footers
	RepPhotoURL  string `gorm:"size:1024" json:"rep_photo_url"`
	ContactLine1 string `gorm:"size:255" json:"contact_line1"`
	ContactLine2 string `gorm:"size:255" json:"contact_line2"`
	WebsiteURL   string `gorm:"size:1024" json:"website_url"`
}

// Lead represents a captured landing-page lead.
type Lead struct {
	ID        string         `gorm:"primarykey;size:20" json:"id"` // xid
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name            string `gorm:"size:255;not null" json:"name"`
	Email           string `gorm:"size:255;not null;index" json:"email"`
	Phone           string `gorm:"size:50" json:"phone,omitempty"`
	Message         string `gorm:"type:text" json:"message,omitempty"`
	PropertyAddress string `gorm:"size:512" json:"property_address,omitempty"`

	// Source identifies the landing page or campaign the lead came from.
	Source string `gorm:"size:255;index" json:"source,omitempty"`
}

// AllModels returns every model for auto-migration
func AllModels() []interface{} {
	return []interface{}{
		&Report{},
		&Template{},
		&Brand{},
		&Lead{},
	}
}
