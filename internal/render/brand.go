package render

import "strings"

// Brand fallback constants. Tenants without configured branding render with
// the house theme.
const (
	DefaultBrandName    = "TrendyReports"
	DefaultPrimaryColor = "#7C3AED"
	DefaultAccentColor  = "#F26B2B"
)

// BrandConfig is tenant-level theming as stored or as parsed from the
// preview page's query string. Any field may be empty.
type BrandConfig struct {
	DisplayName  string `json:"display_name,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
	RepPhotoURL  string `json:"rep_photo_url,omitempty"`
	ContactLine1 string `json:"contact_line1,omitempty"`
	ContactLine2 string `json:"contact_line2,omitempty"`
	WebsiteURL   string `json:"website_url,omitempty"`
}

// ResolvedBrand is a BrandConfig with every fallback applied. Color values
// are always usable in CSS ("#" prefixed).
type ResolvedBrand struct {
	DisplayName  string
	LogoURL      string
	PrimaryColor string
	AccentColor  string
	RepPhotoURL  string
	ContactLine1 string
	ContactLine2 string
	WebsiteURL   string
}

// ResolveBrand applies the documented fallback rules to cfg. A nil cfg
// resolves entirely to defaults.
func ResolveBrand(cfg *BrandConfig) ResolvedBrand {
	b := ResolvedBrand{
		DisplayName:  DefaultBrandName,
		PrimaryColor: DefaultPrimaryColor,
		AccentColor:  DefaultAccentColor,
	}
	if cfg == nil {
		return b
	}
	if cfg.DisplayName != "" {
		b.DisplayName = cfg.DisplayName
	}
	if cfg.PrimaryColor != "" {
		b.PrimaryColor = NormalizeHexColor(cfg.PrimaryColor)
	}
	if cfg.AccentColor != "" {
		b.AccentColor = NormalizeHexColor(cfg.AccentColor)
	}
	b.LogoURL = cfg.LogoURL
	b.RepPhotoURL = cfg.RepPhotoURL
	b.ContactLine1 = cfg.ContactLine1
	b.ContactLine2 = cfg.ContactLine2
	b.WebsiteURL = cfg.WebsiteURL
	return b
}

// NormalizeHexColor prefixes bare 6-hex-digit color values with "#". The
// preview page's query parameters arrive without the prefix; values already
// prefixed or in any other form pass through unchanged.
func NormalizeHexColor(c string) string {
	if len(c) == 6 && isHex(c) {
		return "#" + c
	}
	return c
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// brandTokens returns the placeholder set shared by every builder.
func brandTokens(b ResolvedBrand) TokenMap {
	logo := b.LogoURL
	logoHTML := ""
	if logo != "" {
		logoHTML = `<img class="brand-logo" src="` + escapeHTMLAttr(logo) + `" alt="` + escapeHTMLAttr(b.DisplayName) + `">`
	}
	return TokenMap{
		"brand_name":     b.DisplayName,
		"brand_logo_url": logo,
		"brand_logo":     logoHTML,
		"primary_color":  b.PrimaryColor,
		"accent_color":   b.AccentColor,
		"rep_photo_url":  b.RepPhotoURL,
		"contact_line1":  b.ContactLine1,
		"contact_line2":  b.ContactLine2,
		"website_url":    b.WebsiteURL,
	}
}

// escapeHTMLAttr escapes a string for safe HTML attribute embedding
func escapeHTMLAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
