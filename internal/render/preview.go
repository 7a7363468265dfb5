package render

import (
	"fmt"
	"strings"

	"github.com/trendyreports/trendyreports/consts"
)

// BrandingPreviewDocument generates a complete standalone HTML document
// combining a brand with the sample report data. It backs both the
// server-rendered preview page (captured by the headless PDF service) and
// the client-side live preview (iframe srcdoc); both call sites share this
// one generator so the fallback rules cannot drift apart.
func (r *Renderer) BrandingPreviewDocument(reportType string, cfg *BrandConfig) string {
	b := ResolveBrand(cfg)
	res := SampleReportData(reportType)

	var section string
	switch reportType {
	case consts.ReportTypeNewListings:
		section = previewGallerySection(res)
	case consts.ReportTypeInventory, consts.ReportTypeClosedSales:
		section = previewTableSection(res, reportType)
	case consts.ReportTypePriceBands:
		section = previewBandsSection(res)
	default:
		// Market Snapshot and unknown types get the metrics grid.
		section = previewMetricsSection(res)
	}

	logoHTML := `<div class="logo-text">` + escapeHTMLAttr(b.DisplayName) + `</div>`
	if b.LogoURL != "" {
		logoHTML = `<img class="logo" src="` + escapeHTMLAttr(b.LogoURL) + `" alt="` + escapeHTMLAttr(b.DisplayName) + `">`
	}

	repHTML := ""
	if b.RepPhotoURL != "" {
		repHTML = `<img class="rep-photo" src="` + escapeHTMLAttr(b.RepPhotoURL) + `" alt="">`
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s - %s</title>
<style>
:root { --primary: %s; --accent: %s; }
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif; color: #1f2430; background: #fff; }
.header { display: flex; align-items: center; justify-content: space-between; padding: 24px 32px; border-bottom: 4px solid var(--primary); }
.logo { max-height: 48px; }
.logo-text { font-size: 1.5rem; font-weight: 700; color: var(--primary); }
.header-meta { text-align: right; font-size: 0.85rem; color: #6b7280; }
.title { padding: 24px 32px 8px; }
.title h1 { font-size: 1.5rem; }
.title .period { color: var(--accent); font-weight: 600; }
.section { padding: 16px 32px 32px; }
.metrics-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; }
.metric { border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; }
.metric .value { font-size: 1.4rem; font-weight: 700; color: var(--primary); }
.metric .label { font-size: 0.8rem; color: #6b7280; }
table { width: 100%%; border-collapse: collapse; font-size: 0.85rem; }
th { text-align: left; padding: 8px; color: #fff; background: var(--primary); }
td { padding: 8px; border-bottom: 1px solid #e5e7eb; }
.gallery { display: grid; grid-template-columns: repeat(3, 1fr); gap: 16px; }
.gallery-card { border: 1px solid #e5e7eb; border-radius: 8px; overflow: hidden; }
.gallery-photo { width: 100%%; height: 140px; object-fit: cover; display: block; }
.gallery-photo.placeholder { background: #e5e7eb; }
.gallery-price { padding: 8px 12px 0; font-weight: 700; color: var(--primary); }
.gallery-address { padding: 0 12px; font-size: 0.9rem; }
.gallery-meta { padding: 4px 12px 12px; font-size: 0.75rem; color: #6b7280; }
.band { margin-bottom: 16px; }
.band-label { font-weight: 600; }
.band-count { font-size: 0.8rem; color: #6b7280; }
.band-bar { height: 8px; background: #e5e7eb; border-radius: 4px; overflow: hidden; }
.band-bar-fill { height: 100%%; background: var(--accent); }
.band-metrics { display: flex; gap: 16px; font-size: 0.8rem; margin-top: 4px; }
.footer { display: flex; align-items: center; gap: 16px; padding: 16px 32px; border-top: 1px solid #e5e7eb; font-size: 0.8rem; color: #6b7280; }
.rep-photo { width: 48px; height: 48px; border-radius: 50%%; object-fit: cover; }
</style>
</head>
<body>
<div class="header">
  %s
  <div class="header-meta">%s<br>%s</div>
</div>
<div class="title">
  <h1>%s</h1>
  <div class="period">%s &middot; %s</div>
</div>
<div class="section">
%s
</div>
<div class="footer">
  %s
  <div>%s<br>%s &middot; %s</div>
</div>
</body>
</html>`,
		escapeHTMLAttr(b.DisplayName), reportTitle(reportType),
		b.PrimaryColor, b.AccentColor,
		logoHTML,
		escapeHTMLAttr(b.ContactLine1), escapeHTMLAttr(b.ContactLine2),
		escapeHTMLAttr(res.City)+" "+reportTitle(reportType),
		escapeHTMLAttr(periodLabel(res)), escapeHTMLAttr(r.reportDate(res)),
		section,
		repHTML,
		escapeHTMLAttr(b.DisplayName),
		escapeHTMLAttr(b.WebsiteURL), escapeHTMLAttr(b.ContactLine1),
	)
}

// reportTitle maps a report type to its display title.
func reportTitle(reportType string) string {
	switch reportType {
	case consts.ReportTypeNewListings:
		return "New Listings"
	case consts.ReportTypeInventory:
		return "Inventory"
	case consts.ReportTypeClosedSales:
		return "Closed Sales"
	case consts.ReportTypePriceBands:
		return "Price Bands"
	default:
		return "Market Snapshot"
	}
}

// previewMetricsSection renders the snapshot KPI grid from sample data,
// using the same guards and formatters as the snapshot builder.
func previewMetricsSection(res *ReportResult) string {
	moi := 0.0
	if res.Counts.Closed > 0 {
		moi = (res.Counts.Active / res.Counts.Closed) * (float64(res.LookbackDays) / 30)
	}

	metrics := []struct{ value, label string }{
		{FormatCurrency(res.Metrics.MedianClosePrice), "Median Close Price"},
		{FormatNumber(fp(res.Counts.Closed)), "Closed Sales"},
		{FormatNumber(res.Metrics.AvgDOM), "Avg Days on Market"},
		{FormatDecimal(fp(moi), 1), "Months of Inventory"},
	}

	var sb strings.Builder
	sb.WriteString(`<div class="metrics-grid">`)
	for _, m := range metrics {
		sb.WriteString(`<div class="metric"><div class="value">` + m.value + `</div><div class="label">` + m.label + `</div></div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// previewTableSection renders the listing table with the report type's own
// filter, sort, and trailing column.
func previewTableSection(res *ReportResult, reportType string) string {
	var listings []Listing
	var trailingHeader string
	trailing := func(l Listing) string { return escapeHTMLAttr(l.Status) }

	switch reportType {
	case consts.ReportTypeClosedSales:
		listings = filterByStatus(res.ListingsSample, "Closed")
		listings = sortedByDateDesc(listings, func(l Listing) string { return l.CloseDate })
		trailingHeader = "Close Date"
		trailing = func(l Listing) string { return escapeHTMLAttr(l.CloseDate) }
	default: // inventory
		listings = filterByStatus(res.ListingsSample, "Active")
		for i := 0; i < len(listings)-1; i++ {
			for j := i + 1; j < len(listings); j++ {
				if domOf(listings[j]) > domOf(listings[i]) {
					listings[i], listings[j] = listings[j], listings[i]
				}
			}
		}
		trailingHeader = "Status"
	}

	var rows strings.Builder
	for _, l := range listings {
		if reportType == consts.ReportTypeClosedSales {
			rows.WriteString(listingRowWithPrice(l, res.City, soldPrice(l), trailing(l)))
		} else {
			rows.WriteString(listingRow(l, res.City, trailing(l)))
		}
	}

	return `<table><thead><tr><th>City</th><th>Address</th><th>Price</th><th>Beds</th><th>Baths</th><th>Sqft</th><th>DOM</th><th>` +
		trailingHeader + `</th></tr></thead><tbody>` + "\n" + rows.String() + `</tbody></table>`
}

// previewGallerySection renders new listings as photo cards, newest first.
func previewGallerySection(res *ReportResult) string {
	listings := sortedByDateDesc(res.ListingsSample, func(l Listing) string { return l.ListDate })
	return `<div class="gallery">` + "\n" + galleryCards(listings, res.City) + `</div>`
}

// previewBandsSection renders the price-band list.
func previewBandsSection(res *ReportResult) string {
	total := 0.0
	for _, b := range res.PriceBands {
		total += b.Count
	}
	return priceBandBlocks(res.PriceBands, total)
}
