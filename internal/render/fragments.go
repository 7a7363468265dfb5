package render

import "strings"

// Fragment generators synthesize the HTML pieces that a single token
// substitution cannot express: table rows, gallery cards, and price-band
// blocks. They produce markup only; layout and styling live in the template.

// listingRow renders one table row. The trailing cell differs per report
// type (list date, status, or close date), so the caller supplies it.
func listingRow(l Listing, reportCity, trailing string) string {
	city := l.City
	if city == "" {
		city = reportCity
	}

	var sb strings.Builder
	sb.WriteString("<tr>")
	cell(&sb, escapeHTMLAttr(city))
	cell(&sb, escapeHTMLAttr(l.Address))
	cell(&sb, FormatCurrency(l.ListPrice))
	cell(&sb, FormatNumber(l.Beds))
	cell(&sb, FormatDecimal(l.Baths, 1))
	cell(&sb, FormatNumber(l.Sqft))
	cell(&sb, FormatNumber(l.DaysOnMarket))
	cell(&sb, trailing)
	sb.WriteString("</tr>\n")
	return sb.String()
}

// listingRowWithPrice is listingRow with an explicit price cell, used by the
// Closed Sales report where the displayed price prefers close_price.
func listingRowWithPrice(l Listing, reportCity, price, trailing string) string {
	city := l.City
	if city == "" {
		city = reportCity
	}

	var sb strings.Builder
	sb.WriteString("<tr>")
	cell(&sb, escapeHTMLAttr(city))
	cell(&sb, escapeHTMLAttr(l.Address))
	cell(&sb, price)
	cell(&sb, FormatNumber(l.Beds))
	cell(&sb, FormatDecimal(l.Baths, 1))
	cell(&sb, FormatNumber(l.Sqft))
	cell(&sb, FormatNumber(l.DaysOnMarket))
	cell(&sb, trailing)
	sb.WriteString("</tr>\n")
	return sb.String()
}

func cell(sb *strings.Builder, content string) {
	sb.WriteString("<td>")
	sb.WriteString(content)
	sb.WriteString("</td>")
}

// galleryCards renders listings as photo cards for the branding preview's
// gallery section. Listings without a photo get a placeholder block so the
// grid stays aligned.
func galleryCards(listings []Listing, reportCity string) string {
	var sb strings.Builder
	for _, l := range listings {
		city := l.City
		if city == "" {
			city = reportCity
		}
		sb.WriteString(`<div class="gallery-card">`)
		if l.PhotoURL != "" {
			sb.WriteString(`<img class="gallery-photo" src="` + escapeHTMLAttr(l.PhotoURL) + `" alt="` + escapeHTMLAttr(l.Address) + `">`)
		} else {
			sb.WriteString(`<div class="gallery-photo placeholder"></div>`)
		}
		sb.WriteString(`<div class="gallery-price">` + FormatCurrency(l.ListPrice) + `</div>`)
		sb.WriteString(`<div class="gallery-address">` + escapeHTMLAttr(l.Address) + `</div>`)
		sb.WriteString(`<div class="gallery-meta">` + FormatNumber(l.Beds) + ` bd &middot; ` +
			FormatDecimal(l.Baths, 1) + ` ba &middot; ` + FormatNumber(l.Sqft) + ` sqft &middot; ` + escapeHTMLAttr(city) + `</div>`)
		sb.WriteString("</div>\n")
	}
	return sb.String()
}

// priceBandBlocks renders one block per band: label, count, percentage of
// total with a proportional bar, and the three metric cells. Percentages of
// a total cannot exceed 100, so the bar width needs no explicit clamp.
func priceBandBlocks(bands []PriceBand, total float64) string {
	var sb strings.Builder
	for _, b := range bands {
		pct := 0.0
		if total > 0 {
			pct = b.Count / total * 100
		}
		pctStr := FormatDecimal(fp(pct), 1)

		sb.WriteString(`<div class="band">`)
		sb.WriteString(`<div class="band-label">` + escapeHTMLAttr(b.Label) + `</div>`)
		sb.WriteString(`<div class="band-count">` + FormatNumber(fp(b.Count)) + ` listings (` + pctStr + `%)</div>`)
		sb.WriteString(`<div class="band-bar"><div class="band-bar-fill" style="width:` + pctStr + `%"></div></div>`)
		sb.WriteString(`<div class="band-metrics">`)
		sb.WriteString(`<span class="band-median">` + FormatCurrency(b.MedianPrice) + `</span>`)
		sb.WriteString(`<span class="band-dom">` + FormatNumber(b.AvgDOM) + ` DOM</span>`)
		sb.WriteString(`<span class="band-ppsf">` + FormatCurrency(b.AvgPPSF) + `/sqft</span>`)
		sb.WriteString(`</div></div>` + "\n")
	}
	return sb.String()
}
