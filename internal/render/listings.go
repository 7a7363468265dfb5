package render

import (
	"sort"
	"strings"
)

// The three tabular reports share one skeleton: header tokens, a handful of
// summary KPIs, and the LISTINGS_TABLE_ROWS slot populated with one <tr> per
// qualifying listing. What differs is the filter, the sort, and the trailing
// column. Those rules define the report's content, not just its look.

// BuildNewListings renders the New Listings report: every sampled listing,
// newest list date first.
func (r *Renderer) BuildNewListings(templateHTML string, p *Payload) string {
	res := UnwrapResult(p)
	tokens := r.headerTokens(res, brandOf(p))

	listings := sortedByDateDesc(res.ListingsSample, func(l Listing) string { return l.ListDate })

	tokens["total_new_listings"] = FormatNumber(fp(float64(len(listings))))
	tokens["median_list_price"] = FormatCurrency(res.Metrics.MedianListPrice)
	tokens["avg_dom"] = FormatNumber(res.Metrics.AvgDOM)
	tokens["avg_ppsf"] = FormatCurrency(res.Metrics.AvgPPSF)

	var rows strings.Builder
	for _, l := range listings {
		rows.WriteString(listingRow(l, res.City, escapeHTMLAttr(l.ListDate)))
	}

	html := ApplyTokens(templateHTML, tokens)
	return ApplySlot(html, SlotListingsTableRows, rows.String())
}

// BuildInventory renders the Inventory report: active listings only,
// longest-listed first.
func (r *Renderer) BuildInventory(templateHTML string, p *Payload) string {
	res := UnwrapResult(p)
	tokens := r.headerTokens(res, brandOf(p))

	listings := filterByStatus(res.ListingsSample, "Active")
	sort.SliceStable(listings, func(i, j int) bool {
		return domOf(listings[i]) > domOf(listings[j])
	})

	tokens["total_active"] = FormatNumber(fp(float64(len(listings))))
	tokens["median_list_price"] = FormatCurrency(res.Metrics.MedianListPrice)
	tokens["avg_dom"] = FormatNumber(res.Metrics.AvgDOM)
	tokens["avg_ppsf"] = FormatCurrency(res.Metrics.AvgPPSF)

	var rows strings.Builder
	for _, l := range listings {
		rows.WriteString(listingRow(l, res.City, escapeHTMLAttr(l.Status)))
	}

	html := ApplyTokens(templateHTML, tokens)
	return ApplySlot(html, SlotListingsTableRows, rows.String())
}

// BuildClosedSales renders the Closed Sales report: closed listings only,
// most recent close first. The price column prefers close_price and falls
// back to list_price.
func (r *Renderer) BuildClosedSales(templateHTML string, p *Payload) string {
	res := UnwrapResult(p)
	tokens := r.headerTokens(res, brandOf(p))

	listings := filterByStatus(res.ListingsSample, "Closed")
	listings = sortedByDateDesc(listings, func(l Listing) string { return l.CloseDate })

	closeToList := 0.0
	if present(res.Metrics.MedianClosePrice) && present(res.Metrics.MedianListPrice) && *res.Metrics.MedianListPrice != 0 {
		closeToList = (*res.Metrics.MedianClosePrice / *res.Metrics.MedianListPrice) * 100
	}

	tokens["total_closed"] = FormatNumber(fp(float64(len(listings))))
	tokens["median_close_price"] = FormatCurrency(res.Metrics.MedianClosePrice)
	tokens["avg_dom"] = FormatNumber(res.Metrics.AvgDOM)
	tokens["close_to_list"] = FormatDecimal(fp(closeToList), 1)

	var rows strings.Builder
	for _, l := range listings {
		rows.WriteString(listingRowWithPrice(l, res.City, soldPrice(l), escapeHTMLAttr(l.CloseDate)))
	}

	html := ApplyTokens(templateHTML, tokens)
	return ApplySlot(html, SlotListingsTableRows, rows.String())
}

// filterByStatus returns the listings whose status matches exactly. The
// match is case-sensitive; status values are canonical upstream.
func filterByStatus(listings []Listing, status string) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out
}

// sortedByDateDesc sorts a copy of listings descending by the given ISO date
// string. The compare is lexicographic; listings with an absent date sort
// first, matching the upstream empty-string comparison.
func sortedByDateDesc(listings []Listing, date func(Listing) string) []Listing {
	out := make([]Listing, len(listings))
	copy(out, listings)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := date(out[i]), date(out[j])
		if (di == "") != (dj == "") {
			return di == ""
		}
		return di > dj
	})
	return out
}

func domOf(l Listing) float64 {
	if present(l.DaysOnMarket) {
		return *l.DaysOnMarket
	}
	return 0
}

// soldPrice formats the displayed price for a closed listing.
func soldPrice(l Listing) string {
	if present(l.ClosePrice) {
		return FormatCurrency(l.ClosePrice)
	}
	return FormatCurrency(l.ListPrice)
}
