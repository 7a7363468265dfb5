package render

import "math"

// Fallback ratio tables for the Market Snapshot breakdowns. The upstream
// backend does not always compute per-type / per-tier slices; when a slice is
// absent it is approximated from aggregate metrics using these fixed shares.
// This is a product placeholder, not a statistical model. The numbers must
// stay exactly as they are for output compatibility until server-computed
// breakdowns replace them.
var propertyTypeFallbackRatios = []struct {
	Key   string
	Label string
	Share float64
}{
	{"sfr", "Single Family", 0.7},
	{"condo", "Condo", 0.2},
	{"townhome", "Townhome", 0.1},
}

var priceTierFallbackRatios = []struct {
	PriceMult  float64
	CountShare float64
}{
	{0.6, 0.3},
	{1.0, 0.5},
	{2.0, 0.2},
}

// tierLabels name the snapshot's three price tiers when the backend supplies
// no tier table.
var tierLabels = []string{"Entry", "Mid-Market", "Luxury"}

// BuildMarketSnapshot renders the Market Snapshot report. The snapshot is a
// token-only layout: hero KPIs, three indicator rows, and by-type / by-tier
// breakdown cells. No slot fragment is used.
func (r *Renderer) BuildMarketSnapshot(templateHTML string, p *Payload) string {
	res := UnwrapResult(p)
	tokens := r.headerTokens(res, brandOf(p))

	active := res.Counts.Active
	pending := res.Counts.Pending
	closed := res.Counts.Closed
	lookback := float64(res.LookbackDays)

	// Months of inventory: absorption of the active pool at the closed rate,
	// scaled to a 30-day month. Guarded against a zero closed count.
	moi := 0.0
	if closed > 0 {
		moi = (active / closed) * (lookback / 30)
	}

	closeToList := 0.0
	if present(res.Metrics.MedianClosePrice) && present(res.Metrics.MedianListPrice) && *res.Metrics.MedianListPrice != 0 {
		closeToList = (*res.Metrics.MedianClosePrice / *res.Metrics.MedianListPrice) * 100
	}

	// Hero KPIs
	tokens["median_price"] = FormatCurrency(res.Metrics.MedianClosePrice)
	tokens["closed_sales"] = FormatNumber(fp(closed))
	tokens["avg_dom"] = FormatNumber(res.Metrics.AvgDOM)
	tokens["moi"] = FormatDecimal(fp(moi), 1)
	tokens["close_to_list"] = FormatDecimal(fp(closeToList), 1)

	// Indicator rows. Delta computation is not implemented upstream, so every
	// delta renders "0" and the trend class stays "up"; the row keeps its
	// full token set so templates survive the day deltas arrive.
	indicatorTokens(tokens, "new_listings", active)
	indicatorTokens(tokens, "pendings", pending)
	indicatorTokens(tokens, "close_to_list", closeToList)

	r.typeBreakdownTokens(tokens, res, closed)
	r.tierBreakdownTokens(tokens, res, closed)

	return ApplyTokens(templateHTML, tokens)
}

// indicatorTokens fills one indicator row: value, delta, trend class, and a
// bar-fill percentage capped at 100.
func indicatorTokens(tokens TokenMap, name string, value float64) {
	delta := 0.0 // upstream delta computation is a known gap
	class := "up"
	if delta < 0 {
		class = "down"
	}
	tokens[name+"_value"] = FormatNumber(fp(value))
	tokens[name+"_delta"] = FormatNumber(fp(delta))
	tokens[name+"_class"] = class
	tokens[name+"_bar"] = FormatDecimal(fp(math.Min(value, 100)), 1)
}

// typeBreakdownTokens fills the by-property-type cells. A type present in
// by_property_type is used verbatim; an absent type is approximated from the
// aggregate closed count and median price via the fallback ratio table.
func (r *Renderer) typeBreakdownTokens(tokens TokenMap, res *ReportResult, closed float64) {
	aggMedian := res.Metrics.MedianClosePrice
	if !present(aggMedian) {
		aggMedian = res.Metrics.MedianListPrice
	}

	for _, pt := range propertyTypeFallbackRatios {
		closedCount := math.Round(closed * pt.Share)
		median := aggMedian
		if bd, ok := res.ByPropertyType[pt.Key]; ok {
			closedCount = bd.Closed
			if present(bd.MedianPrice) {
				median = bd.MedianPrice
			}
		}
		tokens["type_"+pt.Key+"_label"] = pt.Label
		tokens["type_"+pt.Key+"_closed"] = FormatNumber(fp(closedCount))
		tokens["type_"+pt.Key+"_median_price"] = FormatCurrency(median)
	}
}

// tierBreakdownTokens fills the price-tier cells. Supplied tiers are used in
// order; missing tiers are approximated as fixed multiples of the aggregate
// median with fixed count shares.
func (r *Renderer) tierBreakdownTokens(tokens TokenMap, res *ReportResult, closed float64) {
	aggMedian := 0.0
	if present(res.Metrics.MedianClosePrice) {
		aggMedian = *res.Metrics.MedianClosePrice
	} else if present(res.Metrics.MedianListPrice) {
		aggMedian = *res.Metrics.MedianListPrice
	}

	for i, tier := range priceTierFallbackRatios {
		n := keyIndex(i)
		label := tierLabels[i]
		ceil := aggMedian * tier.PriceMult
		count := math.Round(closed * tier.CountShare)
		share := tier.CountShare * 100

		if i < len(res.PriceTiers) {
			t := res.PriceTiers[i]
			if t.Label != "" {
				label = t.Label
			}
			if present(t.Ceil) {
				ceil = *t.Ceil
			}
			count = t.Closed
			if closed > 0 {
				share = t.Closed / closed * 100
			}
		}

		tokens["tier_"+n+"_label"] = label
		tokens["tier_"+n+"_ceil"] = FormatCurrency(fp(ceil))
		tokens["tier_"+n+"_closed"] = FormatNumber(fp(count))
		tokens["tier_"+n+"_share"] = FormatDecimal(fp(share), 1)
	}
}

// keyIndex maps a 0-based tier index to its 1-based token key segment.
func keyIndex(i int) string {
	return string(rune('1' + i))
}

// brandOf extracts the sibling brand object from the payload, nil-safe.
func brandOf(p *Payload) *BrandConfig {
	if p == nil {
		return nil
	}
	return p.Brand
}
