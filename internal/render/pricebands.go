package render

// BuildPriceBands renders the Price Bands report: aggregate stats across all
// bands plus one proportional-bar block per band via the PRICE_BANDS_CONTENT
// slot.
func (r *Renderer) BuildPriceBands(templateHTML string, p *Payload) string {
	res := UnwrapResult(p)
	tokens := r.headerTokens(res, brandOf(p))

	total := 0.0
	for _, b := range res.PriceBands {
		total += b.Count
	}

	// Price range comes from flattening each band's optional embedded
	// listings. Bands without listing detail contribute nothing, so the
	// range may legitimately collapse to $0 - $0.
	minPrice, maxPrice := priceRange(res.PriceBands)

	hottest, slowest := hottestAndSlowest(res.PriceBands)

	tokens["total_listings"] = FormatNumber(fp(total))
	tokens["price_range"] = FormatCurrency(fp(minPrice)) + " - " + FormatCurrency(fp(maxPrice))
	tokens["hottest_band"] = hottest
	tokens["slowest_band"] = slowest

	html := ApplyTokens(templateHTML, tokens)
	return ApplySlot(html, SlotPriceBandsContent, priceBandBlocks(res.PriceBands, total))
}

// priceRange extracts the min and max list price across every band's
// embedded listings.
func priceRange(bands []PriceBand) (min, max float64) {
	first := true
	for _, b := range bands {
		for _, l := range b.Listings {
			if !present(l.ListPrice) {
				continue
			}
			p := *l.ListPrice
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
	}
	return min, max
}

// hottestAndSlowest returns the labels of the bands with the minimum and
// maximum avg_dom. Ties break by array order: first occurrence wins for
// hottest, last for slowest.
func hottestAndSlowest(bands []PriceBand) (hottest, slowest string) {
	var minDOM, maxDOM float64
	haveMin, haveMax := false, false
	for _, b := range bands {
		if !present(b.AvgDOM) {
			continue
		}
		dom := *b.AvgDOM
		if !haveMin || dom < minDOM {
			minDOM = dom
			hottest = b.Label
			haveMin = true
		}
		if !haveMax || dom >= maxDOM {
			maxDOM = dom
			slowest = b.Label
			haveMax = true
		}
	}
	return hottest, slowest
}
