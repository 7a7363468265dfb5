package render

import "fmt"

// ReportResult is the normalized report payload produced by the external
// market-analysis backend. Fields vary by report type but share this
// envelope; optional numerics are pointers so the formatters can tell an
// absent value from a zero.
type ReportResult struct {
	City         string `json:"city"`
	LookbackDays int    `json:"lookback_days"`
	PeriodLabel  string `json:"period_label"`
	ReportDate   string `json:"report_date"`

	Counts  Counts  `json:"counts"`
	Metrics Metrics `json:"metrics"`

	ListingsSample []Listing   `json:"listings_sample"`
	PriceBands     []PriceBand `json:"price_bands"`

	// Optional server-computed breakdowns for the Market Snapshot. When a
	// type or tier is absent it is approximated from aggregate metrics, see
	// snapshot.go.
	ByPropertyType map[string]TypeBreakdown `json:"by_property_type,omitempty"`
	PriceTiers     []PriceTier              `json:"price_tiers,omitempty"`
}

// Counts holds category tallies. Absent keys unmarshal to 0.
type Counts struct {
	Active  float64 `json:"Active"`
	Pending float64 `json:"Pending"`
	Closed  float64 `json:"Closed"`
}

// Metrics holds market aggregates. All values are optional.
type Metrics struct {
	MedianListPrice  *float64 `json:"median_list_price,omitempty"`
	MedianClosePrice *float64 `json:"median_close_price,omitempty"`
	AvgDOM           *float64 `json:"avg_dom,omitempty"`
	AvgPPSF          *float64 `json:"avg_ppsf,omitempty"`
}

// Listing is one property record snapshot. It is immutable once fetched;
// the rendering layer never mutates it.
type Listing struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	ListPrice    *float64 `json:"list_price,omitempty"`
	ClosePrice   *float64 `json:"close_price,omitempty"`
	Beds         *float64 `json:"beds,omitempty"`
	Baths        *float64 `json:"baths,omitempty"`
	Sqft         *float64 `json:"sqft,omitempty"`
	DaysOnMarket *float64 `json:"days_on_market,omitempty"`
	Status       string   `json:"status"`
	ListDate     string   `json:"list_date,omitempty"`
	CloseDate    string   `json:"close_date,omitempty"`
	PhotoURL     string   `json:"photo_url,omitempty"`
}

// PriceBand is one price segmentation bucket. Listings is optional raw
// listing detail used only to derive the min/max price range.
type PriceBand struct {
	Label       string    `json:"label"`
	Count       float64   `json:"count"`
	MedianPrice *float64  `json:"median_price,omitempty"`
	AvgDOM      *float64  `json:"avg_dom,omitempty"`
	AvgPPSF     *float64  `json:"avg_ppsf,omitempty"`
	Listings    []Listing `json:"listings,omitempty"`
}

// TypeBreakdown is a per-property-type slice of the closed market.
type TypeBreakdown struct {
	Closed      float64  `json:"closed"`
	MedianPrice *float64 `json:"median_price,omitempty"`
}

// PriceTier is one price segment of the snapshot's tier table.
type PriceTier struct {
	Label  string   `json:"label"`
	Ceil   *float64 `json:"ceil,omitempty"`
	Closed float64  `json:"closed"`
}

// Payload is the render input as delivered by the backend: either a bare
// ReportResult or a wrapper carrying result_json, with the brand supplied as
// a sibling object. The embedded ReportResult absorbs bare-shape fields.
type Payload struct {
	ResultJSON *ReportResult `json:"result_json,omitempty"`
	Brand      *BrandConfig  `json:"brand,omitempty"`

	ReportResult
}

// UnwrapResult normalizes the dual input shape: the wrapper's result_json is
// preferred when present, otherwise the payload itself is the result. All
// builders go through this one helper.
func UnwrapResult(p *Payload) *ReportResult {
	if p == nil {
		return &ReportResult{}
	}
	if p.ResultJSON != nil {
		return p.ResultJSON
	}
	return &p.ReportResult
}

// periodLabel returns the result's period label, computing the documented
// default from lookback_days when absent.
func periodLabel(res *ReportResult) string {
	if res.PeriodLabel != "" {
		return res.PeriodLabel
	}
	return fmt.Sprintf("Last %d days", res.LookbackDays)
}
