package render

import (
	"time"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/pkg/errors"
)

// Renderer builds final report HTML from templates and result payloads.
// It holds no mutable state; the clock is the only injected dependency and
// exists so the "current date" default is deterministic in tests. A single
// Renderer is safe for concurrent use.
type Renderer struct {
	now func() time.Time
}

// New creates a Renderer using the wall clock.
func New() *Renderer {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Renderer with an injected clock.
func NewWithClock(now func() time.Time) *Renderer {
	return &Renderer{now: now}
}

// Build dispatches to the builder for reportType. The builders themselves
// never fail; only an unknown report type is an error.
func (r *Renderer) Build(reportType, templateHTML string, p *Payload) (string, error) {
	switch reportType {
	case consts.ReportTypeMarketSnapshot:
		return r.BuildMarketSnapshot(templateHTML, p), nil
	case consts.ReportTypeNewListings:
		return r.BuildNewListings(templateHTML, p), nil
	case consts.ReportTypeInventory:
		return r.BuildInventory(templateHTML, p), nil
	case consts.ReportTypeClosedSales:
		return r.BuildClosedSales(templateHTML, p), nil
	case consts.ReportTypePriceBands:
		return r.BuildPriceBands(templateHTML, p), nil
	default:
		return "", errors.New(errors.ErrCodeRenderReportType, "unknown report type: "+reportType)
	}
}

// reportDate returns the result's report date, defaulting to the renderer's
// current date in long form.
func (r *Renderer) reportDate(res *ReportResult) string {
	if res.ReportDate != "" {
		return res.ReportDate
	}
	return r.now().Format("January 2, 2006")
}

// headerTokens populates the placeholder set common to every report type:
// descriptive header fields plus the resolved brand.
func (r *Renderer) headerTokens(res *ReportResult, brand *BrandConfig) TokenMap {
	tokens := brandTokens(ResolveBrand(brand))
	tokens["market_name"] = res.City
	tokens["period_label"] = periodLabel(res)
	tokens["report_date"] = r.reportDate(res)
	tokens["lookback_days"] = FormatNumber(fp(float64(res.LookbackDays)))
	return tokens
}
