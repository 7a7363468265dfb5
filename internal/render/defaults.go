package render

import "github.com/trendyreports/trendyreports/consts"

// Built-in report templates. These are the fallback layouts seeded as the
// default template for each report type; tenants can replace them through the
// template API without touching the binary.

const defaultHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{market_name}} Report</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif; color: #1f2430; }
.header { display: flex; align-items: center; justify-content: space-between; padding: 24px 32px; border-bottom: 4px solid {{primary_color}}; }
.header h2 { color: {{primary_color}}; }
.title { padding: 24px 32px 8px; }
.title .period { color: {{accent_color}}; font-weight: 600; }
.section { padding: 16px 32px 32px; }
.kpis { display: flex; gap: 16px; flex-wrap: wrap; }
.kpi { border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; min-width: 160px; }
.kpi .value { font-size: 1.4rem; font-weight: 700; color: {{primary_color}}; }
.kpi .label { font-size: 0.8rem; color: #6b7280; }
table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
th { text-align: left; padding: 8px; color: #fff; background: {{primary_color}}; }
td { padding: 8px; border-bottom: 1px solid #e5e7eb; }
.band-bar { height: 8px; background: #e5e7eb; border-radius: 4px; overflow: hidden; }
.band-bar-fill { height: 100%; background: {{accent_color}}; }
.footer { padding: 16px 32px; border-top: 1px solid #e5e7eb; font-size: 0.8rem; color: #6b7280; }
</style>
</head>
<body>
<div class="header">
  {{brand_logo}}
  <h2>{{brand_name}}</h2>
</div>
<div class="title">
  <h1>{{market_name}}</h1>
  <div class="period">{{period_label}} &middot; {{report_date}}</div>
</div>
`

const defaultFoot = `<div class="footer">{{brand_name}} &middot; {{website_url}} &middot; {{contact_line1}}</div>
</body>
</html>`

const defaultSnapshotTemplate = defaultHead + `<div class="section">
  <div class="kpis">
    <div class="kpi"><div class="value">{{median_price}}</div><div class="label">Median Close Price</div></div>
    <div class="kpi"><div class="value">{{closed_sales}}</div><div class="label">Closed Sales</div></div>
    <div class="kpi"><div class="value">{{avg_dom}}</div><div class="label">Avg Days on Market</div></div>
    <div class="kpi"><div class="value">{{moi}}</div><div class="label">Months of Inventory</div></div>
  </div>
</div>
<div class="section">
  <table>
    <thead><tr><th>Indicator</th><th>Value</th><th>Change</th></tr></thead>
    <tbody>
      <tr class="{{new_listings_class}}"><td>New Listings</td><td>{{new_listings_value}}</td><td>{{new_listings_delta}}</td></tr>
      <tr class="{{pendings_class}}"><td>Pending Sales</td><td>{{pendings_value}}</td><td>{{pendings_delta}}</td></tr>
      <tr class="{{close_to_list_class}}"><td>Close-to-List %</td><td>{{close_to_list_value}}</td><td>{{close_to_list_delta}}</td></tr>
    </tbody>
  </table>
</div>
<div class="section">
  <table>
    <thead><tr><th>Property Type</th><th>Closed</th><th>Median Price</th></tr></thead>
    <tbody>
      <tr><td>{{type_sfr_label}}</td><td>{{type_sfr_closed}}</td><td>{{type_sfr_median_price}}</td></tr>
      <tr><td>{{type_condo_label}}</td><td>{{type_condo_closed}}</td><td>{{type_condo_median_price}}</td></tr>
      <tr><td>{{type_townhome_label}}</td><td>{{type_townhome_closed}}</td><td>{{type_townhome_median_price}}</td></tr>
    </tbody>
  </table>
</div>
<div class="section">
  <table>
    <thead><tr><th>Tier</th><th>Up To</th><th>Closed</th><th>Share %</th></tr></thead>
    <tbody>
      <tr><td>{{tier_1_label}}</td><td>{{tier_1_ceil}}</td><td>{{tier_1_closed}}</td><td>{{tier_1_share}}</td></tr>
      <tr><td>{{tier_2_label}}</td><td>{{tier_2_ceil}}</td><td>{{tier_2_closed}}</td><td>{{tier_2_share}}</td></tr>
      <tr><td>{{tier_3_label}}</td><td>{{tier_3_ceil}}</td><td>{{tier_3_closed}}</td><td>{{tier_3_share}}</td></tr>
    </tbody>
  </table>
</div>
` + defaultFoot

const defaultNewListingsTemplate = defaultHead + `<div class="section">
  <div class="kpis">
    <div class="kpi"><div class="value">{{total_new_listings}}</div><div class="label">New Listings</div></div>
    <div class="kpi"><div class="value">{{median_list_price}}</div><div class="label">Median List Price</div></div>
    <div class="kpi"><div class="value">{{avg_dom}}</div><div class="label">Avg Days on Market</div></div>
    <div class="kpi"><div class="value">{{avg_ppsf}}</div><div class="label">Avg $/Sqft</div></div>
  </div>
</div>
<div class="section">
  <table>
    <thead><tr><th>City</th><th>Address</th><th>Price</th><th>Beds</th><th>Baths</th><th>Sqft</th><th>DOM</th><th>List Date</th></tr></thead>
    <tbody>
<!-- LISTINGS_TABLE_ROWS -->
    </tbody>
  </table>
</div>
` + defaultFoot

const defaultInventoryTemplate = defaultHead + `<div class="section">
  <div class="kpis">
    <div class="kpi"><div class="value">{{total_active}}</div><div class="label">Active Listings</div></div>
    <div class="kpi"><div class="value">{{median_list_price}}</div><div class="label">Median List Price</div></div>
    <div class="kpi"><div class="value">{{avg_dom}}</div><div class="label">Avg Days on Market</div></div>
    <div class="kpi"><div class="value">{{avg_ppsf}}</div><div class="label">Avg $/Sqft</div></div>
  </div>
</div>
<div class="section">
  <table>
    <thead><tr><th>City</th><th>Address</th><th>Price</th><th>Beds</th><th>Baths</th><th>Sqft</th><th>DOM</th><th>Status</th></tr></thead>
    <tbody>
<!-- LISTINGS_TABLE_ROWS -->
    </tbody>
  </table>
</div>
` + defaultFoot

const defaultClosedSalesTemplate = defaultHead + `<div class="section">
  <div class="kpis">
    <div class="kpi"><div class="value">{{total_closed}}</div><div class="label">Closed Sales</div></div>
    <div class="kpi"><div class="value">{{median_close_price}}</div><div class="label">Median Close Price</div></div>
    <div class="kpi"><div class="value">{{avg_dom}}</div><div class="label">Avg Days on Market</div></div>
    <div class="kpi"><div class="value">{{close_to_list}}</div><div class="label">Close-to-List %</div></div>
  </div>
</div>
<div class="section">
  <table>
    <thead><tr><th>City</th><th>Address</th><th>Price</th><th>Beds</th><th>Baths</th><th>Sqft</th><th>DOM</th><th>Close Date</th></tr></thead>
    <tbody>
<!-- LISTINGS_TABLE_ROWS -->
    </tbody>
  </table>
</div>
` + defaultFoot

const defaultPriceBandsTemplate = defaultHead + `<div class="section">
  <div class="kpis">
    <div class="kpi"><div class="value">{{total_listings}}</div><div class="label">Total Listings</div></div>
    <div class="kpi"><div class="value">{{price_range}}</div><div class="label">Price Range</div></div>
    <div class="kpi"><div class="value">{{hottest_band}}</div><div class="label">Fastest-Moving Band</div></div>
    <div class="kpi"><div class="value">{{slowest_band}}</div><div class="label">Slowest-Moving Band</div></div>
  </div>
</div>
<div class="section">
<!-- PRICE_BANDS_CONTENT -->
</div>
` + defaultFoot

// DefaultTemplateHTML returns the built-in template for a report type, or ""
// for an unknown type.
func DefaultTemplateHTML(reportType string) string {
	switch reportType {
	case consts.ReportTypeMarketSnapshot:
		return defaultSnapshotTemplate
	case consts.ReportTypeNewListings:
		return defaultNewListingsTemplate
	case consts.ReportTypeInventory:
		return defaultInventoryTemplate
	case consts.ReportTypeClosedSales:
		return defaultClosedSalesTemplate
	case consts.ReportTypePriceBands:
		return defaultPriceBandsTemplate
	default:
		return ""
	}
}
