package render

// Sample report data used by the branding preview generators. The fixture is
// fully populated (including report_date) so preview output is deterministic.
var sampleListings = []Listing{
	{
		Address: "412 Juniper Hollow Dr", City: "Crestwood Falls",
		ListPrice: fp(825000), ClosePrice: fp(812500),
		Beds: fp(4), Baths: fp(3), Sqft: fp(2850), DaysOnMarket: fp(12),
		Status: "Closed", ListDate: "2025-05-02", CloseDate: "2025-06-10",
		PhotoURL: "https://cdn.trendyreports.example/sample/juniper-hollow.jpg",
	},
	{
		Address: "88 Larkspur Ln", City: "Crestwood Falls",
		ListPrice: fp(649000),
		Beds:      fp(3), Baths: fp(2.5), Sqft: fp(2100), DaysOnMarket: fp(34),
		Status: "Active", ListDate: "2025-05-18",
		PhotoURL: "https://cdn.trendyreports.example/sample/larkspur.jpg",
	},
	{
		Address: "1501 Meridian Ct", City: "Crestwood Falls",
		ListPrice: fp(1150000),
		Beds:      fp(5), Baths: fp(4), Sqft: fp(4200), DaysOnMarket: fp(61),
		Status: "Active", ListDate: "2025-04-21",
	},
	{
		Address: "27 Quarry Bend", City: "Crestwood Falls",
		ListPrice: fp(489000), ClosePrice: fp(495000),
		Beds: fp(2), Baths: fp(2), Sqft: fp(1450), DaysOnMarket: fp(8),
		Status: "Closed", ListDate: "2025-05-28", CloseDate: "2025-06-22",
		PhotoURL: "https://cdn.trendyreports.example/sample/quarry-bend.jpg",
	},
	{
		Address: "960 Aspen Gate Way", City: "Crestwood Falls",
		ListPrice: fp(735000),
		Beds:      fp(4), Baths: fp(3), Sqft: fp(2600), DaysOnMarket: fp(22),
		Status: "Pending", ListDate: "2025-06-01",
	},
}

var samplePriceBands = []PriceBand{
	{
		Label: "Under $500K", Count: 45,
		MedianPrice: fp(437000), AvgDOM: fp(21), AvgPPSF: fp(298),
		Listings: []Listing{{Address: "27 Quarry Bend", ListPrice: fp(489000), Status: "Closed"}},
	},
	{
		Label: "$500K - $900K", Count: 60,
		MedianPrice: fp(692000), AvgDOM: fp(17), AvgPPSF: fp(312),
		Listings: []Listing{
			{Address: "88 Larkspur Ln", ListPrice: fp(649000), Status: "Active"},
			{Address: "412 Juniper Hollow Dr", ListPrice: fp(825000), Status: "Closed"},
		},
	},
	{
		Label: "$900K+", Count: 30,
		MedianPrice: fp(1215000), AvgDOM: fp(44), AvgPPSF: fp(365),
		Listings: []Listing{{Address: "1501 Meridian Ct", ListPrice: fp(1150000), Status: "Active"}},
	},
}

// SampleReportData returns the fixture payload for the given report type.
// All report types share one market fixture; the builders pick out the
// pieces they need.
func SampleReportData(reportType string) *ReportResult {
	return &ReportResult{
		City:         "Crestwood Falls",
		LookbackDays: 30,
		PeriodLabel:  "Last 30 days",
		ReportDate:   "June 30, 2025",
		Counts:       Counts{Active: 150, Pending: 25, Closed: 75},
		Metrics: Metrics{
			MedianListPrice:  fp(749000),
			MedianClosePrice: fp(732000),
			AvgDOM:           fp(24),
			AvgPPSF:          fp(318),
		},
		ListingsSample: sampleListings,
		PriceBands:     samplePriceBands,
	}
}
