// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

// Names of the demo sheets.
const (
	MergeData          = "Merge Data"
	TCOSummary         = "TCO Summary"
	BidPriceAnalysis   = "Bid & Price Analysis"
	TransposedSuffix   = " Transposed"
	MergeTransposed    = "Merge" + TransposedSuffix
	SummaryTransposed  = TCOSummary + TransposedSuffix
	AnalysisTransposed = BidPriceAnalysis + TransposedSuffix
)

// DemoFileName returns the default download file name of the demo workbook.
func DemoFileName(transposed bool) string {
	if transposed {
		return "super botton - transpose.xlsx"
	}
	return "super botton - original.xlsx"
}

// DemoSheets returns the demo sheet names in their default order.
func DemoSheets(transposed bool) []string {
	if transposed {
		return []string{MergeTransposed, SummaryTransposed, AnalysisTransposed}
	}
	return []string{MergeData, TCOSummary, BidPriceAnalysis}
}

// DemoSources returns the illustrative comparison of three vendors
// over three scopes and three regions.
func DemoSources(transposed bool) map[string]Source {
	if transposed {
		return map[string]Source{
			MergeTransposed:    {Table: demoMergeTransposed(), Category: TotalRows},
			SummaryTransposed:  {Table: demoSummaryTransposed(), Category: TotalRows},
			AnalysisTransposed: {Table: demoAnalysisTransposed(), Category: VendorRank},
		}
	}
	return map[string]Source{
		MergeData:        {Table: demoMerge(), Category: TotalRows},
		TCOSummary:       {Table: demoSummary(), Category: TotalRows},
		BidPriceAnalysis: {Table: demoAnalysis(), Category: VendorRank},
	}
}

func demoMerge() *Table {
	return MustTable([]string{"VENDOR", "SCOPE TOTAL PRICE (IDR)", "REGION 1", "REGION 2", "REGION 3", "TOTAL"},
		[]any{"Vendor A", "MBTS", 800, 250, 300, 1350},
		[]any{"Vendor A", "Reposition", 750, 250, 260, 1260},
		[]any{"Vendor A", "Reroute", 1140, 380, 390, 1910},
		[]any{"Vendor A", "TOTAL", 2690, 880, 950, 4520},
		[]any{"Vendor B", "MBTS", 1250, 400, 450, 2100},
		[]any{"Vendor B", "Reposition", 650, 200, 220, 1070},
		[]any{"Vendor B", "Reroute", 810, 270, 280, 1360},
		[]any{"Vendor B", "TOTAL", 2710, 870, 950, 4530},
		[]any{"Vendor C", "MBTS", 900, 300, 320, 1520},
		[]any{"Vendor C", "Reposition", 980, 320, 350, 1650},
		[]any{"Vendor C", "Reroute", 720, 230, 240, 1190},
		[]any{"Vendor C", "TOTAL", 2600, 850, 910, 4360},
	)
}

func demoMergeTransposed() *Table {
	return MustTable([]string{"VENDOR", "REGION", "MBTS", "Reposition", "Reroute", "TOTAL"},
		[]any{"Vendor A", "REGION 1", 800, 750, 1140, 2690},
		[]any{"Vendor A", "REGION 2", 250, 250, 380, 880},
		[]any{"Vendor A", "REGION 3", 300, 260, 390, 950},
		[]any{"Vendor A", "TOTAL", 1350, 1260, 1910, 4520},
		[]any{"Vendor B", "REGION 1", 1250, 650, 810, 2710},
		[]any{"Vendor B", "REGION 2", 400, 200, 270, 870},
		[]any{"Vendor B", "REGION 3", 450, 220, 280, 950},
		[]any{"Vendor B", "TOTAL", 2100, 1070, 1360, 4530},
		[]any{"Vendor C", "REGION 1", 900, 980, 720, 2600},
		[]any{"Vendor C", "REGION 2", 300, 320, 230, 850},
		[]any{"Vendor C", "REGION 3", 320, 350, 240, 910},
		[]any{"Vendor C", "TOTAL", 1520, 1650, 1190, 4360},
	)
}

func demoSummary() *Table {
	return MustTable([]string{"SCOPE TOTAL PRICE (IDR)", "VENDOR A", "VENDOR B", "VENDOR C"},
		[]any{"MBTS", 1350, 2100, 1520},
		[]any{"Reposition", 1260, 1070, 1650},
		[]any{"Reroute", 1910, 1360, 1190},
		[]any{"TOTAL", 4520, 4530, 4360},
	)
}

func demoSummaryTransposed() *Table {
	return MustTable([]string{"REGION", "VENDOR A", "VENDOR B", "VENDOR C"},
		[]any{"REGION 1", 2690, 2710, 2600},
		[]any{"REGION 2", 880, 870, 850},
		[]any{"REGION 3", 950, 950, 910},
		[]any{"TOTAL", 4520, 4530, 4360},
	)
}

var analysisColumns = []string{
	"VENDOR A", "VENDOR B", "VENDOR C",
	"1st Lowest", FirstVendorColumn, "2nd Lowest", SecondVendorColumn,
	"Gap 1 to 2 (%)", "Median Price",
	"VENDOR A to Median (%)", "VENDOR B to Median (%)", "VENDOR C to Median (%)",
}

func demoAnalysis() *Table {
	return MustTable(append([]string{"REGION", "SCOPE TOTAL PRICE (IDR)"}, analysisColumns...),
		[]any{"REGION 1", "MBTS", 800, 1250, 900, 800, "VENDOR A", 900, "VENDOR C", "12.5%", 900, "-11.1%", "+38.9%", "+0.0%"},
		[]any{"REGION 1", "Reposition", 750, 650, 980, 650, "VENDOR B", 750, "VENDOR A", "15.4%", 750, "+0.0%", "-13.3%", "+30.7%"},
		[]any{"REGION 1", "Reroute", 1140, 810, 720, 720, "VENDOR C", 810, "VENDOR B", "12.5%", 810, "+40.7%", "+0.0%", "-11.1%"},
		[]any{"REGION 2", "MBTS", 250, 400, 300, 250, "VENDOR A", 300, "VENDOR C", "20.0%", 300, "-16.7%", "+33.3%", "+0.0%"},
		[]any{"REGION 2", "Reposition", 250, 200, 320, 200, "VENDOR B", 250, "VENDOR A", "25.0%", 250, "+0.0%", "-20.0%", "+28.0%"},
		[]any{"REGION 2", "Reroute", 380, 270, 230, 230, "VENDOR C", 270, "VENDOR B", "17.4%", 270, "+40.7%", "+0.0%", "-14.8%"},
		[]any{"REGION 3", "MBTS", 300, 450, 320, 300, "VENDOR A", 320, "VENDOR C", "6.7%", 320, "-6.2%", "+40.6%", "+0.0%"},
		[]any{"REGION 3", "Reposition", 260, 220, 350, 220, "VENDOR B", 260, "VENDOR A", "18.2%", 260, "+0.0%", "-15.4%", "+34.6%"},
		[]any{"REGION 3", "Reroute", 390, 280, 240, 240, "VENDOR C", 280, "VENDOR B", "16.7%", 280, "+39.3%", "+0.0%", "-14.3%"},
	)
}

func demoAnalysisTransposed() *Table {
	return MustTable(append([]string{"SCOPE", "REGION"}, analysisColumns...),
		[]any{"MBTS", "REGION 1", 800, 1250, 900, 800, "VENDOR A", 900, "VENDOR C", "12.5%", 900, "-11.1%", "+38.9%", "+0.0%"},
		[]any{"MBTS", "REGION 2", 250, 400, 300, 250, "VENDOR A", 300, "VENDOR C", "20.0%", 300, "-16.7%", "+33.3%", "+0.0%"},
		[]any{"MBTS", "REGION 3", 300, 450, 320, 300, "VENDOR A", 320, "VENDOR C", "6.7%", 320, "-6.2%", "+40.6%", "+0.0%"},
		[]any{"Reposition", "REGION 1", 750, 650, 980, 650, "VENDOR B", 750, "VENDOR A", "15.4%", 750, "+0.0%", "-13.3%", "+30.7%"},
		[]any{"Reposition", "REGION 2", 250, 200, 320, 200, "VENDOR B", 250, "VENDOR A", "25.0%", 250, "+0.0%", "-20.0%", "+28.0%"},
		[]any{"Reposition", "REGION 3", 260, 220, 350, 220, "VENDOR B", 260, "VENDOR A", "18.2%", 260, "+0.0%", "-15.4%", "+34.6%"},
		[]any{"Reroute", "REGION 1", 1140, 810, 720, 720, "VENDOR C", 810, "VENDOR B", "12.5%", 810, "+40.7%", "+0.0%", "-11.1%"},
		[]any{"Reroute", "REGION 2", 380, 270, 230, 230, "VENDOR C", 270, "VENDOR B", "17.4%", 270, "+40.7%", "+0.0%", "-14.8%"},
		[]any{"Reroute", "REGION 3", 390, 280, 240, 240, "VENDOR C", 280, "VENDOR B", "16.7%", 280, "+39.3%", "+0.0%", "-14.3%"},
	)
}
