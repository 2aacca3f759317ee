package analytics

// SeriesTotals holds per-series sums across all chart points, used to render
// toggleable single-series summaries.
type SeriesTotals struct {
	PaidAmount   float64
	NormalAmount float64
	TotalAmount  float64
	PaidCount    int
	NormalCount  int
}

// ComputeSeriesTotals sums each recognized series over the chart. An empty
// chart yields all zeros.
func ComputeSeriesTotals(chart []ChartPoint) SeriesTotals {
	var totals SeriesTotals
	for _, p := range chart {
		totals.PaidAmount += p.PaidAmount
		totals.NormalAmount += p.NormalAmount
		totals.TotalAmount += p.TotalAmount
		totals.PaidCount += p.PaidCount
		totals.NormalCount += p.NormalCount
	}
	return totals
}
