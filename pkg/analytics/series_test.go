package analytics

import "testing"

// TestComputeSeriesTotalsEmpty validates an empty chart returns all zeros
func TestComputeSeriesTotalsEmpty(t *testing.T) {
	totals := ComputeSeriesTotals(nil)

	if totals.PaidAmount != 0 || totals.NormalAmount != 0 || totals.TotalAmount != 0 {
		t.Errorf("Empty chart amounts should be zero, got %+v", totals)
	}
	if totals.PaidCount != 0 || totals.NormalCount != 0 {
		t.Errorf("Empty chart counts should be zero, got %+v", totals)
	}
}

// TestComputeSeriesTotals validates per-series sums
func TestComputeSeriesTotals(t *testing.T) {
	chart := []ChartPoint{
		{Date: "2026-08-01", PaidAmount: 100, NormalAmount: 50, TotalAmount: 150, PaidCount: 2, NormalCount: 1},
		{Date: "2026-08-02", PaidAmount: 200, NormalAmount: 25, TotalAmount: 225, PaidCount: 3, NormalCount: 2},
		{Date: "2026-08-03"},
	}

	totals := ComputeSeriesTotals(chart)

	if totals.PaidAmount != 300 {
		t.Errorf("PaidAmount = %v, want 300", totals.PaidAmount)
	}
	if totals.NormalAmount != 75 {
		t.Errorf("NormalAmount = %v, want 75", totals.NormalAmount)
	}
	if totals.TotalAmount != 375 {
		t.Errorf("TotalAmount = %v, want 375", totals.TotalAmount)
	}
	if totals.PaidCount != 5 {
		t.Errorf("PaidCount = %d, want 5", totals.PaidCount)
	}
	if totals.NormalCount != 3 {
		t.Errorf("NormalCount = %d, want 3", totals.NormalCount)
	}
}
