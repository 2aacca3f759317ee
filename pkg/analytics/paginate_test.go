package analytics

import (
	"fmt"
	"testing"
)

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{BookingID: fmt.Sprintf("b%03d", i)}
	}
	return rows
}

// TestTotalPages validates page count including the empty case
func TestTotalPages(t *testing.T) {
	testCases := []struct {
		rows     int
		pageSize int
		expect   int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{45, 15, 3},
		{46, 15, 4},
	}

	for _, tc := range testCases {
		if got := TotalPages(tc.rows, tc.pageSize); got != tc.expect {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.rows, tc.pageSize, got, tc.expect)
		}
	}
}

// TestPaginateClampsOutOfRange validates out-of-range pages clamp, not error
func TestPaginateClampsOutOfRange(t *testing.T) {
	rows := makeRows(20)

	// Page 0 and negative clamp to first page
	first := Paginate(rows, 0, PageSize)
	if len(first) != PageSize || first[0].BookingID != "b000" {
		t.Errorf("Page 0 should clamp to page 1, got %d rows starting %s", len(first), first[0].BookingID)
	}

	// Beyond last page clamps to last
	last := Paginate(rows, 99, PageSize)
	if len(last) != 5 || last[0].BookingID != "b015" {
		t.Errorf("Page 99 should clamp to last page, got %d rows", len(last))
	}
}

// TestPaginateLossless validates concatenating all pages reconstructs rows
func TestPaginateLossless(t *testing.T) {
	for _, n := range []int{0, 1, 14, 15, 16, 44, 45, 100} {
		rows := makeRows(n)
		total := TotalPages(len(rows), PageSize)

		var rebuilt []Row
		for page := 1; page <= total; page++ {
			slice := Paginate(rows, page, PageSize)
			if len(slice) > PageSize {
				t.Errorf("n=%d page=%d returned %d rows, more than page size", n, page, len(slice))
			}
			rebuilt = append(rebuilt, slice...)
		}

		if len(rebuilt) != n {
			t.Fatalf("n=%d: rebuilt %d rows", n, len(rebuilt))
		}
		for i := range rebuilt {
			if rebuilt[i].BookingID != rows[i].BookingID {
				t.Fatalf("n=%d: order broken at %d", n, i)
			}
		}
	}
}

// TestPaginateEmpty validates empty rows yield an empty single page
func TestPaginateEmpty(t *testing.T) {
	if got := Paginate(nil, 1, PageSize); len(got) != 0 {
		t.Errorf("Empty rows should paginate to empty slice, got %d", len(got))
	}
}

// TestClampPage validates cursor clamping
func TestClampPage(t *testing.T) {
	testCases := []struct {
		page, total, expect int
	}{
		{1, 1, 1},
		{0, 3, 1},
		{-5, 3, 1},
		{2, 3, 2},
		{4, 3, 3},
	}

	for _, tc := range testCases {
		if got := ClampPage(tc.page, tc.total); got != tc.expect {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.total, got, tc.expect)
		}
	}
}
