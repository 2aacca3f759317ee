package analytics

import (
	"errors"
	"testing"
	"time"

	clierrors "github.com/krownhq/krown-cli/pkg/errors"
)

type stubFetcher struct {
	result *RawResult
	err    error
	calls  int
	gotQ   Query
}

func (s *stubFetcher) FetchAnalytics(q Query) (*RawResult, error) {
	s.calls++
	s.gotQ = q
	return s.result, s.err
}

func rawWithRows(n int) *RawResult {
	raw := &RawResult{Summary: &RawSummary{TotalAmount: "1000", PaidBookings: float64(1), NormalBookings: float64(1)}}
	for i := 0; i < n; i++ {
		raw.Rows = append(raw.Rows, RawRow{BookingID: "b", TransactionAmount: "10"})
	}
	return raw
}

// TestFetchSuccess validates a normal fetch cycle
func TestFetchSuccess(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(3)}
	agg := New(fetcher)

	res, err := agg.Fetch(Query{Range: Range7D})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(res.Rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(res.Rows))
	}
	if fetcher.calls != 1 {
		t.Errorf("Fetch should issue exactly one request, issued %d", fetcher.calls)
	}
	if agg.Err() != nil {
		t.Errorf("Err should be nil after success, got %v", agg.Err())
	}
}

// TestFetchInvalidRange validates local rejection before any network call
func TestFetchInvalidRange(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(1)}
	agg := New(fetcher)

	_, err := agg.Fetch(Query{Range: "30d"})
	if err == nil {
		t.Fatal("Invalid range should be rejected")
	}
	if !clierrors.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Error("Invalid range must never reach the backend")
	}
}

// TestFetchStaleWhileError validates the previous result survives a failure
func TestFetchStaleWhileError(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(2)}
	agg := New(fetcher)

	if _, err := agg.Fetch(Query{Range: Range7D}); err != nil {
		t.Fatalf("Seed fetch failed: %v", err)
	}

	fetcher.err = errors.New("backend down")
	res, err := agg.Fetch(Query{Range: Range1M})
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if res == nil || len(res.Rows) != 2 {
		t.Error("Stale result should remain visible after a failed fetch")
	}
	if agg.Err() == nil {
		t.Error("Err should surface the failure")
	}

	// Zero rows is success, not an error
	fetcher.err = nil
	fetcher.result = &RawResult{}
	res, err = agg.Fetch(Query{Range: Range1M})
	if err != nil {
		t.Fatalf("Zero results must not be an error: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Errorf("Expected empty rows, got %d", len(res.Rows))
	}
}

// TestPageResetsOnFilterChange validates the cursor resets even when the old
// page would still be in range by coincidence
func TestPageResetsOnFilterChange(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(45)}
	agg := New(fetcher)

	if _, err := agg.Fetch(Query{Range: Range7D}); err != nil {
		t.Fatal(err)
	}
	agg.SetPage(2)

	// Same row count, different search filter
	if _, err := agg.Fetch(Query{Range: Range7D, Search: "asha"}); err != nil {
		t.Fatal(err)
	}
	if agg.Page() != 1 {
		t.Errorf("Page should reset to 1 on filter change, got %d", agg.Page())
	}
}

// TestPageResetsOnRowCountChange validates the cursor resets with new data
func TestPageResetsOnRowCountChange(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(45)}
	agg := New(fetcher)

	if _, err := agg.Fetch(Query{Range: Range7D}); err != nil {
		t.Fatal(err)
	}
	agg.SetPage(3)

	fetcher.result = rawWithRows(40)
	if _, err := agg.Fetch(Query{Range: Range7D}); err != nil {
		t.Fatal(err)
	}
	if agg.Page() != 1 {
		t.Errorf("Page should reset to 1 on row count change, got %d", agg.Page())
	}
}

// TestSetPageClamps validates cursor clamping against the current result
func TestSetPageClamps(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(20)}
	agg := New(fetcher)

	if _, err := agg.Fetch(Query{Range: Range7D}); err != nil {
		t.Fatal(err)
	}

	if got := agg.SetPage(99); got != 2 {
		t.Errorf("SetPage(99) should clamp to 2, got %d", got)
	}
	if got := agg.SetPage(0); got != 1 {
		t.Errorf("SetPage(0) should clamp to 1, got %d", got)
	}
}

// TestCurrentRows validates the paginated view
func TestCurrentRows(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(20)}
	agg := New(fetcher)

	if _, err := agg.Fetch(Query{Range: Range7D}); err != nil {
		t.Fatal(err)
	}

	if got := len(agg.CurrentRows()); got != PageSize {
		t.Errorf("Page 1 should hold %d rows, got %d", PageSize, got)
	}
	agg.SetPage(2)
	if got := len(agg.CurrentRows()); got != 5 {
		t.Errorf("Page 2 should hold 5 rows, got %d", got)
	}
}

// TestFetchDebounced validates the quiet-period fetch path
func TestFetchDebounced(t *testing.T) {
	fetcher := &stubFetcher{result: rawWithRows(1)}
	agg := New(fetcher)
	agg.debounce = NewDebouncer(20 * time.Millisecond)

	done := make(chan struct{})
	agg.FetchDebounced(Query{Range: Range7D, Search: "a"}, nil)
	agg.FetchDebounced(Query{Range: Range7D, Search: "as"}, nil)
	agg.FetchDebounced(Query{Range: Range7D, Search: "asha"}, func(res *Result, err error) {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Debounced fetch never completed")
	}

	if fetcher.calls != 1 {
		t.Errorf("Rapid input should coalesce to one fetch, got %d", fetcher.calls)
	}
	if fetcher.gotQ.Search != "asha" {
		t.Errorf("Last query should win, backend saw search=%q", fetcher.gotQ.Search)
	}
}

// TestQueryParamsPassThrough validates filters reach the fetcher verbatim
func TestQueryParamsPassThrough(t *testing.T) {
	fetcher := &stubFetcher{result: &RawResult{}}
	agg := New(fetcher)

	q := Query{Range: Range6M, Search: "  spaced  ", CafeID: "cafe-7"}
	if _, err := agg.Fetch(q); err != nil {
		t.Fatal(err)
	}
	if fetcher.gotQ != q {
		t.Errorf("Query should pass through verbatim, got %+v", fetcher.gotQ)
	}
}
