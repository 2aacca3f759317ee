package analytics

import (
	"sync"

	"github.com/krownhq/krown-cli/pkg/errors"
)

// Fetcher is the backend collaborator that retrieves a range-scoped
// analytics payload. Implementations issue exactly one read request per
// call; the aggregator adds no retries.
type Fetcher interface {
	FetchAnalytics(q Query) (*RawResult, error)
}

// Aggregator turns a query into display-ready aggregates, manages the
// pagination cursor over the row set, and debounces live search input.
// It is stateless between query changes except for the cursor and the
// last fetched result, which stays visible when a fetch fails
// (stale-while-error).
type Aggregator struct {
	fetcher  Fetcher
	debounce *Debouncer

	mu      sync.Mutex
	gen     uint64
	query   Query
	hasRun  bool
	result  *Result
	lastErr error
	page    int
}

// New creates an aggregator over the given fetcher.
func New(fetcher Fetcher) *Aggregator {
	return &Aggregator{
		fetcher:  fetcher,
		debounce: NewDebouncer(SearchDebounceDelay),
		page:     1,
	}
}

// Fetch issues one backend request for q and ingests the response. On error
// the previous result is kept and returned alongside the error. A completion
// that has been superseded by a newer Fetch is ignored (last-response-wins);
// in-flight requests are never cancelled.
func (a *Aggregator) Fetch(q Query) (*Result, error) {
	if !q.Range.Valid() {
		return a.Result(), errors.ValidationError("range", "must be one of 7d, 10d, 1m, 3m, 6m, 1y")
	}

	a.mu.Lock()
	queryChanged := !a.hasRun || q != a.query
	a.query = q
	a.hasRun = true
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	raw, err := a.fetcher.FetchAnalytics(q)

	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen {
		// A newer fetch was issued while this one was in flight.
		return a.result, a.lastErr
	}

	if err != nil {
		a.lastErr = err
		return a.result, err
	}

	res := Ingest(raw)

	rowCountChanged := a.result == nil || len(a.result.Rows) != len(res.Rows)
	if queryChanged || rowCountChanged {
		a.page = 1
	}

	a.result = res
	a.lastErr = nil
	a.page = ClampPage(a.page, TotalPages(len(res.Rows), PageSize))
	return res, nil
}

// FetchDebounced schedules a Fetch after the search quiet period. Rapid
// successive calls coalesce; only the last query is fetched. The callback
// receives the Fetch outcome.
func (a *Aggregator) FetchDebounced(q Query, done func(*Result, error)) {
	a.debounce.Call(func() {
		res, err := a.Fetch(q)
		if done != nil {
			done(res, err)
		}
	})
}

// Stop cancels any pending debounced fetch.
func (a *Aggregator) Stop() {
	a.debounce.Stop()
}

// Result returns the last successfully ingested payload, which may be stale
// after a failed fetch. Nil until the first success.
func (a *Aggregator) Result() *Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Err returns the error from the most recent fetch cycle, nil on success.
func (a *Aggregator) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Page returns the current 1-based pagination cursor.
func (a *Aggregator) Page() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// SetPage moves the cursor, clamping into the valid page span of the
// current result.
func (a *Aggregator) SetPage(page int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	rowCount := 0
	if a.result != nil {
		rowCount = len(a.result.Rows)
	}
	a.page = ClampPage(page, TotalPages(rowCount, PageSize))
	return a.page
}

// CurrentRows returns the row slice for the current page.
func (a *Aggregator) CurrentRows() []Row {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.result == nil {
		return nil
	}
	return Paginate(a.result.Rows, a.page, PageSize)
}
