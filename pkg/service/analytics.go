package service

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/krownhq/krown-cli/pkg/analytics"
	"github.com/krownhq/krown-cli/pkg/api"
	"github.com/krownhq/krown-cli/pkg/config"
	clierrors "github.com/krownhq/krown-cli/pkg/errors"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// AnalyticsService drives the bookings & payments dashboard
type AnalyticsService struct {
	agg *analytics.Aggregator
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		agg: analytics.New(api.AnalyticsFetcher{}),
	}
}

// Show fetches and renders the dashboard for one range/search/cafe scope
func (as *AnalyticsService) Show(rangeStr, search, cafeID string, page int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	q := analytics.Query{Range: analytics.Range(rangeStr), Search: search, CafeID: cafeID}
	result, err := as.agg.Fetch(q)
	if err != nil {
		if clierrors.IsValidation(err) {
			formatter.PrintError("%s", clierrors.FormatError(err))
			return err
		}
		// Stale-while-error: keep showing the last good data under a warning
		if stale := as.agg.Result(); stale != nil {
			formatter.PrintWarning("%s", api.Message(err, "Failed to refresh analytics"))
			formatter.PrintWarning("Showing previously loaded data")
			result = stale
		} else {
			formatter.PrintError("%s", api.Message(err, "Failed to load analytics"))
			return err
		}
	}

	if page > 0 {
		as.agg.SetPage(page)
	}

	as.render(q, result)
	return nil
}

func (as *AnalyticsService) render(q analytics.Query, result *analytics.Result) {
	fmt.Printf("\n%s\n\n", formatter.Bold.Sprintf("Bookings & Payments — %s", q.Range.Label()))

	if result.Summary != nil {
		formatter.PrintKeyValue(map[string]interface{}{
			"Total Amount":    analytics.FormatINR(result.Summary.TotalAmount),
			"Paid Bookings":   result.Summary.PaidBookings,
			"Normal Bookings": result.Summary.NormalBookings,
		})
		fmt.Printf("\n")
	}

	if len(result.Chart) > 0 {
		totals := analytics.ComputeSeriesTotals(result.Chart)
		formatter.PrintInfo("Revenue by day (paid %s, normal %s)",
			analytics.FormatINR(totals.PaidAmount), analytics.FormatINR(totals.NormalAmount))

		chartRows := make([][]string, 0, len(result.Chart))
		for _, p := range result.Chart {
			chartRows = append(chartRows, []string{
				analytics.FormatChartDate(p.Date),
				analytics.FormatINR(p.PaidAmount),
				analytics.FormatINR(p.NormalAmount),
				analytics.FormatINR(p.TotalAmount),
			})
		}
		formatter.PrintTable([]string{"Date", "Paid", "Normal", "Total"}, chartRows)
		fmt.Printf("\n")
	}

	if len(result.Leaderboard) > 0 {
		formatter.PrintInfo("Top cafés")
		lbRows := make([][]string, 0, len(result.Leaderboard))
		for _, e := range result.Leaderboard {
			lbRows = append(lbRows, []string{
				strconv.Itoa(e.Rank),
				e.CafeName,
				analytics.FormatINR(e.TotalAmount),
				strconv.Itoa(e.Transactions),
				fmt.Sprintf("%.1f%%", e.OnlinePercentage),
			})
		}
		formatter.PrintTable([]string{"#", "Café", "Revenue", "Txns", "Online"}, lbRows)
		fmt.Printf("\n")
	}

	rows := as.agg.CurrentRows()
	if len(rows) == 0 {
		fmt.Println("No bookings in this window.")
		return
	}

	bookingRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		bookingRows = append(bookingRows, []string{
			r.BookingID,
			r.BookingDate,
			r.UserName,
			r.CafeName,
			r.PaidLabel(),
			analytics.FormatINR(r.Amount),
			r.TransactionStatus,
		})
	}
	formatter.PrintTable(
		[]string{"Booking", "Date", "Customer", "Café", "Type", "Amount", "Status"},
		bookingRows,
	)

	total := len(result.Rows)
	fmt.Printf("\nPage %d of %d (%d bookings)\n",
		as.agg.Page(), analytics.TotalPages(total, analytics.PageSize), total)
}

// Watch is an interactive search loop. Each keystroke-equivalent (a typed
// line) reschedules the fetch, so rapid edits collapse into one request.
func (as *AnalyticsService) Watch(rangeStr, cafeID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	r := analytics.Range(rangeStr)
	if !r.Valid() {
		err := clierrors.ValidationError("range", "must be one of 7d, 10d, 1m, 3m, 6m, 1y")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	fmt.Println("Type a search term and press enter (empty clears, 'q' quits):")
	scanner := bufio.NewScanner(os.Stdin)
	done := make(chan struct{}, 1)

	for {
		fmt.Print("search> ")
		if !scanner.Scan() {
			break
		}
		term := strings.TrimSpace(scanner.Text())
		if term == "q" {
			break
		}

		// Drop a completion signal left over from a timed-out fetch
		select {
		case <-done:
		default:
		}

		q := analytics.Query{Range: r, Search: term, CafeID: cafeID}
		as.agg.FetchDebounced(q, func(result *analytics.Result, err error) {
			if err != nil {
				formatter.PrintError("%s", api.Message(err, "Failed to load analytics"))
			} else {
				as.render(q, result)
			}
			done <- struct{}{}
		})

		select {
		case <-done:
		case <-time.After(30 * time.Second):
			formatter.PrintWarning("Search timed out")
		}
	}

	as.agg.Stop()
	return scanner.Err()
}

// ExportCSV fetches the scoped bookings and writes them as a CSV file
func (as *AnalyticsService) ExportCSV(rangeStr, search, cafeID, outPath string) error {
	result, err := as.fetchForExport(rangeStr, search, cafeID)
	if err != nil {
		return err
	}

	if len(result.Rows) == 0 {
		formatter.PrintWarning("No bookings to export")
		return nil
	}

	if outPath == "" {
		outPath = exportPath("krown-bookings", rangeStr, "csv")
	}

	f, err := os.Create(outPath)
	if err != nil {
		formatter.PrintError("Failed to create export file: %v", err)
		return err
	}
	defer f.Close()

	if err := analytics.ExportCSV(f, result.Rows); err != nil {
		formatter.PrintError("Export failed: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Exported %d bookings to %s", len(result.Rows), outPath)
	return nil
}

// ExportPrintable fetches the scoped bookings and writes the print-ready
// HTML document
func (as *AnalyticsService) ExportPrintable(rangeStr, search, cafeID, outPath string) error {
	result, err := as.fetchForExport(rangeStr, search, cafeID)
	if err != nil {
		return err
	}

	if len(result.Rows) == 0 {
		formatter.PrintWarning("No bookings to export")
		return nil
	}

	if outPath == "" {
		outPath = exportPath("krown-bookings", rangeStr, "html")
	}

	f, err := os.Create(outPath)
	if err != nil {
		formatter.PrintError("Failed to create export file: %v", err)
		return err
	}
	defer f.Close()

	if err := analytics.ExportPrintable(f, result.Rows, result.Summary); err != nil {
		formatter.PrintError("Export failed: %v", err)
		return err
	}

	exported := len(result.Rows)
	if exported > analytics.PrintableRowCap {
		exported = analytics.PrintableRowCap
		formatter.PrintWarning("Document capped at %d bookings", analytics.PrintableRowCap)
	}
	formatter.PrintSuccess("✓ Exported %d bookings to %s", exported, outPath)
	formatter.PrintInfo("Open the file in a browser to print")
	return nil
}

func (as *AnalyticsService) fetchForExport(rangeStr, search, cafeID string) (*analytics.Result, error) {
	if _, err := requireAuth(); err != nil {
		return nil, err
	}

	logger.Debug("Fetching analytics for export", "range", rangeStr, "search", search)
	result, err := as.agg.Fetch(analytics.Query{
		Range:  analytics.Range(rangeStr),
		Search: search,
		CafeID: cafeID,
	})
	if err != nil {
		if clierrors.IsValidation(err) {
			formatter.PrintError("%s", clierrors.FormatError(err))
		} else {
			formatter.PrintError("%s", api.Message(err, "Failed to load analytics"))
		}
		return nil, err
	}
	return result, nil
}

func exportPath(prefix, rangeStr, ext string) string {
	name := fmt.Sprintf("%s-%s-%s.%s", prefix, rangeStr, time.Now().Format("20060102-150405"), ext)
	return filepath.Join(config.GetString("export.dir"), name)
}
