package analytics

import (
	"sort"
	"time"
)

// Range is a fixed calendar window used to scope analytics queries.
type Range string

const (
	Range7D  Range = "7d"
	Range10D Range = "10d"
	Range1M  Range = "1m"
	Range3M  Range = "3m"
	Range6M  Range = "6m"
	Range1Y  Range = "1y"
)

// Ranges lists the supported windows in display order.
var Ranges = []Range{Range7D, Range10D, Range1M, Range3M, Range6M, Range1Y}

var rangeLabels = map[Range]string{
	Range7D:  "Last 7 days",
	Range10D: "Last 10 days",
	Range1M:  "Last month",
	Range3M:  "Last 3 months",
	Range6M:  "Last 6 months",
	Range1Y:  "Last year",
}

// Valid reports whether r is one of the six supported windows.
func (r Range) Valid() bool {
	_, ok := rangeLabels[r]
	return ok
}

// Label returns the human-readable window name.
func (r Range) Label() string {
	if label, ok := rangeLabels[r]; ok {
		return label
	}
	return string(r)
}

// Query scopes one analytics fetch. Search and CafeID are optional filters;
// when empty they are omitted from the request entirely, never sent as
// empty-string sentinels.
type Query struct {
	Range  Range
	Search string
	CafeID string
}

// Params renders the query as request parameters, omitting absent filters.
func (q Query) Params() map[string]string {
	params := map[string]string{"range": string(q.Range)}
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.CafeID != "" {
		params["cafeId"] = q.CafeID
	}
	return params
}

// Raw wire shapes. Numeric fields arrive as string or number depending on
// backend mood, so they are decoded as interface{} and coerced in Ingest.

type RawSummary struct {
	TotalAmount    interface{} `json:"total_amount"`
	PaidBookings   interface{} `json:"paid_bookings"`
	NormalBookings interface{} `json:"normal_bookings"`
}

type RawChartPoint struct {
	Date         string      `json:"date"`
	PaidAmount   interface{} `json:"paid_amount"`
	NormalAmount interface{} `json:"normal_amount"`
	TotalAmount  interface{} `json:"total_amount"`
	PaidCount    interface{} `json:"paid_count"`
	NormalCount  interface{} `json:"normal_count"`
}

type RawRow struct {
	BookingID            string      `json:"booking_id"`
	BookingDate          string      `json:"booking_date"`
	BookingStartTime     string      `json:"booking_start_time"`
	BookingStatus        string      `json:"booking_status"`
	AdvancePaid          bool        `json:"advance_paid"`
	TransactionAmount    interface{} `json:"transaction_amount"`
	RazorpayOrderID      string      `json:"razorpay_order_id"`
	RazorpayPaymentID    string      `json:"razorpay_payment_id"`
	TransactionID        string      `json:"transaction_id"`
	UserName             string      `json:"user_name"`
	UserMobileNo         string      `json:"user_mobile_no"`
	CafeID               string      `json:"cafe_id"`
	CafeName             string      `json:"cafe_name"`
	PaymentMode          string      `json:"payment_mode"`
	TransactionStatus    string      `json:"transaction_status"`
	TransactionCreatedAt string      `json:"transaction_created_at"`
}

type RawLeaderboardEntry struct {
	CafeID           string      `json:"cafe_id"`
	CafeName         string      `json:"cafe_name"`
	TotalAmount      interface{} `json:"total_amount"`
	Transactions     interface{} `json:"transactions_count"`
	OnlinePayments   interface{} `json:"online_payments"`
	OnlinePercentage interface{} `json:"online_percentage"`
}

// RawResult is the analytics payload exactly as the backend sends it.
type RawResult struct {
	Summary     *RawSummary           `json:"summary"`
	Chart       []RawChartPoint       `json:"chart"`
	Rows        []RawRow              `json:"rows"`
	Leaderboard []RawLeaderboardEntry `json:"leaderboard"`
}

// Clean, display-ready shapes. All numerics are finite after Ingest.

type Summary struct {
	TotalAmount    float64
	PaidBookings   int
	NormalBookings int
}

type ChartPoint struct {
	Date         string
	PaidAmount   float64
	NormalAmount float64
	TotalAmount  float64
	PaidCount    int
	NormalCount  int
}

// Row is one booking/transaction snapshot. Read-only once ingested.
type Row struct {
	BookingID            string
	BookingDate          string
	BookingStartTime     string
	BookingStatus        string
	AdvancePaid          bool
	Amount               float64
	RazorpayOrderID      string
	RazorpayPaymentID    string
	TransactionID        string
	UserName             string
	UserMobileNo         string
	CafeID               string
	CafeName             string
	PaymentMode          string
	TransactionStatus    string
	TransactionCreatedAt string
}

// PaidLabel renders the advance-paid flag the way exports show it.
func (r Row) PaidLabel() string {
	if r.AdvancePaid {
		return "Paid"
	}
	return "Normal"
}

type LeaderboardEntry struct {
	Rank             int
	CafeID           string
	CafeName         string
	TotalAmount      float64
	Transactions     int
	OnlinePayments   int
	OnlinePercentage float64
}

// Result is a fully coerced analytics payload.
type Result struct {
	Summary     *Summary
	Chart       []ChartPoint
	Rows        []Row
	Leaderboard []LeaderboardEntry
}

// Ingest coerces every numeric field of a raw payload and sorts the chart
// ascending by date. A nil raw payload yields an empty (zero-row) result,
// which is a valid outcome, not an error.
func Ingest(raw *RawResult) *Result {
	res := &Result{}
	if raw == nil {
		return res
	}

	if raw.Summary != nil {
		res.Summary = &Summary{
			TotalAmount:    ToFiniteNumber(raw.Summary.TotalAmount, 0),
			PaidBookings:   ToCount(raw.Summary.PaidBookings),
			NormalBookings: ToCount(raw.Summary.NormalBookings),
		}
	}

	res.Chart = make([]ChartPoint, 0, len(raw.Chart))
	for _, p := range raw.Chart {
		res.Chart = append(res.Chart, ChartPoint{
			Date:         p.Date,
			PaidAmount:   ToFiniteNumber(p.PaidAmount, 0),
			NormalAmount: ToFiniteNumber(p.NormalAmount, 0),
			TotalAmount:  ToFiniteNumber(p.TotalAmount, 0),
			PaidCount:    ToCount(p.PaidCount),
			NormalCount:  ToCount(p.NormalCount),
		})
	}
	sort.SliceStable(res.Chart, func(i, j int) bool {
		return chartDateBefore(res.Chart[i].Date, res.Chart[j].Date)
	})

	res.Rows = make([]Row, 0, len(raw.Rows))
	for _, r := range raw.Rows {
		res.Rows = append(res.Rows, Row{
			BookingID:            r.BookingID,
			BookingDate:          r.BookingDate,
			BookingStartTime:     r.BookingStartTime,
			BookingStatus:        r.BookingStatus,
			AdvancePaid:          r.AdvancePaid,
			Amount:               ToFiniteNumber(r.TransactionAmount, 0),
			RazorpayOrderID:      r.RazorpayOrderID,
			RazorpayPaymentID:    r.RazorpayPaymentID,
			TransactionID:        r.TransactionID,
			UserName:             r.UserName,
			UserMobileNo:         r.UserMobileNo,
			CafeID:               r.CafeID,
			CafeName:             r.CafeName,
			PaymentMode:          r.PaymentMode,
			TransactionStatus:    r.TransactionStatus,
			TransactionCreatedAt: r.TransactionCreatedAt,
		})
	}

	res.Leaderboard = make([]LeaderboardEntry, 0, len(raw.Leaderboard))
	for i, e := range raw.Leaderboard {
		res.Leaderboard = append(res.Leaderboard, LeaderboardEntry{
			Rank:             i + 1,
			CafeID:           e.CafeID,
			CafeName:         e.CafeName,
			TotalAmount:      ToFiniteNumber(e.TotalAmount, 0),
			Transactions:     ToCount(e.Transactions),
			OnlinePayments:   ToCount(e.OnlinePayments),
			OnlinePercentage: ToFiniteNumber(e.OnlinePercentage, 0),
		})
	}

	return res
}

var chartDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseChartDate(s string) (time.Time, bool) {
	for _, layout := range chartDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func chartDateBefore(a, b string) bool {
	ta, okA := parseChartDate(a)
	tb, okB := parseChartDate(b)
	if okA && okB {
		return ta.Before(tb)
	}
	return a < b
}

// FormatChartDate renders a chart point date as a short axis label (02 Jan).
func FormatChartDate(s string) string {
	if t, ok := parseChartDate(s); ok {
		return t.Format("02 Jan")
	}
	return s
}
