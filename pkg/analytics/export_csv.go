package analytics

import (
	"io"
	"strconv"
	"strings"
)

// csvHeader is the fixed, human-readable column list of the CSV export.
var csvHeader = []string{
	"Booking Index",
	"Booking ID",
	"Cafe Name",
	"Date",
	"Time",
	"User Name",
	"User Phone",
	"Payment Mode",
	"Advance Paid",
	"Amount",
	"Booking Status",
	"Transaction Status",
	"Order ID",
	"Payment ID",
	"Transaction ID",
}

// ExportCSV writes the row set as UTF-8 CSV. Every field is double-quoted
// with embedded quotes doubled, since names and addresses may contain commas
// or quotes. Rows keep their given order and carry a 1-based booking index
// independent of on-screen pagination. Empty input is a guarded no-op:
// nothing is written and no error is returned.
func ExportCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvLine(csvHeader))

	for i, r := range rows {
		lines = append(lines, csvLine([]string{
			strconv.Itoa(i + 1),
			r.BookingID,
			r.CafeName,
			r.BookingDate,
			r.BookingStartTime,
			r.UserName,
			r.UserMobileNo,
			r.PaymentMode,
			r.PaidLabel(),
			FormatAmount(r.Amount),
			r.BookingStatus,
			r.TransactionStatus,
			r.RazorpayOrderID,
			r.RazorpayPaymentID,
			r.TransactionID,
		}))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// FormatAmount renders a coerced amount as its plain display string.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
