package analytics

import (
	"html/template"
	"io"
)

// PrintableRowCap bounds the booking table in the printable export. This is
// an export-size guard, not a pagination mechanism.
const PrintableRowCap = 60

// printableTmpl renders the print-capable HTML document. The embedded
// window.print() call triggers the print dialog when the document is opened
// in a browser.
var printableTmpl = template.Must(template.New("printable").Funcs(template.FuncMap{
	"inr": FormatINR,
	"inc": func(i int) int { return i + 1 },
}).Parse(`<html>
  <head>
    <title>Krown Analytics</title>
    <style>
      body { font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; padding: 16px; }
      h1 { font-size: 20px; margin-bottom: 8px; }
      h2 { font-size: 14px; margin-top: 16px; margin-bottom: 8px; }
      table { width: 100%; border-collapse: collapse; font-size: 11px; }
      th, td { border: 1px solid #ccc; padding: 4px 6px; text-align: left; }
      th { background: #f3f4f6; }
    </style>
  </head>
  <body>
    <h1>Krown Bookings &amp; Payments</h1>
    {{if .Summary}}<h2>Summary</h2>
    <p><strong>Total Revenue:</strong> {{inr .Summary.TotalAmount}}</p>
    <p><strong>Paid Bookings:</strong> {{.Summary.PaidBookings}} &nbsp; | &nbsp; <strong>Normal Bookings:</strong> {{.Summary.NormalBookings}}</p>
    {{end}}<h2>Bookings (first {{len .Rows}})</h2>
    <table>
      <thead>
        <tr>
          <th>#</th>
          <th>Cafe</th>
          <th>Booking ID</th>
          <th>User</th>
          <th>Phone</th>
          <th>Date</th>
          <th>Time</th>
          <th>Mode</th>
          <th>Paid?</th>
          <th>Amount</th>
          <th>Status</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $r := .Rows}}<tr>
          <td>{{inc $i}}</td>
          <td>{{$r.CafeName}}</td>
          <td>{{$r.BookingID}}</td>
          <td>{{$r.UserName}}</td>
          <td>{{$r.UserMobileNo}}</td>
          <td>{{$r.BookingDate}}</td>
          <td>{{$r.BookingStartTime}}</td>
          <td>{{$r.PaymentMode}}</td>
          <td>{{$r.PaidLabel}}</td>
          <td>{{inr $r.Amount}}</td>
          <td>{{$r.BookingStatus}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <script>window.print();</script>
  </body>
</html>
`))

type printableData struct {
	Summary *Summary
	Rows    []Row
}

// ExportPrintable writes the printable HTML document: title, an optional
// summary block (only when summary is present), and a booking table capped
// at the first PrintableRowCap rows regardless of total row count. Empty
// input is a guarded no-op.
func ExportPrintable(w io.Writer, rows []Row, summary *Summary) error {
	if len(rows) == 0 {
		return nil
	}

	capped := rows
	if len(capped) > PrintableRowCap {
		capped = capped[:PrintableRowCap]
	}

	return printableTmpl.Execute(w, printableData{Summary: summary, Rows: capped})
}
