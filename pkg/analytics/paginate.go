package analytics

// PageSize is the fixed number of booking rows shown per page.
const PageSize = 15

// TotalPages returns the number of pages for rowCount rows. Never below 1,
// so an empty result still has one (empty) page.
func TotalPages(rowCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (rowCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage clamps a 1-based page number into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the 1-based page slice of rows. Out-of-range pages clamp
// rather than error; the slices for pages 1..TotalPages concatenate back to
// rows losslessly and in order.
func Paginate(rows []Row, page, pageSize int) []Row {
	if pageSize <= 0 {
		return nil
	}
	page = ClampPage(page, TotalPages(len(rows), pageSize))

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
