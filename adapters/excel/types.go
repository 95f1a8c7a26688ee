package excel

// RawRowData represents a row of raw tabular data as header -> cell text.
// A header absent from the map means the row was shorter than the header row.
type RawRowData map[string]string

// RawTable represents a complete tabular source
type RawTable struct {
	Headers []string     // Column headers, trimmed
	Rows    []RawRowData // Data rows in file order
}

// HasColumn reports whether header is present in the table
func (t *RawTable) HasColumn(header string) bool {
	for _, h := range t.Headers {
		if h == header {
			return true
		}
	}
	return false
}

// MissingColumns returns the required headers the table lacks, in the order given
func (t *RawTable) MissingColumns(required []string) []string {
	var missing []string
	for _, h := range required {
		if !t.HasColumn(h) {
			missing = append(missing, h)
		}
	}
	return missing
}
