package dataset

import (
	"strings"

	"github.com/goccy/go-json"
)

// ExportJSON serializes the whole table as an indented JSON array of
// objects, keyed by the column names observed at export time. The output
// reparses into an equivalent table via the structured-data parser.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.records
	if records == nil {
		records = []*Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// ExportCSV renders the table as CSV text: a header line from the first
// record's columns, then one line per record in the same column order.
// Missing keys render as the quoted empty cell. Returns the empty string
// for an empty table.
func (s *Store) ExportCSV() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return ""
	}

	header := s.columnNames()

	var b strings.Builder
	cells := make([]string, len(header))
	for i, col := range header {
		cells[i] = EscapeCSV(col)
	}
	b.WriteString(strings.Join(cells, ","))
	b.WriteByte('\n')

	for _, r := range s.records {
		for i, col := range header {
			v, _ := r.Get(col)
			cells[i] = EscapeCSV(v)
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// EscapeCSV escapes a single cell value for CSV output. Empty values
// render as "" so an exported file keeps a visible empty-cell marker.
// Values containing a comma, double quote, or newline are wrapped in
// double quotes with inner quotes doubled; everything else passes through
// unquoted.
func EscapeCSV(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
