package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DelimitedParser reads comma-delimited text. Each non-empty line becomes
// one row, split verbatim on the delimiter with no quote or escape
// handling. This is intentionally the minimal reciprocal of the export
// escaping: a file exported with embedded commas or quotes will not read
// back cell-for-cell, and that asymmetry is part of the contract.
type DelimitedParser struct{}

const delimiter = ","

// Parse splits each non-empty input line on the delimiter. rows[0] is
// the header line of the file.
func (DelimitedParser) Parse(r io.Reader) ([][]string, error) {
	var rows [][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, delimiter))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read delimited text: %w", err)
	}
	return rows, nil
}

// HasHeader reports that the first row is the header.
func (DelimitedParser) HasHeader() bool { return true }
