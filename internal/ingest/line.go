package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineParser reads plain line-delimited text. Each non-empty line becomes
// a single-column row. There is no header row; every line is data, and the
// caller decides what to name the one column.
type LineParser struct{}

// Parse returns one single-cell row per non-empty input line.
func (LineParser) Parse(r io.Reader) ([][]string, error) {
	var rows [][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []string{line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line text: %w", err)
	}
	return rows, nil
}

// HasHeader reports that line text carries no header row.
func (LineParser) HasHeader() bool { return false }
