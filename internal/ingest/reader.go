// Package ingest converts raw input streams into the uniform row shape
// the tabular store is loaded from. A Reader dispatches on the file
// extension to one of the statically registered parsers; every parser
// produces the same output: a header row followed by data rows of equal
// arity (except the headerless line format).
//
// Ingestion is atomic from the caller's point of view: malformed input
// fails the whole call and nothing partial escapes.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when no parser is registered for a
// file's extension. It propagates unchanged to the caller; there is no
// fallback format.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parser converts one input format into ordered rows of string cells.
type Parser interface {
	// Parse reads the whole stream and returns its rows. For formats
	// with a header, rows[0] holds the column names and all data rows
	// have the same arity.
	Parse(r io.Reader) ([][]string, error)

	// HasHeader reports whether rows[0] of this parser's output is a
	// header row rather than data.
	HasHeader() bool
}

// Reader selects a parser by file extension and exposes one uniform
// entry point for all supported formats.
type Reader struct {
	parsers map[string]Parser
}

// NewReader returns a Reader with the built-in formats registered:
// .csv (delimited text), .txt (line text), and .json (structured data).
// Adding a format means registering one more parser; nothing else
// changes.
func NewReader() *Reader {
	return &Reader{
		parsers: map[string]Parser{
			".csv":  DelimitedParser{},
			".txt":  LineParser{},
			".json": StructuredParser{},
		},
	}
}

// Read parses the stream using the parser registered for fileName's
// extension (case-insensitive). Returns ErrUnsupportedFormat when the
// extension has no registered parser.
func (rd *Reader) Read(r io.Reader, fileName string) ([][]string, error) {
	p, ext, err := rd.lookup(fileName)
	if err != nil {
		return nil, err
	}

	rows, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s input: %w", ext, err)
	}
	return rows, nil
}

// HasHeader reports whether the parser for fileName's extension emits a
// header row. Returns ErrUnsupportedFormat for unknown extensions.
func (rd *Reader) HasHeader(fileName string) (bool, error) {
	p, _, err := rd.lookup(fileName)
	if err != nil {
		return false, err
	}
	return p.HasHeader(), nil
}

func (rd *Reader) lookup(fileName string) (Parser, string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	p, ok := rd.parsers[ext]
	if !ok {
		return nil, ext, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return p, ext, nil
}
