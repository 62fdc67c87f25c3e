package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// StructuredParser reads a JSON array of key/value objects. Objects may
// have heterogeneous keys: the header is the union of all keys across all
// objects in first-seen order, and each object emits one row aligned to
// that header with the empty string backfilled for keys the object lacks.
//
// Without the union step, any object missing a field present in others
// would produce a narrower row and misalign every column after it.
//
// The parse walks decoder tokens rather than unmarshaling into maps so
// that key order survives; Go maps would shuffle it.
type StructuredParser struct{}

// object is one decoded element: cell values by key, plus key order.
type object struct {
	keys   []string
	values map[string]string
}

// Parse decodes the whole input and returns the header row followed by
// one aligned row per object.
func (StructuredParser) Parse(r io.Reader) ([][]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode structured data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("structured data must be an array of objects, got %v", tok)
	}

	var objects []object
	for dec.More() {
		obj, err := decodeObject(dec)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode structured data: %w", err)
	}

	if len(objects) == 0 {
		return [][]string{}, nil
	}

	// Union of keys across all objects, materialized in first-seen order.
	var header []string
	seen := make(map[string]struct{})
	for _, obj := range objects {
		for _, k := range obj.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			header = append(header, k)
		}
	}

	rows := make([][]string, 0, len(objects)+1)
	rows = append(rows, header)
	for _, obj := range objects {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = obj.values[k] // zero value backfills absent keys
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// HasHeader reports that the first output row is the header.
func (StructuredParser) HasHeader() bool { return true }

// decodeObject consumes one object from the array, preserving key order.
// Duplicate keys keep their first position with the last value.
func decodeObject(dec *json.Decoder) (object, error) {
	obj := object{values: make(map[string]string)}

	tok, err := dec.Token()
	if err != nil {
		return obj, fmt.Errorf("decode structured data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return obj, fmt.Errorf("structured data elements must be objects, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return obj, fmt.Errorf("decode structured data: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return obj, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return obj, fmt.Errorf("decode value for %q: %w", key, err)
		}

		if _, exists := obj.values[key]; !exists {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = cellString(raw)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return obj, fmt.Errorf("decode structured data: %w", err)
	}
	return obj, nil
}

// cellString converts a raw JSON value to its cell representation:
// strings unquote, numbers and booleans keep their literal text, null
// becomes the empty string (never the literal "null"), and nested values
// render as compact JSON.
func cellString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := gojson.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
		return string(raw)
	default:
		// Numbers and booleans already read naturally.
		return string(raw)
	}
}
