package dataset

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Record is one logical entity: a mapping from column name to string cell.
// Keys are unique within a record and preserve insertion order so that
// headers and JSON exports render deterministically.
//
// A record may lack a column that other records in the same table have;
// callers distinguish "absent" from "empty" via the ok result of Get.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores a cell value under key. New keys append to the key order;
// existing keys keep their position.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the cell value for key and whether the key is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether the record carries the given column.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns a copy of the column names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of columns on this record.
func (r *Record) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	c := &Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]string, len(r.values)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Equal reports whether two records carry the same columns with the same
// values. Key order is not significant.
func (r *Record) Equal(other *Record) bool {
	if other == nil || len(r.values) != len(other.values) {
		return false
	}
	for k, v := range r.values {
		ov, ok := other.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// MarshalJSON renders the record as a JSON object with keys in insertion
// order. The standard marshaler would sort map keys, which breaks the
// "columns as observed" contract for exports.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
