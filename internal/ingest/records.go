package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tabledesk/tabledesk/internal/dataset"
)

// RecordsFromRows reshapes header-first parser output into records keyed
// by column name. rows[0] supplies the keys; each following row becomes
// one record. A short row backfills missing cells with the empty string
// and extra cells beyond the header are dropped.
func RecordsFromRows(rows [][]string) []*dataset.Record {
	if len(rows) == 0 {
		return []*dataset.Record{}
	}

	header := rows[0]
	records := make([]*dataset.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := dataset.NewRecord()
		for i, col := range header {
			if i < len(row) {
				rec.Set(col, row[i])
			} else {
				rec.Set(col, "")
			}
		}
		records = append(records, rec)
	}
	return records
}

// DecodeRecord decodes a single JSON object into a record, preserving
// key order and stringifying values the same way the structured parser
// does. Used for record bodies arriving over the API.
func DecodeRecord(r io.Reader) (*dataset.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	obj, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	rec := dataset.NewRecord()
	for _, k := range obj.keys {
		rec.Set(k, obj.values[k])
	}
	return rec, nil
}

// RecordsFromLines reshapes headerless single-column rows into records
// under the given column name. Used for line-text input, where the caller
// picks the column name (typically the file stem).
func RecordsFromLines(column string, rows [][]string) []*dataset.Record {
	records := make([]*dataset.Record, 0, len(rows))
	for _, row := range rows {
		rec := dataset.NewRecord()
		if len(row) > 0 {
			rec.Set(column, row[0])
		} else {
			rec.Set(column, "")
		}
		records = append(records, rec)
	}
	return records
}
