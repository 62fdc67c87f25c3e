package ingest

import (
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// RecordsFromRows
// ----------------------------------------------------------------------------

func TestRecordsFromRows(t *testing.T) {
	rows := [][]string{
		{"name", "class"},
		{"Car1", "Minivan"},
		{"Car2"},                    // short row backfills ""
		{"Car3", "Luxury", "extra"}, // extra cell dropped
	}

	records := RecordsFromRows(rows)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	tests := []struct {
		idx  int
		name string
		want map[string]string
	}{
		{idx: 0, name: "full row", want: map[string]string{"name": "Car1", "class": "Minivan"}},
		{idx: 1, name: "short row backfilled", want: map[string]string{"name": "Car2", "class": ""}},
		{idx: 2, name: "extra cell dropped", want: map[string]string{"name": "Car3", "class": "Luxury"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := records[tt.idx]
			if rec.Len() != len(tt.want) {
				t.Fatalf("record has %d keys, want %d", rec.Len(), len(tt.want))
			}
			for k, want := range tt.want {
				if got, _ := rec.Get(k); got != want {
					t.Errorf("%s = %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestRecordsFromRowsKeyOrder(t *testing.T) {
	records := RecordsFromRows([][]string{
		{"c", "a", "b"},
		{"1", "2", "3"},
	})
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	keys := records[0].Keys()
	want := []string{"c", "a", "b"}
	if len(keys) != len(want) {
		t.Fatalf("got keys %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestRecordsFromRowsEmpty(t *testing.T) {
	if got := RecordsFromRows(nil); len(got) != 0 {
		t.Errorf("nil rows produced %d records, want 0", len(got))
	}
	if got := RecordsFromRows([][]string{{"name"}}); len(got) != 0 {
		t.Errorf("header-only input produced %d records, want 0", len(got))
	}
}

// ----------------------------------------------------------------------------
// RecordsFromLines
// ----------------------------------------------------------------------------

func TestRecordsFromLines(t *testing.T) {
	records := RecordsFromLines("notes", [][]string{
		{"first"},
		{"second"},
	})
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for i, want := range []string{"first", "second"} {
		if got, ok := records[i].Get("notes"); !ok || got != want {
			t.Errorf("record %d notes = %q (ok=%v), want %q", i, got, ok, want)
		}
	}
}

// ----------------------------------------------------------------------------
// DecodeRecord
// ----------------------------------------------------------------------------

func TestDecodeRecord(t *testing.T) {
	rec, err := DecodeRecord(strings.NewReader(`{"name":"Car5","price":12.5,"image":null}`))
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}

	keys := rec.Keys()
	wantKeys := []string{"name", "price", "image"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("got keys %v, want %v", keys, wantKeys)
	}
	for i := range wantKeys {
		if keys[i] != wantKeys[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], wantKeys[i])
		}
	}

	if v, _ := rec.Get("name"); v != "Car5" {
		t.Errorf("name = %q, want %q", v, "Car5")
	}
	if v, _ := rec.Get("price"); v != "12.5" {
		t.Errorf("price = %q, want %q", v, "12.5")
	}
	if v, _ := rec.Get("image"); v != "" {
		t.Errorf("image = %q, want empty for null", v)
	}
}

func TestDecodeRecordRejectsNonObject(t *testing.T) {
	for _, input := range []string{`[1,2]`, `"text"`, ``, `42`} {
		if _, err := DecodeRecord(strings.NewReader(input)); err == nil {
			t.Errorf("DecodeRecord(%q) succeeded, want error", input)
		}
	}
}
