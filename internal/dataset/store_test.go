package dataset

import (
	"errors"
	"testing"
)

// newRecord builds a record from alternating key/value pairs.
func newRecord(t *testing.T, pairs ...string) *Record {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatalf("newRecord: odd number of pairs")
	}
	r := NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

func carTable(t *testing.T) []*Record {
	t.Helper()
	return []*Record{
		newRecord(t, "name", "Car1", "image", "u1", "class", "Minivan"),
		newRecord(t, "name", "Car2", "image", "u2", "class", "Luxury"),
		newRecord(t, "name", "Car3", "image", "u3", "class", "Sport"),
	}
}

// ----------------------------------------------------------------------------
// Initialization and copy isolation
// ----------------------------------------------------------------------------

func TestInitializeDataCopiesInput(t *testing.T) {
	input := carTable(t)
	s := NewStore()
	s.InitializeData(input)

	// Mutating the caller's slice must not reach the store.
	input[0].Set("name", "changed")

	got, err := s.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if v, _ := got.Get("name"); v != "Car1" {
		t.Errorf("store aliased caller data: name = %q, want %q", v, "Car1")
	}
}

func TestInitializeDataReplacesTable(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))
	before := s.Describe().ID

	s.InitializeData([]*Record{newRecord(t, "a", "1")})

	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
	if s.Describe().ID == before {
		t.Errorf("InitializeData did not refresh the dataset ID")
	}
}

func TestAllReturnsIndependentCopy(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))

	all := s.All()
	all[1].Set("class", "mutated")

	got, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if v, _ := got.Get("class"); v != "Luxury" {
		t.Errorf("All() leaked a live reference: class = %q, want %q", v, "Luxury")
	}
}

// ----------------------------------------------------------------------------
// CRUD
// ----------------------------------------------------------------------------

func TestGetByIndex(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))

	tests := []struct {
		name    string
		index   int
		wantErr error
	}{
		{name: "first", index: 0},
		{name: "last", index: 2},
		{name: "negative", index: -1, wantErr: ErrIndexOutOfRange},
		{name: "past end", index: 3, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(tt.index)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get(%d) error = %v, want %v", tt.index, err, tt.wantErr)
			}
		})
	}
}

func TestAddThenGetRoundTrips(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))

	added := newRecord(t, "name", "Car4", "image", "u4", "class", "Coupe")
	idx, err := s.Add(added)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if idx != 3 {
		t.Errorf("Add returned index %d, want 3", idx)
	}

	got, err := s.Get(idx)
	if err != nil {
		t.Fatalf("Get(%d): %v", idx, err)
	}
	if !got.Equal(added) {
		t.Errorf("Get(%d) does not equal the added record", idx)
	}
}

func TestAddNilRecord(t *testing.T) {
	s := NewStore()
	if _, err := s.Add(nil); !errors.Is(err, ErrNilRecord) {
		t.Errorf("Add(nil) error = %v, want ErrNilRecord", err)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))

	// Update with fewer keys: no merge must happen.
	if err := s.Update(0, newRecord(t, "name", "OnlyName")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if got.Has("class") {
		t.Errorf("Update merged instead of replacing: class survived")
	}
	if v, _ := got.Get("name"); v != "OnlyName" {
		t.Errorf("name = %q, want %q", v, "OnlyName")
	}
}

func TestUpdateErrors(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))

	if err := s.Update(99, newRecord(t, "a", "b")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Update(99) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := s.Update(0, nil); !errors.Is(err, ErrNilRecord) {
		t.Errorf("Update(0, nil) error = %v, want ErrNilRecord", err)
	}
}

func TestDeleteShiftsSubsequentIndices(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))

	before := s.Count()
	if err := s.Delete(0); err != nil {
		t.Fatalf("Delete(0): %v", err)
	}

	if s.Count() != before-1 {
		t.Errorf("Count() = %d, want %d", s.Count(), before-1)
	}

	// The record formerly at index 1 is now at index 0.
	got, err := s.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if v, _ := got.Get("name"); v != "Car2" {
		t.Errorf("after delete, index 0 name = %q, want %q", v, "Car2")
	}

	if err := s.Delete(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.InitializeData(carTable(t))
	s.Clear()

	if s.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", s.Count())
	}
	if got := s.ColumnNames(); len(got) != 0 {
		t.Errorf("ColumnNames() after Clear = %v, want empty", got)
	}
}

// ----------------------------------------------------------------------------
// ColumnNames
// ----------------------------------------------------------------------------

func TestColumnNamesFirstRecordOnly(t *testing.T) {
	s := NewStore()
	s.InitializeData([]*Record{
		newRecord(t, "name", "Car1", "class", "Minivan"),
		// Later record with an extra key that must not appear.
		newRecord(t, "name", "Car2", "class", "Luxury", "price", "9"),
	})

	got := s.ColumnNames()
	want := []string{"name", "class"}
	if len(got) != len(want) {
		t.Fatalf("ColumnNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
