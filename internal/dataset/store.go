// Package dataset provides the in-memory tabular store at the heart of
// the application. It owns the current table of records and exposes CRUD,
// query, sort, pagination and export operations. The package has no UI
// dependencies and can be driven by any frontend.
//
// The store never aliases live data across its boundary: every read hands
// back independent copies and every write stores an independent copy, so
// callers cannot mutate the table behind its back.
package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Info describes the currently loaded dataset.
type Info struct {
	ID       uuid.UUID `json:"id"`
	LoadedAt time.Time `json:"loadedAt"`
	Rows     int       `json:"rows"`
	Columns  []string  `json:"columns"`
}

// Store owns the canonical in-memory table of records.
//
// The table is designed for a single logical owner; the RWMutex exists so
// a concurrent caller such as an HTTP layer can share one instance without
// interleaving writes. Indices are positional and valid only until the
// next insertion or deletion before that position.
type Store struct {
	mu       sync.RWMutex
	records  []*Record
	id       uuid.UUID
	loadedAt time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{id: uuid.New()}
}

// InitializeData replaces the whole table with an independent copy of
// records and stamps the store with a fresh dataset ID. No validation of
// record shape is performed.
func (s *Store) InitializeData(records []*Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cloneRecords(records)
	s.id = uuid.New()
	s.loadedAt = time.Now().UTC()
}

// Describe returns metadata about the current dataset.
func (s *Store) Describe() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Info{
		ID:       s.id,
		LoadedAt: s.loadedAt,
		Rows:     len(s.records),
		Columns:  s.columnNames(),
	}
}

// All returns an independent copy of the whole table.
func (s *Store) All() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Get returns an independent copy of the record at index i.
func (s *Store) Get(i int) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.records) {
		return nil, ErrIndexOutOfRange
	}
	return s.records[i].Clone(), nil
}

// Count returns the current table length.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Add appends an independent copy of record and returns its index.
func (s *Store) Add(record *Record) (int, error) {
	if record == nil {
		return 0, ErrNilRecord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())
	return len(s.records) - 1, nil
}

// Update replaces the record at index i with an independent copy of
// record. This is a full replacement, not a merge.
func (s *Store) Update(i int, record *Record) error {
	if record == nil {
		return ErrNilRecord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return ErrIndexOutOfRange
	}
	s.records[i] = record.Clone()
	return nil
}

// Delete removes the record at index i. All subsequent records shift down
// by one; indices held by callers are not maintained across this call.
func (s *Store) Delete(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return ErrIndexOutOfRange
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// Clear empties the table.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// ColumnNames returns the column names of the first record in the table,
// in that record's key order, or an empty slice if the table is empty.
//
// Columns are derived from the first row only. A record loaded later may
// carry keys the first record lacks; those do not appear here. This
// matches the historical behavior that exports and table rendering rely
// on, so it is kept deliberately.
func (s *Store) ColumnNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columnNames()
}

// columnNames is ColumnNames without locking, for use by callers that
// already hold the mutex.
func (s *Store) columnNames() []string {
	if len(s.records) == 0 {
		return []string{}
	}
	return s.records[0].Keys()
}

// cloneRecords deep-copies a record slice, skipping nil entries.
func cloneRecords(records []*Record) []*Record {
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}
