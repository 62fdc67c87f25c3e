package dataset

import (
	"sort"
	"strings"
)

// DefaultPageSize is the page size used by callers that do not specify one.
const DefaultPageSize = 10

// PageResult contains one page of table data plus pagination metadata.
type PageResult struct {
	Records    []*Record `json:"records"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalRows  int       `json:"totalRows"`
	TotalPages int       `json:"totalPages"`
}

// FilterByColumn returns, in table order, every record that has column and
// whose value case-insensitively contains substring. Records lacking the
// column are excluded, not an error.
func (s *Store) FilterByColumn(column, substring string) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(substring)
	out := make([]*Record, 0)
	for _, r := range s.records {
		v, ok := r.Get(column)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// SearchAll returns, in table order, every record with at least one value
// that case-insensitively contains term. A blank or whitespace-only term
// returns a full copy of the table.
func (s *Store) SearchAll(term string) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(term) == "" {
		return cloneRecords(s.records)
	}

	needle := strings.ToLower(term)
	out := make([]*Record, 0)
	for _, r := range s.records {
		for _, key := range r.keys {
			if strings.Contains(strings.ToLower(r.values[key]), needle) {
				out = append(out, r.Clone())
				break
			}
		}
	}
	return out
}

// SortByColumn returns a copy of the table stably sorted by the given
// column. A blank column name or an empty table yields an unsorted copy.
//
// Records lacking the column always sink to the tail in their original
// relative order, regardless of direction. This keeps placement of
// incomparable rows deterministic instead of undefined.
func (s *Store) SortByColumn(column string, ascending bool) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(column) == "" || len(s.records) == 0 {
		return cloneRecords(s.records)
	}

	var present, missing []*Record
	for _, r := range s.records {
		if r.Has(column) {
			present = append(present, r.Clone())
		} else {
			missing = append(missing, r.Clone())
		}
	}

	sort.SliceStable(present, func(i, j int) bool {
		a, aOK := present[i].Get(column)
		b, bOK := present[j].Get(column)
		if ascending {
			return CompareCells(a, aOK, b, bOK) < 0
		}
		return CompareCells(b, bOK, a, aOK) < 0
	})

	return append(present, missing...)
}

// DistinctValues returns the distinct non-blank values of column across
// records that have it, sorted ascending.
func (s *Store) DistinctValues(column string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, r := range s.records {
		v, ok := r.Get(column)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		seen[v] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Page returns the requested slice of the table, clipped to table bounds,
// plus the total page count. Both pageNumber and pageSize must be at
// least one. An empty table has zero pages.
func (s *Store) Page(pageNumber, pageSize int) (*PageResult, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, ErrInvalidPage
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.records)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &PageResult{
		Records:    cloneRecords(s.records[start:end]),
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalRows:  total,
		TotalPages: totalPages,
	}, nil
}
