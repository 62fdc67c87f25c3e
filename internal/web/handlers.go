package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tabledesk/tabledesk/internal/dataset"
	"github.com/tabledesk/tabledesk/internal/ingest"
	"github.com/tabledesk/tabledesk/internal/logging"
)

// datasetResponse describes the loaded dataset for API clients.
type datasetResponse struct {
	dataset.Info
	Source string `json:"source,omitempty"`
}

// rowsResponse wraps a full (non-paginated) query result.
type rowsResponse struct {
	Records   []*dataset.Record `json:"records"`
	TotalRows int               `json:"totalRows"`
}

// handleUploadDataset ingests an uploaded file and replaces the dataset.
//
// Ingestion is atomic: a parse failure returns an error and leaves the
// current table untouched, because nothing is handed to the store until
// parsing has succeeded.
func (s *Server) handleUploadDataset(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Ingest.MaxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	rows, err := s.reader.Read(file, header.Filename)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	hasHeader, err := s.reader.HasHeader(header.Filename)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var records []*dataset.Record
	if hasHeader {
		records = ingest.RecordsFromRows(rows)
	} else {
		// Headerless line text: name the one column after the file stem.
		records = ingest.RecordsFromLines(fileStem(header.Filename), rows)
	}

	s.store.InitializeData(records)
	s.setSource(header.Filename)

	info := s.store.Describe()
	logger.Info("dataset loaded",
		"dataset_id", info.ID,
		"source", header.Filename,
		"rows", info.Rows,
		"columns", len(info.Columns),
	)

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, datasetResponse{Info: info, Source: header.Filename})
}

// handleDescribeDataset returns metadata about the current dataset.
func (s *Server) handleDescribeDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, datasetResponse{Info: s.store.Describe(), Source: s.sourceName()})
}

// handleClearDataset empties the table.
func (s *Server) handleClearDataset(w http.ResponseWriter, r *http.Request) {
	s.store.Clear()
	s.setSource("")
	w.WriteHeader(http.StatusNoContent)
}

// handleListRows serves table data. Query modes, in order of precedence:
//
//	?column=X&contains=Y  filter one column by substring
//	?search=T             search every column
//	?sort=X&dir=asc|desc  sorted copy of the table
//	?page=N&size=M        one page of the table (the default mode)
//
// The query modes return full result sets; only the default mode
// paginates, mirroring the store's own contract.
func (s *Server) handleListRows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if column := q.Get("column"); column != "" {
		records := s.store.FilterByColumn(column, q.Get("contains"))
		writeJSON(w, rowsResponse{Records: records, TotalRows: len(records)})
		return
	}

	if q.Has("search") {
		records := s.store.SearchAll(q.Get("search"))
		writeJSON(w, rowsResponse{Records: records, TotalRows: len(records)})
		return
	}

	if sortCol := q.Get("sort"); sortCol != "" {
		ascending := !strings.EqualFold(q.Get("dir"), "desc")
		records := s.store.SortByColumn(sortCol, ascending)
		writeJSON(w, rowsResponse{Records: records, TotalRows: len(records)})
		return
	}

	page := parseIntParam(r, "page", 1)
	size := parseIntParam(r, "size", dataset.DefaultPageSize)
	result, err := s.store.Page(page, size)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// handleGetRow returns one record by index.
func (s *Server) handleGetRow(w http.ResponseWriter, r *http.Request) {
	index, err := rowIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.store.Get(index)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, record)
}

// handleAddRow appends a record and returns its index.
func (s *Server) handleAddRow(w http.ResponseWriter, r *http.Request) {
	record, err := ingest.DecodeRecord(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record body")
		return
	}

	index, err := s.store.Add(record)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]int{"index": index})
}

// handleUpdateRow replaces the record at index. Full replacement, no merge.
func (s *Server) handleUpdateRow(w http.ResponseWriter, r *http.Request) {
	index, err := rowIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := ingest.DecodeRecord(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record body")
		return
	}

	if err := s.store.Update(index, record); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, map[string]int{"index": index})
}

// handleDeleteRow removes the record at index. Subsequent indices shift
// down by one; clients must not reuse indices obtained before this call.
func (s *Server) handleDeleteRow(w http.ResponseWriter, r *http.Request) {
	index, err := rowIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Delete(index); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// columnMeta is presentation metadata for one column.
type columnMeta struct {
	Name string `json:"name"`
	// Image marks columns whose values a UI should render as images.
	// Heuristic only; not part of the store contract.
	Image bool `json:"image"`
}

// handleListColumns returns the table's columns with display hints.
func (s *Server) handleListColumns(w http.ResponseWriter, r *http.Request) {
	columns := s.store.ColumnNames()
	records := s.store.All()

	meta := make([]columnMeta, len(columns))
	for i, name := range columns {
		meta[i] = columnMeta{
			Name:  name,
			Image: looksLikeImageColumn(name) || columnHasImageURL(records, name),
		}
	}
	writeJSON(w, meta)
}

// handleDistinctValues returns the distinct non-blank values of a column.
func (s *Server) handleDistinctValues(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "name")
	writeJSON(w, map[string]interface{}{
		"column": column,
		"values": s.store.DistinctValues(column),
	})
}

// handleExport streams the table in the requested format (csv or json).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}

	stem := fileStem(s.sourceName())
	if stem == "" {
		stem = "dataset"
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stem+".csv"))
		w.Write([]byte(s.store.ExportCSV()))

	case "json":
		data, err := s.store.ExportJSON()
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stem+".json"))
		w.Write(data)

	default:
		writeError(w, http.StatusBadRequest, "format must be csv or json")
	}
}

// rowIndex parses the {index} URL parameter.
func rowIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid row index %q", raw)
	}
	return index, nil
}

// parseIntParam reads an integer query parameter with a fallback.
func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// fileStem returns the base name of a file without its extension.
func fileStem(name string) string {
	base := filepath.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
