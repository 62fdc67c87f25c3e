package web

// imageurl.go holds display heuristics for spotting image columns. These
// exist purely so a frontend can decide to render a cell as an <img>; the
// dataset core knows nothing about them.

import (
	"path"
	"strings"

	"github.com/tabledesk/tabledesk/internal/dataset"
)

// imageExtensions are the file extensions treated as images.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
	".ico":  true,
}

// imageColumnHints are substrings of column names that suggest the column
// carries image URLs.
var imageColumnHints = []string{"image", "img", "photo", "picture", "thumbnail", "icon", "avatar"}

// looksLikeImageColumn reports whether a column name suggests image content.
func looksLikeImageColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range imageColumnHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// looksLikeImageURL reports whether a cell value appears to be an image
// URL, judged by its extension with any query string stripped.
func looksLikeImageURL(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if i := strings.IndexAny(v, "?#"); i >= 0 {
		v = v[:i]
	}
	return imageExtensions[strings.ToLower(path.Ext(v))]
}

// columnHasImageURL reports whether the first non-blank value of the
// column looks like an image URL.
func columnHasImageURL(records []*dataset.Record, column string) bool {
	for _, r := range records {
		v, ok := r.Get(column)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		return looksLikeImageURL(v)
	}
	return false
}
