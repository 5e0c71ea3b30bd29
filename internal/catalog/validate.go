package catalog

import (
	"path/filepath"
	"strings"
)

// AcceptedExtensions are the spreadsheet suffixes the backend can ingest.
var AcceptedExtensions = []string{".xlsx", ".xls"}

// ValidateFileName checks the base name of path for an accepted spreadsheet
// suffix, ignoring case. It says nothing about the file's contents.
func ValidateFileName(path string) error {
	name := filepath.Base(path)
	lower := strings.ToLower(name)
	for _, ext := range AcceptedExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return ValidationError{FileName: name}
}
