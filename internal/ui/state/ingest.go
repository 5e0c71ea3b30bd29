package state

import (
	"errors"
	"path/filepath"

	"excelsearch/internal/catalog"
	"excelsearch/internal/domain"
)

// ErrCatalogBusy is returned when a catalog write is already in flight
var ErrCatalogBusy = errors.New("catalog operation already in progress")

// IngestPhase is the tag of the ingestion state union
type IngestPhase int

const (
	IngestIdle IngestPhase = iota
	IngestValidating
	IngestRejected
	IngestUploading
	IngestSucceeded
	IngestFailed
	IngestClearing
	IngestCleared
)

func (p IngestPhase) String() string {
	switch p {
	case IngestIdle:
		return "idle"
	case IngestValidating:
		return "validating"
	case IngestRejected:
		return "rejected"
	case IngestUploading:
		return "uploading"
	case IngestSucceeded:
		return "succeeded"
	case IngestFailed:
		return "failed"
	case IngestClearing:
		return "clearing"
	case IngestCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// IngestState is the single status slot of the catalog write flow (uploads
// and catalog wipes). Only one write may be in flight.
type IngestState struct {
	phase    IngestPhase
	fileName string
	message  string
	count    int
	err      error
	wipe     bool
}

// Select validates path and, when it passes, moves to Uploading. An empty
// path is a no-op. A rejected file leaves the flow ready for the next one.
func (s *IngestState) Select(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if s.Busy() {
		return false, ErrCatalogBusy
	}

	s.phase = IngestValidating
	s.wipe = false
	s.fileName = filepath.Base(path)
	s.message = ""
	s.count = 0
	s.err = nil

	if err := catalog.ValidateFileName(path); err != nil {
		s.phase = IngestRejected
		s.err = err
		return false, err
	}

	s.phase = IngestUploading
	return true, nil
}

// Succeed records the backend's acceptance of the current upload
func (s *IngestState) Succeed(resp *domain.UploadResponse) {
	s.phase = IngestSucceeded
	s.err = nil
	if resp != nil {
		s.message = resp.Message
		s.count = resp.ProductsCount
	}
}

// Fail records a failed upload or wipe
func (s *IngestState) Fail(err error) {
	s.phase = IngestFailed
	s.message = ""
	s.err = err
}

// BeginClear moves to Clearing unless another write is in flight
func (s *IngestState) BeginClear() error {
	if s.Busy() {
		return ErrCatalogBusy
	}
	s.phase = IngestClearing
	s.wipe = true
	s.fileName = ""
	s.message = ""
	s.count = 0
	s.err = nil
	return nil
}

// Cleared records a completed wipe
func (s *IngestState) Cleared(message string) {
	s.phase = IngestCleared
	s.message = message
	s.err = nil
}

// Busy reports whether a catalog write is in flight
func (s *IngestState) Busy() bool {
	return s.phase == IngestUploading || s.phase == IngestClearing
}

// Phase returns the current phase
func (s *IngestState) Phase() IngestPhase { return s.phase }

// FileName returns the base name of the last selected file
func (s *IngestState) FileName() string { return s.fileName }

// Message returns the backend message of a success or wipe
func (s *IngestState) Message() string { return s.message }

// ProductsCount returns the count reported by the last successful upload
func (s *IngestState) ProductsCount() int { return s.count }

// Wipe reports whether the last write was a catalog wipe rather than an upload
func (s *IngestState) Wipe() bool { return s.wipe }

// Err returns the failure behind IngestRejected or IngestFailed
func (s *IngestState) Err() error { return s.err }
