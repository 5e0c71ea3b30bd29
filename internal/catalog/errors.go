package catalog

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when a query is blank after trimming. Callers treat
// it as "clear the results", never as a failure shown to the user.
var ErrEmptyQuery = errors.New("empty query")

// ValidationError indicates a file rejected before any request was made.
type ValidationError struct {
	FileName string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("unsupported file type: %q (accepted: .xlsx, .xls)", e.FileName)
}

// NetworkError indicates the request could not complete.
type NetworkError struct {
	Op  string
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Errorf("%s: network: %w", e.Op, e.Err).Error()
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// ServerError indicates a non-success response. Detail carries the backend's
// "detail" field when the body had one.
type ServerError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
}

// DetailOf returns the backend supplied detail message carried by err, if any.
func DetailOf(err error) (string, bool) {
	var se ServerError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}

// ErrorKind returns a short label for logging and event payloads.
func ErrorKind(err error) string {
	if err == nil {
		return "unknown"
	}
	if errors.Is(err, ErrEmptyQuery) {
		return "empty_query"
	}
	var validation ValidationError
	if errors.As(err, &validation) {
		return "validation"
	}
	var network NetworkError
	if errors.As(err, &network) {
		return "network"
	}
	var server ServerError
	if errors.As(err, &server) {
		return "server"
	}
	return "other"
}
