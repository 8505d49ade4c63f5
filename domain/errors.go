package domain

import "fmt"

// ConfigError reports missing process configuration. It is raised before
// any network I/O is attempted.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Missing)
}

// UpstreamError carries the outcome of a failed call to the record store or
// the analysis webhook. Either Status/Body is set (non-2xx response) or Err
// (transport failure). Calls are never retried.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s call failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ClientInputError rejects a request before any side effect happens.
type ClientInputError struct {
	Reason string
}

func (e *ClientInputError) Error() string { return e.Reason }

// NotFoundError reports a lookup that matched no records.
type NotFoundError struct {
	What string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.ID)
}

// ExtractionError wraps a failure to parse an uploaded document.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract text from document: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
