package model

import "fmt"

// UnsupportedCastError is returned when a primitive cast target has no
// registered conversion.
type UnsupportedCastError struct {
	Target string
}

func (e *UnsupportedCastError) Error() string {
	return fmt.Sprintf("unsupported cast: %q", e.Target)
}

// InvalidURIError is returned when the assembled request URI does not parse.
// It usually means the addressing options are misconfigured.
type InvalidURIError struct {
	URI string
	Err error
}

func (e *InvalidURIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid uri %q", e.URI)
	}
	return fmt.Sprintf("invalid uri %q: %v", e.URI, e.Err)
}

func (e *InvalidURIError) Unwrap() error { return e.Err }

// TransportError carries a failure of the transport collaborator unchanged.
type TransportError struct {
	Method string
	URI    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URI, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when a response body cannot be parsed
// into a document.
type MalformedResponseError struct {
	URI string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URI, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ExtractionError is returned when a selector cannot be evaluated or when a
// cast or constructor rejects an extracted value.
type ExtractionError struct {
	Selector string
	Field    string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("extract %q (field %s): %v", e.Selector, e.Field, e.Err)
	}
	return fmt.Sprintf("extract %q: %v", e.Selector, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
