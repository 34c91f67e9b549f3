package client

import "fmt"

// ErrorKind says which stage of the fetch failed. Callers are not expected
// to branch on it; every TransportError is handled the same way.
type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindStatus  ErrorKind = "status"
	KindDecode  ErrorKind = "decode"
)

// TransportError is the only error FetchBreeds returns.
type TransportError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int // zero unless a response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch breeds %s: %s error (HTTP %d): %v", e.URL, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch breeds %s: %s error: %v", e.URL, e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
