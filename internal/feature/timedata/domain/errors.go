// Package domain defines domain-level errors for the time lookup feature.
package domain

import "fmt"

// RequestError reports that the upstream time service could not be reached or answered
// with an error after all attempts.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
