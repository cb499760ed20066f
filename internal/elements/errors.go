package elements

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a payload that is not a usable element dataset.
	ErrMalformed = errors.New("elements: malformed dataset")

	// ErrStatus indicates the dataset endpoint answered with a non-2xx status.
	ErrStatus = errors.New("elements: unexpected http status")
)

// StatusError carries the HTTP status of a failed fetch.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("elements: GET %s: %s", e.URL, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}
