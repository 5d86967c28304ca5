// Package errs declares sentinel errors shared across layers.
package errs

import "errors"

var (
	// ErrMetricNotFound is returned when a named metric does not exist in the store.
	ErrMetricNotFound = errors.New("metric not found")
	// ErrInvalidArgument is returned for malformed requests, e.g. a bad page window.
	ErrInvalidArgument = errors.New("invalid argument")
)
