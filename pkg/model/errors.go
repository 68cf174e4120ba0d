package model

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned when a registry is built with more jobs
// than MaxJobs. The run is rejected outright; there is no partial registry.
var ErrCapacityExceeded = errors.New("registry capacity exceeded")

// ErrUnknownAlgorithm is returned when an algorithm is requested by a name
// the engine does not recognize.
var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// InvalidJobError reports a job descriptor that fails validation before any
// simulation starts. Nothing is clamped or repaired.
type InvalidJobError struct {
	ID     int
	Reason string
}

func (e *InvalidJobError) Error() string {
	return fmt.Sprintf("invalid job %d: %s", e.ID, e.Reason)
}
