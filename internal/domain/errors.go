package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProtectedNode indicates an attempt to delete the root goal.
	ErrProtectedNode = errors.New("the root goal cannot be deleted")

	// ErrNotFound indicates a structural operation referenced a goal that is
	// not where the caller expected it.
	ErrNotFound = errors.New("goal not found")

	// ErrCycle indicates an attach that would make a goal its own ancestor.
	ErrCycle = errors.New("goal would become its own ancestor")

	// ErrNilGoal indicates a structural operation was given a nil goal.
	ErrNilGoal = errors.New("nil goal")

	// ErrNoLink indicates the selected goal has no URL to open.
	ErrNoLink = errors.New("no URL provided")
)

// ValidationError reports a malformed persisted timeline record.
type ValidationError struct {
	Path   string // JSON path of the offending value, "" for the document
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid timeline: " + e.Reason
	}
	return fmt.Sprintf("invalid timeline: %s: %s", e.Path, e.Reason)
}

// IOError reports a failed file read or write.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
