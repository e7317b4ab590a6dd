package chore

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEligibleChores is returned when a pick is requested and nothing is due.
	ErrNoEligibleChores = errors.New("no eligible chores")

	// ErrChoreNotFound is returned by Complete when no chore has the requested
	// name and location. The file is left as it was.
	ErrChoreNotFound = errors.New("chore not found")
)

// LoadError reports a chore file that is missing, unreadable or malformed.
// Index is the offending record, or -1 when the whole file is at fault.
type LoadError struct {
	Path  string
	Index int
	Field string
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("load %q: %v", e.Path, e.Err)
	case e.Field == "":
		return fmt.Sprintf("load %q: record %d: %v", e.Path, e.Index, e.Err)
	default:
		return fmt.Sprintf("load %q: record %d: field %q: %v", e.Path, e.Index, e.Field, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// InvalidConfigurationError reports a chore whose stored values cannot be used:
// a non-positive frequency or delta, or an unknown day type.
type InvalidConfigurationError struct {
	Name     string
	Location string
	Field    string
	Value    any
}

func (e *InvalidConfigurationError) Error() string {
	switch e.Field {
	case "frequency", "delta":
		return fmt.Sprintf("invalid configuration for chore [%s] %s: %s must be a positive number of days, got %v", e.Location, e.Name, e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid configuration for chore [%s] %s: bad %s %v", e.Location, e.Name, e.Field, e.Value)
	}
}
