package gumboc

import (
	"fmt"
	"strings"
)

// OutOfRangeError reports an attempt to construct a bounded enum from a
// discriminant outside its range.
type OutOfRangeError struct {
	Type  string
	Value int64
	Count int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gumboc: %s discriminant %d out of range [0, %d)", e.Type, e.Value, e.Count)
}

// UnknownVariantError reports a name lookup against a variant the tables
// do not know, in either direction.
type UnknownVariantError struct {
	Type  string
	Value int64
	Name  string
}

func (e *UnknownVariantError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("gumboc: no %s variant named %q", e.Type, e.Name)
	}
	return fmt.Sprintf("gumboc: no %s variant for discriminant %d", e.Type, e.Value)
}

// MissingLibraryError reports that the native gumbo library could not be
// loaded or is not usable. The condition is permanent for the life of
// the process: there is no retry and no degraded mode.
type MissingLibraryError struct {
	Tried []string
	Err   error
}

func (e *MissingLibraryError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("gumboc: native library unavailable: %s", e.Err)
	}
	return fmt.Sprintf("gumboc: native library unavailable (tried %s): %s", strings.Join(e.Tried, ", "), e.Err)
}

func (e *MissingLibraryError) Unwrap() error {
	return e.Err
}
