// Package ports defines the boundary between the in-memory course catalog
// and the external row producers (CSV file, relational database) that feed it.
package ports

import (
	"context"
	"errors"
	"fmt"
)

// RawRow is one unparsed course row handed to the catalog by a RowSource.
// Position is 1-based (file line or result-row number) and is carried into
// load error messages.
type RawRow struct {
	Position      int
	Code          string
	Title         string
	Prerequisites []string
}

// RowSource supplies the full sequence of raw course rows for one load.
// Implementations own their external resources (file handles, connections)
// only for the duration of a single Rows call and must release them on every
// exit path.
type RowSource interface {
	// Rows reads and returns every raw row from the backing source.
	// It returns an error wrapping ErrSourceUnavailable if the source cannot
	// be opened or queried at all.
	Rows(ctx context.Context) ([]RawRow, error)

	// Name identifies the source in log and user-facing messages.
	Name() string
}

// ErrNotLoaded is returned by catalog queries issued before any successful load.
var ErrNotLoaded = errors.New("no course data loaded")

// ErrCourseNotFound is returned when a queried course code has no entry.
var ErrCourseNotFound = errors.New("course not found")

// ErrSourceUnavailable marks failures to reach the backing source at all, as
// opposed to malformed rows within it.
var ErrSourceUnavailable = errors.New("course source unavailable")

// ValidationError reports a course row whose required field is empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid course data: %s is missing", e.Field)
}

// LoadError wraps a row-level failure with the offending row's 1-based position.
type LoadError struct {
	Row int
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
