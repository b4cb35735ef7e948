// Package shape converts raw upstream payloads into display-ready metric
// structures. Every function here is a pure mapping; unit conversion and
// missing-value handling go through the display package so the sentinel
// contract is applied exactly once.
package shape

import "fmt"

// ShapeError reports a payload that is structurally insufficient for its
// shaper, e.g. an empty result set where at least one row is required.
type ShapeError struct {
	// Category names the metric category being shaped
	Category string

	// Reason describes what was missing
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot shape %s: %s", e.Category, e.Reason)
}

func emptyErr(category string) *ShapeError {
	return &ShapeError{Category: category, Reason: "empty result set"}
}
