package model

import "fmt"

// AggregateError reports the failure of one sub-fetch within a composite
// operation (view-model build or leaderboard fetch). The whole composite
// fails with this single error and all partial results are discarded.
type AggregateError struct {
	// Operation names the composite ("collection" or "leaderboard")
	Operation string

	// Category names the sub-fetch that failed
	Category string

	// Err is the underlying failure
	Err error
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s fetch failed for %s: %v", e.Operation, e.Category, e.Err)
}

func (e *AggregateError) Unwrap() error {
	return e.Err
}
