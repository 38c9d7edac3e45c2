package jobmatch

import "github.com/kailas-cloud/jobmatch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrDataUnavailable  = domain.ErrDataUnavailable
	ErrModelUnavailable = domain.ErrModelUnavailable
	ErrNoMatches        = domain.ErrNoMatches
	ErrModelNotFound    = domain.ErrModelNotFound
	ErrInvalidRequest   = domain.ErrInvalidRequest
)

// Message returns the user-facing text for an error returned by the client.
func Message(err error) string { return domain.UserMessage(err) }

// outcomeOf labels err for metrics and logs.
func outcomeOf(err error) string { return domain.Outcome(err) }
