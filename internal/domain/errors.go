package domain

import (
	"errors"
)

var (
	// ErrDataUnavailable signals that the job corpus could not be loaded or is empty.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrModelUnavailable signals that the vector model could not be fitted or loaded.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrNoMatches signals that no posting satisfies the requested bounds.
	ErrNoMatches = errors.New("no matches")
	// ErrModelNotFound signals that no model artifact has been persisted yet.
	ErrModelNotFound = errors.New("model not found")
	// ErrInvalidRequest signals a malformed recommendation request.
	ErrInvalidRequest = errors.New("invalid request")
)

// User-facing messages, one per outcome.
const (
	MsgDataUnavailable  = "No data available due to an error in loading the dataset."
	MsgModelUnavailable = "Unable to load or train TF-IDF model."
	MsgNoMatches        = "No matching jobs found based on your preferences. Try relaxing the filters."
	MsgInvalidRequest   = "Invalid request."
	MsgInternal         = "Internal error."
)

// UserMessage returns the message shown to the user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDataUnavailable):
		return MsgDataUnavailable
	case errors.Is(err, ErrModelUnavailable), errors.Is(err, ErrModelNotFound):
		return MsgModelUnavailable
	case errors.Is(err, ErrNoMatches):
		return MsgNoMatches
	case errors.Is(err, ErrInvalidRequest):
		return MsgInvalidRequest
	default:
		return MsgInternal
	}
}

// Outcome classifies err into a stable label for metrics and response headers.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDataUnavailable):
		return "data_unavailable"
	case errors.Is(err, ErrModelUnavailable), errors.Is(err, ErrModelNotFound):
		return "model_unavailable"
	case errors.Is(err, ErrNoMatches):
		return "no_matches"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "internal_error"
	}
}
