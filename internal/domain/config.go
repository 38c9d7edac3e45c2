package domain

import "fmt"

// DefaultMaxFeatures caps the fitted vocabulary size.
const DefaultMaxFeatures = 5000

// DefaultLimit is the number of recommendations returned per request.
const DefaultLimit = 10

// FirstRequest selects what the first non-forced request does before any fit
// has happened in this process.
type FirstRequest string

const (
	// FirstRequestFit fits over the current corpus and persists the artifact.
	FirstRequestFit FirstRequest = "fit"
	// FirstRequestLoad loads the persisted artifact.
	FirstRequestLoad FirstRequest = "load"
)

// ParseFirstRequest validates s. Empty means FirstRequestFit.
func ParseFirstRequest(s string) (FirstRequest, error) {
	switch FirstRequest(s) {
	case "", FirstRequestFit:
		return FirstRequestFit, nil
	case FirstRequestLoad:
		return FirstRequestLoad, nil
	default:
		return "", fmt.Errorf("unknown first_request %q (want fit or load)", s)
	}
}

// VectorizerConfig holds TF-IDF fitting settings, not exposed to clients.
type VectorizerConfig struct {
	MaxFeatures         int
	FirstRequest        FirstRequest
	RefitOnCorpusChange bool
}

// DefaultVectorizerConfig returns the settings the recommender ships with.
// FirstRequest defaults to fit, so a fresh process never loads an artifact it
// did not write itself; set it to load to reuse a persisted model across restarts.
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{
		MaxFeatures:  DefaultMaxFeatures,
		FirstRequest: FirstRequestFit,
	}
}
