package chi

import "time"

// ErrorCode is a stable machine-readable error code.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeDataUnavailable  ErrorCode = "data_unavailable"
	ErrorCodeModelUnavailable ErrorCode = "model_unavailable"
	ErrorCodeModelNotFound    ErrorCode = "model_not_found"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RecommendRequest is the body of POST /v1/recommendations.
// A missing max bound means no upper limit.
type RecommendRequest struct {
	Skills        string   `json:"skills"`
	Location      string   `json:"location"`
	MinHourlyRate float64  `json:"min_hourly_rate"`
	MaxHourlyRate *float64 `json:"max_hourly_rate,omitempty"`
	MinBudget     float64  `json:"min_budget"`
	MaxBudget     *float64 `json:"max_budget,omitempty"`
	ForceRefit    bool     `json:"force_refit"`
	Limit         int      `json:"limit,omitempty"`
}

// JobItem is one recommended posting.
type JobItem struct {
	Title      string  `json:"title"`
	Country    string  `json:"country"`
	IsHourly   bool    `json:"is_hourly"`
	HourlyLow  float64 `json:"hourly_low"`
	HourlyHigh float64 `json:"hourly_high"`
	Budget     float64 `json:"budget"`
	Similarity float64 `json:"similarity"`
}

// RecommendResponse is the body of a successful recommendation.
// Message is set only when nothing matched.
type RecommendResponse struct {
	Items   []JobItem `json:"items"`
	Message string    `json:"message,omitempty"`
}

// ModelResponse describes the serving model.
type ModelResponse struct {
	ID             string    `json:"id"`
	FittedAt       time.Time `json:"fitted_at"`
	Fingerprint    string    `json:"fingerprint"`
	VocabularySize int       `json:"vocabulary_size"`
	Documents      int       `json:"documents"`
	MaxFeatures    int       `json:"max_features"`
}

// SummaryResponse is a descriptive summary of one salary column.
// Statistics that are undefined for the sample are null.
type SummaryResponse struct {
	Count int      `json:"count"`
	Mean  *float64 `json:"mean"`
	Std   *float64 `json:"std"`
	Min   *float64 `json:"min"`
	P25   *float64 `json:"p25"`
	P50   *float64 `json:"p50"`
	P75   *float64 `json:"p75"`
	Max   *float64 `json:"max"`
}

// CorpusStatsResponse is the body of GET /v1/corpus/stats.
type CorpusStatsResponse struct {
	Records     int             `json:"records"`
	Fingerprint string          `json:"fingerprint"`
	HourlyLow   SummaryResponse `json:"hourly_low"`
	HourlyHigh  SummaryResponse `json:"hourly_high"`
	Budget      SummaryResponse `json:"budget"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
