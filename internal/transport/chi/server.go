package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/filter"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/query"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/request"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/jobmatch/internal/logger"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

// Response headers.
const (
	HeaderOutcome = metrics.OutcomeHeader
	HeaderModel   = "X-Jobmatch-Model"
	HeaderRefit   = "X-Jobmatch-Refit"
)

const maxBodyBytes = 1 << 20

// Recommender is the use-case surface the API serves.
type Recommender interface {
	Recommend(ctx context.Context, req *request.Request) ([]result.Scored, error)
	Refit(ctx context.Context) (recommenduc.ModelInfo, error)
	ModelInfo(ctx context.Context) (recommenduc.ModelInfo, error)
	CorpusStats(ctx context.Context) (recommenduc.CorpusStats, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers.
type Server struct {
	recommend     Recommender
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(recommend Recommender, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		recommend: recommend,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrDataUnavailable, http.StatusServiceUnavailable, ErrorCodeDataUnavailable),
		sentinelHandler(domain.ErrModelNotFound, http.StatusNotFound, ErrorCodeModelNotFound),
		sentinelHandler(domain.ErrModelUnavailable, http.StatusServiceUnavailable, ErrorCodeModelUnavailable),
	}
	return s
}

// Recommend handles POST /v1/recommendations.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var body RecommendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := recommendRequestFromDTO(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	ctx, usage := domain.NewContextWithModelUsage(r.Context())
	items, err := s.recommend.Recommend(ctx, &req)
	setModelHeaders(w, usage)
	w.Header().Set(HeaderOutcome, domain.Outcome(err))

	if errors.Is(err, domain.ErrNoMatches) {
		s.respond(r.Context(), w, http.StatusOK, RecommendResponse{
			Items:   []JobItem{},
			Message: domain.UserMessage(err),
		})
		return
	}
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	resp := RecommendResponse{Items: make([]JobItem, len(items))}
	for i := range items {
		resp.Items[i] = jobItemFromScored(&items[i])
	}
	s.respond(r.Context(), w, http.StatusOK, resp)
}

// GetModel handles GET /v1/model.
func (s *Server) GetModel(w http.ResponseWriter, r *http.Request) {
	info, err := s.recommend.ModelInfo(r.Context())
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	s.respond(r.Context(), w, http.StatusOK, modelResponse(info))
}

// RefitModel handles POST /v1/model/refit.
func (s *Server) RefitModel(w http.ResponseWriter, r *http.Request) {
	info, err := s.recommend.Refit(r.Context())
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	w.Header().Set(HeaderModel, info.ID)
	s.respond(r.Context(), w, http.StatusOK, modelResponse(info))
}

// CorpusStats handles GET /v1/corpus/stats.
func (s *Server) CorpusStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.recommend.CorpusStats(r.Context())
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	s.respond(r.Context(), w, http.StatusOK, CorpusStatsResponse{
		Records:     st.Records,
		Fingerprint: st.Fingerprint,
		HourlyLow:   summaryResponse(st.Salary.HourlyLow),
		HourlyHigh:  summaryResponse(st.Salary.HourlyHigh),
		Budget:      summaryResponse(st.Salary.Budget),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	s.respond(r.Context(), w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func setModelHeaders(w http.ResponseWriter, usage *domain.ModelUsage) {
	if usage == nil || usage.ModelID == "" {
		return
	}
	w.Header().Set(HeaderModel, usage.ModelID)
	if usage.Refit {
		w.Header().Set(HeaderRefit, "true")
	}
}

// respond writes v as JSON and logs a body that could not be encoded.
func (s *Server) respond(ctx context.Context, w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		logpkg.FromContext(ctx, s.logger).Error("encode response", zap.Error(err))
	}
}

// writeJSON encodes before writing the status, so an unencodable body becomes a
// 500 with an error payload instead of a success status with no body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(body, '\n'))
	return err
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	body, _ := json.Marshal(ErrorResponse{Code: code, Message: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The client sees the user-facing message, never the wrapped cause.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, domain.UserMessage(err))
		return true
	}
}

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logpkg.FromContext(ctx, s.logger)
	log.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func recommendRequestFromDTO(body RecommendRequest) (request.Request, error) {
	maxHourly, maxBudget := math.MaxFloat64, math.MaxFloat64
	if body.MaxHourlyRate != nil {
		maxHourly = *body.MaxHourlyRate
	}
	if body.MaxBudget != nil {
		maxBudget = *body.MaxBudget
	}
	bounds, err := filter.NewBounds(body.MinHourlyRate, maxHourly, body.MinBudget, maxBudget)
	if err != nil {
		return request.Request{}, err
	}
	if body.Limit < 0 || body.Limit > request.MaxLimit {
		return request.Request{}, fmt.Errorf("limit must be between 1 and %d", request.MaxLimit)
	}
	return request.New(query.New(body.Skills, body.Location), bounds, body.ForceRefit, body.Limit)
}

func jobItemFromScored(s *result.Scored) JobItem {
	rec := s.Record()
	return JobItem{
		Title:      rec.Title(),
		Country:    rec.Country(),
		IsHourly:   rec.IsHourly(),
		HourlyLow:  rec.HourlyLow(),
		HourlyHigh: rec.HourlyHigh(),
		Budget:     rec.Budget(),
		Similarity: s.Similarity(),
	}
}

func modelResponse(info recommenduc.ModelInfo) ModelResponse {
	return ModelResponse{
		ID:             info.ID,
		FittedAt:       info.FittedAt,
		Fingerprint:    info.Fingerprint,
		VocabularySize: info.VocabularySize,
		Documents:      info.Documents,
		MaxFeatures:    info.MaxFeatures,
	}
}

func summaryResponse(s job.Summary) SummaryResponse {
	return SummaryResponse{
		Count: s.Count,
		Mean:  finite(s.Mean),
		Std:   finite(s.Std),
		Min:   finite(s.Min),
		P25:   finite(s.P25),
		P50:   finite(s.P50),
		P75:   finite(s.P75),
		Max:   finite(s.Max),
	}
}

// finite maps NaN to nil; encoding/json rejects NaN.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
