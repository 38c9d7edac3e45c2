package request

import (
	"fmt"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/filter"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/query"
)

// Request parameter limits.
const (
	// MaxQueryLength is the maximum allowed length of skills plus location.
	MaxQueryLength = 4096
	DefaultLimit   = domain.DefaultLimit
	MaxLimit       = 100
)

// Request is a validated recommendation request.
type Request struct {
	query      query.Query
	bounds     filter.Bounds
	forceRefit bool
	limit      int
}

// New validates and normalizes recommendation parameters.
// An empty query is allowed and scores every posting 0. limit<=0 means DefaultLimit.
func New(q query.Query, bounds filter.Bounds, forceRefit bool, limit int) (Request, error) {
	if len(q.Skills())+len(q.Location()) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Request{
		query:      q,
		bounds:     bounds,
		forceRefit: forceRefit,
		limit:      limit,
	}, nil
}

// Query returns the user's preference text.
func (r *Request) Query() query.Query { return r.query }

// Bounds returns the salary filter.
func (r *Request) Bounds() filter.Bounds { return r.bounds }

// ForceRefit reports whether the model must be refitted before scoring.
func (r *Request) ForceRefit() bool { return r.forceRefit }

// Limit returns the maximum number of recommendations.
func (r *Request) Limit() int { return r.limit }
