package domain

import "context"

type modelUsageKey struct{}

// ModelUsage records which fitted model served a single request.
// The handler puts a mutable pointer into the context before calling the service;
// the service writes after fit-or-load; the handler reads it for response headers.
type ModelUsage struct {
	ModelID string
	Refit   bool
}

// NewContextWithModelUsage returns a context with an embedded usage collector.
func NewContextWithModelUsage(ctx context.Context) (context.Context, *ModelUsage) {
	u := &ModelUsage{}
	return context.WithValue(ctx, modelUsageKey{}, u), u
}

// ModelUsageFromContext extracts the usage collector from context. Returns nil if not set.
func ModelUsageFromContext(ctx context.Context) *ModelUsage {
	u, _ := ctx.Value(modelUsageKey{}).(*ModelUsage)
	return u
}

// Record stores the serving model. Safe on a nil receiver.
func (u *ModelUsage) Record(modelID string, refit bool) {
	if u != nil {
		u.ModelID = modelID
		u.Refit = refit
	}
}
