package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestUserMessageAndOutcome(t *testing.T) {
	tests := []struct {
		err     error
		msg     string
		outcome string
	}{
		{nil, "", "ok"},
		{ErrDataUnavailable, MsgDataUnavailable, "data_unavailable"},
		{fmt.Errorf("fit: %w", ErrModelUnavailable), MsgModelUnavailable, "model_unavailable"},
		{ErrModelNotFound, MsgModelUnavailable, "model_unavailable"},
		{ErrNoMatches, MsgNoMatches, "no_matches"},
		{ErrInvalidRequest, MsgInvalidRequest, "invalid_request"},
		{errors.New("boom"), MsgInternal, "internal_error"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.msg {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.msg)
		}
		if got := Outcome(tt.err); got != tt.outcome {
			t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.outcome)
		}
	}
}

func TestModelUsage(t *testing.T) {
	if ModelUsageFromContext(context.Background()) != nil {
		t.Error("expected nil usage on bare context")
	}
	var nilUsage *ModelUsage
	nilUsage.Record("x", true)

	ctx, u := NewContextWithModelUsage(context.Background())
	ModelUsageFromContext(ctx).Record("m-1", true)
	if u.ModelID != "m-1" || !u.Refit {
		t.Errorf("usage = %+v", u)
	}
}

func TestParseFirstRequest(t *testing.T) {
	for in, want := range map[string]FirstRequest{"": FirstRequestFit, "fit": FirstRequestFit, "load": FirstRequestLoad} {
		got, err := ParseFirstRequest(in)
		if err != nil || got != want {
			t.Errorf("ParseFirstRequest(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFirstRequest("warm"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if cfg := DefaultVectorizerConfig(); cfg.MaxFeatures != DefaultMaxFeatures || cfg.FirstRequest != FirstRequestFit {
		t.Errorf("defaults = %+v", cfg)
	}
}
