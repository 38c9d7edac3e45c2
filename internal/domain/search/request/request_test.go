package request

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/jobmatch/internal/domain/search/filter"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/query"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New(query.New("Go", "Berlin"), filter.Permissive(), false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query().Skills() != "Go" || r.Query().Location() != "Berlin" {
		t.Errorf("Query() = %+v", r.Query())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if r.ForceRefit() {
		t.Error("ForceRefit() = true")
	}
}

func TestNew_ExplicitValues(t *testing.T) {
	b, _ := filter.NewBounds(1, 2, 3, 4)
	r, err := New(query.New("x", "y"), b, true, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 25 {
		t.Errorf("Limit() = %d", r.Limit())
	}
	if !r.ForceRefit() {
		t.Error("ForceRefit() = false")
	}
	if r.Bounds().MaxBudget() != 4 {
		t.Errorf("Bounds() = %+v", r.Bounds())
	}
}

func TestNew_LimitClamped(t *testing.T) {
	r, err := New(query.New("x", "y"), filter.Permissive(), false, MaxLimit+50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), MaxLimit)
	}
}

func TestNew_EmptyQueryAllowed(t *testing.T) {
	if _, err := New(query.New("", ""), filter.Permissive(), false, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	long := strings.Repeat("a", MaxQueryLength)
	_, err := New(query.New(long, "b"), filter.Permissive(), false, 0)
	if err == nil {
		t.Fatal("expected error for long query")
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("unexpected error: %v", err)
	}
}
