package model

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/db/memory"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

func TestSaveThenLoad(t *testing.T) {
	repo := New(memory.NewStore(), "jobmatch:")
	ctx := context.Background()
	m := tfidf.Fit([]string{"Engineer USA false", "Writer UK true"}, tfidf.Options{Fingerprint: "fp"})

	if err := repo.Save(ctx, m); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID() != m.ID() || got.Fingerprint() != "fp" || got.Len() != 2 {
		t.Errorf("unexpected model: id=%s fp=%s len=%d", got.ID(), got.Fingerprint(), got.Len())
	}
	if !reflect.DeepEqual(got.Vocabulary(), m.Vocabulary()) {
		t.Errorf("vocabulary = %v, want %v", got.Vocabulary(), m.Vocabulary())
	}
}

func TestKeyUsesPrefix(t *testing.T) {
	ms := &mockKVStore{}
	var gotKey string
	ms.setFn = func(_ context.Context, key string, _ []byte) error {
		gotKey = key
		return nil
	}
	repo := New(ms, "jm:")
	if err := repo.Save(context.Background(), tfidf.Fit([]string{"rust"}, tfidf.Options{})); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if gotKey != "jm:model" {
		t.Errorf("key = %q", gotKey)
	}
}

func TestLoad_NotFound(t *testing.T) {
	repo := New(&mockKVStore{}, "")
	_, err := repo.Load(context.Background())
	if !errors.Is(err, domain.ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestLoad_StoreError(t *testing.T) {
	ms := &mockKVStore{getFn: func(context.Context, string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: errors.New("conn reset")}
	}}
	_, err := New(ms, "").Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrModelNotFound) {
		t.Error("store failure must not look like a missing model")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	tests := map[string]string{
		"not json":     "{{{",
		"inconsistent": `{"id":"x","vocabulary":["a","b"],"idf":[1]}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			ms := &mockKVStore{getFn: func(context.Context, string) ([]byte, error) {
				return []byte(payload), nil
			}}
			if _, err := New(ms, "").Load(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSave_StoreError(t *testing.T) {
	ms := &mockKVStore{setFn: func(context.Context, string, []byte) error {
		return errors.New("disk full")
	}}
	err := New(ms, "").Save(context.Background(), tfidf.Fit([]string{"rust"}, tfidf.Options{}))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDelete(t *testing.T) {
	s := memory.NewStore()
	repo := New(s, "")
	ctx := context.Background()
	if err := repo.Save(ctx, tfidf.Fit([]string{"rust"}, tfidf.Options{})); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Load(ctx); !errors.Is(err, domain.ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound after Delete, got %v", err)
	}
}
