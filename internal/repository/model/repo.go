// Package model persists fitted TF-IDF models as one opaque artifact.
package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

const artifactKey = "model"

// store is the consumer interface for the artifact repository (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Repo reads and writes the model artifact. Vocabulary and vectors are one value,
// so a reader never sees one without the other.
type Repo struct {
	store store
	key   string
}

// New creates a repository. prefix namespaces the artifact key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, key: prefix + artifactKey}
}

// Save writes the whole artifact.
func (r *Repo) Save(ctx context.Context, m *tfidf.Model) error {
	data, err := json.Marshal(m.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// Load reads the whole artifact. Returns domain.ErrModelNotFound if none was saved.
func (r *Repo) Load(ctx context.Context) (*tfidf.Model, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	var snap tfidf.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	m, err := tfidf.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("rebuild model: %w", err)
	}
	return m, nil
}

// Delete removes the artifact.
func (r *Repo) Delete(ctx context.Context) error {
	if err := r.store.Del(ctx, r.key); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}
