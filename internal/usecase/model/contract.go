package model

import (
	"context"

	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

// Repository persists the fitted model artifact.
type Repository interface {
	Save(ctx context.Context, m *tfidf.Model) error
	Load(ctx context.Context) (*tfidf.Model, error)
	Delete(ctx context.Context) error
}
