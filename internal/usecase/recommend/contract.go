package recommend

import (
	"context"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

// CorpusProvider supplies the prepared corpus. An empty corpus means the data is unavailable.
type CorpusProvider interface {
	Load(ctx context.Context) job.Corpus
	Reload(ctx context.Context) job.Corpus
}

// ModelProvider supplies a model aligned with the corpus.
type ModelProvider interface {
	FitOrLoad(ctx context.Context, corpus job.Corpus, forceRefit bool) (*tfidf.Model, error)
	Current() (*tfidf.Model, bool)
}
