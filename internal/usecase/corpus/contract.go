package corpus

import (
	"context"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
)

// Loader reads raw postings from the configured source.
type Loader interface {
	Load(ctx context.Context) ([]job.Raw, error)
}
