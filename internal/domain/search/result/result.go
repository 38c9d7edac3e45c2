package result

import "github.com/kailas-cloud/jobmatch/internal/domain/job"

// Scored is a posting paired with its similarity to the query.
type Scored struct {
	record     job.Record
	similarity float64
	position   int
}

// New creates a scored posting. position is the record's index in the corpus.
func New(record job.Record, similarity float64, position int) Scored {
	return Scored{record: record, similarity: similarity, position: position}
}

// Record returns the posting.
func (s *Scored) Record() job.Record { return s.record }

// Similarity returns the cosine similarity to the query.
func (s *Scored) Similarity() float64 { return s.similarity }

// Position returns the index of the posting in the corpus.
func (s *Scored) Position() int { return s.position }
