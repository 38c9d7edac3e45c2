package tfidf

import (
	"errors"
	"fmt"
	"time"
)

// Snapshot is the persisted form of a Model. Vocabulary and vectors travel together.
type Snapshot struct {
	ID          string    `json:"id"`
	FittedAt    time.Time `json:"fitted_at"`
	Fingerprint string    `json:"fingerprint"`
	MaxFeatures int       `json:"max_features"`
	Vocabulary  []string  `json:"vocabulary"`
	IDF         []float64 `json:"idf"`
	Vectors     []Vector  `json:"vectors"`
}

// Snapshot exports the model.
func (m *Model) Snapshot() Snapshot {
	vectors := make([]Vector, len(m.vectors))
	copy(vectors, m.vectors)
	return Snapshot{
		ID:          m.id,
		FittedAt:    m.fittedAt,
		Fingerprint: m.fingerprint,
		MaxFeatures: m.maxFeatures,
		Vocabulary:  m.Vocabulary(),
		IDF:         m.IDF(),
		Vectors:     vectors,
	}
}

// FromSnapshot rebuilds a Model, rejecting inconsistent snapshots.
func FromSnapshot(s Snapshot) (*Model, error) {
	if s.ID == "" {
		return nil, errors.New("snapshot id is empty")
	}
	if len(s.IDF) != len(s.Vocabulary) {
		return nil, fmt.Errorf("idf length %d does not match vocabulary size %d", len(s.IDF), len(s.Vocabulary))
	}
	index := make(map[string]int, len(s.Vocabulary))
	for i, term := range s.Vocabulary {
		if i > 0 && s.Vocabulary[i-1] >= term {
			return nil, fmt.Errorf("vocabulary not sorted at %d", i)
		}
		index[term] = i
	}
	for d, v := range s.Vectors {
		if len(v.Indices) != len(v.Weights) {
			return nil, fmt.Errorf("vector %d: %d indices for %d weights", d, len(v.Indices), len(v.Weights))
		}
		for k, idx := range v.Indices {
			if idx < 0 || idx >= len(s.Vocabulary) {
				return nil, fmt.Errorf("vector %d: index %d out of range", d, idx)
			}
			if k > 0 && v.Indices[k-1] >= idx {
				return nil, fmt.Errorf("vector %d: indices not increasing", d)
			}
		}
	}
	return &Model{
		id:          s.ID,
		fittedAt:    s.FittedAt,
		fingerprint: s.Fingerprint,
		maxFeatures: s.MaxFeatures,
		vocabulary:  append([]string(nil), s.Vocabulary...),
		index:       index,
		idf:         append([]float64(nil), s.IDF...),
		vectors:     append([]Vector(nil), s.Vectors...),
	}, nil
}
