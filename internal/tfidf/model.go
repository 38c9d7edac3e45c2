// Package tfidf fits a term-frequency / inverse-document-frequency vectorizer
// and scores texts against the fitted documents by cosine similarity.
package tfidf

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxFeatures caps the vocabulary when Options.MaxFeatures is not set.
const DefaultMaxFeatures = 5000

// Options controls fitting.
type Options struct {
	// MaxFeatures keeps the terms with the highest document frequency. <=0 means DefaultMaxFeatures.
	MaxFeatures int
	// Fingerprint identifies the fitted texts and is stored with the model.
	Fingerprint string
}

// Model is a fitted vocabulary together with the document vectors it produced.
// A Model is never mutated after construction.
type Model struct {
	id          string
	fittedAt    time.Time
	fingerprint string
	maxFeatures int
	vocabulary  []string
	index       map[string]int
	idf         []float64
	vectors     []Vector
}

// Fit builds a vocabulary over texts and vectorizes every text.
// Vectors are raw term counts weighted by smoothed idf and L2-normalized.
func Fit(texts []string, opts Options) *Model {
	maxFeatures := opts.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	docs := make([][]string, len(texts))
	df := make(map[string]int)
	for i, t := range texts {
		docs[i] = analyze(t)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, tok := range docs[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vocab := selectVocabulary(df, maxFeatures)
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	n := float64(len(texts))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	m := &Model{
		id:          uuid.NewString(),
		fittedAt:    time.Now().UTC(),
		fingerprint: opts.Fingerprint,
		maxFeatures: maxFeatures,
		vocabulary:  vocab,
		index:       index,
		idf:         idf,
	}
	m.vectors = make([]Vector, len(docs))
	for i, d := range docs {
		m.vectors[i] = m.vectorize(d)
	}
	return m
}

// selectVocabulary keeps the limit terms with the highest document frequency
// (ties broken alphabetically) and returns them in alphabetical order.
func selectVocabulary(df map[string]int, limit int) []string {
	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	sort.Strings(terms)
	return terms
}

func (m *Model) vectorize(tokens []string) Vector {
	counts := make(map[int]int)
	for _, tok := range tokens {
		if idx, ok := m.index[tok]; ok {
			counts[idx]++
		}
	}
	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	weights := make([]float64, len(indices))
	for i, idx := range indices {
		weights[i] = float64(counts[idx]) * m.idf[idx]
	}
	return normalize(Vector{Indices: indices, Weights: weights})
}

// Transform maps text into the fitted vector space. Terms outside the vocabulary are ignored.
func (m *Model) Transform(text string) Vector {
	return m.vectorize(analyze(text))
}

// Similarities returns the cosine similarity of q to every document, in document order.
func (m *Model) Similarities(q Vector) []float64 {
	out := make([]float64, len(m.vectors))
	for i, v := range m.vectors {
		out[i] = Cosine(q, v)
	}
	return out
}

// ID identifies this fit.
func (m *Model) ID() string { return m.id }

// FittedAt returns when the model was fitted.
func (m *Model) FittedAt() time.Time { return m.fittedAt }

// Fingerprint returns the fingerprint of the texts the model was fitted on.
func (m *Model) Fingerprint() string { return m.fingerprint }

// MaxFeatures returns the vocabulary cap used for the fit.
func (m *Model) MaxFeatures() int { return m.maxFeatures }

// Len returns the number of document vectors.
func (m *Model) Len() int { return len(m.vectors) }

// VocabularySize returns the number of terms in the vocabulary.
func (m *Model) VocabularySize() int { return len(m.vocabulary) }

// Vocabulary returns a copy of the vocabulary, sorted.
func (m *Model) Vocabulary() []string {
	out := make([]string, len(m.vocabulary))
	copy(out, m.vocabulary)
	return out
}

// IDF returns a copy of the idf weights, indexed like Vocabulary.
func (m *Model) IDF() []float64 {
	out := make([]float64, len(m.idf))
	copy(out, m.idf)
	return out
}

// Vector returns the i-th document vector.
func (m *Model) Vector(i int) Vector { return m.vectors[i] }
