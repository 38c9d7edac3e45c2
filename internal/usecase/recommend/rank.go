package recommend

import (
	"sort"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/filter"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/query"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

// Score pairs every posting with its cosine similarity to q, in corpus order.
func Score(m *tfidf.Model, corpus job.Corpus, q query.Query) []result.Scored {
	sims := m.Similarities(m.Transform(q.Text()))
	n := min(len(sims), corpus.Len())
	out := make([]result.Scored, n)
	for i := 0; i < n; i++ {
		out[i] = result.New(corpus.At(i), sims[i], i)
	}
	return out
}

// Rank keeps the postings inside bounds, sorts them by similarity descending and
// truncates to limit. Equal similarities keep corpus order.
func Rank(scored []result.Scored, bounds filter.Bounds, limit int) []result.Scored {
	kept := make([]result.Scored, 0, len(scored))
	for _, s := range scored {
		if bounds.Match(s.Record()) {
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Similarity() > kept[j].Similarity()
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
