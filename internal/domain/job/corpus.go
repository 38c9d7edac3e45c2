package job

import (
	"crypto/sha256"
	"encoding/hex"
)

// Corpus is the ordered set of postings. Order follows ingestion and is kept for display only.
type Corpus struct {
	records []Record
}

// NewCorpus prepares every raw row in order.
func NewCorpus(raws []Raw) Corpus {
	records := make([]Record, len(raws))
	for i, r := range raws {
		records[i] = Prepare(r)
	}
	return Corpus{records: records}
}

// FromRecords wraps already prepared records.
func FromRecords(records []Record) Corpus {
	c := make([]Record, len(records))
	copy(c, records)
	return Corpus{records: c}
}

// Len returns the number of postings.
func (c Corpus) Len() int { return len(c.records) }

// IsEmpty reports whether the corpus has no postings.
func (c Corpus) IsEmpty() bool { return len(c.records) == 0 }

// At returns the i-th posting.
func (c Corpus) At(i int) Record { return c.records[i] }

// Texts returns the combined text of every posting, in corpus order.
func (c Corpus) Texts() []string {
	texts := make([]string, len(c.records))
	for i, r := range c.records {
		texts[i] = r.combinedText
	}
	return texts
}

// Fingerprint hashes the combined texts in order. Two corpora with the same
// fingerprint produce the same fitted model.
func (c Corpus) Fingerprint() string {
	h := sha256.New()
	for _, r := range c.records {
		h.Write([]byte(r.combinedText))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
