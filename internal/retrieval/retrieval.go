// Package retrieval ranks candidate documents against a query text using
// TF-IDF vectors and cosine similarity. The vocabulary is fitted fresh on
// every call, so retrieval stays stateless as the document set changes.
package retrieval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grantpilot/sectiond/internal/domain"
)

// TopK returns the k candidates most similar to query, ranked by similarity
// descending. Ties keep the original candidate order. The result length is
// min(k, len(candidates)); no similarity threshold is applied, so even
// zero-similarity candidates are returned when fewer better matches exist.
func TopK(query string, candidates []domain.Document, k int) ([]domain.Document, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: retrieval limit must be positive", domain.ErrValidation)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	for _, c := range candidates {
		if strings.TrimSpace(c.Text) == "" {
			return nil, fmt.Errorf("%w: candidate document %q has no text", domain.ErrValidation, c.ID)
		}
	}

	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, query)
	for _, c := range candidates {
		corpus = append(corpus, c.Text)
	}
	v := fit(corpus)
	queryVec := v.transform(query)

	type scored struct {
		doc   domain.Document
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{doc: c, score: dot(queryVec, v.transform(c.Text))}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]domain.Document, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].doc
	}
	return out, nil
}

// dot computes the dot product of two equally sized vectors. Both sides are
// L2-normalized by transform, so this is the cosine similarity.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
