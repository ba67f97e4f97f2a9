// Package similarity provides batch TF-IDF vectorization and cosine
// similarity scoring between a job description and candidate resume texts.
package similarity

import (
	"math"
	"sort"

	"github.com/jonathan/talent-matcher/internal/parsing"
)

// DefaultMaxVocabulary caps the number of vocabulary terms kept per batch to
// bound memory and CPU on large corpora.
const DefaultMaxVocabulary = 1000

// Scorer computes TF-IDF cosine similarities. The zero value is not usable;
// construct with NewScorer.
type Scorer struct {
	maxVocabulary int
}

// NewScorer returns a Scorer with the given vocabulary cap; values <= 0 use
// DefaultMaxVocabulary.
func NewScorer(maxVocabulary int) *Scorer {
	if maxVocabulary <= 0 {
		maxVocabulary = DefaultMaxVocabulary
	}
	return &Scorer{maxVocabulary: maxVocabulary}
}

// Scores vectorizes the job text together with every candidate text in one
// batch (document-frequency statistics are shared, so scores are comparable)
// and returns the cosine similarity of each candidate against the job, one
// score per candidate in input order. Empty or all-stop-word texts score
// 0.0. Given identical inputs the output is identical across runs.
func (s *Scorer) Scores(jobText string, candidateTexts []string) []float64 {
	docs := make([][]string, 0, len(candidateTexts)+1)
	docs = append(docs, parsing.Tokenize(jobText))
	for _, text := range candidateTexts {
		docs = append(docs, parsing.Tokenize(text))
	}

	vocabulary := s.buildVocabulary(docs)
	idf := inverseDocumentFrequencies(docs, vocabulary)

	jobVector := tfidfVector(docs[0], vocabulary, idf)

	scores := make([]float64, len(candidateTexts))
	for i := range candidateTexts {
		candidateVector := tfidfVector(docs[i+1], vocabulary, idf)
		scores[i] = cosine(jobVector, candidateVector)
	}
	return scores
}

// buildVocabulary selects up to maxVocabulary terms for the batch. Terms are
// ranked by total collection frequency with lexicographic tie-breaking, so
// vocabulary selection never depends on map iteration order.
func (s *Scorer) buildVocabulary(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			counts[term]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > s.maxVocabulary {
		terms = terms[:s.maxVocabulary]
	}

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}
	return vocabulary
}

// inverseDocumentFrequencies computes smoothed IDF weights:
// idf = ln((1+n)/(1+df)) + 1. Smoothing keeps terms present in every
// document from zeroing out entirely.
func inverseDocumentFrequencies(docs [][]string, vocabulary map[string]int) []float64 {
	df := make([]int, len(vocabulary))
	for _, doc := range docs {
		seen := make(map[int]bool, len(doc))
		for _, term := range doc {
			if idx, ok := vocabulary[term]; ok && !seen[idx] {
				df[idx]++
				seen[idx] = true
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for i, count := range df {
		idf[i] = math.Log((1+n)/(1+float64(count))) + 1
	}
	return idf
}

// tfidfVector builds an L2-normalized TF-IDF vector for one document.
// Documents with no in-vocabulary terms yield the zero vector.
func tfidfVector(doc []string, vocabulary map[string]int, idf []float64) []float64 {
	vector := make([]float64, len(vocabulary))
	if len(doc) == 0 {
		return vector
	}

	for _, term := range doc {
		if idx, ok := vocabulary[term]; ok {
			vector[idx]++
		}
	}

	norm := 0.0
	for i := range vector {
		vector[i] = vector[i] / float64(len(doc)) * idf[i]
		norm += vector[i] * vector[i]
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

// cosine returns the cosine similarity of two L2-normalized vectors. The
// zero vector scores 0.0 rather than producing NaN.
func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}

	// Both vectors are already unit length (or zero); clamp float drift.
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
