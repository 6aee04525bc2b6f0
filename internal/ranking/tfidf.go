// Package ranking scores documents against a reference document in a shared
// TF-IDF vector space. The vocabulary is derived fresh from each corpus; no
// model is persisted between calls.
package ranking

import (
	"math"
	"strings"
	"unicode"
)

// Similarities builds a TF-IDF weighting over the corpus and returns the
// cosine similarity of document 0 against every following document, one
// score per document in [0, 1].
//
// If the corpus yields an empty vocabulary after stop-word removal, every
// score is 0.0.
func Similarities(corpus []string) []float64 {
	if len(corpus) < 2 {
		return nil
	}

	scores := make([]float64, len(corpus)-1)

	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	for i, text := range corpus {
		counts[i] = termCounts(text)
		for term := range counts[i] {
			df[term]++
		}
	}

	// Empty vocabulary: nothing to weigh, all scores stay zero.
	if len(df) == 0 {
		return scores
	}

	n := float64(len(corpus))
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		// Smoothed idf, so terms present in every document still carry
		// a positive weight.
		idf[term] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	vectors := make([]map[string]float64, len(corpus))
	for i := range corpus {
		vectors[i] = normalize(weigh(counts[i], idf))
	}

	reference := vectors[0]
	for i := 1; i < len(corpus); i++ {
		scores[i-1] = dot(reference, vectors[i])
	}

	return scores
}

// termCounts tokenizes text into lower-cased terms of at least two word
// characters, dropping stop words, and counts occurrences.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)

	var current []rune
	flush := func() {
		if len(current) >= 2 {
			term := string(current)
			if _, ok := stopWords[term]; !ok {
				counts[term]++
			}
		}
		current = current[:0]
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current = append(current, r)
			continue
		}
		flush()
	}
	flush()

	return counts
}

func weigh(counts map[string]int, idf map[string]float64) map[string]float64 {
	weights := make(map[string]float64, len(counts))
	for term, count := range counts {
		weights[term] = float64(count) * idf[term]
	}
	return weights
}

// normalize scales the vector to unit length. Zero vectors are returned
// untouched so empty documents score 0 against everything.
func normalize(vector map[string]float64) map[string]float64 {
	var sum float64
	for _, w := range vector {
		sum += w * w
	}
	if sum == 0 {
		return vector
	}

	norm := math.Sqrt(sum)
	for term, w := range vector {
		vector[term] = w / norm
	}
	return vector
}

// dot returns the inner product of two unit vectors, clamped into [0, 1]
// to hide floating-point drift.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}

	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}

	switch {
	case sum < 0:
		return 0
	case sum > 1:
		return 1
	}
	return sum
}
