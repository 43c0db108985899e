// Package scoring compares skill lists with a bag-of-words cosine similarity.
package scoring

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// CountVectorizer turns term lists into raw term-frequency vectors.
// It builds a sorted vocabulary from the documents it is fitted on.
type CountVectorizer struct {
	vocabulary map[string]int
	terms      []string
	prepared   bool
}

// NewCountVectorizer creates an unfitted vectorizer.
func NewCountVectorizer() *CountVectorizer {
	return &CountVectorizer{vocabulary: make(map[string]int)}
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lowercases text and returns its word tokens of two or more characters.
// Punctuation separates tokens, so "c++" produces nothing and "power bi" two tokens.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Fit builds the vocabulary from the union of terms across documents.
func (v *CountVectorizer) Fit(docs [][]string) error {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, term := range doc {
			seen[term] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return errors.New("empty vocabulary; documents contain no terms")
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	v.vocabulary = make(map[string]int, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
	}
	v.terms = terms
	v.prepared = true
	return nil
}

// Dimension returns the length of the produced vectors.
func (v *CountVectorizer) Dimension() int { return len(v.terms) }

// Terms returns the fitted vocabulary in vector order.
func (v *CountVectorizer) Terms() []string { return append([]string(nil), v.terms...) }

// Transform counts the fitted vocabulary terms of doc. Unknown terms are ignored.
func (v *CountVectorizer) Transform(doc []string) ([]float64, error) {
	if !v.prepared {
		return nil, errors.New("count vectorizer not fitted")
	}
	vec := make([]float64, len(v.terms))
	for _, term := range doc {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}
	return vec, nil
}
