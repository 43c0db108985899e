package scoring

import (
	"math"
	"strings"
)

// CosineScorer scores two skill lists by the cosine of their term-count vectors.
type CosineScorer struct {
	atomic bool
}

// NewCosineScorer creates a scorer. With atomic set, each skill string is one term;
// otherwise skills are joined and split into words, so "machine learning" counts as two terms.
func NewCosineScorer(atomic bool) *CosineScorer {
	return &CosineScorer{atomic: atomic}
}

// Name returns the identifier of this scorer implementation.
func (s *CosineScorer) Name() string {
	if s.atomic {
		return "count-atomic"
	}
	return "count"
}

// Score returns the cosine similarity of a and b scaled to [0, 100] and rounded to 2 decimals.
// A list with no terms has a zero vector, which scores 0.
func (s *CosineScorer) Score(a, b []string) float64 {
	da, db := s.terms(a), s.terms(b)
	v := NewCountVectorizer()
	if err := v.Fit([][]string{da, db}); err != nil {
		return 0
	}
	va, err := v.Transform(da)
	if err != nil {
		return 0
	}
	vb, err := v.Transform(db)
	if err != nil {
		return 0
	}
	return round2(math.Min(1, Cosine(va, vb)) * 100)
}

func (s *CosineScorer) terms(skills []string) []string {
	if !s.atomic {
		return Tokenize(strings.Join(skills, " "))
	}
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.ToLower(strings.TrimSpace(sk))
		if sk != "" {
			out = append(out, sk)
		}
	}
	return out
}

// Cosine returns the cosine similarity of two vectors, or 0 when either has zero length.
func Cosine(a, b []float64) float64 {
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
