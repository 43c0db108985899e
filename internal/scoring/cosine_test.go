package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_SplitsMultiWordSkills(t *testing.T) {
	s := NewCosineScorer(false)
	matched := []string{"python", "sql"}
	required := []string{"python", "sql", "machine learning", "power bi"}

	assert.Equal(t, 57.74, s.Score(matched, required))
}

func TestScore_AtomicTerms(t *testing.T) {
	s := NewCosineScorer(true)
	matched := []string{"python", "sql"}
	required := []string{"python", "sql", "machine learning", "power bi"}

	assert.Equal(t, 70.71, s.Score(matched, required))
}

func TestScore_Identical(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		s := NewCosineScorer(atomic)
		skills := []string{"python", "deep learning", "aws"}
		assert.Equal(t, 100.0, s.Score(skills, skills))
	}
}

func TestScore_EmptyInputsScoreZero(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{name: "empty first", a: nil, b: []string{"python", "sql"}},
		{name: "empty second", a: []string{"python"}, b: []string{}},
		{name: "both empty", a: nil, b: nil},
		{name: "tokenless skill", a: []string{"c++"}, b: []string{"c++", "java"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, NewCosineScorer(false).Score(tt.a, tt.b))
		})
	}
}

func TestScore_WithinRange(t *testing.T) {
	s := NewCosineScorer(false)
	inputs := [][]string{
		{"python"},
		{"sql", "sql", "excel"},
		{"machine learning", "deep learning"},
		{"aws", "git"},
	}
	for _, a := range inputs {
		for _, b := range inputs {
			got := s.Score(a, b)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		}
	}
}

func TestScorer_Name(t *testing.T) {
	assert.Equal(t, "count", NewCosineScorer(false).Name())
	assert.Equal(t, "count-atomic", NewCosineScorer(true).Name())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "Machine Learning", want: []string{"machine", "learning"}},
		{in: "c++", want: nil},
		{in: "power bi, R, go_lang", want: []string{"power", "bi", "go_lang"}},
		{in: "", want: nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.in), tt.in)
	}
}

func TestCountVectorizer(t *testing.T) {
	v := NewCountVectorizer()
	_, err := v.Transform([]string{"python"})
	require.Error(t, err)

	require.NoError(t, v.Fit([][]string{{"sql", "python"}, {"python", "bi"}}))
	assert.Equal(t, []string{"bi", "python", "sql"}, v.Terms())
	assert.Equal(t, 3, v.Dimension())

	vec, err := v.Transform([]string{"python", "python", "rust"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0}, vec)

	assert.Error(t, NewCountVectorizer().Fit([][]string{{}, nil}))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2}, []float64{2, 4}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
}
