package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultResources = []string{"Coursera", "Udemy", "YouTube"}

func TestGenerate_MatchedOnly(t *testing.T) {
	out := NewGenerator(defaultResources).Generate([]string{"sql"}, nil)

	assert.Empty(t, out)
	assert.NotContains(t, out, "Skill Improvement Tips")
	assert.NotContains(t, out, "Formatting Tip")
}

func TestGenerate_NothingMatched(t *testing.T) {
	out := NewGenerator(defaultResources).Generate(nil, []string{"aws"})

	assert.Equal(t,
		"\n\n*Skill Improvement Tips:*\n"+
			"- Consider learning aws via Coursera, Udemy, or YouTube.\n"+
			"\n\n*Formatting Tip:*\n"+
			"- Highlight your skills in a separate 'Skills' section.\n",
		out)
}

func TestGenerate_OneLinePerMissingSkill(t *testing.T) {
	out := NewGenerator(defaultResources).Generate(
		[]string{"python", "sql"},
		[]string{"machine learning", "power bi"},
	)

	assert.Contains(t, out, "- Consider learning machine learning via Coursera, Udemy, or YouTube.\n")
	assert.Contains(t, out, "- Consider learning power bi via Coursera, Udemy, or YouTube.\n")
	assert.NotContains(t, out, "Formatting Tip")
}

func TestGenerate_BothEmpty(t *testing.T) {
	out := NewGenerator(defaultResources).Generate(nil, nil)

	assert.Contains(t, out, "Formatting Tip")
	assert.NotContains(t, out, "Skill Improvement Tips")
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewGenerator(defaultResources)
	assert.Equal(t, g.Generate(nil, []string{"git"}), g.Generate(nil, []string{"git"}))
}

func TestTips(t *testing.T) {
	tips := NewGenerator([]string{"Coursera"}).Tips(nil, []string{"git", "aws"})

	assert.Equal(t, []Tip{
		{Section: SectionSkills, Lines: []string{"Consider learning git via Coursera.", "Consider learning aws via Coursera."}},
		{Section: SectionFormatting, Lines: []string{formattingAdvice}},
	}, tips)
	assert.Nil(t, NewGenerator(nil).Tips([]string{"go"}, nil))
}

func TestJoinResources(t *testing.T) {
	assert.Equal(t, "", joinResources(nil))
	assert.Equal(t, "Udemy", joinResources([]string{"Udemy"}))
	assert.Equal(t, "Udemy or YouTube", joinResources([]string{"Udemy", "YouTube"}))
	assert.Equal(t, "Coursera, Udemy, or YouTube", joinResources(defaultResources))
}
