package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillChart_Percentages(t *testing.T) {
	tests := []struct {
		name        string
		chart       SkillChart
		wantMatched float64
		wantMissing float64
	}{
		{name: "empty", chart: SkillChart{}, wantMatched: 0, wantMissing: 0},
		{name: "half", chart: SkillChart{Matched: 2, Missing: 2}, wantMatched: 50, wantMissing: 50},
		{name: "thirds", chart: SkillChart{Matched: 1, Missing: 2}, wantMatched: 33.3, wantMissing: 66.7},
		{name: "all matched", chart: SkillChart{Matched: 3}, wantMatched: 100, wantMissing: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantMatched, tt.chart.MatchedPercent(), 1e-9)
			assert.InDelta(t, tt.wantMissing, tt.chart.MissingPercent(), 1e-9)
		})
	}
}

func TestBuildTable_MatchedThenMissing(t *testing.T) {
	rows := BuildTable([]string{"python", "sql"}, []string{"aws"})

	assert.Equal(t, []SkillRow{
		{Skill: "python", Status: StatusMatched},
		{Skill: "sql", Status: StatusMatched},
		{Skill: "aws", Status: StatusMissing},
	}, rows)
	assert.Empty(t, BuildTable(nil, nil))
}
