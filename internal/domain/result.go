package domain

import "math"

// Status is the outcome of a single required skill.
type Status string

const (
	StatusMatched Status = "Matched"
	StatusMissing Status = "Missing"
)

// SkillRow is one line of the skills summary table.
type SkillRow struct {
	Skill  string `json:"skill"`
	Status Status `json:"status"`
}

// SkillChart holds the two category counts behind the matched/missing chart.
type SkillChart struct {
	Matched int `json:"matched"`
	Missing int `json:"missing"`
}

// Total returns the number of skills represented in the chart.
func (c SkillChart) Total() int { return c.Matched + c.Missing }

// MatchedPercent returns the matched share rounded to one decimal, or 0 for an empty chart.
func (c SkillChart) MatchedPercent() float64 { return c.percent(c.Matched) }

// MissingPercent returns the missing share rounded to one decimal, or 0 for an empty chart.
func (c SkillChart) MissingPercent() float64 { return c.percent(c.Missing) }

func (c SkillChart) percent(n int) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

// MatchResult carries every value the presentation layers render for one resume.
type MatchResult struct {
	ResumeText     string     `json:"resume_text"`
	UserSkills     []string   `json:"user_skills"`
	RequiredSkills []string   `json:"required_skills"`
	MatchedSkills  []string   `json:"matched_skills"`
	MissingSkills  []string   `json:"missing_skills"`
	Score          float64    `json:"score"`
	Feedback       string     `json:"feedback"`
	Chart          SkillChart `json:"chart"`
	Table          []SkillRow `json:"table"`
	Warnings       []string   `json:"warnings,omitempty"`
}

// BuildTable lists matched skills first, then missing ones.
func BuildTable(matched, missing []string) []SkillRow {
	rows := make([]SkillRow, 0, len(matched)+len(missing))
	for _, s := range matched {
		rows = append(rows, SkillRow{Skill: s, Status: StatusMatched})
	}
	for _, s := range missing {
		rows = append(rows, SkillRow{Skill: s, Status: StatusMissing})
	}
	return rows
}
