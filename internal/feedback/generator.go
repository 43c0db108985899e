// Package feedback turns a skill match outcome into improvement suggestions.
package feedback

import (
	"fmt"
	"strings"
)

// Section titles used in tips and in the rendered feedback.
const (
	SectionSkills     = "Skill Improvement Tips"
	SectionFormatting = "Formatting Tip"

	formattingAdvice = "Highlight your skills in a separate 'Skills' section."
)

// Tip is one titled block of feedback lines.
type Tip struct {
	Section string   `json:"section"`
	Lines   []string `json:"lines"`
}

// Generator builds feedback naming a fixed set of learning resources.
type Generator struct {
	resources string
}

// NewGenerator creates a generator. Resources are listed in tips as "A, B, or C".
func NewGenerator(resources []string) *Generator {
	return &Generator{resources: joinResources(resources)}
}

// Tips returns one block per missing skill set and one formatting block when nothing matched.
func (g *Generator) Tips(matched, missing []string) []Tip {
	var tips []Tip
	if len(missing) > 0 {
		lines := make([]string, 0, len(missing))
		for _, skill := range missing {
			lines = append(lines, g.learningLine(skill))
		}
		tips = append(tips, Tip{Section: SectionSkills, Lines: lines})
	}
	if len(matched) == 0 {
		tips = append(tips, Tip{Section: SectionFormatting, Lines: []string{formattingAdvice}})
	}
	return tips
}

// Generate renders Tips as markdown, or returns "" when there is nothing to suggest.
func (g *Generator) Generate(matched, missing []string) string {
	var sb strings.Builder
	for _, tip := range g.Tips(matched, missing) {
		fmt.Fprintf(&sb, "\n\n*%s:*\n", tip.Section)
		for _, line := range tip.Lines {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
	}
	return sb.String()
}

func (g *Generator) learningLine(skill string) string {
	if g.resources == "" {
		return fmt.Sprintf("Consider learning %s.", skill)
	}
	return fmt.Sprintf("Consider learning %s via %s.", skill, g.resources)
}

func joinResources(resources []string) string {
	switch len(resources) {
	case 0:
		return ""
	case 1:
		return resources[0]
	case 2:
		return resources[0] + " or " + resources[1]
	}
	return strings.Join(resources[:len(resources)-1], ", ") + ", or " + resources[len(resources)-1]
}
