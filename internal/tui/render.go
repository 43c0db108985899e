package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"resume-matcher/internal/domain"
)

const chartWidth = 40

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	scoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	matchedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C49F"))
	missingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5C5C"))
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m Model) renderResult() string {
	if m.result == nil {
		return mutedStyle.Render("No resume analysed yet.")
	}
	r := m.result
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("Skill Match Results") + "\n")
	sb.WriteString(scoreStyle.Render(fmt.Sprintf("Match Score: %.2f%%", r.Score)) + "\n")
	sb.WriteString("Matched Skills: " + matchedStyle.Render(listOrNone(r.MatchedSkills)) + "\n")
	sb.WriteString("Missing Skills: " + missingStyle.Render(listOrNone(r.MissingSkills)) + "\n")

	if fb := renderFeedback(r.Feedback); fb != "" {
		sb.WriteString("\n" + sectionStyle.Render("Feedback & Learning Tips") + "\n")
		sb.WriteString(fb)
	}

	sb.WriteString("\n" + sectionStyle.Render("Analytics Dashboard") + "\n")
	sb.WriteString(renderChart(r.Chart) + "\n\n")
	if len(r.Table) > 0 {
		sb.WriteString(renderTable(r.Table) + "\n")
	}

	sb.WriteString("\n" + sectionStyle.Render("Resume Content") + "\n")
	if strings.TrimSpace(r.ResumeText) == "" {
		sb.WriteString(mutedStyle.Render("(no extractable text)"))
	} else {
		sb.WriteString(strings.TrimSpace(r.ResumeText))
	}
	return sb.String()
}

// renderChart draws a horizontal matched/missing bar with the pie chart percentages.
func renderChart(c domain.SkillChart) string {
	if c.Total() == 0 {
		return mutedStyle.Render("No skills to chart.")
	}
	matched := chartWidth * c.Matched / c.Total()
	bar := matchedStyle.Render(strings.Repeat("█", matched)) +
		missingStyle.Render(strings.Repeat("█", chartWidth-matched))
	legend := fmt.Sprintf("Matched %d (%.1f%%)  Missing %d (%.1f%%)",
		c.Matched, c.MatchedPercent(), c.Missing, c.MissingPercent())
	return bar + "\n" + legend
}

func renderTable(rows []domain.SkillRow) string {
	width := len("Skill")
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Skill))
	}
	trs := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trs = append(trs, table.Row{r.Skill, string(r.Status)})
	}
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Skill", Width: width + 2},
			{Title: "Status", Width: len(domain.StatusMatched) + 2},
		}),
		table.WithRows(trs),
		table.WithHeight(len(trs)+1),
		table.WithStyles(styles),
	)
	return t.View()
}

// renderFeedback turns the markdown feedback into styled terminal lines.
func renderFeedback(feedback string) string {
	var sb strings.Builder
	for _, line := range strings.Split(feedback, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*"):
			sb.WriteString(titleStyle.Render(strings.Trim(line, "*")) + "\n")
		default:
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
