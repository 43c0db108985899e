package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"resume-matcher/internal/domain"
)

type rgb struct{ r, g, b int }

var (
	fillMatched    = rgb{0, 196, 159}
	fillMissing    = rgb{255, 92, 92}
	fillMatchedRow = rgb{212, 237, 218}
	fillMissingRow = rgb{248, 215, 218}
)

const (
	barWidth   = 120.0
	barHeight  = 8.0
	lineHeight = 6.0
)

// WritePDF renders a one-page A4 summary of the result.
func WritePDF(result *domain.MatchResult) (out *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("WritePDF panic recover: %v", r)
		}
	}()
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle("Resume Match Report", true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Smart Resume Matcher", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, lineHeight, fmt.Sprintf("Match Score: %.2f%%", result.Score), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, tr("Matched Skills: "+listOrNone(result.MatchedSkills)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, tr("Missing Skills: "+listOrNone(result.MissingSkills)), "", 1, "L", false, 0, "")
	for _, w := range result.Warnings {
		doc.CellFormat(0, lineHeight, tr("Warning: "+w), "", 1, "L", false, 0, "")
	}

	if lines := feedbackLines(result.Feedback); len(lines) > 0 {
		doc.Ln(4)
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 8, "Feedback & Learning Tips", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		for _, line := range lines {
			doc.MultiCell(0, lineHeight, tr(line), "", "L", false)
		}
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, "Analytics", "", 1, "L", false, 0, "")
	drawBar(doc, result.Chart)
	drawTable(doc, tr, result.Table)

	if err := doc.Error(); err != nil {
		return nil, err
	}
	out = new(bytes.Buffer)
	if err := doc.Output(out); err != nil {
		return nil, err
	}
	return out, nil
}

func drawBar(doc *fpdf.Fpdf, chart domain.SkillChart) {
	doc.SetFont("Helvetica", "", 10)
	x, y := doc.GetX(), doc.GetY()
	if chart.Total() == 0 {
		doc.CellFormat(0, lineHeight, "No skills to chart.", "", 1, "L", false, 0, "")
		return
	}
	matchedW := barWidth * float64(chart.Matched) / float64(chart.Total())
	if matchedW > 0 {
		doc.SetFillColor(fillMatched.r, fillMatched.g, fillMatched.b)
		doc.Rect(x, y, matchedW, barHeight, "F")
	}
	if matchedW < barWidth {
		doc.SetFillColor(fillMissing.r, fillMissing.g, fillMissing.b)
		doc.Rect(x+matchedW, y, barWidth-matchedW, barHeight, "F")
	}
	doc.SetY(y + barHeight + 1)
	label := fmt.Sprintf("Matched %d (%.1f%%)   Missing %d (%.1f%%)",
		chart.Matched, chart.MatchedPercent(), chart.Missing, chart.MissingPercent())
	doc.CellFormat(0, lineHeight, label, "", 1, "L", false, 0, "")
}

func drawTable(doc *fpdf.Fpdf, tr func(string) string, rows []domain.SkillRow) {
	if len(rows) == 0 {
		return
	}
	doc.Ln(2)
	doc.SetFont("Helvetica", "B", 11)
	for _, h := range tableHeaders {
		doc.CellFormat(60, 7, h, "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)
	doc.SetFont("Helvetica", "", 11)
	for _, r := range rows {
		fill := fillMissingRow
		if r.Status == domain.StatusMatched {
			fill = fillMatchedRow
		}
		doc.CellFormat(60, 7, tr(r.Skill), "1", 0, "L", false, 0, "")
		doc.SetFillColor(fill.r, fill.g, fill.b)
		doc.CellFormat(60, 7, string(r.Status), "1", 0, "L", true, 0, "")
		doc.Ln(-1)
	}
}

// feedbackLines strips the markdown emphasis used by the feedback text.
func feedbackLines(feedback string) []string {
	var lines []string
	for _, line := range strings.Split(feedback, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "*", ""))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
