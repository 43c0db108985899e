// Package report exports match results as spreadsheet and PDF documents.
package report

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"resume-matcher/internal/domain"
)

const (
	skillsSheet  = "Skills"
	colorMatched = "D4EDDA"
	colorMissing = "F8D7DA"
)

var tableHeaders = []string{"Skill", "Status"}

// WriteXLSX renders the skills table, a score summary and a matched/missing pie chart.
func WriteXLSX(result *domain.MatchResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", skillsSheet); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}
	row, err := writeHeader(f, skillsSheet, 0, tableHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "write table header")
	}
	if err := writeTable(f, skillsSheet, row, result.Table); err != nil {
		return nil, errors.Wrap(err, "write table rows")
	}
	if err := writeSummary(f, skillsSheet, result); err != nil {
		return nil, errors.Wrap(err, "write summary")
	}
	if result.Chart.Total() > 0 {
		if err := addPieChart(f, skillsSheet); err != nil {
			return nil, errors.Wrap(err, "add pie chart")
		}
	}
	return f.WriteToBuffer()
}

func writeCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return row, err
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", "B", 25); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err := writeCell(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeTable(f *excelize.File, sheet string, row int, rows []domain.SkillRow) error {
	matchedStyle, err := statusStyle(f, colorMatched)
	if err != nil {
		return err
	}
	missingStyle, err := statusStyle(f, colorMissing)
	if err != nil {
		return err
	}
	for _, r := range rows {
		row++
		if err := writeCell(f, sheet, 1, row, r.Skill); err != nil {
			return err
		}
		if err := writeCell(f, sheet, 2, row, string(r.Status)); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return err
		}
		style := missingStyle
		if r.Status == domain.StatusMatched {
			style = matchedStyle
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func statusStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
}

// writeSummary fills D1:E3 with the score and the chart source counts.
func writeSummary(f *excelize.File, sheet string, result *domain.MatchResult) error {
	cells := [][]interface{}{
		{"Match Score", result.Score},
		{"Matched", result.Chart.Matched},
		{"Missing", result.Chart.Missing},
	}
	for i, pair := range cells {
		for j, v := range pair {
			if err := writeCell(f, sheet, 4+j, i+1, v); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "D", "E", 15)
}

func addPieChart(f *excelize.File, sheet string) error {
	return f.AddChart(sheet, "G1", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "Skill Match",
			Categories: "'" + sheet + "'!$D$2:$D$3",
			Values:     "'" + sheet + "'!$E$2:$E$3",
		}},
		Title:    []excelize.RichTextRun{{Text: "Skill Match"}},
		Legend:   excelize.ChartLegend{Position: "bottom"},
		PlotArea: excelize.ChartPlotArea{ShowPercent: true},
	})
}
