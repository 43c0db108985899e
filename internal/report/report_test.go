package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"resume-matcher/internal/domain"
	"resume-matcher/internal/extractor"
)

func sampleResult() *domain.MatchResult {
	matched := []string{"python", "sql"}
	missing := []string{"machine learning", "power bi"}
	return &domain.MatchResult{
		ResumeText:     "Experienced in Python and SQL.",
		UserSkills:     matched,
		RequiredSkills: []string{"python", "sql", "machine learning", "power bi"},
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Score:          57.74,
		Feedback: "\n\n*Skill Improvement Tips:*\n" +
			"- Consider learning machine learning via Coursera, Udemy, or YouTube.\n" +
			"- Consider learning power bi via Coursera, Udemy, or YouTube.\n",
		Chart: domain.SkillChart{Matched: 2, Missing: 2},
		Table: domain.BuildTable(matched, missing),
	}
}

func TestWriteXLSX(t *testing.T) {
	buf, err := WriteXLSX(sampleResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(skillsSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, []string{"Skill", "Status"}, rows[0][:2])
	assert.Equal(t, []string{"python", "Matched"}, rows[1][:2])
	assert.Equal(t, []string{"power bi", "Missing"}, rows[4][:2])

	score, err := f.GetCellValue(skillsSheet, "E1")
	require.NoError(t, err)
	assert.Equal(t, "57.74", score)
	matched, err := f.GetCellValue(skillsSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "2", matched)
}

func TestWriteXLSX_EmptyResult(t *testing.T) {
	buf, err := WriteXLSX(&domain.MatchResult{})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestWritePDF_IsExtractable(t *testing.T) {
	buf, err := WritePDF(sampleResult())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	text, err := extractor.NewPDFExtractor().Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, text, "Match Score: 57.74%")
	assert.Contains(t, text, "Missing Skills: machine learning, power bi")
	assert.Contains(t, text, "Consider learning power bi")
}

func TestWritePDF_EmptyResult(t *testing.T) {
	buf, err := WritePDF(&domain.MatchResult{Warnings: []string{"empty input: resume text"}})
	require.NoError(t, err)

	text, err := extractor.NewPDFExtractor().Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, text, "Matched Skills: None")
	assert.Contains(t, text, "No skills to chart.")
}

func TestFeedbackLines(t *testing.T) {
	lines := feedbackLines("\n\n*Formatting Tip:*\n- Highlight your skills in a separate 'Skills' section.\n")
	assert.Equal(t, []string{"Formatting Tip:", "- Highlight your skills in a separate 'Skills' section."}, lines)
	assert.Nil(t, feedbackLines(""))
}

func TestExportFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	paths, err := ExportFiles(dir, "/uploads/jane-doe.pdf", sampleResult())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "jane-doe-match.xlsx"),
		filepath.Join(dir, "jane-doe-match.pdf"),
	}, paths)
	for _, p := range paths {
		assert.FileExists(t, p)
	}

	paths, err = ExportFiles(dir, "", sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume-match.xlsx"), paths[0])
}
