package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"resume-matcher/internal/domain"
)

// ExportFiles writes <base>-match.xlsx and <base>-match.pdf into dir and returns their paths.
// base is usually the resume path; its directory and extension are dropped.
func ExportFiles(dir, base string, result *domain.MatchResult) ([]string, error) {
	name := strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "resume"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create report dir %s", dir)
	}
	writers := []struct {
		ext   string
		write func(*domain.MatchResult) (*bytes.Buffer, error)
	}{
		{ext: ".xlsx", write: WriteXLSX},
		{ext: ".pdf", write: WritePDF},
	}
	paths := make([]string, 0, len(writers))
	for _, w := range writers {
		buf, err := w.write(result)
		if err != nil {
			return paths, errors.Wrapf(err, "render %s report", w.ext)
		}
		path := filepath.Join(dir, name+"-match"+w.ext)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, errors.Wrapf(err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
