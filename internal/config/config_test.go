package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultVocabulary, cfg.Skills.Vocabulary)
	assert.Len(t, cfg.Skills.Vocabulary, 14)
	assert.Equal(t, "count", cfg.Scorer.Type)
	assert.False(t, cfg.Scorer.AtomicTerms)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_OverridesAndNormalizesVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
skills:
  vocabulary: ["  Go ", "Kubernetes", "", "PostgreSQL", "go", "KUBERNETES "]
scorer:
  atomic_terms: true
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "kubernetes", "postgresql"}, cfg.Skills.Vocabulary)
	assert.True(t, cfg.Scorer.AtomicTerms)
	assert.Equal(t, "count", cfg.Scorer.Type)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultResources, cfg.Feedback.Resources)
	assert.Equal(t, 10, cfg.Server.BodyLimitMB)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown scorer", content: "scorer:\n  type: embeddings\n"},
		{name: "unknown log format", content: "log:\n  format: xml\n"},
		{name: "blank vocabulary", content: "skills:\n  vocabulary: [\" \", \"\"]\n"},
		{name: "malformed yaml", content: "skills: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Skills.Vocabulary = []string{"rust", "go"}
	cfg.Server.Addr = "127.0.0.1:8080"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDefault_WritesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "resume-matcher", "config.yaml"), path)
	assert.FileExists(t, path)
	assert.Equal(t, DefaultVocabulary, cfg.Skills.Vocabulary)
}
