package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultVocabulary is the skill list used when the config does not name one.
var DefaultVocabulary = []string{
	"python", "sql", "machine learning", "data analysis", "excel", "git", "power bi",
	"java", "c++", "tensorflow", "deep learning", "flask", "django", "aws",
}

// DefaultResources are the learning resources named in improvement tips.
var DefaultResources = []string{"Coursera", "Udemy", "YouTube"}

// SkillsConfig holds the vocabulary the detector scans resumes for.
type SkillsConfig struct {
	Vocabulary []string `yaml:"vocabulary" validate:"required,min=1,dive,required"`
}

// ScorerConfig selects and configures the similarity scorer.
// AtomicTerms keeps multi-word skills as a single vector term; it changes scores.
type ScorerConfig struct {
	Type        string `yaml:"type" validate:"oneof=count"`
	AtomicTerms bool   `yaml:"atomic_terms"`
}

// FeedbackConfig configures the generated improvement tips.
type FeedbackConfig struct {
	Resources []string `yaml:"resources" validate:"required,min=1,dive,required"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr        string `yaml:"addr" validate:"required"`
	BodyLimitMB int    `yaml:"body_limit_mb" validate:"gte=1"`
}

// LogConfig configures the logrus logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
	File   string `yaml:"file,omitempty"`
}

// ReportConfig configures where exported reports are written.
type ReportConfig struct {
	Dir string `yaml:"dir"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Skills   SkillsConfig   `yaml:"skills"`
	Scorer   ScorerConfig   `yaml:"scorer"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Report   ReportConfig   `yaml:"report"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/resume-matcher/config.yaml.
// If neither exists, it writes defaults to ~/.config/resume-matcher/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the config against its struct constraints.
func (c *AppConfig) Validate() error {
	return validator.New().Struct(c)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "resume-matcher", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Skills:   SkillsConfig{Vocabulary: append([]string(nil), DefaultVocabulary...)},
		Scorer:   ScorerConfig{Type: "count"},
		Feedback: FeedbackConfig{Resources: append([]string(nil), DefaultResources...)},
		Server:   ServerConfig{Addr: ":5000", BodyLimitMB: 10},
		Log:      LogConfig{Level: "info", Format: "text"},
		Report:   ReportConfig{Dir: "."},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if len(cfg.Skills.Vocabulary) == 0 {
		cfg.Skills.Vocabulary = def.Skills.Vocabulary
	}
	cfg.Skills.Vocabulary = normalizeTerms(cfg.Skills.Vocabulary)
	if cfg.Scorer.Type == "" {
		cfg.Scorer.Type = def.Scorer.Type
	}
	if len(cfg.Feedback.Resources) == 0 {
		cfg.Feedback.Resources = def.Feedback.Resources
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.BodyLimitMB == 0 {
		cfg.Server.BodyLimitMB = def.Server.BodyLimitMB
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Report.Dir == "" {
		cfg.Report.Dir = def.Report.Dir
	}
}

// normalizeTerms lowercases and trims vocabulary entries, dropping blanks
// and repeats while keeping first-seen order.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
