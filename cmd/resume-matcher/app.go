package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"resume-matcher/internal/config"
	"resume-matcher/internal/domain"
	"resume-matcher/internal/extractor"
	"resume-matcher/internal/feedback"
	"resume-matcher/internal/scoring"
	"resume-matcher/internal/service"
	"resume-matcher/internal/skills"
)

func loadConfig() (*config.AppConfig, error) {
	if cfgPath == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(cfgPath)
}

// buildService assembles the pipeline components selected by cfg.
func buildService(cfg *config.AppConfig, logger logrus.FieldLogger) (*service.MatchServiceImpl, error) {
	var sc domain.Scorer
	switch cfg.Scorer.Type {
	case "count", "":
		sc = scoring.NewCosineScorer(cfg.Scorer.AtomicTerms)
	default:
		return nil, fmt.Errorf("unknown scorer: %s", cfg.Scorer.Type)
	}
	return service.NewMatchService(
		extractor.NewPDFExtractor(),
		skills.NewDetector(cfg.Skills.Vocabulary),
		sc,
		feedback.NewGenerator(cfg.Feedback.Resources),
		logger,
	), nil
}
