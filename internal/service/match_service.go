package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"resume-matcher/internal/domain"
	"resume-matcher/internal/skills"
)

// EmptyInputWarning marks an input that was empty. It is recorded on the result, never returned.
type EmptyInputWarning struct {
	Field string
}

func (w *EmptyInputWarning) Error() string {
	return "empty input: " + w.Field
}

const (
	fieldRequiredSkills = "required skills"
	fieldResumeText     = "resume text"
)

// MatchServiceImpl runs the extract, detect, match, score and feedback pipeline.
// It holds no per-request state; every call works on its own buffers.
type MatchServiceImpl struct {
	extractor domain.Extractor
	detector  domain.SkillDetector
	scorer    domain.Scorer
	feedback  domain.FeedbackGenerator
	log       logrus.FieldLogger
}

func NewMatchService(extractor domain.Extractor, detector domain.SkillDetector, scorer domain.Scorer, feedback domain.FeedbackGenerator, log logrus.FieldLogger) *MatchServiceImpl {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MatchServiceImpl{extractor: extractor, detector: detector, scorer: scorer, feedback: feedback, log: log}
}

// Analyze extracts the resume text from an in-memory document and matches it.
// Extraction errors are returned unchanged.
func (s *MatchServiceImpl) Analyze(ctx context.Context, resume []byte, requiredInput string) (*domain.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := s.extractor.Extract(resume)
	if err != nil {
		s.log.WithError(err).WithField("bytes", len(resume)).Warn("resume extraction failed")
		return nil, err
	}
	return s.AnalyzeText(ctx, text, requiredInput)
}

// AnalyzeText matches already extracted resume text against the required skills input.
func (s *MatchServiceImpl) AnalyzeText(ctx context.Context, text, requiredInput string) (*domain.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	required := skills.ParseRequired(requiredInput)
	user := s.detector.Detect(text)
	matched, missing := skills.Match(user, required)
	score := s.scorer.Score(matched, required)

	result := &domain.MatchResult{
		ResumeText:     text,
		UserSkills:     user,
		RequiredSkills: required,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Score:          score,
		Feedback:       s.feedback.Generate(matched, missing),
		Chart:          domain.SkillChart{Matched: len(matched), Missing: len(missing)},
		Table:          domain.BuildTable(matched, missing),
	}
	if len(required) == 0 {
		result.Warnings = append(result.Warnings, (&EmptyInputWarning{Field: fieldRequiredSkills}).Error())
	}
	if strings.TrimSpace(text) == "" {
		result.Warnings = append(result.Warnings, (&EmptyInputWarning{Field: fieldResumeText}).Error())
	}

	s.log.WithFields(logrus.Fields{
		"scorer":   s.scorer.Name(),
		"score":    score,
		"matched":  len(matched),
		"missing":  len(missing),
		"warnings": len(result.Warnings),
		"took":     time.Since(start).String(),
	}).Info("resume analyzed")
	return result, nil
}

// Vocabulary returns the skills the detector recognises.
func (s *MatchServiceImpl) Vocabulary() []string {
	return s.detector.Vocabulary()
}
