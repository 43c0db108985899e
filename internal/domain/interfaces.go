package domain

import "context"

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// SkillDetector finds vocabulary skills mentioned in free text.
type SkillDetector interface {
	Detect(text string) []string
	Vocabulary() []string
}

// Scorer measures how closely one skill list covers another, as a percentage.
type Scorer interface {
	Name() string
	Score(a, b []string) float64
}

// FeedbackGenerator derives improvement suggestions from a match outcome.
type FeedbackGenerator interface {
	Generate(matched, missing []string) string
}

// MatchService defines the operations exposed by the application core.
type MatchService interface {
	Analyze(ctx context.Context, resume []byte, requiredInput string) (*MatchResult, error)
	AnalyzeText(ctx context.Context, text, requiredInput string) (*MatchResult, error)
	Vocabulary() []string
}
