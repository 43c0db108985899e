// Package skills detects vocabulary skills in resume text and compares them with required skills.
package skills

import "strings"

// DefaultRequired is the required-skills input offered when the user has not typed one.
const DefaultRequired = "Python, SQL, Machine Learning, Power BI"

// Detector scans text for the terms of a fixed, ordered vocabulary.
type Detector struct {
	vocabulary []string
}

// NewDetector creates a detector over a copy of the given vocabulary.
func NewDetector(vocabulary []string) *Detector {
	return &Detector{vocabulary: append([]string(nil), vocabulary...)}
}

// Vocabulary returns a copy of the terms the detector looks for.
func (d *Detector) Vocabulary() []string {
	return append([]string(nil), d.vocabulary...)
}

// Detect returns every vocabulary term contained in text, in vocabulary order.
// Matching is a case-insensitive substring test, so "java" also hits "javascript".
func (d *Detector) Detect(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(d.vocabulary))
	for _, term := range d.vocabulary {
		if strings.Contains(lower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}

// ParseRequired splits a comma-separated skill list into lowercase, trimmed, unique entries.
func ParseRequired(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		s := strings.ToLower(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Match splits required skills by presence among the detected user skills.
// matched keeps user order, missing keeps required order.
func Match(user, required []string) (matched, missing []string) {
	req := toSet(required)
	usr := toSet(user)
	matched = make([]string, 0, len(user))
	for _, s := range user {
		if _, ok := req[s]; ok {
			matched = append(matched, s)
		}
	}
	missing = make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := usr[s]; !ok {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func toSet(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, s := range items {
		m[s] = struct{}{}
	}
	return m
}
