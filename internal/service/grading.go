package service

import "strings"

// IsCorrect grades a submission against a card's answer. Both strings are
// lower-cased and their whitespace normalized (leading/trailing removed,
// internal runs collapsed to single spaces) before an exact comparison.
// No partial credit, no typo tolerance.
func IsCorrect(submission, answer string) bool {
	return normalize(submission) == normalize(answer)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
