package eval

import "strings"

// Result is the outcome of grading one answer. Score is 0-100; Feedback is
// a list of lines shown to the user; Reference carries a known-good
// solution when one exists for the question.
type Result struct {
	Score     int
	Feedback  []string
	IsCorrect bool
	Reference string
}

// FeedbackText renders the feedback lines, appending the reference solution
// when one is set.
func (r *Result) FeedbackText() string {
	lines := r.Feedback
	if r.Reference != "" {
		lines = append(lines, "", "Reference solution: "+r.Reference)
	}
	return strings.Join(lines, "\n")
}
