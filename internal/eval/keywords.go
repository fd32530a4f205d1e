package eval

import "strings"

// keyword is one concept an analysis answer should touch, matched as a
// case-insensitive substring.
type keyword struct {
	Term        string
	Description string
}

const keywordWeight = 20

// scoreKeywords grades a free-text answer by the concepts it mentions.
// Each matched keyword is worth a fixed weight; the answer passes at the
// given threshold.
func scoreKeywords(ans string, keywords []keyword, threshold int, suggestions []string) *Result {
	lower := strings.ToLower(ans)
	score := 0
	var feedback []string
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k.Term)) {
			score += keywordWeight
			feedback = append(feedback, "✓ Discussed "+k.Description)
		} else {
			feedback = append(feedback, "× Missing discussion of "+k.Description)
		}
	}

	correct := score >= threshold
	if correct {
		feedback = append(feedback, "", "✓ Excellent understanding!")
	} else {
		feedback = append(feedback, "", "Suggested improvements:")
		for _, s := range suggestions {
			feedback = append(feedback, "- "+s)
		}
	}
	return &Result{Score: score, Feedback: feedback, IsCorrect: correct}
}
