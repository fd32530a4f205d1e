package eval

import (
	"fmt"

	"github.com/SmauRobert/SmartTest/internal/answer"
	"github.com/SmauRobert/SmartTest/internal/puzzles/knight"
	"github.com/SmauRobert/SmartTest/internal/quiz"
	"github.com/SmauRobert/SmartTest/internal/race"
	"github.com/SmauRobert/SmartTest/internal/textmatch"
)

func evaluateKnightTheory(e *Engine, q *quiz.Question, ans string) *Result {
	if textmatch.AreSimilar(ans, q.Answer, 3) {
		return &Result{
			Score: 100,
			Feedback: []string{
				"Correct! The answer is Warnsdorff's Rule. It is a highly effective heuristic that guides the knight toward the 'harder' squares first, preventing it from getting trapped.",
			},
			IsCorrect: true,
		}
	}
	return wrongAnswer(ans, "Warnsdorff's Rule",
		"This heuristic guides the knight toward the 'harder' squares first, preventing it from getting trapped.")
}

func evaluateKnightValidation(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.KnightInstance)

	saidYes, err := answer.YesNo(ans)
	if err != nil {
		return malformed(err)
	}

	last := inst.Path[len(inst.Path)-1]
	next := *inst.Next
	legal, reason := judgeNextMove(inst.Rows, inst.Cols, inst.Path, last, next)

	correct := "Yes"
	if !legal {
		correct = "No"
	}
	if saidYes == legal {
		return &Result{
			Score:     100,
			Feedback:  []string{fmt.Sprintf("Correct! The answer is %s. %s", correct, reason)},
			IsCorrect: true,
		}
	}
	return wrongAnswer(ans, correct, reason)
}

// judgeNextMove recomputes whether next legally extends the partial tour
// and explains the verdict.
func judgeNextMove(rows, cols int, path []knight.Square, last, next knight.Square) (bool, string) {
	if next.R < 0 || next.R >= rows || next.C < 0 || next.C >= cols {
		return false, fmt.Sprintf("The square %s is outside the board.", next)
	}
	if !knight.IsLShapeMove(last.R, last.C, next.R, next.C) {
		return false, fmt.Sprintf("The move from %s to %s is not a valid L-shape knight's move.", last, next)
	}
	for _, sq := range path {
		if sq == next {
			return false, fmt.Sprintf("The square %s has already been visited in this tour.", next)
		}
	}
	return true, fmt.Sprintf("The move from %s to %s is a valid L-shape to an unvisited square.", last, next)
}

func evaluateKnightSolution(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.KnightInstance)

	pairs, err := answer.PairList(ans)
	if err != nil {
		return malformed(err)
	}
	path := make([]knight.Square, len(pairs))
	for i, p := range pairs {
		path[i] = knight.Square{R: p[0], C: p[1]}
	}

	if len(path) > 0 && path[0] != inst.Start {
		return &Result{Score: 0, Feedback: []string{
			fmt.Sprintf("Your tour must start at %s, but yours starts at %s.", inst.Start, path[0]),
		}}
	}
	if tourErr := knight.ValidTour(inst.Rows, inst.Cols, path); tourErr != nil {
		return &Result{Score: 0, Feedback: []string{"× Invalid tour:", tourErr.Error()}}
	}

	feedback := []string{"✓ Valid knight's tour found!"}
	if len(path) > 1 && knight.IsLShapeMove(path[len(path)-1].R, path[len(path)-1].C, path[0].R, path[0].C) {
		feedback = append(feedback, "✓ Bonus: Tour is closed (it can return to its starting square)")
	}
	return &Result{Score: 100, Feedback: feedback, IsCorrect: true}
}

func evaluateKnightAnalysis(e *Engine, q *quiz.Question, ans string) *Result {
	keywords := []keyword{
		{"warnsdorff", "Warnsdorff's rule"},
		{"heuristic", "heuristic approach"},
		{"backtrack", "backtracking"},
		{"closed", "closed tour consideration"},
		{"degree", "accessibility/degree heuristic"},
	}
	return scoreKeywords(ans, keywords, 60, []string{
		"Explain Warnsdorff's rule",
		"Discuss importance of starting position",
		"Consider corner and edge cases",
	})
}

func evaluateKnightRace(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.KnightInstance)
	rows, cols := inst.Rows, inst.Cols
	start := inst.Start

	runners := map[string]func() bool{
		"Backtracking": func() bool {
			_, ok := knight.SolveBacktracking(rows, cols, start)
			return ok
		},
		"Warnsdorff's Rule": func() bool {
			_, ok := knight.SolveWarnsdorff(rows, cols, start)
			return ok
		},
		"Random Walk": func() bool {
			_, ok := knight.SolveRandomWalk(rows, cols, start, e.cfg.RandomWalkAttempts, e.cfg.NewRand())
			return ok
		},
	}

	contenders := make([]race.Contender, 0, len(inst.Contenders))
	for _, name := range inst.Contenders {
		run, ok := runners[name]
		if !ok {
			panic("unknown knight race contender: " + name)
		}
		contenders = append(contenders, race.Contender{Name: name, Run: run})
	}
	return gradeRace(contenders, ans,
		"(Note: Warnsdorff's Rule uses a heuristic to prioritize moves, often outperforming backtracking. Random Walk can be fast but is unreliable.)")
}
