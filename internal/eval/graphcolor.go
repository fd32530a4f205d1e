package eval

import (
	"errors"
	"fmt"

	"github.com/SmauRobert/SmartTest/internal/answer"
	"github.com/SmauRobert/SmartTest/internal/puzzles/graphcolor"
	"github.com/SmauRobert/SmartTest/internal/quiz"
	"github.com/SmauRobert/SmartTest/internal/race"
	"github.com/SmauRobert/SmartTest/internal/textmatch"
)

func evaluateGraphTheory(e *Engine, q *quiz.Question, ans string) *Result {
	switch q.Template {
	case "graph_chromatic_name":
		if textmatch.AreSimilar(ans, q.Answer, 3) {
			return &Result{
				Score: 100,
				Feedback: []string{
					"Correct! The answer is the Chromatic Number, often written as χ(G). It is a fundamental property of a graph.",
				},
				IsCorrect: true,
			}
		}
		return wrongAnswer(ans, "the Chromatic Number, often written as χ(G)", "")

	case "graph_chromatic_number":
		inst := q.Instance.(*quiz.GraphInstance)
		n, err := answer.Int(ans)
		if err != nil {
			return malformed(err)
		}
		explanation := fmt.Sprintf("This graph is %s, which requires %d colors.", inst.Structure, inst.Chi)
		if n != inst.Chi {
			return wrongAnswer(ans, fmt.Sprint(inst.Chi), explanation)
		}
		return &Result{
			Score:     100,
			Feedback:  []string{fmt.Sprintf("Correct! The chromatic number is %d. %s", inst.Chi, explanation)},
			IsCorrect: true,
		}

	default:
		panic("unknown graph theory template: " + q.Template)
	}
}

func evaluateGraphValidation(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.GraphInstance)

	saidYes, err := answer.YesNo(ans)
	if err != nil {
		return malformed(err)
	}

	colorErr := inst.Graph().ValidColoring(inst.Coloring)
	reason := "All adjacent nodes have different colors."
	correct := "Yes"
	if colorErr != nil {
		correct = "No"
		var conflict *graphcolor.AdjacentSameColorError
		if errors.As(colorErr, &conflict) {
			reason = fmt.Sprintf("There is a conflict: Node %d and Node %d are adjacent but both have color %d.",
				conflict.U, conflict.V, conflict.Color)
		} else {
			reason = colorErr.Error()
		}
	}

	if saidYes == (colorErr == nil) {
		return &Result{
			Score:     100,
			Feedback:  []string{fmt.Sprintf("Correct! The answer is %s. %s", correct, reason)},
			IsCorrect: true,
		}
	}
	return wrongAnswer(ans, correct, reason)
}

func evaluateGraphSolution(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.GraphInstance)

	colors, err := answer.IntList(ans)
	if err != nil {
		return malformed(err)
	}
	if len(colors) != inst.V {
		return &Result{Score: 0, Feedback: []string{
			fmt.Sprintf("Solution must assign colors to all %d vertices", inst.V),
		}}
	}
	for _, c := range colors {
		if c < 0 || c >= inst.Colors {
			return &Result{Score: 0, Feedback: []string{
				fmt.Sprintf("All colors must be integers between 0 and %d", inst.Colors-1),
			}}
		}
	}

	if colorErr := inst.Graph().ValidColoring(colors); colorErr != nil {
		feedback := []string{"× Invalid coloring - adjacent vertices have same color:"}
		var conflict *graphcolor.AdjacentSameColorError
		if errors.As(colorErr, &conflict) {
			feedback = append(feedback,
				fmt.Sprintf("Vertices %d and %d have the same color %d", conflict.U, conflict.V, conflict.Color))
		} else {
			feedback = append(feedback, colorErr.Error())
		}
		return &Result{Score: 0, Feedback: feedback}
	}

	used := make(map[int]bool)
	for _, c := range colors {
		used[c] = true
	}
	if len(used) < inst.Colors {
		return &Result{
			Score:     100,
			Feedback:  []string{fmt.Sprintf("✓ Perfect! Used only %d colors", len(used))},
			IsCorrect: true,
		}
	}
	return &Result{
		Score:     90,
		Feedback:  []string{"✓ Valid solution, but might be possible to use fewer colors"},
		IsCorrect: true,
	}
}

func evaluateGraphAnalysis(e *Engine, q *quiz.Question, ans string) *Result {
	keywords := []keyword{
		{"greedy", "greedy approach"},
		{"degree", "vertex degree consideration"},
		{"welsh-powell", "Welsh-Powell algorithm"},
		{"backtrack", "backtracking possibility"},
		{"chromatic", "chromatic number"},
	}
	return scoreKeywords(ans, keywords, 60, []string{
		"Discuss different coloring algorithms",
		"Explain how to choose vertex ordering",
		"Analyze the trade-offs between approaches",
	})
}

func evaluateGraphRace(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.GraphInstance)
	g := inst.Graph()

	runners := map[string]func() bool{
		"Simple Greedy": func() bool { return len(graphcolor.Greedy(g)) == g.V },
		"Welsh-Powell":  func() bool { return len(graphcolor.WelshPowell(g)) == g.V },
	}

	contenders := make([]race.Contender, 0, len(inst.Contenders))
	for _, name := range inst.Contenders {
		run, ok := runners[name]
		if !ok {
			panic("unknown graph race contender: " + name)
		}
		contenders = append(contenders, race.Contender{Name: name, Run: run})
	}
	return gradeRace(contenders, ans,
		"(Note: Welsh-Powell must first sort the vertices by degree, which adds O(N log N) overhead, so Simple Greedy can be faster on some graph structures.)")
}
