package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/SmauRobert/SmartTest/internal/puzzles/knight"
)

var knightTemplates = []Template{
	{ID: "knight_warnsdorff_name", Topic: TopicKnightsTour, Kind: KindTheory, Generate: generateKnightWarnsdorffName},
	{ID: "knight_move_validation", Topic: TopicKnightsTour, Kind: KindValidation, Generate: generateKnightMoveValidation},
	{ID: "knight_find_tour", Topic: TopicKnightsTour, Kind: KindSolution, Generate: generateKnightFindTour},
	{ID: "knight_strategy", Topic: TopicKnightsTour, Kind: KindAnalysis, Generate: generateKnightStrategy},
	{ID: "knight_race", Topic: TopicKnightsTour, Kind: KindRace, Generate: generateKnightRace},
}

func generateKnightWarnsdorffName(rng *rand.Rand) *Question {
	return stamp("knight_warnsdorff_name", TopicKnightsTour, KindTheory, Question{
		Prompt: "Consider the following heuristic for the Knight's Tour problem: 'Always move to the unvisited square that has the *fewest* valid onward moves.' What is the name of this heuristic?",
		Hint:   "Please enter the name of the rule (e.g., 'Smith's Rule').",
		Answer: "Warnsdorff's Rule",
	})
}

// generateKnightMoveValidation builds a random legal partial tour, then
// proposes a next square that is either a legal continuation or broken in
// one of two ways: not an L-shape, or already visited. The grader
// recomputes legality from the path.
func generateKnightMoveValidation(rng *rand.Rand) *Question {
	n := 5 + rng.Intn(4) // 5-8
	length := 3 + rng.Intn(6)
	path := randomPartialTour(rng, n, length)
	last := path[len(path)-1]

	visited := make(map[knight.Square]bool, len(path))
	for _, sq := range path {
		visited[sq] = true
	}

	var next knight.Square
	if rng.Intn(2) == 0 {
		legal := knight.LegalMoves(n, n, visited, last)
		if len(legal) > 0 {
			next = legal[rng.Intn(len(legal))]
		} else {
			// trapped: any revisit is invalid
			next = path[rng.Intn(len(path)-1)]
		}
	} else if rng.Intn(2) == 0 {
		next = brokenShapeMove(rng, n, last)
	} else {
		next = path[rng.Intn(len(path)-1)]
	}

	return stamp("knight_move_validation", TopicKnightsTour, KindValidation, Question{
		Prompt: fmt.Sprintf(
			"On a %dx%d board, given the partial tour: %s, is the move from %s to %s a valid next step?",
			n, n, renderSquares(path), last, next),
		Hint: "Please answer 'Yes' or 'No'.",
		Instance: &KnightInstance{
			Rows: n, Cols: n, Start: path[0], Path: path, Next: &next,
		},
	})
}

// randomPartialTour walks legal knight moves from a random start,
// backtracking when trapped, until the path reaches the wanted length.
func randomPartialTour(rng *rand.Rand, n, length int) []knight.Square {
	start := knight.Square{R: rng.Intn(n), C: rng.Intn(n)}
	path := []knight.Square{start}
	visited := map[knight.Square]bool{start: true}

	for attempts := 0; len(path) < length && attempts < 100; {
		legal := knight.LegalMoves(n, n, visited, path[len(path)-1])
		if len(legal) > 0 {
			sq := legal[rng.Intn(len(legal))]
			path = append(path, sq)
			visited[sq] = true
			attempts = 0
			continue
		}
		if len(path) == 1 {
			break
		}
		removed := path[len(path)-1]
		path = path[:len(path)-1]
		delete(visited, removed)
		attempts++
	}
	return path
}

// brokenShapeMove picks an on-board destination that is not a knight's
// move away from sq. Such a square always exists for n >= 2: sq's own
// neighbors in the same row or column qualify.
func brokenShapeMove(rng *rand.Rand, n int, sq knight.Square) knight.Square {
	for {
		dr, dc := rng.Intn(5)-2, rng.Intn(5)-2
		if dr == 0 && dc == 0 {
			continue
		}
		next := knight.Square{R: sq.R + dr, C: sq.C + dc}
		if next.R < 0 || next.R >= n || next.C < 0 || next.C >= n {
			continue
		}
		if !knight.IsLShapeMove(sq.R, sq.C, next.R, next.C) {
			return next
		}
	}
}

func generateKnightFindTour(rng *rand.Rand) *Question {
	n := 5 + rng.Intn(2) // 5 or 6, open tours from (0,0) exist on both
	start := knight.Square{}

	var reference string
	if path, ok := knight.SolveWarnsdorff(n, n, start); ok {
		reference = FormatSquareList(path)
	}

	return stamp("knight_find_tour", TopicKnightsTour, KindSolution, Question{
		Prompt: fmt.Sprintf(
			"Find an *open* Knight's Tour on a %dx%d board, starting at (0, 0).", n, n),
		Hint: fmt.Sprintf(
			"Provide the tour as a list of %d squares in format: [[r,c],[r,c],...].", n*n),
		Instance:  &KnightInstance{Rows: n, Cols: n, Start: start},
		Reference: reference,
	})
}

func generateKnightStrategy(rng *rand.Rand) *Question {
	n := 6 + rng.Intn(3)

	return stamp("knight_strategy", TopicKnightsTour, KindAnalysis, Question{
		Prompt: fmt.Sprintf(
			"You must find a Knight's Tour on a %dx%d board.\n1. Which algorithm or heuristic would you use?\n2. Why does plain backtracking struggle as the board grows?",
			n, n),
		Hint:     "Structure your answer as:\nAlgorithm: ...\nExplanation: ...",
		Instance: &KnightInstance{Rows: n, Cols: n},
	})
}

// KnightRaceContenders names the tour algorithms a race can compare.
// Backtracking is excluded on larger boards where it can run for minutes.
var KnightRaceContenders = []string{"Backtracking", "Warnsdorff's Rule", "Random Walk"}

func generateKnightRace(rng *rand.Rand) *Question {
	n := 5 + rng.Intn(4) // 5-8
	pool := KnightRaceContenders
	if n >= 7 {
		pool = pool[1:]
	}
	count := 2
	if len(pool) > 2 && rng.Intn(2) == 1 {
		count = 3
	}
	contenders := sampleStrings(rng, pool, count)

	return stamp("knight_race", TopicKnightsTour, KindRace, Question{
		Prompt: fmt.Sprintf(
			"For a %dx%d board (N=%d), which algorithm will find a *single* (open) tour first: %s?",
			n, n, n, strings.Join(contenders, " vs ")),
		Hint: fmt.Sprintf("Please enter one of: %s.", strings.Join(contenders, ", ")),
		Instance: &KnightInstance{
			Rows: n, Cols: n, Contenders: contenders,
		},
	})
}

func renderSquares(path []knight.Square) string {
	parts := make([]string, len(path))
	for i, sq := range path {
		parts[i] = sq.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
