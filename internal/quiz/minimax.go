package quiz

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/SmauRobert/SmartTest/internal/puzzles/minimax"
)

const minimaxMaxDepth = 4

var minimaxTemplates = []Template{
	{ID: "minimax_root_value", Topic: TopicMinimax, Kind: KindSolution, Generate: generateMinimaxRootValue},
	{ID: "minimax_leaf_count", Topic: TopicMinimax, Kind: KindSolution, Generate: generateMinimaxLeafCount},
}

func generateMinimaxRootValue(rng *rand.Rand) *Question {
	root, depth := minimax.Generate(rng, minimaxMaxDepth)
	value, _ := minimax.AlphaBeta(root)

	return stamp("minimax_root_value", TopicMinimax, KindSolution, Question{
		Prompt: fmt.Sprintf(
			"What will be the root value after applying the Minimax algorithm with Alpha-Beta Pruning to the following tree represented as a nested list of leaf values: %s?",
			minimax.Render(root)),
		Hint:     "Please enter a single integer. Keep in mind that the first player is the maximizing player.",
		Instance: &MinimaxInstance{Root: root, Depth: depth},
		Answer:   strconv.Itoa(value),
	})
}

func generateMinimaxLeafCount(rng *rand.Rand) *Question {
	root, depth := minimax.Generate(rng, minimaxMaxDepth)
	_, visited := minimax.AlphaBeta(root)

	return stamp("minimax_leaf_count", TopicMinimax, KindSolution, Question{
		Prompt: fmt.Sprintf(
			"How many leaves are visited when applying the Minimax algorithm with Alpha-Beta Pruning to the following tree represented as a nested list of leaf values: %s?",
			minimax.Render(root)),
		Hint:     "Please enter a single integer. Keep in mind that the first player is the maximizing player.",
		Instance: &MinimaxInstance{Root: root, Depth: depth},
		Answer:   strconv.Itoa(len(visited)),
	})
}
