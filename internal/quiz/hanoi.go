package quiz

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/SmauRobert/SmartTest/internal/puzzles/hanoi"
)

var hanoiTemplates = []Template{
	{ID: "hanoi_min_moves", Topic: TopicHanoi, Kind: KindTheory, Generate: generateHanoiMinMoves},
	{ID: "hanoi_recursive_step", Topic: TopicHanoi, Kind: KindTheory, Generate: generateHanoiRecursiveStep},
	{ID: "hanoi_fourth_peg", Topic: TopicHanoi, Kind: KindTheory, Generate: generateHanoiFourthPeg},
	{ID: "hanoi_move_validation", Topic: TopicHanoi, Kind: KindValidation, Generate: generateHanoiMoveValidation},
	{ID: "hanoi_solution", Topic: TopicHanoi, Kind: KindSolution, Generate: generateHanoiSolution},
	{ID: "hanoi_complexity", Topic: TopicHanoi, Kind: KindAnalysis, Generate: generateHanoiComplexity},
	{ID: "hanoi_race", Topic: TopicHanoi, Kind: KindRace, Generate: generateHanoiRace},
}

func generateHanoiMinMoves(rng *rand.Rand) *Question {
	disks := 3 + rng.Intn(8) // 3-10, inside the 4-peg table
	pegs := 3
	if rng.Intn(2) == 1 {
		pegs = 4
	}
	min, _ := hanoi.MinMoves(disks, pegs)

	return stamp("hanoi_min_moves", TopicHanoi, KindTheory, Question{
		Prompt: fmt.Sprintf(
			"What is the minimum number of moves required to solve the Tower of Hanoi problem with %d disks and %d pegs?",
			disks, pegs),
		Hint:     "Please enter a single integer.",
		Instance: &HanoiInstance{Disks: disks, Pegs: pegs},
		Answer:   strconv.Itoa(min),
	})
}

func generateHanoiRecursiveStep(rng *rand.Rand) *Question {
	disks := 5 + rng.Intn(6) // 5-10

	return stamp("hanoi_recursive_step", TopicHanoi, KindTheory, Question{
		Prompt: fmt.Sprintf(
			"In the optimal recursive solution for moving %d disks from Peg A to Peg C (using Peg B as auxiliary), where must the top %d disks be moved *first*?",
			disks, disks-1),
		Hint:     "Please enter the destination peg ('A', 'B', or 'C').",
		Instance: &HanoiInstance{Disks: disks, Pegs: 3},
		Answer:   "B",
	})
}

func generateHanoiFourthPeg(rng *rand.Rand) *Question {
	disks := 20 + rng.Intn(45) // 20-64

	return stamp("hanoi_fourth_peg", TopicHanoi, KindTheory, Question{
		Prompt: fmt.Sprintf(
			"Compared to the 3-peg problem, what effect does adding a 4th peg have on the minimum number of moves required to move %d disks?",
			disks),
		Hint:     "Please answer with 'Increases', 'Decreases', or 'No Effect'.",
		Instance: &HanoiInstance{Disks: disks, Pegs: 4},
		Answer:   "decreases",
	})
}

// generateHanoiMoveValidation distributes 3-6 disks legally over 3 pegs,
// then proposes a move that is valid, violates disk ordering, or pulls from
// an empty peg. The grader recomputes legality from the state.
func generateHanoiMoveValidation(rng *rand.Rand) *Question {
	disks := 3 + rng.Intn(4)
	state := randomLegalState(rng, disks, 3)

	from, to := proposeMove(rng, state)

	return stamp("hanoi_move_validation", TopicHanoi, KindValidation, Question{
		Prompt: fmt.Sprintf(
			"Consider a Hanoi game. The pegs are: %s (bottom-to-top). Is it a valid move to take the top disk from Peg %s and place it on Peg %s?",
			renderPegs(state), pegName(from), pegName(to)),
		Hint:     "Please answer 'Yes' or 'No'.",
		Instance: &HanoiInstance{Disks: disks, Pegs: 3, State: state, From: from, To: to},
	})
}

// randomLegalState places disks largest-first onto random pegs that can
// accept them, producing a reachable-looking legal configuration.
func randomLegalState(rng *rand.Rand, disks, pegs int) [][]int {
	state := make([][]int, pegs)
	for disk := disks; disk >= 1; disk-- {
		var candidates []int
		for p := 0; p < pegs; p++ {
			if len(state[p]) == 0 || state[p][len(state[p])-1] > disk {
				candidates = append(candidates, p)
			}
		}
		p := candidates[rng.Intn(len(candidates))]
		state[p] = append(state[p], disk)
	}
	return state
}

// proposeMove picks a move for a validation question: valid, size
// violation, or empty source, with fallbacks when the wanted shape does not
// exist in this state.
func proposeMove(rng *rand.Rand, state [][]int) (int, int) {
	var nonEmpty, empty []int
	for p := range state {
		if len(state[p]) > 0 {
			nonEmpty = append(nonEmpty, p)
		} else {
			empty = append(empty, p)
		}
	}

	top := func(p int) int {
		if len(state[p]) == 0 {
			return 0
		}
		return state[p][len(state[p])-1]
	}

	switch rng.Intn(3) {
	case 0: // valid move
		for _, attempt := range rng.Perm(len(nonEmpty)) {
			from := nonEmpty[attempt]
			for _, to := range rng.Perm(len(state)) {
				if to == from {
					continue
				}
				if top(to) == 0 || top(to) > top(from) {
					return from, to
				}
			}
		}
	case 1: // size violation
		for _, attempt := range rng.Perm(len(nonEmpty)) {
			from := nonEmpty[attempt]
			for _, to := range rng.Perm(len(state)) {
				if to == from {
					continue
				}
				if top(to) != 0 && top(to) < top(from) {
					return from, to
				}
			}
		}
	}
	// empty source, or fallback when the wanted shape was unavailable
	if len(empty) > 0 {
		from := empty[rng.Intn(len(empty))]
		to := (from + 1) % len(state)
		return from, to
	}
	// every peg occupied: a move from the peg holding the smallest disk is
	// always valid
	smallest := nonEmpty[0]
	for _, p := range nonEmpty {
		if top(p) < top(smallest) {
			smallest = p
		}
	}
	return smallest, (smallest + 1) % len(state)
}

func generateHanoiSolution(rng *rand.Rand) *Question {
	disks := 3 + rng.Intn(4) // 3-6
	pegs := 3
	if rng.Intn(2) == 1 {
		pegs = 4
	}
	source, target := 0, pegs-1

	var reference string
	if pegs == 3 {
		moves := hanoi.SolveRecursive(disks)
		pairs := make([][2]int, len(moves))
		for i, m := range moves {
			pairs[i] = [2]int{m.From, m.To}
		}
		reference = FormatPairList(pairs)
	}

	return stamp("hanoi_solution", TopicHanoi, KindSolution, Question{
		Prompt: fmt.Sprintf(
			"Solve the Tower of Hanoi with %d disks and %d pegs. Move all disks from peg %d to peg %d.",
			disks, pegs, source, target),
		Hint: fmt.Sprintf(
			"List the moves in format: [[from_peg,to_peg],...] where pegs are numbered 0 to %d.",
			pegs-1),
		Instance:  &HanoiInstance{Disks: disks, Pegs: pegs, Source: source, Target: target},
		Reference: reference,
	})
}

func generateHanoiComplexity(rng *rand.Rand) *Question {
	disks := 3 + rng.Intn(4)
	pegs := 3
	if rng.Intn(2) == 1 {
		pegs = 4
	}

	return stamp("hanoi_complexity", TopicHanoi, KindAnalysis, Question{
		Prompt: fmt.Sprintf(
			"For the Tower of Hanoi with %d disks and %d pegs:\n1. What is the minimum number of moves required?\n2. What is the time complexity for %d disks?",
			disks, pegs, disks),
		Hint:     "Provide your answer in the format:\nMinimum Moves: ...\nTime Complexity: O(...)\nExplanation: ...",
		Instance: &HanoiInstance{Disks: disks, Pegs: pegs},
	})
}

// HanoiRaceContenders names the move generators a Hanoi race can compare.
var HanoiRaceContenders = []string{"Recursive", "Iterative", "Binary Pattern"}

func generateHanoiRace(rng *rand.Rand) *Question {
	disks := 15 + rng.Intn(4) // big enough for measurable differences
	contenders := sampleStrings(rng, HanoiRaceContenders, 2+rng.Intn(2))
	total := (1 << disks) - 1

	return stamp("hanoi_race", TopicHanoi, KindRace, Question{
		Prompt: fmt.Sprintf(
			"To generate all %d moves for a %d-disk, 3-peg Hanoi problem, which algorithm will finish *first*: %s?",
			total, disks, strings.Join(contenders, " vs ")),
		Hint:     fmt.Sprintf("Please enter one of: %s.", strings.Join(contenders, ", ")),
		Instance: &HanoiInstance{Disks: disks, Pegs: 3, Contenders: contenders},
	})
}

func pegName(p int) string {
	return string(rune('A' + p))
}

func renderPegs(state [][]int) string {
	parts := make([]string, len(state))
	for p, disks := range state {
		parts[p] = fmt.Sprintf("%s: %s", pegName(p), FormatIntList(disks))
	}
	return strings.Join(parts, ", ")
}

// sampleStrings picks n distinct elements in random order.
func sampleStrings(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}
