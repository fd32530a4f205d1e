package queens

import (
	"math"
	"math/rand"
)

// Local-search solvers. Both start from a random permutation (one queen per
// column, all rows distinct) and minimize the attacking-pair count. Neither
// is guaranteed to succeed; callers treat (nil, false) as a normal outcome.

// SolveHillClimb runs steepest-descent hill climbing with random restarts.
// Each step reassigns a single column's row to the neighbor with the fewest
// attacking pairs, first found winning ties. A restart happens when no
// neighbor strictly improves.
func SolveHillClimb(n, maxRestarts int, rng *rand.Rand) ([]int, bool) {
	for restart := 0; restart < maxRestarts; restart++ {
		rows := rng.Perm(n)
		for {
			current := AttackingPairs(rows)
			if current == 0 {
				return rows, true
			}
			best, bestConflicts := bestNeighbor(rows, current)
			if bestConflicts >= current {
				break // local minimum or plateau, restart
			}
			rows = best
		}
	}
	return nil, false
}

// bestNeighbor scans all single-column reassignments and returns the one
// with the fewest attacking pairs.
func bestNeighbor(rows []int, current int) ([]int, int) {
	n := len(rows)
	best := append([]int(nil), rows...)
	bestConflicts := current
	work := append([]int(nil), rows...)
	for col := 0; col < n; col++ {
		original := work[col]
		for row := 0; row < n; row++ {
			if row == original {
				continue
			}
			work[col] = row
			if c := AttackingPairs(work); c < bestConflicts {
				bestConflicts = c
				copy(best, work)
			}
		}
		work[col] = original
	}
	return best, bestConflicts
}

// SolveAnneal runs simulated annealing. A candidate move swaps the rows of
// two random columns, which preserves the permutation property. Moves that
// do not increase the attacking-pair count are always accepted; worse moves
// are accepted with probability exp(-delta/temperature). The temperature
// cools geometrically and the search stops at the floor or at zero
// conflicts.
func SolveAnneal(n int, initialTemp, cooling float64, rng *rand.Rand) ([]int, bool) {
	const tempFloor = 0.1

	rows := rng.Perm(n)
	conflicts := AttackingPairs(rows)

	for temp := initialTemp; temp > tempFloor && conflicts > 0; temp *= cooling {
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		rows[i], rows[j] = rows[j], rows[i]
		next := AttackingPairs(rows)
		delta := next - conflicts
		if delta <= 0 || rng.Float64() < math.Exp(-float64(delta)/temp) {
			conflicts = next
		} else {
			rows[i], rows[j] = rows[j], rows[i] // reject, undo swap
		}
	}

	if conflicts == 0 {
		return rows, true
	}
	return nil, false
}
