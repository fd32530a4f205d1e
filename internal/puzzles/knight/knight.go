// Package knight implements Knight's Tour move validation and three tour
// solvers: plain backtracking, Warnsdorff's heuristic, and an unreliable
// random walk used only for algorithm racing.
package knight

import (
	"fmt"
	"math/rand"
	"sort"
)

// Square is a 0-indexed board position.
type Square struct {
	R int
	C int
}

func (s Square) String() string { return fmt.Sprintf("(%d, %d)", s.R, s.C) }

// moveDeltas is the fixed neighbor order used by the backtracking solver.
var moveDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// IsLShapeMove reports whether (r1,c1) -> (r2,c2) is a legal knight move.
func IsLShapeMove(r1, c1, r2, c2 int) bool {
	dr := abs(r1 - r2)
	dc := abs(c1 - c2)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

// OffBoardError reports a square outside the board.
type OffBoardError struct {
	Square Square
}

func (e *OffBoardError) Error() string {
	return fmt.Sprintf("square %s is outside the board", e.Square)
}

// RevisitedSquareError reports a square visited more than once.
type RevisitedSquareError struct {
	Square Square
}

func (e *RevisitedSquareError) Error() string {
	return fmt.Sprintf("square %s is visited more than once", e.Square)
}

// NotKnightMoveError reports a step that is not an L-shape.
type NotKnightMoveError struct {
	From, To Square
}

func (e *NotKnightMoveError) Error() string {
	return fmt.Sprintf("move from %s to %s is not a valid knight's move", e.From, e.To)
}

// WrongLengthError reports a path that does not cover the board exactly.
type WrongLengthError struct {
	Got, Want int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("tour must have %d squares, got %d", e.Want, e.Got)
}

// ValidTour checks a complete open tour: exactly rows*cols squares, all on
// the board, none repeated, every consecutive pair an L-shape move.
func ValidTour(rows, cols int, path []Square) error {
	if len(path) != rows*cols {
		return &WrongLengthError{Got: len(path), Want: rows * cols}
	}
	visited := make(map[Square]bool, len(path))
	for i, sq := range path {
		if sq.R < 0 || sq.R >= rows || sq.C < 0 || sq.C >= cols {
			return &OffBoardError{Square: sq}
		}
		if visited[sq] {
			return &RevisitedSquareError{Square: sq}
		}
		visited[sq] = true
		if i > 0 {
			prev := path[i-1]
			if !IsLShapeMove(prev.R, prev.C, sq.R, sq.C) {
				return &NotKnightMoveError{From: prev, To: sq}
			}
		}
	}
	return nil
}

// LegalMoves returns the on-board, unvisited knight moves from sq, in the
// fixed neighbor order.
func LegalMoves(rows, cols int, visited map[Square]bool, sq Square) []Square {
	var out []Square
	for _, d := range moveDeltas {
		next := Square{R: sq.R + d[0], C: sq.C + d[1]}
		if next.R < 0 || next.R >= rows || next.C < 0 || next.C >= cols {
			continue
		}
		if visited[next] {
			continue
		}
		out = append(out, next)
	}
	return out
}

// SolveBacktracking searches depth-first for an open tour from start, trying
// neighbors in the fixed order and backtracking on dead ends.
func SolveBacktracking(rows, cols int, start Square) ([]Square, bool) {
	visited := make(map[Square]bool, rows*cols)
	path := make([]Square, 0, rows*cols)

	var rec func(sq Square) bool
	rec = func(sq Square) bool {
		visited[sq] = true
		path = append(path, sq)
		if len(path) == rows*cols {
			return true
		}
		for _, next := range LegalMoves(rows, cols, visited, sq) {
			if rec(next) {
				return true
			}
		}
		visited[sq] = false
		path = path[:len(path)-1]
		return false
	}

	if !rec(start) {
		return nil, false
	}
	return path, true
}

// SolveWarnsdorff searches like SolveBacktracking but orders candidate moves
// by their count of onward legal moves, fewest first, keeping encounter
// order on ties. The heuristic makes backtracking rare on solvable boards.
func SolveWarnsdorff(rows, cols int, start Square) ([]Square, bool) {
	visited := make(map[Square]bool, rows*cols)
	path := make([]Square, 0, rows*cols)

	var rec func(sq Square) bool
	rec = func(sq Square) bool {
		visited[sq] = true
		path = append(path, sq)
		if len(path) == rows*cols {
			return true
		}
		moves := LegalMoves(rows, cols, visited, sq)
		sort.SliceStable(moves, func(i, j int) bool {
			return len(LegalMoves(rows, cols, visited, moves[i])) <
				len(LegalMoves(rows, cols, visited, moves[j]))
		})
		for _, next := range moves {
			if rec(next) {
				return true
			}
		}
		visited[sq] = false
		path = path[:len(path)-1]
		return false
	}

	if !rec(start) {
		return nil, false
	}
	return path, true
}

// SolveRandomWalk repeatedly walks random legal moves until the board is
// full or the knight is stuck, retrying up to attempts times. Fast but
// unreliable; used only for racing, never for reference solutions.
func SolveRandomWalk(rows, cols int, start Square, attempts int, rng *rand.Rand) ([]Square, bool) {
	for a := 0; a < attempts; a++ {
		visited := map[Square]bool{start: true}
		path := []Square{start}
		sq := start
		for len(path) < rows*cols {
			moves := LegalMoves(rows, cols, visited, sq)
			if len(moves) == 0 {
				break
			}
			sq = moves[rng.Intn(len(moves))]
			visited[sq] = true
			path = append(path, sq)
		}
		if len(path) == rows*cols {
			return path, true
		}
	}
	return nil, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
