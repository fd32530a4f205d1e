// Package queens implements N-Queens placement validation and a family of
// solvers: exhaustive backtracking, a parallel multi-start search, and two
// local-search methods (hill climbing, simulated annealing).
//
// A placement is a slice of row indices, one per column: rows[c] = r means
// the queen in column c sits on row r.
package queens

// safe reports whether a queen may be placed at (row, col) given the queens
// already placed in columns [0, col).
func safe(rows []int, col, row int) bool {
	for c := 0; c < col; c++ {
		if rows[c] == row {
			return false
		}
		if abs(rows[c]-row) == col-c {
			return false
		}
	}
	return true
}

// ValidPlacement reports whether rows is a complete, attack-free placement
// of n queens. It checks length, value ranges, row clashes and diagonal
// clashes. O(n^2), fine for the board sizes the quiz generates (n <= 8).
func ValidPlacement(n int, rows []int) bool {
	if len(rows) != n {
		return false
	}
	for _, r := range rows {
		if r < 0 || r >= n {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i] == rows[j] {
				return false
			}
			if abs(rows[i]-rows[j]) == j-i {
				return false
			}
		}
	}
	return true
}

// AttackingPairs counts pairs of queens that attack each other by row or
// diagonal. Used as the objective function by the local-search solvers.
func AttackingPairs(rows []int) int {
	count := 0
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[i] == rows[j] || abs(rows[i]-rows[j]) == j-i {
				count++
			}
		}
	}
	return count
}

// SolveBacktracking finds one attack-free placement for n queens, placing
// column by column and trying rows in ascending order. The second return is
// false when no placement exists (n = 2, 3).
func SolveBacktracking(n int) ([]int, bool) {
	rows := make([]int, n)
	if !placeFrom(rows, 0, n) {
		return nil, false
	}
	return rows, true
}

func placeFrom(rows []int, col, n int) bool {
	if col == n {
		return true
	}
	for row := 0; row < n; row++ {
		if !safe(rows, col, row) {
			continue
		}
		rows[col] = row
		if placeFrom(rows, col+1, n) {
			return true
		}
	}
	return false
}

// SolveAll enumerates every attack-free placement for n queens.
func SolveAll(n int) [][]int {
	var out [][]int
	rows := make([]int, n)
	var rec func(col int)
	rec = func(col int) {
		if col == n {
			out = append(out, append([]int(nil), rows...))
			return
		}
		for row := 0; row < n; row++ {
			if safe(rows, col, row) {
				rows[col] = row
				rec(col + 1)
			}
		}
	}
	rec(0)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
