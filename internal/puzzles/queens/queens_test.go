package queens

import (
	"context"
	"math/rand"
	"testing"
	"time"
)

func TestValidPlacement(t *testing.T) {
	tests := []struct {
		name string
		n    int
		rows []int
		want bool
	}{
		{"classic n=4 solution", 4, []int{1, 3, 0, 2}, true},
		{"mirrored n=4 solution", 4, []int{2, 0, 3, 1}, true},
		{"main diagonal", 4, []int{0, 1, 2, 3}, false},
		{"row conflict", 4, []int{0, 2, 0, 3}, false},
		{"wrong length", 4, []int{1, 3, 0}, false},
		{"out of range", 4, []int{1, 3, 0, 4}, false},
		{"single queen", 1, []int{0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPlacement(tt.n, tt.rows); got != tt.want {
				t.Errorf("ValidPlacement(%d, %v) = %v, want %v", tt.n, tt.rows, got, tt.want)
			}
		})
	}
}

func TestAttackingPairs(t *testing.T) {
	tests := []struct {
		rows []int
		want int
	}{
		{[]int{1, 3, 0, 2}, 0},
		{[]int{0, 1, 2, 3}, 6}, // every pair shares the main diagonal
		{[]int{0, 0}, 1},
	}
	for _, tt := range tests {
		if got := AttackingPairs(tt.rows); got != tt.want {
			t.Errorf("AttackingPairs(%v) = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestSolveBacktracking(t *testing.T) {
	for n := 4; n <= 8; n++ {
		rows, ok := SolveBacktracking(n)
		if !ok {
			t.Fatalf("n=%d: expected a solution", n)
		}
		if !ValidPlacement(n, rows) {
			t.Errorf("n=%d: solution %v is not valid", n, rows)
		}
	}
}

func TestSolveBacktrackingUnsolvable(t *testing.T) {
	for _, n := range []int{2, 3} {
		if _, ok := SolveBacktracking(n); ok {
			t.Errorf("n=%d: expected no solution", n)
		}
	}
}

func TestSolveAllCounts(t *testing.T) {
	// Known solution counts for small boards.
	counts := map[int]int{4: 2, 5: 10, 6: 4}
	for n, want := range counts {
		got := SolveAll(n)
		if len(got) != want {
			t.Errorf("n=%d: got %d solutions, want %d", n, len(got), want)
		}
		for _, rows := range got {
			if !ValidPlacement(n, rows) {
				t.Errorf("n=%d: invalid solution %v", n, rows)
			}
		}
	}
}

func TestFindSolutions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := FindSolutions(ctx, 6, 3)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("got %d solutions, want 1-3", len(got))
	}
	for _, rows := range got {
		if !ValidPlacement(6, rows) {
			t.Errorf("invalid solution %v", rows)
		}
	}
}

func TestFindSolutionsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Must return promptly without panicking; results may be empty.
	FindSolutions(ctx, 8, 4)
}

func TestSolveHillClimb(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows, ok := SolveHillClimb(6, 200, rng)
	if !ok {
		t.Fatal("hill climbing found no solution in 200 restarts")
	}
	if !ValidPlacement(6, rows) {
		t.Errorf("hill climbing produced invalid placement %v", rows)
	}
}

func TestSolveAnneal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows, ok := SolveAnneal(6, 100, 0.95, rng)
	if ok && !ValidPlacement(6, rows) {
		t.Errorf("annealing reported success with invalid placement %v", rows)
	}
}
