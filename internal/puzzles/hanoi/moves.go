package hanoi

// Move generators for the standard 3-peg puzzle, moving n disks from peg 0
// to peg 2 with peg 1 as auxiliary. All three produce the same optimal
// sequence of exactly 2^n - 1 moves; the optimal 3-peg sequence is unique.

// SolveRecursive generates the move list using the standard recursive
// decomposition: move n-1 disks to the auxiliary peg, move the largest disk
// to the target, move the n-1 disks from the auxiliary to the target.
func SolveRecursive(n int) []Move {
	moves := make([]Move, 0, (1<<n)-1)
	var rec func(count, src, dst, aux int)
	rec = func(count, src, dst, aux int) {
		if count == 1 {
			moves = append(moves, Move{From: src, To: dst})
			return
		}
		rec(count-1, src, aux, dst)
		moves = append(moves, Move{From: src, To: dst})
		rec(count-1, aux, dst, src)
	}
	rec(n, 0, 2, 1)
	return moves
}

// SolveIterative generates the same sequence with an explicit task stack
// simulating the recursion. Subtasks are pushed in reverse execution order.
func SolveIterative(n int) []Move {
	type task struct {
		count, src, dst, aux int
	}

	moves := make([]Move, 0, (1<<n)-1)
	stack := []task{{n, 0, 2, 1}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.count == 1 {
			moves = append(moves, Move{From: t.src, To: t.dst})
			continue
		}
		stack = append(stack,
			task{t.count - 1, t.aux, t.dst, t.src},
			task{1, t.src, t.dst, t.aux},
			task{t.count - 1, t.src, t.aux, t.dst},
		)
	}
	return moves
}

// SolveBinary generates the sequence from the binary representation of the
// move index: for move i (1-based), the source is (i & (i-1)) mod 3 and the
// destination is ((i | (i-1)) + 1) mod 3. That closed form targets peg 1
// for even n, so pegs 1 and 2 are swapped to keep the target at peg 2.
func SolveBinary(n int) []Move {
	total := (1 << n) - 1
	moves := make([]Move, 0, total)
	for i := 1; i <= total; i++ {
		from := (i & (i - 1)) % 3
		to := ((i | (i - 1)) + 1) % 3
		if n%2 == 0 {
			from = swapPegs(from)
			to = swapPegs(to)
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

func swapPegs(p int) int {
	switch p {
	case 1:
		return 2
	case 2:
		return 1
	default:
		return p
	}
}
