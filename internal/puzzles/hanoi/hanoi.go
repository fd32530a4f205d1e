// Package hanoi implements Tower of Hanoi peg-state validation and the
// three classic move generators for the 3-peg puzzle: recursive, iterative
// (explicit stack), and the binary-pattern closed form.
package hanoi

import "fmt"

// Move transfers the top disk of peg From to peg To. Pegs are 0-indexed.
type Move struct {
	From int
	To   int
}

// EmptySourceError reports a move attempted from an empty peg.
type EmptySourceError struct {
	Peg int
}

func (e *EmptySourceError) Error() string {
	return fmt.Sprintf("peg %d is empty", e.Peg)
}

// SizeViolationError reports a larger disk placed on a smaller one.
type SizeViolationError struct {
	Disk  int // disk being moved
	OnTop int // smaller disk currently on top of the destination
	Peg   int // destination peg
}

func (e *SizeViolationError) Error() string {
	return fmt.Sprintf("cannot place disk %d on top of the smaller disk %d on peg %d", e.Disk, e.OnTop, e.Peg)
}

// State holds the disks on each peg, bottom to top. Disk numbers are sizes:
// disk 3 is larger than disk 1.
type State struct {
	Pegs [][]int
}

// NewState stacks disks (largest at the bottom) on peg 0 of a board with
// the given number of pegs.
func NewState(disks, pegs int) *State {
	s := &State{Pegs: make([][]int, pegs)}
	stack := make([]int, 0, disks)
	for d := disks; d >= 1; d-- {
		stack = append(stack, d)
	}
	s.Pegs[0] = stack
	return s
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{Pegs: make([][]int, len(s.Pegs))}
	for i, p := range s.Pegs {
		c.Pegs[i] = append([]int(nil), p...)
	}
	return c
}

// Top returns the topmost disk on peg i, or 0 if the peg is empty.
func (s *State) Top(i int) int {
	p := s.Pegs[i]
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// ValidMove reports whether moving the top disk of from onto to is legal.
// Moving onto an empty peg is always legal.
func (s *State) ValidMove(from, to int) error {
	if from < 0 || from >= len(s.Pegs) || to < 0 || to >= len(s.Pegs) {
		return fmt.Errorf("peg index out of range: %d -> %d", from, to)
	}
	disk := s.Top(from)
	if disk == 0 {
		return &EmptySourceError{Peg: from}
	}
	if top := s.Top(to); top != 0 && disk > top {
		return &SizeViolationError{Disk: disk, OnTop: top, Peg: to}
	}
	return nil
}

// Apply performs the move after validating it.
func (s *State) Apply(m Move) error {
	if err := s.ValidMove(m.From, m.To); err != nil {
		return err
	}
	from := s.Pegs[m.From]
	disk := from[len(from)-1]
	s.Pegs[m.From] = from[:len(from)-1]
	s.Pegs[m.To] = append(s.Pegs[m.To], disk)
	return nil
}

// fourPegMinimum holds Frame-Stewart optimal move counts for 4 pegs.
var fourPegMinimum = map[int]int{
	1: 1, 2: 3, 3: 5, 4: 9, 5: 13, 6: 17, 7: 21, 8: 25, 9: 29, 10: 33,
}

// MinMoves returns the provable minimum number of moves for the given disk
// and peg counts: 2^n - 1 for 3 pegs, the Frame-Stewart values for 4 pegs
// and n <= 10. The second return is false when the minimum is unknown.
func MinMoves(disks, pegs int) (int, bool) {
	switch pegs {
	case 3:
		return (1 << disks) - 1, true
	case 4:
		m, ok := fourPegMinimum[disks]
		return m, ok
	default:
		return 0, false
	}
}
