// Package race runs a small set of solver invocations concurrently over a
// shared read-only problem instance and reports per-contender wall-clock
// timings. The winner is a real measurement used as a grading oracle for
// algorithm-comparison questions, not a fixed fact.
package race

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Contender is one algorithm entered in a race. Run must not mutate shared
// state; each contender works on its own copy or a read-only view of the
// instance. It returns whether a solution was found.
type Contender struct {
	Name string
	Run  func() bool
}

// Outcome is one contender's measured result.
type Outcome struct {
	Name    string
	Elapsed time.Duration
	Solved  bool
}

// Run starts every contender on its own goroutine, joins on completion, and
// returns outcomes in the order the contenders were given.
func Run(contenders []Contender) []Outcome {
	outcomes := make([]Outcome, len(contenders))
	var wg sync.WaitGroup
	for i, c := range contenders {
		wg.Add(1)
		go func(i int, c Contender) {
			defer wg.Done()
			start := time.Now()
			solved := c.Run()
			outcomes[i] = Outcome{Name: c.Name, Elapsed: time.Since(start), Solved: solved}
		}(i, c)
	}
	wg.Wait()
	return outcomes
}

// Winner returns the fastest outcome that solved its instance. When no
// contender solved, the first outcome is returned and the second return is
// false.
func Winner(outcomes []Outcome) (Outcome, bool) {
	best := -1
	for i, o := range outcomes {
		if !o.Solved {
			continue
		}
		if best < 0 || o.Elapsed < outcomes[best].Elapsed {
			best = i
		}
	}
	if best < 0 {
		return outcomes[0], false
	}
	return outcomes[best], true
}

// Report renders per-contender timings for explanation text.
func Report(outcomes []Outcome) string {
	var b strings.Builder
	b.WriteString("--- Results ---\n")
	for _, o := range outcomes {
		if !o.Solved {
			fmt.Fprintf(&b, "%s: failed to find a solution\n", o.Name)
			continue
		}
		fmt.Fprintf(&b, "%s: %.6fs\n", o.Name, o.Elapsed.Seconds())
	}
	return strings.TrimRight(b.String(), "\n")
}
