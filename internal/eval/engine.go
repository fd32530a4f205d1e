// Package eval grades quiz answers. The engine routes each question to the
// evaluator registered for its topic and kind; evaluators parse the answer
// text into its documented shape first and only then judge it semantically,
// so format problems always come back as guidance rather than wrong-answer
// verdicts.
package eval

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/SmauRobert/SmartTest/internal/answer"
	"github.com/SmauRobert/SmartTest/internal/quiz"
)

// Config bounds the search work an evaluation may do.
type Config struct {
	// QueensSearchTimeout caps the parallel reference search that runs
	// after a valid N-Queens solution is submitted.
	QueensSearchTimeout time.Duration
	// QueensSolutionCap is the number of reference solutions to collect.
	QueensSolutionCap int
	// RandomWalkAttempts bounds the random-walk contender in tour races.
	RandomWalkAttempts int
	// NewRand supplies randomness for race contenders that need it. Tests
	// inject a seeded source.
	NewRand func() *rand.Rand
}

// DefaultConfig returns the limits used by the app.
func DefaultConfig() Config {
	return Config{
		QueensSearchTimeout: 5 * time.Second,
		QueensSolutionCap:   4,
		RandomWalkAttempts:  50,
	}
}

type dispatchKey struct {
	Topic quiz.Topic
	Kind  quiz.Kind
}

type evalFunc func(e *Engine, q *quiz.Question, ans string) *Result

// Engine grades answers against their questions.
type Engine struct {
	cfg      Config
	dispatch map[dispatchKey]evalFunc
}

// NewEngine builds an engine and verifies that every registered question
// template has an evaluator. A missing evaluator is a wiring bug, so it
// panics rather than surfacing later as a failed grading.
func NewEngine(cfg Config) *Engine {
	if cfg.NewRand == nil {
		cfg.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	e := &Engine{
		cfg: cfg,
		dispatch: map[dispatchKey]evalFunc{
			{quiz.TopicNQueens, quiz.KindSolution}:         evaluateQueensSolution,
			{quiz.TopicNQueens, quiz.KindAnalysis}:         evaluateQueensAnalysis,
			{quiz.TopicHanoi, quiz.KindTheory}:             evaluateHanoiTheory,
			{quiz.TopicHanoi, quiz.KindValidation}:         evaluateHanoiValidation,
			{quiz.TopicHanoi, quiz.KindSolution}:           evaluateHanoiSolution,
			{quiz.TopicHanoi, quiz.KindAnalysis}:           evaluateHanoiAnalysis,
			{quiz.TopicHanoi, quiz.KindRace}:               evaluateHanoiRace,
			{quiz.TopicGraphColoring, quiz.KindTheory}:     evaluateGraphTheory,
			{quiz.TopicGraphColoring, quiz.KindValidation}: evaluateGraphValidation,
			{quiz.TopicGraphColoring, quiz.KindSolution}:   evaluateGraphSolution,
			{quiz.TopicGraphColoring, quiz.KindAnalysis}:   evaluateGraphAnalysis,
			{quiz.TopicGraphColoring, quiz.KindRace}:       evaluateGraphRace,
			{quiz.TopicKnightsTour, quiz.KindTheory}:       evaluateKnightTheory,
			{quiz.TopicKnightsTour, quiz.KindValidation}:   evaluateKnightValidation,
			{quiz.TopicKnightsTour, quiz.KindSolution}:     evaluateKnightSolution,
			{quiz.TopicKnightsTour, quiz.KindAnalysis}:     evaluateKnightAnalysis,
			{quiz.TopicKnightsTour, quiz.KindRace}:         evaluateKnightRace,
			{quiz.TopicMinimax, quiz.KindSolution}:         evaluateMinimax,
		},
	}
	for _, t := range quiz.AllTemplates() {
		if _, ok := e.dispatch[dispatchKey{t.Topic, t.Kind}]; !ok {
			panic(fmt.Sprintf("eval: no evaluator for template %s (%s/%s)", t.ID, t.Topic, t.Kind))
		}
	}
	return e
}

// Evaluate grades a raw answer. It never fails: malformed answers score
// zero with format guidance, and an evaluator panic is converted into a
// zero-score internal-error result.
func (e *Engine) Evaluate(q *quiz.Question, raw string) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			res = &Result{
				Score:    0,
				Feedback: []string{fmt.Sprintf("internal error while grading: %v", r)},
			}
		}
	}()

	fn := e.dispatch[dispatchKey{q.Topic, q.Kind}]
	res = fn(e, q, strings.TrimSpace(raw))
	if res.Reference == "" {
		res.Reference = q.Reference
	}
	return res
}

// malformed converts a parse error into a zero-score result with format
// guidance.
func malformed(err error) *Result {
	if m, ok := err.(*answer.MalformedError); ok {
		return &Result{
			Score: 0,
			Feedback: []string{
				fmt.Sprintf("× Invalid format. Expected %s", m.Expected),
				"Example: " + m.Example,
			},
		}
	}
	return &Result{Score: 0, Feedback: []string{"× " + err.Error()}}
}

// wrongAnswer builds the standard zero-score verdict for a graded literal.
func wrongAnswer(given, correct, explanation string) *Result {
	fb := []string{fmt.Sprintf("Your answer was '%s'. The correct answer is %s.", given, correct)}
	if explanation != "" {
		fb = append(fb, explanation)
	}
	return &Result{Score: 0, Feedback: fb}
}
