// Package controller drives a quiz: it generates questions from the
// registered templates, walks the session, and grades answers off the
// caller's goroutine so slow evaluations (parallel searches, algorithm
// races) never block the UI.
package controller

import (
	"errors"
	"math/rand"

	"github.com/SmauRobert/SmartTest/internal/eval"
	"github.com/SmauRobert/SmartTest/internal/quiz"
	"github.com/SmauRobert/SmartTest/internal/session"
)

// ErrNoTemplates is returned when the selected topics have no registered
// question templates.
var ErrNoTemplates = errors.New("no question templates available for the selected topics")

// QuestionCard is the UI-facing view of one question.
type QuestionCard struct {
	Number int // 1-based
	Total  int
	Topic  quiz.Topic
	Kind   quiz.Kind
	Prompt string
	Hint   string
}

// Controller owns the active session and the grading engine.
type Controller struct {
	engine *eval.Engine
	rng    *rand.Rand
	sess   *session.Session
}

// New builds a controller. The rand source seeds question generation;
// tests inject a fixed seed.
func New(engine *eval.Engine, rng *rand.Rand) *Controller {
	return &Controller{engine: engine, rng: rng}
}

// Topics lists the available problem families.
func (c *Controller) Topics() []quiz.Topic {
	return quiz.AllTopics()
}

// StartQuiz generates n questions drawn uniformly from the templates of
// the selected topics and begins a new session.
func (c *Controller) StartQuiz(topics []quiz.Topic, n int) error {
	var pool []quiz.Template
	for _, t := range topics {
		pool = append(pool, quiz.Templates(t)...)
	}
	if len(pool) == 0 {
		return ErrNoTemplates
	}

	questions := make([]*quiz.Question, 0, n)
	for i := 0; i < n; i++ {
		tmpl := pool[c.rng.Intn(len(pool))]
		questions = append(questions, tmpl.Generate(c.rng))
	}
	c.sess = session.New(questions)
	return nil
}

// NextQuestion advances the session and returns the next question card,
// or nil when the quiz is finished.
func (c *Controller) NextQuestion() *QuestionCard {
	if c.sess == nil {
		return nil
	}
	q := c.sess.Next()
	if q == nil {
		return nil
	}
	return &QuestionCard{
		Number: c.sess.Index(),
		Total:  c.sess.Len(),
		Topic:  q.Topic,
		Kind:   q.Kind,
		Prompt: q.Prompt,
		Hint:   q.Hint,
	}
}

// SubmitAnswer grades the current question on a background goroutine and
// invokes done exactly once with the result. Race and search evaluations
// can take seconds; the caller stays responsive meanwhile.
func (c *Controller) SubmitAnswer(raw string, done func(*eval.Result)) {
	q := c.sess.Current()
	if q == nil {
		done(&eval.Result{Score: 0, Feedback: []string{"no question to evaluate"}})
		return
	}
	go func() {
		res := c.engine.Evaluate(q, raw)
		c.sess.RecordAnswer(raw, res)
		done(res)
	}()
}

// Done reports whether every question in the session has been answered.
func (c *Controller) Done() bool {
	return c.sess != nil && c.sess.Done()
}

// Summary aggregates the session's results.
func (c *Controller) Summary() session.Summary {
	if c.sess == nil {
		return session.Summary{PerTopic: map[quiz.Topic]session.TopicStats{}}
	}
	return c.sess.Summarize()
}
