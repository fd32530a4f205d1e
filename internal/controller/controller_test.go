package controller

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SmauRobert/SmartTest/internal/eval"
	"github.com/SmauRobert/SmartTest/internal/quiz"
)

func newController() *Controller {
	cfg := eval.DefaultConfig()
	cfg.NewRand = func() *rand.Rand { return rand.New(rand.NewSource(1)) }
	return New(eval.NewEngine(cfg), rand.New(rand.NewSource(1)))
}

func TestStartQuiz(t *testing.T) {
	c := newController()
	if err := c.StartQuiz([]quiz.Topic{quiz.TopicHanoi}, 5); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 5; i++ {
		card := c.NextQuestion()
		if card == nil {
			t.Fatalf("question %d: nil card", i)
		}
		if card.Number != i || card.Total != 5 {
			t.Errorf("card %d/%d, want %d/5", card.Number, card.Total, i)
		}
		if card.Topic != quiz.TopicHanoi {
			t.Errorf("card topic %s, want %s", card.Topic, quiz.TopicHanoi)
		}
		if card.Prompt == "" || card.Hint == "" {
			t.Error("card missing prompt or hint")
		}
	}
	if c.NextQuestion() != nil {
		t.Error("expected nil card past the last question")
	}
}

func TestStartQuizNoTemplates(t *testing.T) {
	c := newController()
	if err := c.StartQuiz(nil, 5); err != ErrNoTemplates {
		t.Errorf("got %v, want ErrNoTemplates", err)
	}
	if err := c.StartQuiz([]quiz.Topic{"bogus_topic"}, 5); err != ErrNoTemplates {
		t.Errorf("got %v, want ErrNoTemplates", err)
	}
}

func TestSubmitAnswerGradesAsync(t *testing.T) {
	c := newController()
	if err := c.StartQuiz([]quiz.Topic{quiz.TopicMinimax}, 2); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if c.NextQuestion() == nil {
			t.Fatal("nil card")
		}
		results := make(chan *eval.Result, 1)
		c.SubmitAnswer("not a number", func(res *eval.Result) { results <- res })

		select {
		case res := <-results:
			if res.Score != 0 {
				t.Errorf("malformed answer scored %d", res.Score)
			}
		case <-time.After(10 * time.Second):
			t.Fatal("grading callback never fired")
		}
	}

	if !c.Done() {
		t.Error("all questions answered but controller not done")
	}
	sum := c.Summary()
	if sum.Total != 2 || sum.Answered != 2 || sum.Correct != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestSubmitAnswerWithoutQuestion(t *testing.T) {
	c := newController()
	if err := c.StartQuiz([]quiz.Topic{quiz.TopicMinimax}, 1); err != nil {
		t.Fatal(err)
	}

	// No NextQuestion call yet: there is no current question to grade.
	results := make(chan *eval.Result, 1)
	c.SubmitAnswer("42", func(res *eval.Result) { results <- res })
	res := <-results
	if res.Score != 0 {
		t.Errorf("scored %d with no current question", res.Score)
	}
}

func TestSummaryWithoutSession(t *testing.T) {
	c := newController()
	sum := c.Summary()
	if sum.Total != 0 || sum.PerTopic == nil {
		t.Errorf("empty summary = %+v", sum)
	}
	if c.Done() {
		t.Error("controller with no session reported done")
	}
	if c.NextQuestion() != nil {
		t.Error("controller with no session returned a question")
	}
}

func TestTopics(t *testing.T) {
	c := newController()
	topics := c.Topics()
	if len(topics) != len(quiz.AllTopics()) {
		t.Fatalf("got %d topics, want %d", len(topics), len(quiz.AllTopics()))
	}
}
