// Package session tracks one quiz run: the generated questions, the cursor
// over them, and the graded answers recorded so far.
package session

import (
	"github.com/SmauRobert/SmartTest/internal/eval"
	"github.com/SmauRobert/SmartTest/internal/quiz"
)

// Record is one answered question.
type Record struct {
	Question  *quiz.Question
	RawAnswer string
	Result    *eval.Result
}

// Session is the state of one quiz run. Questions are fixed at creation;
// answering advances the cursor one question at a time.
type Session struct {
	questions []*quiz.Question
	cursor    int
	records   []Record
}

// New starts a session over the given questions.
func New(questions []*quiz.Question) *Session {
	return &Session{questions: questions, cursor: -1}
}

// Next advances to the next question and returns it, or nil when the quiz
// is finished.
func (s *Session) Next() *quiz.Question {
	if s.cursor+1 >= len(s.questions) {
		return nil
	}
	s.cursor++
	return s.questions[s.cursor]
}

// Current returns the question the cursor is on, or nil before the first
// Next call.
func (s *Session) Current() *quiz.Question {
	if s.cursor < 0 || s.cursor >= len(s.questions) {
		return nil
	}
	return s.questions[s.cursor]
}

// RecordAnswer stores the graded answer for the current question.
func (s *Session) RecordAnswer(raw string, res *eval.Result) {
	q := s.Current()
	if q == nil {
		return
	}
	s.records = append(s.records, Record{Question: q, RawAnswer: raw, Result: res})
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return len(s.records) >= len(s.questions)
}

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the 1-based number of the current question, or 0 before
// the first Next call.
func (s *Session) Index() int { return s.cursor + 1 }

// Records returns the graded answers so far.
func (s *Session) Records() []Record { return s.records }
