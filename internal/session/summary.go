package session

import "github.com/SmauRobert/SmartTest/internal/quiz"

// TopicStats aggregates results for one topic within a session.
type TopicStats struct {
	Answered int
	Correct  int
	Score    int // sum of scores, for averaging
}

// Summary is the end-of-quiz report.
type Summary struct {
	Total        int
	Answered     int
	Correct      int
	AverageScore int
	PerTopic     map[quiz.Topic]TopicStats
}

// Summarize aggregates the session's records.
func (s *Session) Summarize() Summary {
	sum := Summary{
		Total:    len(s.questions),
		PerTopic: make(map[quiz.Topic]TopicStats),
	}
	total := 0
	for _, r := range s.records {
		sum.Answered++
		total += r.Result.Score
		if r.Result.IsCorrect {
			sum.Correct++
		}
		ts := sum.PerTopic[r.Question.Topic]
		ts.Answered++
		ts.Score += r.Result.Score
		if r.Result.IsCorrect {
			ts.Correct++
		}
		sum.PerTopic[r.Question.Topic] = ts
	}
	if sum.Answered > 0 {
		sum.AverageScore = total / sum.Answered
	}
	return sum
}
