package quiz

import (
	"math/rand"

	"github.com/google/uuid"
)

// Template binds a topic, a kind, and an instance generator into a
// reusable question source. Generate draws all randomness from the given
// source so tests can reproduce instances.
type Template struct {
	ID       string
	Topic    Topic
	Kind     Kind
	Generate func(rng *rand.Rand) *Question
}

// registry is the static template registry. An explicit table, rather than
// any form of discovery, keeps wiring errors visible at startup.
var registry = map[Topic][]Template{
	TopicNQueens:       queensTemplates,
	TopicHanoi:         hanoiTemplates,
	TopicGraphColoring: graphTemplates,
	TopicKnightsTour:   knightTemplates,
	TopicMinimax:       minimaxTemplates,
}

// Templates returns the registered templates for a topic.
func Templates(t Topic) []Template {
	return registry[t]
}

// AllTemplates returns every registered template.
func AllTemplates() []Template {
	var out []Template
	for _, t := range AllTopics() {
		out = append(out, registry[t]...)
	}
	return out
}

// stamp fills the identity fields of a freshly generated question.
func stamp(id string, topic Topic, kind Kind, q Question) *Question {
	q.ID = uuid.NewString()
	q.Topic = topic
	q.Kind = kind
	q.Template = id
	return &q
}
