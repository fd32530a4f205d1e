// Package home is the quiz setup screen: pick topics, pick a question
// count, start.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/SmauRobert/SmartTest/internal/controller"
	"github.com/SmauRobert/SmartTest/internal/quiz"
	"github.com/SmauRobert/SmartTest/internal/router"
	"github.com/SmauRobert/SmartTest/internal/screen"
	"github.com/SmauRobert/SmartTest/internal/screens/play"
	"github.com/SmauRobert/SmartTest/internal/ui/components"
	"github.com/SmauRobert/SmartTest/internal/ui/layout"
	"github.com/SmauRobert/SmartTest/internal/ui/theme"
)

var questionCounts = []int{5, 10, 15, 20}

// HomeScreen lets the user select topics and a question count.
type HomeScreen struct {
	ctrl      *controller.Controller
	topics    []quiz.Topic
	checklist components.Checklist
	countIdx  int
	errText   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(ctrl *controller.Controller) *HomeScreen {
	topics := ctrl.Topics()
	labels := make([]string, len(topics))
	for i, t := range topics {
		labels[i] = t.DisplayName()
	}
	return &HomeScreen{
		ctrl:      ctrl,
		topics:    topics,
		checklist: components.NewChecklist(labels),
		countIdx:  1, // default 10 questions
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle topic"},
		{Key: "←→", Description: "Questions"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if h.countIdx > 0 {
			h.countIdx--
		}
		return h, nil
	case "right", "l":
		if h.countIdx < len(questionCounts)-1 {
			h.countIdx++
		}
		return h, nil
	case "enter":
		return h, h.start()
	}

	var cmd tea.Cmd
	h.checklist, cmd = h.checklist.Update(msg)
	h.errText = ""
	return h, cmd
}

func (h *HomeScreen) start() tea.Cmd {
	var selected []quiz.Topic
	for _, i := range h.checklist.CheckedIndexes() {
		selected = append(selected, h.topics[i])
	}
	if len(selected) == 0 {
		h.errText = "Select at least one topic."
		return nil
	}
	if err := h.ctrl.StartQuiz(selected, questionCounts[h.countIdx]); err != nil {
		h.errText = err.Error()
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(h.ctrl)}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("SmartTest"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Algorithmic puzzle quizzes in your terminal"))
	b.WriteString("\n\n")

	card := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Topics") + "\n\n" +
			h.checklist.View() + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Questions") + "\n\n" +
			h.renderCountPicker(),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if h.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(h.errText)))
	}

	return b.String()
}

func (h *HomeScreen) renderCountPicker() string {
	parts := make([]string, len(questionCounts))
	for i, n := range questionCounts {
		label := fmt.Sprintf(" %d ", n)
		if i == h.countIdx {
			parts[i] = theme.Selected.Render("[" + strings.TrimSpace(label) + "]")
		} else {
			parts[i] = theme.Unselected.Render(label)
		}
	}
	return "  " + strings.Join(parts, " ")
}
