// Package play is the quiz-taking screen: it walks the active session one
// question at a time, collects the answer, and shows the graded feedback.
package play

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/SmauRobert/SmartTest/internal/controller"
	"github.com/SmauRobert/SmartTest/internal/eval"
	"github.com/SmauRobert/SmartTest/internal/quiz"
	"github.com/SmauRobert/SmartTest/internal/router"
	"github.com/SmauRobert/SmartTest/internal/screen"
	"github.com/SmauRobert/SmartTest/internal/screens/summary"
	"github.com/SmauRobert/SmartTest/internal/ui/components"
	"github.com/SmauRobert/SmartTest/internal/ui/layout"
	"github.com/SmauRobert/SmartTest/internal/ui/theme"
)

type phase int

const (
	phaseAsking phase = iota
	phaseGrading
	phaseFeedback
)

// gradedMsg carries the evaluation result back onto the UI loop.
type gradedMsg struct {
	res *eval.Result
}

// PlayScreen walks the questions of the active session.
type PlayScreen struct {
	ctrl  *controller.Controller
	card  *controller.QuestionCard
	phase phase

	input   components.TextInput
	area    textarea.Model
	spin    spinner.Model
	result  *eval.Result
	rawSent string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.ProgressProvider = (*PlayScreen)(nil)

// New starts the screen on the session's first question.
func New(ctrl *controller.Controller) *PlayScreen {
	p := &PlayScreen{ctrl: ctrl}
	p.spin = spinner.New()
	p.spin.Spinner = spinner.Dot
	p.spin.Style = lipgloss.NewStyle().Foreground(theme.Secondary)
	p.loadQuestion()
	return p
}

// loadQuestion advances the session and resets the input widgets.
func (p *PlayScreen) loadQuestion() {
	p.card = p.ctrl.NextQuestion()
	p.result = nil
	p.phase = phaseAsking
	if p.card == nil {
		return
	}
	if p.freeText() {
		p.area = textarea.New()
		p.area.Placeholder = "Write your analysis here..."
		p.area.SetHeight(6)
		p.area.Focus()
	} else {
		p.input = components.NewTextInput("Your answer")
	}
}

// freeText reports whether the current question takes a multi-line answer.
func (p *PlayScreen) freeText() bool {
	return p.card != nil && p.card.Kind == quiz.KindAnalysis
}

func (p *PlayScreen) Init() tea.Cmd {
	if p.card == nil {
		return nil
	}
	if p.freeText() {
		return p.area.Focus()
	}
	return p.input.Init()
}

func (p *PlayScreen) Title() string {
	if p.card == nil {
		return "Quiz"
	}
	return p.card.Topic.DisplayName()
}

func (p *PlayScreen) Progress() string {
	if p.card == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", p.card.Number, p.card.Total)
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseAsking:
		if p.freeText() {
			return []layout.KeyHint{
				{Key: "Ctrl+S", Description: "Submit"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseGrading:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if p.card == nil {
		return p, p.finish()
	}

	switch p.phase {
	case phaseAsking:
		return p.updateAsking(msg)
	case phaseGrading:
		return p.updateGrading(msg)
	default:
		return p.updateFeedback(msg)
	}
}

func (p *PlayScreen) updateAsking(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key == "ctrl+s" || (key == "enter" && !p.freeText()) {
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	if p.freeText() {
		p.area, cmd = p.area.Update(msg)
	} else {
		p.input, cmd = p.input.Update(msg)
	}
	return p, cmd
}

func (p *PlayScreen) submit() tea.Cmd {
	raw := p.input.Value()
	if p.freeText() {
		raw = p.area.Value()
	}
	p.rawSent = raw
	p.phase = phaseGrading

	grade := func() tea.Msg {
		// Grading happens off the UI goroutine; block here until the
		// controller's callback delivers the result.
		ch := make(chan *eval.Result, 1)
		p.ctrl.SubmitAnswer(raw, func(r *eval.Result) { ch <- r })
		return gradedMsg{res: <-ch}
	}
	return tea.Batch(grade, p.spin.Tick)
}

func (p *PlayScreen) updateGrading(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		p.result = msg.res
		p.phase = phaseFeedback
		if !p.freeText() {
			p.input.Submit(msg.res.IsCorrect)
		}
		return p, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) updateFeedback(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if p.ctrl.Done() {
			return p, p.finish()
		}
		p.loadQuestion()
		return p, p.Init()
	}
	return p, nil
}

func (p *PlayScreen) finish() tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(p.ctrl.Summary())}
	}
}

func (p *PlayScreen) View(width, height int) string {
	if p.card == nil {
		return ""
	}

	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Width(inner).Render(p.card.Prompt)
	hint := theme.Hint.Width(inner).Render(p.card.Hint)
	b.WriteString(prompt + "\n\n" + hint + "\n\n")

	switch p.phase {
	case phaseAsking:
		if p.freeText() {
			b.WriteString(p.area.View())
		} else {
			b.WriteString(p.input.View())
		}
	case phaseGrading:
		b.WriteString(p.spin.View() + theme.Hint.Render(" evaluating..."))
	default:
		b.WriteString(p.renderFeedback(inner))
	}

	card := theme.Card.Width(width - 4).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (p *PlayScreen) renderFeedback(inner int) string {
	res := p.result
	verdict := theme.Incorrect.Render(fmt.Sprintf("Score: %d", res.Score))
	if res.IsCorrect {
		verdict = theme.Correct.Render(fmt.Sprintf("Score: %d", res.Score))
	}

	answered := theme.Hint.Width(inner).Render("Your answer: " + p.rawSent)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(inner).Render(res.FeedbackText())

	return verdict + "\n" + answered + "\n\n" + body
}
