// Package screens holds one tea.Model per workflow step and shows the one
// for the current step.
package screens

import (
	"github.com/alkime/itranscript/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
)

// ShowMsg asks the container to switch to the screen for Step. Unknown steps
// and the step already shown are ignored.
type ShowMsg struct {
	Step workflow.Step
}

// ShowCmd returns a command that emits ShowMsg for step.
func ShowCmd(step workflow.Step) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Step: step}
	}
}

// Capturer is implemented by screens that sometimes want every key, such as
// while a text input has focus.
type Capturer interface {
	CapturingKeys() bool
}

// Screen is a named model for one step.
type Screen struct {
	Step workflow.Step
	mdl  tea.Model
}

func (s Screen) Init() tea.Cmd {
	return s.mdl.Init()
}

func (s Screen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	updatedMdl, cmd := s.mdl.Update(msg)
	s.mdl = updatedMdl
	return s, cmd
}

func (s Screen) View() string {
	return s.mdl.View()
}

// CapturingKeys reports whether the wrapped model wants every key.
func (s Screen) CapturingKeys() bool {
	c, ok := s.mdl.(Capturer)
	return ok && c.CapturingKeys()
}

func NewScreen(step workflow.Step, mdl tea.Model) Screen {
	return Screen{
		Step: step,
		mdl:  mdl,
	}
}

type Model struct {
	screens []Screen
	index   map[workflow.Step]int
	curr    int
}

// New shows the first screen. Later screens for a step already present
// are dropped.
func New(screens []Screen) Model {
	m := Model{index: make(map[workflow.Step]int, len(screens))}
	for _, s := range screens {
		if _, dup := m.index[s.Step]; dup {
			continue
		}
		m.index[s.Step] = len(m.screens)
		m.screens = append(m.screens, s)
	}

	return m
}

func (m Model) current() Screen {
	return m.screens[m.curr]
}

func (m Model) Init() tea.Cmd {
	return m.current().Init()
}

func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if show, ok := teaMsg.(ShowMsg); ok {
		i, known := m.index[show.Step]
		if !known || i == m.curr {
			return m, nil
		}
		m.curr = i
		return m, m.current().Init()
	}

	s, cmd := m.current().Update(teaMsg)
	m.screens[m.curr] = s

	return m, cmd
}

func (m Model) View() string {
	return m.current().View()
}

// Current returns the step of the screen being shown.
func (m Model) Current() workflow.Step {
	return m.current().Step
}

// CapturingKeys reports whether the screen being shown wants every key.
func (m Model) CapturingKeys() bool {
	return m.current().CapturingKeys()
}
