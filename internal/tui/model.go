// Package tui is the terminal front-end. A stepper header sits above the
// view for the current workflow step.
package tui

import (
	"context"
	"time"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/tui/components/screens"
	"github.com/alkime/itranscript/internal/tui/components/stepper"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/alkime/itranscript/internal/tui/views"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// redrawInterval paces repaints while a recording or upload is running.
const redrawInterval = 250 * time.Millisecond

// eventBuffer is the store subscription depth. Dropped events are harmless
// since every repaint reads the store.
const eventBuffer = 32

type storeEventMsg workflow.Event

type redrawMsg struct{}

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous step"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "go to step"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Jump}, {k.Help, k.Quit}}
}

type options struct {
	audio  clinical.AudioFile
	editor views.EditorLauncher
}

type Option func(*options)

// WithAudioFile sets the file the capture view uploads.
func WithAudioFile(f clinical.AudioFile) Option {
	return func(o *options) {
		o.audio = f
	}
}

// WithEditor replaces $EDITOR for note editing.
func WithEditor(e views.EditorLauncher) Option {
	return func(o *options) {
		o.editor = e
	}
}

// Model is the root bubbletea model.
type Model struct {
	app         *app.App
	cancel      context.CancelFunc
	keys        keyMap
	help        help.Model
	screens     screens.Model
	events      <-chan workflow.Event
	unsubscribe func()
	redrawing   bool
	width       int
	height      int
}

// New builds the root model over a. cancel, if set, runs on quit.
func New(a *app.App, cancel context.CancelFunc, opts ...Option) Model {
	o := options{audio: views.SampleAudio}
	for _, opt := range opts {
		opt(&o)
	}

	sc := screens.New([]screens.Screen{
		screens.NewScreen(workflow.StepCapture, views.NewCapture(a, o.audio)),
		screens.NewScreen(workflow.StepReview, views.NewReview(a)),
		screens.NewScreen(workflow.StepSummarize, views.NewSummarize(a, o.editor)),
		screens.NewScreen(workflow.StepPatientHub, views.NewPatientHub(a)),
		screens.NewScreen(workflow.StepDemographics, views.NewDemographics(a)),
		screens.NewScreen(workflow.StepCorrections, views.NewCorrections(a)),
		screens.NewScreen(workflow.StepTranscriptions, views.NewTranscriptions(a)),
	})

	events, unsubscribe := a.Store.Subscribe(eventBuffer)

	m := Model{
		app:         a,
		cancel:      cancel,
		keys:        defaultKeyMap(),
		help:        help.New(),
		screens:     sc,
		events:      events,
		unsubscribe: unsubscribe,
	}

	// The store may already be past capture, for example after a restore.
	if step := a.Store.CurrentStep(); step != sc.Current() {
		updated, _ := m.screens.Update(screens.ShowMsg{Step: step})
		m.screens = updated.(screens.Model) //nolint:forcetypeassert // own type
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.screens.Init(),
		waitForEvent(m.events),
	)
}

func waitForEvent(ch <-chan workflow.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg(ev)
	}
}

func redraw() tea.Cmd {
	return tea.Tick(redrawInterval, func(time.Time) tea.Msg {
		return redrawMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case storeEventMsg:
		cmds = append(cmds, waitForEvent(m.events))
		return m, tea.Batch(append(cmds, m.sync()...)...)

	case redrawMsg:
		m.redrawing = false
		return m, tea.Batch(m.sync()...)
	}

	// delegate to the current view
	updated, cmd := m.screens.Update(msg)
	m.screens = updated.(screens.Model) //nolint:forcetypeassert // own type
	cmds = append(cmds, cmd)

	return m, tea.Batch(append(cmds, m.sync()...)...)
}

// handleKey runs the global bindings. Views that are capturing text only
// give up ctrl+c.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return true, m.quit()
	}
	if m.screens.CapturingKeys() {
		return false, nil
	}

	st := m.app.Store.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		if step, ok := stepper.Neighbour(st, m.app.Policy, st.CurrentStep, key.Matches(msg, m.keys.Next)); ok {
			m.app.Navigate(step)
		}
		return true, tea.Batch(m.sync()...)

	case key.Matches(msg, m.keys.Jump):
		if step, ok := stepper.StepForKey(int(msg.Runes[0] - '0')); ok {
			m.app.Navigate(step)
		}
		return true, tea.Batch(m.sync()...)
	}

	return false, nil
}

func (m *Model) quit() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	m.unsubscribe()

	return tea.Quit
}

// sync shows the view for the store's current step and keeps the repaint
// timer running while something is in progress.
func (m *Model) sync() []tea.Cmd {
	var cmds []tea.Cmd

	if step := m.app.Store.CurrentStep(); step != m.screens.Current() {
		updated, cmd := m.screens.Update(screens.ShowMsg{Step: step})
		m.screens = updated.(screens.Model) //nolint:forcetypeassert // own type
		cmds = append(cmds, cmd)

		if m.width > 0 {
			size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
			cmds = append(cmds, func() tea.Msg { return size })
		}
	}

	busy := m.app.Capture.State() == capture.StateRecording ||
		m.app.Upload.State() == capture.UploadUploading
	if busy && !m.redrawing {
		m.redrawing = true
		cmds = append(cmds, redraw())
	}

	return cmds
}

func (m Model) View() string {
	header := stepper.View(m.app.Store.State(), m.app.Policy)

	return header + "\n\n" + m.screens.View() + "\n\n" + style.Help.Render(m.help.View(m.keys))
}

// CurrentStep returns the step whose view is shown.
func (m Model) CurrentStep() workflow.Step {
	return m.screens.Current()
}
