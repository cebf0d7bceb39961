package views

import (
	"fmt"
	"strings"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type correctionsKeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Search key.Binding
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func defaultCorrectionsKeyMap() correctionsKeyMap {
	return correctionsKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k correctionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Search, k.Up, k.Down}
}

// formKeys is the help shown while the add form is open.
type formKeys struct {
	correctionsKeyMap
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Cancel}
}

type correctionsView struct {
	app     *app.App
	keys    correctionsKeyMap
	help    help.Model
	search  textinput.Model
	fields  [2]textinput.Model
	focus   int
	adding  bool
	entries []clinical.CorrectionEntry
	cursor  int
	flash   flash
}

// NewCorrections builds the terminology dictionary editor.
func NewCorrections(a *app.App) tea.Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "term"

	original := textinput.New()
	original.Prompt = "Heard as:   "
	original.Placeholder = "e.g. metaformin"

	corrected := textinput.New()
	corrected.Prompt = "Correct to: "
	corrected.Placeholder = "e.g. metformin"

	return &correctionsView{
		app:    a,
		keys:   defaultCorrectionsKeyMap(),
		help:   help.New(),
		search: search,
		fields: [2]textinput.Model{original, corrected},
	}
}

func (c *correctionsView) Init() tea.Cmd {
	c.flash.clear()
	c.refresh()
	return nil
}

// CapturingKeys is true while typing into the search box or the form.
func (c *correctionsView) CapturingKeys() bool {
	return c.adding || c.search.Focused()
}

func (c *correctionsView) refresh() {
	c.entries = c.app.Corrections.Search(c.search.Value())
	c.cursor = min(c.cursor, max(len(c.entries)-1, 0))
}

func (c *correctionsView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := teaMsg.(tea.KeyMsg)

	switch {
	case c.adding:
		if isKey {
			return c, c.updateForm(keyMsg)
		}
		return c, nil

	case c.search.Focused():
		if isKey && (key.Matches(keyMsg, c.keys.Cancel) || key.Matches(keyMsg, c.keys.Save)) {
			c.search.Blur()
			return c, nil
		}
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(teaMsg)
		c.refresh()
		return c, cmd
	}

	if !isKey {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Add):
		c.flash.clear()
		c.adding = true
		c.focus = 0
		for i := range c.fields {
			c.fields[i].Reset()
		}
		return c, c.fields[0].Focus()

	case key.Matches(keyMsg, c.keys.Search):
		return c, c.search.Focus()

	case key.Matches(keyMsg, c.keys.Delete):
		if c.cursor < len(c.entries) {
			e := c.entries[c.cursor]
			if err := c.app.Corrections.Delete(e.ID); err != nil {
				c.flash.fail(err)
			} else {
				c.flash.set(fmt.Sprintf("Deleted %q", e.Original))
			}
			c.refresh()
		}

	case key.Matches(keyMsg, c.keys.Up):
		c.cursor = max(c.cursor-1, 0)

	case key.Matches(keyMsg, c.keys.Down):
		c.cursor = min(c.cursor+1, max(len(c.entries)-1, 0))
	}

	return c, nil
}

func (c *correctionsView) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		c.closeForm()
		return nil

	case key.Matches(msg, c.keys.Next):
		c.fields[c.focus].Blur()
		c.focus = (c.focus + 1) % len(c.fields)
		return c.fields[c.focus].Focus()

	case key.Matches(msg, c.keys.Save):
		e, err := c.app.Corrections.Add(c.fields[0].Value(), c.fields[1].Value())
		if err != nil {
			c.flash.fail(err)
			return nil
		}
		c.closeForm()
		c.flash.set(fmt.Sprintf("Added %q → %q", e.Original, e.Corrected))
		c.cursor = 0
		c.refresh()
		return nil
	}

	var cmd tea.Cmd
	c.fields[c.focus], cmd = c.fields[c.focus].Update(msg)

	return cmd
}

func (c *correctionsView) closeForm() {
	c.adding = false
	for i := range c.fields {
		c.fields[i].Blur()
	}
}

func (c *correctionsView) View() string {
	if c.adding {
		return section(
			title("New correction", ""),
			c.fields[0].View()+"\n"+c.fields[1].View(),
			c.flash.View(),
			renderHelp(c.help, formKeys{c.keys}),
		)
	}

	return section(
		title("Corrections", fmt.Sprintf("%d terms", len(c.entries))),
		c.search.View(),
		c.listView(),
		c.flash.View(),
		renderHelp(c.help, c.keys),
	)
}

func (c *correctionsView) listView() string {
	if len(c.entries) == 0 {
		return style.Muted.Render("No corrections")
	}

	lines := make([]string, 0, len(c.entries))
	for i, e := range c.entries {
		line := fmt.Sprintf("%-24s → %s", e.Original, e.Corrected)
		if i == c.cursor {
			lines = append(lines, style.Selected.Render("> "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}

	return strings.Join(lines, "\n")
}
