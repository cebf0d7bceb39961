// Package views implements one bubbletea model per workflow step. Every
// view drives the shared app.App; the root model notices step changes in
// the store and swaps views.
package views

import (
	"fmt"
	"strings"

	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// bindings is implemented by each view's key map.
type bindings interface {
	ShortHelp() []key.Binding
}

// fullHelp adapts a short-only key map to help.KeyMap.
type fullHelp struct {
	bindings
}

func (f fullHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}

func renderHelp(h help.Model, km bindings) string {
	return h.View(fullHelp{km})
}

// flash is a one-line outcome of the last action.
type flash struct {
	text string
	err  error
}

func (f *flash) set(text string) {
	f.text, f.err = text, nil
}

func (f *flash) fail(err error) {
	f.text, f.err = "", err
}

func (f *flash) clear() {
	f.text, f.err = "", nil
}

func (f flash) View() string {
	switch {
	case f.err != nil:
		if verr, ok := validation.As(f.err); ok {
			return style.Error.Render(verr.Message)
		}
		return style.Error.Render(f.err.Error())
	case f.text != "":
		return style.Success.Render(f.text)
	}

	return ""
}

func title(name, subtitle string) string {
	var sb strings.Builder
	sb.WriteString(style.Title.Render(name))
	if subtitle != "" {
		sb.WriteString(" ")
		sb.WriteString(style.Subtitle.Render(subtitle))
	}

	return sb.String()
}

func labelled(label, value string) string {
	if value == "" {
		value = style.Muted.Render("-")
	}

	return style.Label.Render(label+":") + " " + value
}

// timestamp renders seconds as m:ss.
func timestamp(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// section joins non-empty blocks with blank lines.
func section(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}

	return strings.Join(kept, "\n\n")
}
