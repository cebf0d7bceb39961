package views

import (
	"cmp"
	"fmt"
	"os"
	"os/exec"

	"github.com/alkime/itranscript/internal/workdir"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorDoneMsg reports that the editor opened on Path has exited.
type EditorDoneMsg struct {
	Path string
	Err  error
}

// EditorLauncher hands a file to an editor and reports back with an
// EditorDoneMsg.
type EditorLauncher interface {
	Launch(path string) tea.Cmd
}

// ExecEditor suspends the program and runs $EDITOR, defaulting to vi.
type ExecEditor struct{}

func (ExecEditor) Launch(path string) tea.Cmd {
	editor := cmp.Or(os.Getenv("EDITOR"), "vi")

	//nolint:gosec // the user's own editor
	c := exec.Command(editor, path)

	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorDoneMsg{Path: path, Err: err}
	})
}

// writeDraft saves content where the editor will open it.
func writeDraft(title, content string) (string, error) {
	if err := workdir.Prep(); err != nil {
		return "", err
	}

	path, err := workdir.NotePath(title)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write note draft: %w", err)
	}

	return path, nil
}

func readDraft(path string) (string, error) {
	//nolint:gosec // path is one we wrote
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read note draft: %w", err)
	}

	return string(b), nil
}
