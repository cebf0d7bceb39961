// Package workdir manages the directory that holds terminal session files:
// the log and note drafts opened in an editor.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// LogFile is the terminal UI log name inside Root.
const LogFile = "itranscript.log"

const notesDir = "notes"

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9-]+`)
	dashes    = regexp.MustCompile(`-+`)
	slugSpace = strings.NewReplacer(" ", "-", "/", "-", "_", "-")
)

// Root returns the base directory for all working files:
//
//	$HOME/Documents/Alkime/iTranscript
func Root() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "Alkime", "iTranscript"), nil
}

// FilePath returns the full path for a file directly under Root.
func FilePath(name string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// NotePath returns the draft path for a note titled title.
func NotePath(title string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}

	name := Slug(title)
	if name == "" {
		name = "note"
	}

	return filepath.Join(root, notesDir, name+".md"), nil
}

// Prep ensures that Root and its notes directory exist.
func Prep() error {
	root, err := Root()
	if err != nil {
		return err
	}

	dir := filepath.Join(root, notesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", dir, err)
	}

	return nil
}

// Slug converts a title to a file-name-safe slug.
// Example: "SOAP Note - Sarah Johnson" -> "soap-note-sarah-johnson"
func Slug(title string) string {
	slug := slugSpace.Replace(strings.ToLower(title))
	slug = nonSlug.ReplaceAllString(slug, "")
	slug = dashes.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
