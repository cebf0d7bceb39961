package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/clipboard"
	"github.com/alkime/itranscript/internal/config"
	"github.com/alkime/itranscript/internal/logger"
	"github.com/alkime/itranscript/internal/tui"
	"github.com/alkime/itranscript/internal/workdir"
	"github.com/alkime/itranscript/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/table"
)

// Globals are flags shared by every command. Set flags override the
// environment.
type Globals struct {
	Gating        string `flag:"" optional:"" help:"Stepper gating: strict or lenient (default from GATING_MODE)"`
	IDStrategy    string `flag:"" name:"id-strategy" optional:"" help:"ID generation: uuid or counter"`
	AllowUnlinked bool   `flag:"" help:"Allow recording without a linked patient"`
	LogFile       string `flag:"" optional:"" help:"Log file for the terminal UI (default: in the work directory)"`
}

// CLI defines the itranscript command structure.
type CLI struct {
	Globals

	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Launch the terminal transcription workflow"`

	// Subcommands
	Patients    PatientsCmd    `cmd:"" help:"Browse the patient directory"`
	Corrections CorrectionsCmd `cmd:"" help:"Browse the terminology dictionary"`
	Steps       StepsCmd       `cmd:"" help:"List workflow steps and their access under the gating policy"`
}

// loadConfig loads the environment and applies flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if g.Gating != "" {
		cfg.GatingMode = g.Gating
	}
	if g.IDStrategy != "" {
		cfg.IDStrategy = g.IDStrategy
	}
	if g.AllowUnlinked {
		cfg.RequirePatientLink = false
	}

	return cfg, cfg.Validate()
}

func (g *Globals) newApp(ctx context.Context, log *slog.Logger, opts ...app.Option) (*app.App, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	return app.New(ctx, cfg, append([]app.Option{app.WithLogger(log)}, opts...)...)
}

func (g *Globals) logPath() (string, error) {
	if g.LogFile != "" {
		return g.LogFile, nil
	}

	if err := workdir.Prep(); err != nil {
		return "", err
	}

	return workdir.FilePath(workdir.LogFile)
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	Audio string `arg:"" optional:"" type:"existingfile" help:"Audio file the upload key sends (default: built-in sample)"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(g *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logPath, err := g.logPath()
	if err != nil {
		return err
	}

	//nolint:gosec // path comes from the user
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	log := logger.SetupTextLogger(logFile, logger.Level(cfg))

	var opts []tui.Option
	if c.Audio != "" {
		f, err := audioFile(c.Audio)
		if err != nil {
			return err
		}
		opts = append(opts, tui.WithAudioFile(f))
	}

	a, err := app.New(ctx, cfg, app.WithLogger(log), app.WithClipboard(clipboard.NewOSC52(os.Stdout)))
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info("starting terminal UI", "gating", cfg.GatingMode, "require_patient", cfg.RequirePatientLink)

	p := tea.NewProgram(tui.New(a, cancel, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	fmt.Println("finished. bye!")

	return nil
}

// audioFile describes path for upload, sniffing its type from content.
func audioFile(path string) (clinical.AudioFile, error) {
	//nolint:gosec // path comes from the user
	f, err := os.Open(path)
	if err != nil {
		return clinical.AudioFile{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return clinical.AudioFile{}, fmt.Errorf("failed to stat audio file: %w", err)
	}

	mimeType, err := capture.DetectAudioType(f)
	if err != nil {
		return clinical.AudioFile{}, fmt.Errorf("failed to detect audio type: %w", err)
	}

	return clinical.AudioFile{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Size:     info.Size(),
	}, nil
}

// PatientsCmd groups patient directory subcommands.
type PatientsCmd struct {
	Search PatientsSearchCmd `cmd:"" help:"Search patients by name or MRN"`
}

type PatientsSearchCmd struct {
	Query string `arg:"" optional:"" help:"Name or MRN fragment (empty lists everyone)"`
}

func (c *PatientsSearchCmd) Run(g *Globals) error {
	a, err := g.newApp(context.Background(), slog.Default())
	if err != nil {
		return err
	}
	defer a.Close()

	t := table.New().Headers("ID", "NAME", "AGE", "MRN", "CONDITION", "ALERTS")
	for _, p := range a.Patients.Search(c.Query) {
		t.Row(p.ID, p.Name, strconv.Itoa(p.Age), p.MedicalID, p.PrimaryCondition, string(p.HighestAlertSeverity()))
	}
	fmt.Println(t.Render())

	return nil
}

// CorrectionsCmd groups dictionary subcommands.
type CorrectionsCmd struct {
	List   CorrectionsListCmd   `cmd:"" help:"List corrections"`
	Export CorrectionsExportCmd `cmd:"" help:"Write the dictionary as JSON to stdout"`
}

type CorrectionsListCmd struct {
	Query string `arg:"" optional:"" help:"Filter on either side of the correction"`
}

func (c *CorrectionsListCmd) Run(g *Globals) error {
	a, err := g.newApp(context.Background(), slog.Default())
	if err != nil {
		return err
	}
	defer a.Close()

	t := table.New().Headers("ID", "HEARD AS", "CORRECTED")
	for _, e := range a.Corrections.Search(c.Query) {
		t.Row(e.ID, e.Original, e.Corrected)
	}
	fmt.Println(t.Render())

	return nil
}

type CorrectionsExportCmd struct{}

func (c *CorrectionsExportCmd) Run(g *Globals) error {
	a, err := g.newApp(context.Background(), slog.Default())
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Corrections.Export(os.Stdout)
}

// StepsCmd lists the workflow steps for a fresh session.
type StepsCmd struct{}

func (c *StepsCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	policy, err := workflow.ParsePolicy(cfg.GatingMode)
	if err != nil {
		return err
	}
	st := workflow.NewStore().State()

	t := table.New().Headers("STEP", "LABEL", "DESCRIPTION", "ALWAYS OPEN", "OPEN NOW")
	for _, step := range workflow.Steps() {
		t.Row(string(step), step.Label(), step.Description(),
			strconv.FormatBool(policy.AlwaysAccessible(step)),
			strconv.FormatBool(policy.CanEnter(st, step)))
	}
	fmt.Printf("gating: %s\n%s\n", policy.Name(), t.Render())

	return nil
}

func main() {
	// Set up text-based logger for CLI output
	logger.SetupTextLogger(os.Stderr, slog.LevelWarn)

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("itranscript"),
		kong.Description("Clinical transcription workflow in the terminal."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
