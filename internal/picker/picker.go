package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/gemsave/internal/checkpoint"
	"github.com/fyrsmithlabs/gemsave/internal/logging"
	"github.com/fyrsmithlabs/gemsave/internal/project"
	"github.com/fyrsmithlabs/gemsave/internal/session"
)

// Messages printed during a run.
const (
	MsgNoSessions      = "No sessions found for the current directory."
	MsgFoundSessions   = "Found the following sessions:"
	MsgInvalidInput    = "Invalid input."
	MsgInvalidSelected = "Invalid selection."
	MsgEmptyName       = "Name cannot be empty."

	PromptSelection = "Enter the number of the session to save (or 'q' to quit): "
	PromptName      = "Enter a name for the saved chat: "

	timeLayout = "2006-01-02 15:04:05"
)

// SessionLocator lists candidate session files for a project identifier.
type SessionLocator interface {
	Locate(projectID string) ([]string, error)
}

// SessionPreviewer summarizes candidate session files.
type SessionPreviewer interface {
	PreviewAll(paths []string) []session.Entry
}

// Saver writes a checkpoint.
type Saver interface {
	Save(ctx context.Context, req *checkpoint.SaveRequest) (*checkpoint.SaveResult, error)
}

// Config holds the collaborators of a Picker.
type Config struct {
	// ProjectDir is the project whose sessions are offered.
	ProjectDir string

	Locator   SessionLocator
	Previewer SessionPreviewer
	Saver     Saver
	Prompter  Prompter

	// Out receives the listing and result messages.
	Out io.Writer

	// Styles defaults to NewStyles(Out).
	Styles *Styles

	Logger *logging.Logger
}

// Picker drives one interactive save.
type Picker struct {
	projectDir string
	locator    SessionLocator
	previewer  SessionPreviewer
	saver      Saver
	prompter   Prompter
	out        io.Writer
	styles     Styles
	logger     *logging.Logger
}

// New creates a Picker.
func New(cfg Config) (*Picker, error) {
	switch {
	case cfg.ProjectDir == "":
		return nil, project.ErrEmptyProjectPath
	case cfg.Locator == nil:
		return nil, errors.New("session locator is required")
	case cfg.Previewer == nil:
		return nil, errors.New("session previewer is required")
	case cfg.Saver == nil:
		return nil, errors.New("checkpoint saver is required")
	case cfg.Prompter == nil:
		return nil, errors.New("prompter is required")
	case cfg.Out == nil:
		return nil, errors.New("output writer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	styles := NewStyles(cfg.Out)
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	return &Picker{
		projectDir: cfg.ProjectDir,
		locator:    cfg.Locator,
		previewer:  cfg.Previewer,
		saver:      cfg.Saver,
		prompter:   cfg.Prompter,
		out:        cfg.Out,
		styles:     styles,
		logger:     logger.Named("picker"),
	}, nil
}

// Run lists the project's sessions, asks for a selection and a name, and
// saves the chosen session as a checkpoint. Invalid replies and closed input
// end the run with a nil error.
func (p *Picker) Run(ctx context.Context) error {
	proj, err := project.New(p.projectDir)
	if err != nil {
		return err
	}
	ctx = logging.WithProjectID(ctx, proj.ID)

	paths, err := p.locator.Locate(proj.ID)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		p.println(MsgNoSessions)
		return nil
	}

	entries := p.previewer.PreviewAll(paths)
	session.SortEntries(entries)
	p.logger.Debug(ctx, "sessions located", zap.Int("count", len(entries)))

	p.println(p.styles.Header.Render(MsgFoundSessions))
	for i, entry := range entries {
		p.println(p.formatEntry(i+1, entry))
	}

	reply, err := p.prompter.Ask(PromptSelection)
	if err != nil {
		return p.promptErr(ctx, err)
	}
	reply = strings.TrimSpace(reply)
	if strings.EqualFold(reply, "q") {
		return nil
	}

	n, err := strconv.Atoi(reply)
	if err != nil {
		p.println(MsgInvalidInput)
		return nil
	}
	if n < 1 || n > len(entries) {
		p.println(MsgInvalidSelected)
		return nil
	}
	selected := entries[n-1]

	name, err := p.prompter.Ask(PromptName)
	if err != nil {
		return p.promptErr(ctx, err)
	}
	if name == "" {
		p.println(MsgEmptyName)
		return nil
	}

	if _, err := p.saver.Save(ctx, &checkpoint.SaveRequest{
		ProjectDir:  p.projectDir,
		SessionPath: selected.Path,
		Name:        name,
	}); err != nil {
		return err
	}

	p.println(p.styles.Saved.Render(fmt.Sprintf("Session saved as '%s'", name)))
	return nil
}

// FormatPreview renders a successful preview line.
func FormatPreview(index int, preview *session.Preview) string {
	return fmt.Sprintf("%d: %s - First: %s... - Last: %s...",
		index, preview.StartTime.Format(timeLayout), preview.First, preview.Last)
}

// FormatError renders a preview failure line.
func FormatError(path string, err error) string {
	return fmt.Sprintf("Error reading session file %s: %v", path, err)
}

func (p *Picker) formatEntry(index int, entry session.Entry) string {
	if entry.Err != nil {
		return p.styles.Error.Render(FormatError(entry.Path, entry.Err))
	}
	s := p.styles
	return fmt.Sprintf("%s %s %s %s... %s %s...",
		s.Index.Render(strconv.Itoa(index)+":"),
		s.Time.Render(entry.Preview.StartTime.Format(timeLayout)),
		s.Label.Render("- First:"),
		entry.Preview.First,
		s.Label.Render("- Last:"),
		entry.Preview.Last,
	)
}

func (p *Picker) promptErr(ctx context.Context, err error) error {
	if errors.Is(err, ErrInputClosed) {
		p.logger.Debug(ctx, "input closed at prompt")
		fmt.Fprintln(p.out)
		return nil
	}
	return err
}

func (p *Picker) println(s string) {
	fmt.Fprintln(p.out, s)
}
