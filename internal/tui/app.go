// Package tui implements the interactive session: a scrollback transcript
// over the shared dispatch engine with a single-line prompt.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pablasso/tusk/internal/config"
	"github.com/pablasso/tusk/internal/engine"
	"github.com/pablasso/tusk/internal/logging"
	"github.com/pablasso/tusk/internal/storage"
	"github.com/pablasso/tusk/internal/tui/styles"
)

const historyFile = "history"

// Options configures the interactive session.
type Options struct {
	DataFile string // overrides the configured task file
	NoColor  bool
}

// setup loads config and the task list, acquires the data file lock, and
// builds the engine shared by both session styles.
func setup(opts Options) (*engine.Engine, *log.Logger, func(), bool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, false, err
	}
	if opts.DataFile != "" {
		cfg.DataFile = opts.DataFile
	}
	if opts.NoColor {
		cfg.NoColor = true
	}

	if err := config.EnsureDataDir(); err != nil {
		return nil, nil, nil, false, fmt.Errorf("creating data directory: %w", err)
	}

	logger := logging.New(logging.DefaultOptions())
	store := storage.New(cfg.DataFile, logger)

	lock := storage.NewLock(store.LockPath())
	if err := lock.Acquire(); err != nil {
		return nil, nil, nil, false, err
	}
	release := func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release task file lock", "err", err)
		}
	}

	list, err := store.Load()
	if err != nil {
		release()
		return nil, nil, nil, false, fmt.Errorf("loading tasks: %w", err)
	}

	return engine.New(list, store), logger, release, cfg.NoColor, nil
}

// Run starts the interactive session and blocks until it exits.
func Run(opts Options) error {
	eng, logger, release, noColor, err := setup(opts)
	if err != nil {
		return err
	}
	defer release()

	history := LoadHistory(filepath.Join(config.DataDir(), historyFile))

	m := newModel(eng, history, noColor)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if err := history.Save(); err != nil {
		logger.Warn("failed to save prompt history", "err", err)
	}

	if fm, ok := finalModel.(model); ok {
		if fm.saveErr != nil {
			return fmt.Errorf("saving tasks: %w", fm.saveErr)
		}
		if fm.farewell != "" {
			fmt.Println(fm.farewell)
		}
	}
	return nil
}

// model is the Bubble Tea model for the session.
type model struct {
	eng     *engine.Engine
	history *History
	noColor bool

	transcript []string
	view       viewport.Model
	input      textinput.Model
	ready      bool

	width  int
	height int

	// farewell is printed after the alt screen is torn down.
	farewell string
	// saveErr is a fatal I/O failure from the exit save, surfaced by Run.
	saveErr error
}

func newModel(eng *engine.Engine, history *History, noColor bool) model {
	ti := textinput.New()
	ti.Placeholder = "todo buy milk"
	ti.Prompt = "> "
	ti.Focus()

	m := model{
		eng:     eng,
		history: history,
		noColor: noColor,
		input:   ti,
	}
	m.appendBlock(m.styled(styles.TitleStyle, engine.Greeting()))
	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewHeight := msg.Height - 3 // prompt line + spacing + help line
		if viewHeight < 1 {
			viewHeight = 1
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, viewHeight)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = viewHeight
		}
		m.refreshView()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Quitting under ctrl+c still persists, like bye.
			return m.dispatch("bye")
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.history.Add(line)
			return m.dispatch(line)
		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil
		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// dispatch runs one command line through the engine and appends the
// exchange to the transcript.
func (m model) dispatch(line string) (tea.Model, tea.Cmd) {
	m.appendBlock(m.styled(styles.PromptStyle, "> "+line))

	reply, err := m.eng.Respond(line)
	if err != nil {
		m.saveErr = err
		m.farewell = m.styled(styles.ErrorStyle, "could not save your tasks: "+err.Error())
		return m, tea.Quit
	}

	if reply.Exit {
		m.farewell = reply.Text
		return m, tea.Quit
	}

	m.appendBlock(reply.Text)
	m.refreshView()
	return m, nil
}

func (m *model) appendBlock(text string) {
	m.transcript = append(m.transcript, text)
	m.refreshView()
}

func (m *model) refreshView() {
	if !m.ready {
		return
	}
	m.view.SetContent(strings.Join(m.transcript, "\n\n"))
	m.view.GotoBottom()
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return ""
	}
	help := m.styled(styles.SubtleStyle, "list · todo · deadline · event · done · delete · find · bye")
	return m.view.View() + "\n" + m.input.View() + "\n" + help
}

func (m model) styled(s interface{ Render(...string) string }, text string) string {
	if m.noColor {
		return text
	}
	return s.Render(text)
}
