// Package tui renders the quiz as an interactive Bubble Tea screen.
package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"quizbox/internal/quiz"
)

// AudioPlayer is the fire-and-forget audio trigger.
type AudioPlayer interface {
	Play()
	Available() bool
}

// Options configures the quiz screen.
type Options struct {
	NoColor bool
	Logger  zerolog.Logger
}

// Model renders a quiz session using Bubble Tea. The engine is owned by the
// program loop; Update is its only mutator.
type Model struct {
	engine  *quiz.Engine
	audio   AudioPlayer
	keys    keyMap
	help    help.Model
	cursor  int
	noColor bool
	log     zerolog.Logger
}

// NewModel constructs the quiz screen for an engine.
func NewModel(engine *quiz.Engine, player AudioPlayer, opts Options) Model {
	h := help.New()
	if opts.NoColor {
		h.Styles = help.Styles{}
	}
	return Model{
		engine:  engine,
		audio:   player,
		keys:    defaultKeyMap(),
		help:    h,
		noColor: opts.NoColor,
		log:     opts.Logger,
	}
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey routes a key press according to the active screen. A pending
// notification blocks every quiz action until it is dismissed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Audio):
		if m.audio != nil {
			m.audio.Play()
		}
		return m, nil
	}

	if m.engine.Notification() != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.engine.DismissNotification()
		}
		return m, nil
	}

	state := m.engine.State()
	if state.Completed() {
		if key.Matches(msg, m.keys.Restart) {
			m.engine.Restart()
			m.cursor = 0
			m.log.Info().Str("session", m.engine.State().SessionID).Msg("quiz restarted")
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(state.Question.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		m = m.submit(m.cursor)
	case key.Matches(msg, m.keys.Option):
		m = m.submit(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Next):
		if err := m.engine.Advance(); err != nil {
			m.log.Warn().Err(err).Msg("advance rejected")
		}
		m.cursor = 0
	}
	return m, nil
}

// submit answers the current question with an option index.
func (m Model) submit(index int) Model {
	outcome, err := m.engine.SubmitAnswer(index)
	if err != nil {
		m.log.Warn().Err(err).Int("option", index).Msg("answer rejected")
		return m
	}
	m.log.Debug().
		Int("option", index).
		Bool("correct", outcome.Correct).
		Int("attempts_remaining", outcome.AttemptsRemaining).
		Bool("completed", outcome.Completed).
		Msg("answer submitted")
	if outcome.Advanced {
		m.cursor = 0
	}
	return m
}

// View renders the active screen.
func (m Model) View() string {
	state := m.engine.State()
	alert := state.Notification != ""
	sections := []string{renderAudioLine(m.audio != nil && m.audio.Available(), m.noColor)}
	if state.Completed() {
		sections = append(sections, renderSummary(state, m.noColor))
	} else {
		sections = append(sections, renderQuestion(state, m.cursor, m.noColor))
	}
	if alert {
		sections = append(sections, renderAlert(state.Notification, m.noColor))
	}
	sections = append(sections, m.help.View(m.keys.forScreen(alert, state.Completed())))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Cursor returns the highlighted option index.
func (m Model) Cursor() int {
	return m.cursor
}

// Run drives the quiz screen until the player quits or ctx is cancelled.
func Run(ctx context.Context, engine *quiz.Engine, player AudioPlayer, opts Options, in io.Reader, out io.Writer) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}
	program := tea.NewProgram(NewModel(engine, player, opts), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
