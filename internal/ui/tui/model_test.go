package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"quizbox/internal/question"
	"quizbox/internal/quiz"
	"quizbox/internal/testutil"
)

type fakeAudio struct {
	available bool
	plays     int
}

func (a *fakeAudio) Play()           { a.plays++ }
func (a *fakeAudio) Available() bool { return a.available }

func newTestModel(t *testing.T, count int) (Model, *quiz.Engine, *fakeAudio) {
	t.Helper()
	questions := make([]question.Question, count)
	for i := range questions {
		questions[i] = question.Question{
			Prompt:       "Prompt " + question.OptionLabel(i),
			Options:      []string{"red", "green", "blue", "yellow"},
			CorrectIndex: 2,
			Points:       10,
		}
	}
	engine, err := quiz.New(questions)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	player := &fakeAudio{available: true}
	return NewModel(engine, player, Options{NoColor: true, Logger: zerolog.Nop()}), engine, player
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		model, ok := next.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", next)
		}
		m = model
	}
	return m
}

// TestViewShowsQuestionScreen verifies the initial screen content.
func TestViewShowsQuestionScreen(t *testing.T) {
	m, _, _ := newTestModel(t, 2)
	view := m.View()
	for _, want := range []string{"[p] Play Audio", "Question 1/2", "Prompt A", "> 1. A) red", "  3. C) blue", "Attempts Remaining: 3", "Score: 0", "[n] Next Question"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

// TestCursorMovementIsClamped verifies up/down stay inside the option list.
func TestCursorMovementIsClamped(t *testing.T) {
	m, _, _ := newTestModel(t, 1)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.Cursor())
	}
	for i := 0; i < 6; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor() != 3 {
		t.Fatalf("expected cursor 3, got %d", m.Cursor())
	}
}

// TestEnterSubmitsHighlightedOption verifies cursor selection answers.
func TestEnterSubmitsHighlightedOption(t *testing.T) {
	m, engine, _ := newTestModel(t, 2)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	state := engine.State()
	if state.Score != 10 || state.Index != 1 {
		t.Fatalf("expected correct answer to advance, got %+v", state)
	}
	if state.Notification != quiz.MessageCorrect {
		t.Fatalf("expected correct notification, got %q", state.Notification)
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor reset, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "Correct!") {
		t.Fatalf("expected alert in view:\n%s", m.View())
	}
}

// TestAlertBlocksQuizActions verifies only dismissal works during an alert.
func TestAlertBlocksQuizActions(t *testing.T) {
	m, engine, _ := newTestModel(t, 3)
	m = press(t, m, runes("3"))
	m = press(t, m, runes("3"), runes("n"), tea.KeyMsg{Type: tea.KeyDown})
	state := engine.State()
	if state.Index != 1 || state.Score != 10 {
		t.Fatalf("expected input to be ignored while alert shows, got %+v", state)
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor unchanged, got %d", m.Cursor())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if engine.Notification() != "" {
		t.Fatalf("expected notification dismissed")
	}
	press(t, m, runes("3"))
	if engine.State().Score != 20 {
		t.Fatalf("expected answer after dismissal, got %+v", engine.State())
	}
}

// TestWrongAnswersConsumeAttempts verifies attempts and exhaustion feedback.
func TestWrongAnswersConsumeAttempts(t *testing.T) {
	m, engine, _ := newTestModel(t, 2)
	m = press(t, m, runes("1"))
	if engine.Notification() != "" {
		t.Fatalf("expected no notification after first wrong answer")
	}
	if !strings.Contains(m.View(), "Attempts Remaining: 2") {
		t.Fatalf("expected attempts decremented:\n%s", m.View())
	}
	m = press(t, m, runes("2"), runes("4"))
	if engine.Notification() != quiz.MessageOutOfAttempts {
		t.Fatalf("expected out of attempts notification, got %q", engine.Notification())
	}
	if engine.State().Index != 1 || engine.State().AttemptsRemaining != quiz.DefaultAttempts {
		t.Fatalf("expected move to next question, got %+v", engine.State())
	}
	view := m.View()
	for _, want := range []string{quiz.MessageOutOfAttempts, "Question 2/2", "Attempts Remaining: 3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q after exhaustion:\n%s", want, view)
		}
	}
}

// TestCompletionAndRestart verifies the summary screen and restart key.
func TestCompletionAndRestart(t *testing.T) {
	m, engine, _ := newTestModel(t, 2)
	m = press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter}, runes("n"))
	view := m.View()
	for _, want := range []string{"Quiz Completed!", "Your Score: 10/20", "[r] Restart"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in summary:\n%s", want, view)
		}
	}
	m = press(t, m, runes("3"), runes("n"))
	if !engine.State().Completed() || engine.State().Score != 10 {
		t.Fatalf("expected completed session to ignore answers, got %+v", engine.State())
	}
	m = press(t, m, runes("r"))
	state := engine.State()
	if state.Completed() || state.Index != 0 || state.Score != 0 || state.AttemptsRemaining != quiz.DefaultAttempts {
		t.Fatalf("expected restart, got %+v", state)
	}
	if !strings.Contains(m.View(), "Question 1/2") {
		t.Fatalf("expected first question after restart:\n%s", m.View())
	}
}

// TestAudioKeyPlaysOnEveryScreen verifies p triggers audio without state changes.
func TestAudioKeyPlaysOnEveryScreen(t *testing.T) {
	m, engine, player := newTestModel(t, 1)
	m = press(t, m, runes("p"))
	m = press(t, m, runes("3"), runes("p"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runes("p"))
	if player.plays != 3 {
		t.Fatalf("expected 3 plays, got %d", player.plays)
	}
	if !engine.State().Completed() || engine.State().Score != 10 {
		t.Fatalf("expected audio to leave state alone, got %+v", engine.State())
	}
	if !strings.Contains(m.View(), "Quiz Completed!") {
		t.Fatalf("expected summary screen:\n%s", m.View())
	}
}

// TestUnavailableAudioIsShown verifies the hint when the asset is missing.
func TestUnavailableAudioIsShown(t *testing.T) {
	m, _, player := newTestModel(t, 1)
	player.available = false
	if !strings.Contains(m.View(), "Play Audio (unavailable)") {
		t.Fatalf("expected unavailable hint:\n%s", m.View())
	}
}

// TestQuitKeys verifies q and ctrl+c end the program.
func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t, 1)
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %q", msg.String())
		}
	}
}

// TestRunQuitsOnInput verifies the program loop exits on q.
func TestRunQuitsOnInput(t *testing.T) {
	_, engine, player := newTestModel(t, 1)
	ctx := testutil.Context(t, 2*time.Second)
	var out bytes.Buffer
	if err := Run(ctx, engine, player, Options{NoColor: true, Logger: zerolog.Nop()}, strings.NewReader("q"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
}
